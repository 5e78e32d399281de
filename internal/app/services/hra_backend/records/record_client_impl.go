package records

import (
	"bytes"
	"context"
	"fmt"
	"hra-service/internal/app/contracts"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/exceptions"
	"hra-service/internal/pkg/hra_dto"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

type assessmentRecordClient struct {
	BaseUrl string
}

func NewAssessmentRecordClient(baseUrl string) contracts.AssessmentRecordClient {
	return &assessmentRecordClient{
		BaseUrl: baseUrl,
	}
}

// upstreamError extracts the upstream diagnostic from a non-2xx body.
func upstreamError(statusCode int, body io.Reader) error {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("%s: %d", constvars.ErrDevUnexpectedStatusCode, statusCode)
	}

	var envelope hra_dto.ErrorEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%s: %d: %s", constvars.ErrDevUnexpectedStatusCode, statusCode, envelope.Message)
	}
	return fmt.Errorf("%s: %d", constvars.ErrDevUnexpectedStatusCode, statusCode)
}

func (c *assessmentRecordClient) CreateGeneralDetails(ctx context.Context, subject *models.Subject, payload *models.GeneralDetails) (string, error) {
	requestJSON, err := json.Marshal(hra_dto.GeneralDetailsToWire(subject, payload))
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.PathGeneralDetails, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrSectionCommit(upstreamError(resp.StatusCode, resp.Body), constvars.SectionGeneralDetails)
	}

	result := new(hra_dto.GeneralDetailsCommitResponse)
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return "", exceptions.ErrDecodeResponse(err, constvars.SectionGeneralDetails)
	}
	if result.GeneralDetailsID == "" {
		return "", exceptions.ErrSectionCommit(fmt.Errorf("upstream returned no identifier"), constvars.SectionGeneralDetails)
	}

	return result.GeneralDetailsID, nil
}

func (c *assessmentRecordClient) FetchGeneralDetails(ctx context.Context, assessmentID string) (*models.GeneralDetails, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.PathGeneralDetails, assessmentID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrSectionFetch(upstreamError(resp.StatusCode, resp.Body), constvars.SectionGeneralDetails)
	}

	wire := new(hra_dto.GeneralDetailsRecord)
	err = json.NewDecoder(resp.Body).Decode(wire)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.SectionGeneralDetails)
	}

	generalDetails := hra_dto.GeneralDetailsFromWire(wire)
	return &generalDetails, nil
}

func (c *assessmentRecordClient) FindRecordByID(ctx context.Context, assessmentID string) (*models.AssessmentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.PathAssessments, assessmentID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrDraftNotFound(upstreamError(resp.StatusCode, resp.Body))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrResumeMarkerFetch(upstreamError(resp.StatusCode, resp.Body))
	}

	wire := new(hra_dto.AssessmentRecord)
	err = json.NewDecoder(resp.Body).Decode(wire)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.PathAssessments)
	}

	return hra_dto.RecordFromWire(wire), nil
}

func (c *assessmentRecordClient) ListRecordsByEmployee(ctx context.Context, employeeID, action string) ([]models.AssessmentRecord, error) {
	url := fmt.Sprintf("%s%s?employeeId=%s", c.BaseUrl, constvars.PathAssessments, employeeID)
	if action != "" {
		url = fmt.Sprintf("%s&action=%s", url, action)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrRecordList(upstreamError(resp.StatusCode, resp.Body))
	}

	result := new(hra_dto.AssessmentRecordList)
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.PathAssessments)
	}

	records := make([]models.AssessmentRecord, len(result.Records))
	for i := range result.Records {
		records[i] = *hra_dto.RecordFromWire(&result.Records[i])
	}

	return records, nil
}

func (c *assessmentRecordClient) MarkQuestionAnswered(ctx context.Context, assessmentID string, question int) error {
	requestJSON, err := json.Marshal(hra_dto.ProgressMarkerRequest{
		AssessmentID: assessmentID,
		Question:     question,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.PathAssessments+"/last-answered-question", bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrMarkerUpdate(upstreamError(resp.StatusCode, resp.Body))
	}

	return nil
}
