package sections

import (
	"bytes"
	"context"
	"fmt"
	"hra-service/internal/app/contracts"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/exceptions"
	"hra-service/internal/pkg/hra_dto"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// sectionClient carries no step-ordering logic: it translates one section per
// call and reports the upstream outcome as-is. Ordering, markers and locking
// live in the sequencer.
type sectionClient struct {
	BaseUrl string
}

func NewSectionCommitClient(baseUrl string) contracts.SectionCommitClient {
	return &sectionClient{
		BaseUrl: baseUrl,
	}
}

func NewSectionFetchClient(baseUrl string) contracts.SectionFetchClient {
	return &sectionClient{
		BaseUrl: baseUrl,
	}
}

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

func (c *sectionClient) commit(ctx context.Context, path, section string, payload interface{}, result interface{}) error {
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+path, bytes.NewBuffer(requestJSON))
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

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrSectionCommit(upstreamError(resp.StatusCode, resp.Body), section)
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, section)
	}

	return nil
}

// fetch returns found=false without an error when the section was never
// committed; resume treats that as an empty slot, not a failure.
func (c *sectionClient) fetch(ctx context.Context, path, section, assessmentID string, result interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s%s/%s", c.BaseUrl, path, assessmentID), nil)
	if err != nil {
		return false, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return false, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		return false, exceptions.ErrSectionFetch(upstreamError(resp.StatusCode, resp.Body), section)
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return false, exceptions.ErrDecodeResponse(err, section)
	}

	return true, nil
}
