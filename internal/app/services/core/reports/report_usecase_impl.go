package reports

import (
	"bytes"
	"context"
	"fmt"
	"hra-service/internal/app/contracts"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/dto/responses"
	"hra-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	renderTargetDownload = "download"
	renderTargetStore    = "store"
)

type reportUsecase struct {
	Resolver  contracts.ResumeUsecase
	RedisRepo contracts.RedisRepository
	Renderer  contracts.DocumentRenderer
	Storage   contracts.Storage
	Bucket    string
	Log       *zap.Logger
}

var (
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

func NewReportUsecase(
	resolver contracts.ResumeUsecase,
	redisRepo contracts.RedisRepository,
	renderer contracts.DocumentRenderer,
	storage contracts.Storage,
	bucket string,
	logger *zap.Logger,
) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		instance := &reportUsecase{
			Resolver:  resolver,
			RedisRepo: redisRepo,
			Renderer:  renderer,
			Storage:   storage,
			Bucket:    bucket,
			Log:       logger,
		}
		reportUsecaseInstance = instance
	})
	return reportUsecaseInstance
}

// Compile folds the draft's section state into the report document. The
// cached draft is the preferred source; when the cache has expired the
// resume resolver rebuilds it from upstream. The fold itself is pure, so a
// degraded upstream never blanks a slot the draft already holds.
func (uc *reportUsecase) Compile(ctx context.Context, assessmentID string) (*models.ReportDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.Compile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	draft := uc.cachedDraft(ctx, assessmentID)
	if draft == nil {
		result, err := uc.Resolver.Resolve(ctx, assessmentID)
		if err != nil {
			uc.Log.Error("reportUsecase.Compile error rebuilding draft",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
				zap.Error(err),
			)
			return nil, err
		}
		draft = result.Draft
	}

	document := aggregate(draft)

	uc.Log.Info("reportUsecase.Compile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingMarkerKey, draft.LastAnsweredQuestion),
	)
	return document, nil
}

func (uc *reportUsecase) Render(ctx context.Context, assessmentID, target string) (*responses.RenderedReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.Render called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingActionKey, target),
	)

	document, err := uc.Compile(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	content, contentType, err := uc.Renderer.Render(ctx, document)
	if err != nil {
		uc.Log.Error("reportUsecase.Render error rendering document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}

	fileName := utils.GenerateFileName("hra-report", assessmentID, ".html")
	rendered := &responses.RenderedReport{
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   int64(len(content)),
	}

	if target == renderTargetStore {
		err = uc.Storage.CreateObject(ctx, uc.Bucket, fileName, bytes.NewReader(content), int64(len(content)), contentType)
		if err != nil {
			uc.Log.Error("reportUsecase.Render error storing report",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBucketKey, uc.Bucket),
				zap.Error(err),
			)
			return nil, err
		}

		rendered.Bucket = uc.Bucket
		rendered.ObjectName = fileName

		url, urlErr := uc.Storage.GetPresignedURL(ctx, uc.Bucket, fileName)
		if urlErr != nil {
			uc.Log.Warn("reportUsecase.Render error presigning stored report",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, fileName),
				zap.Error(urlErr),
			)
		} else {
			rendered.URL = url
		}
	} else {
		rendered.Content = content
	}

	uc.Log.Info("reportUsecase.Render succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingObjectNameKey, fileName),
	)
	return rendered, nil
}

// cachedDraft returns the draft the sequencer cached, or nil when it has
// expired or cannot be decoded; the caller then rebuilds it via resume.
func (uc *reportUsecase) cachedDraft(ctx context.Context, assessmentID string) *models.AssessmentDraft {
	data, err := uc.RedisRepo.Get(ctx, fmt.Sprintf(constvars.RedisKeyDraftFormat, assessmentID))
	if err != nil || data == "" {
		return nil
	}

	draft := new(models.AssessmentDraft)
	if err := json.Unmarshal([]byte(data), draft); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("reportUsecase.cachedDraft error decoding cached draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil
	}
	if draft.AssessmentID == "" {
		return nil
	}
	return draft
}
