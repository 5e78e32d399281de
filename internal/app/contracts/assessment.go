package contracts

import (
	"context"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/dto/requests"
	"hra-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	Begin(ctx context.Context, employeeID string, request *requests.BeginAssessment) (*responses.AssessmentProgress, error)
	Advance(ctx context.Context, assessmentID string, request *requests.AdvanceStep) (*responses.AssessmentProgress, error)
	Retreat(ctx context.Context, assessmentID string) (*responses.AssessmentProgress, error)
	ListRecords(ctx context.Context, employeeID, action string) ([]responses.AssessmentRecord, error)
}

type ResumeUsecase interface {
	Resolve(ctx context.Context, assessmentID string) (*responses.ResumeResult, error)
}

type ReportUsecase interface {
	Compile(ctx context.Context, assessmentID string) (*models.ReportDocument, error)
	Render(ctx context.Context, assessmentID, target string) (*responses.RenderedReport, error)
}
