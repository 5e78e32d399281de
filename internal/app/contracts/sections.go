package contracts

import (
	"context"
	"hra-service/internal/app/models"
)

// AssessmentRecordClient talks to the upstream persistence service's record
// and marker endpoints. The record fetch is the only fatal dependency of the
// resume path; the marker call is the sequenced second half of every section
// commit.
type AssessmentRecordClient interface {
	CreateGeneralDetails(ctx context.Context, subject *models.Subject, payload *models.GeneralDetails) (assessmentID string, err error)
	FindRecordByID(ctx context.Context, assessmentID string) (*models.AssessmentRecord, error)
	ListRecordsByEmployee(ctx context.Context, employeeID, action string) ([]models.AssessmentRecord, error)
	MarkQuestionAnswered(ctx context.Context, assessmentID string, question int) error
	FetchGeneralDetails(ctx context.Context, assessmentID string) (*models.GeneralDetails, error)
}

// SectionCommitClient persists one section per call. Adapters translate
// shapes only; they carry no step-ordering logic and never retry.
type SectionCommitClient interface {
	CommitBasicProfile(ctx context.Context, assessmentID, actorID string, payload *models.BasicProfile) (string, error)
	CommitPresentingIllness(ctx context.Context, assessmentID, actorID string, payload *models.PresentingIllness) (string, error)
	CommitPastHistory(ctx context.Context, assessmentID, actorID string, payload *models.PastHistory) (string, error)
	CommitSleepHabits(ctx context.Context, assessmentID, actorID string, payload *models.SleepHabits) (string, error)
	CommitEatingHabits(ctx context.Context, assessmentID, actorID string, payload *models.EatingHabits) (string, error)
	CommitDrinkingHabits(ctx context.Context, assessmentID, actorID string, payload *models.DrinkingHabits) (string, error)
	CommitSmokingHabits(ctx context.Context, assessmentID, actorID string, payload *models.SmokingHabits) (string, error)
	CommitHereditary(ctx context.Context, assessmentID, actorID string, payload *models.Hereditary) (string, error)
	CommitBowelBladder(ctx context.Context, assessmentID, actorID string, payload *models.BowelBladder) (string, error)
	CommitFitness(ctx context.Context, assessmentID, actorID string, payload *models.Fitness) (string, error)
	CommitMentalWellness(ctx context.Context, assessmentID, actorID string, payload *models.MentalWellness) (string, error)
	CommitEmployeeWellness(ctx context.Context, assessmentID, actorID string, payload *models.EmployeeWellness) (string, error)
}

// SectionFetchClient rehydrates saved sections during resume. A nil result
// with a nil error means the section was never filled.
type SectionFetchClient interface {
	FetchBasicProfile(ctx context.Context, assessmentID string) (*models.BasicProfile, error)
	FetchPresentingIllness(ctx context.Context, assessmentID string) (*models.PresentingIllness, error)
	FetchPastHistory(ctx context.Context, assessmentID string) (*models.PastHistory, error)
	FetchSleepHabits(ctx context.Context, assessmentID string) (*models.SleepHabits, error)
	FetchEatingHabits(ctx context.Context, assessmentID string) (*models.EatingHabits, error)
	FetchDrinkingHabits(ctx context.Context, assessmentID string) (*models.DrinkingHabits, error)
	FetchSmokingHabits(ctx context.Context, assessmentID string) (*models.SmokingHabits, error)
	FetchHereditary(ctx context.Context, assessmentID string) (*models.Hereditary, error)
	FetchBowelBladder(ctx context.Context, assessmentID string) (*models.BowelBladder, error)
	FetchFitness(ctx context.Context, assessmentID string) (*models.Fitness, error)
	FetchMentalWellness(ctx context.Context, assessmentID string) (*models.MentalWellness, error)
	FetchEmployeeWellness(ctx context.Context, assessmentID string) (*models.EmployeeWellness, error)
}
