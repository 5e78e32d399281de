package resume

import (
	"context"
	"fmt"
	"hra-service/internal/app/contracts"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/dto/responses"
	"hra-service/internal/pkg/steps"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const draftTTL = 7 * 24 * time.Hour

type resumeUsecase struct {
	RecordClient contracts.AssessmentRecordClient
	FetchClient  contracts.SectionFetchClient
	RedisRepo    contracts.RedisRepository
	Log          *zap.Logger
}

var (
	resumeUsecaseInstance contracts.ResumeUsecase
	onceResumeUsecase     sync.Once
)

func NewResumeUsecase(
	recordClient contracts.AssessmentRecordClient,
	fetchClient contracts.SectionFetchClient,
	redisRepo contracts.RedisRepository,
	logger *zap.Logger,
) contracts.ResumeUsecase {
	onceResumeUsecase.Do(func() {
		instance := &resumeUsecase{
			RecordClient: recordClient,
			FetchClient:  fetchClient,
			RedisRepo:    redisRepo,
			Log:          logger,
		}
		resumeUsecaseInstance = instance
	})
	return resumeUsecaseInstance
}

// Resolve rebuilds the draft from the upstream record. The record (and its
// progress marker) is the only fatal dependency; each section fetch degrades
// gracefully to an empty slot so one flaky endpoint cannot block re-entry.
func (uc *resumeUsecase) Resolve(ctx context.Context, assessmentID string) (*responses.ResumeResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("resumeUsecase.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	record, err := uc.RecordClient.FindRecordByID(ctx, assessmentID)
	if err != nil {
		uc.Log.Error("resumeUsecase.Resolve error fetching record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}

	draft := &models.AssessmentDraft{
		AssessmentID:         assessmentID,
		Subject:              record.Subject,
		CurrentStep:          steps.ResumeTarget(record.LastAnsweredQuestion),
		LastAnsweredQuestion: record.LastAnsweredQuestion,
	}

	uc.rehydrateSections(ctx, draft)
	uc.saveDraft(ctx, draft)

	uc.Log.Info("resumeUsecase.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingStepKey, draft.CurrentStep),
		zap.Int(constvars.LoggingMarkerKey, draft.LastAnsweredQuestion),
	)
	return &responses.ResumeResult{
		ResumeStep: draft.CurrentStep,
		StepName:   steps.Name(draft.CurrentStep),
		Draft:      draft,
	}, nil
}

// rehydrateSections fans out one fetch per section, regardless of the
// marker: a section whose commit landed while its marker update failed is
// recovered too. Every closure writes a distinct draft field, so the group
// needs no extra locking.
func (uc *resumeUsecase) rehydrateSections(ctx context.Context, draft *models.AssessmentDraft) {
	assessmentID := draft.AssessmentID

	fetchers := []struct {
		step  int
		fetch func(ctx context.Context) error
	}{
		{constvars.StepGeneralDetails, func(ctx context.Context) error {
			section, err := uc.RecordClient.FetchGeneralDetails(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.GeneralDetails = *section
			}
			return nil
		}},
		{constvars.StepBasicProfile, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchBasicProfile(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.BasicProfile = *section
			}
			return nil
		}},
		{constvars.StepPresentingIllness, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchPresentingIllness(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.PresentingIllness = *section
			}
			return nil
		}},
		{constvars.StepPastHistory, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchPastHistory(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.PastHistory = *section
			}
			return nil
		}},
		{constvars.StepSleepHabits, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchSleepHabits(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.SleepHabits = *section
			}
			return nil
		}},
		{constvars.StepEatingHabits, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchEatingHabits(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.EatingHabits = *section
			}
			return nil
		}},
		{constvars.StepDrinkingHabits, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchDrinkingHabits(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.DrinkingHabits = *section
			}
			return nil
		}},
		{constvars.StepSmokingHabits, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchSmokingHabits(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.SmokingHabits = *section
			}
			return nil
		}},
		{constvars.StepHereditary, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchHereditary(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.Hereditary = *section
			}
			return nil
		}},
		{constvars.StepBowelBladder, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchBowelBladder(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.BowelBladder = *section
			}
			return nil
		}},
		{constvars.StepFitness, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchFitness(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.Fitness = *section
			}
			return nil
		}},
		{constvars.StepMentalWellness, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchMentalWellness(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.MentalWellness = *section
			}
			return nil
		}},
		{constvars.StepEmployeeWellness, func(ctx context.Context) error {
			section, err := uc.FetchClient.FetchEmployeeWellness(ctx, assessmentID)
			if err != nil {
				return err
			}
			if section != nil {
				draft.EmployeeWellness = *section
			}
			return nil
		}},
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, fetcher := range fetchers {
		step := fetcher.step
		fetch := fetcher.fetch
		group.Go(func() error {
			if err := fetch(groupCtx); err != nil {
				requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				uc.Log.Warn("resumeUsecase.rehydrateSections section fetch degraded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
					zap.Int(constvars.LoggingStepKey, step),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	group.Wait()
}

func (uc *resumeUsecase) saveDraft(ctx context.Context, draft *models.AssessmentDraft) {
	err := uc.RedisRepo.Set(ctx, fmt.Sprintf(constvars.RedisKeyDraftFormat, draft.AssessmentID), draft, draftTTL)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("resumeUsecase.saveDraft error caching draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, draft.AssessmentID),
			zap.Error(err),
		)
	}
}
