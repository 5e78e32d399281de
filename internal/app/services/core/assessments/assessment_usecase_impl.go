package assessments

import (
	"context"
	"fmt"
	"hra-service/internal/app/contracts"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/dto/requests"
	"hra-service/internal/pkg/dto/responses"
	"hra-service/internal/pkg/exceptions"
	"hra-service/internal/pkg/steps"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	// Drafts outlive browser sessions so an interrupted assessment can be
	// resumed days later; the upstream record remains the source of truth.
	draftTTL = 7 * 24 * time.Hour

	// An advance holds the lock for at most this long; covers the section
	// commit plus the marker update.
	advanceLockTTL = 30 * time.Second
)

type assessmentUsecase struct {
	RecordClient contracts.AssessmentRecordClient
	CommitClient contracts.SectionCommitClient
	RedisRepo    contracts.RedisRepository
	Locker       contracts.LockerService
	Publisher    contracts.CompletionPublisher
	Log          *zap.Logger
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	recordClient contracts.AssessmentRecordClient,
	commitClient contracts.SectionCommitClient,
	redisRepo contracts.RedisRepository,
	locker contracts.LockerService,
	publisher contracts.CompletionPublisher,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		instance := &assessmentUsecase{
			RecordClient: recordClient,
			CommitClient: commitClient,
			RedisRepo:    redisRepo,
			Locker:       locker,
			Publisher:    publisher,
			Log:          logger,
		}
		assessmentUsecaseInstance = instance
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) Begin(ctx context.Context, employeeID string, request *requests.BeginAssessment) (*responses.AssessmentProgress, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.Begin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectIDKey, request.Subject.SubjectID),
	)

	subject := models.Subject{
		SubjectID:    request.Subject.SubjectID,
		EmployeeID:   employeeID,
		Name:         request.Subject.Name,
		Gender:       request.Subject.Gender,
		DateOfBirth:  request.Subject.DateOfBirth,
		RelationType: request.Subject.RelationType,
	}
	generalDetails := models.GeneralDetails{Mood: request.GeneralDetails.Mood}

	assessmentID, err := uc.RecordClient.CreateGeneralDetails(ctx, &subject, &generalDetails)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Begin error creating general details",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RecordClient.MarkQuestionAnswered(ctx, assessmentID, constvars.StepGeneralDetails)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Begin error advancing marker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}

	draft := &models.AssessmentDraft{
		AssessmentID:         assessmentID,
		Subject:              subject,
		CurrentStep:          constvars.StepBasicProfile,
		LastAnsweredQuestion: constvars.StepGeneralDetails,
		GeneralDetails:       generalDetails,
	}
	uc.saveDraft(ctx, draft)

	uc.Log.Info("assessmentUsecase.Begin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return progressOf(draft), nil
}

func (uc *assessmentUsecase) Advance(ctx context.Context, assessmentID string, request *requests.AdvanceStep) (*responses.AssessmentProgress, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.Advance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingStepKey, request.Step),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyAdvanceLockFormat, assessmentID)
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, advanceLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAdvanceInProgress(fmt.Errorf("advance lock held for assessment %s", assessmentID))
	}
	defer func() {
		if unlockErr := uc.Locker.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("assessmentUsecase.Advance error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	draft, err := uc.loadDraft(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if draft.AssessmentID == "" {
		return nil, exceptions.ErrAssessmentNotStarted(fmt.Errorf("draft has no assessment identifier"))
	}
	if request.Step != draft.CurrentStep {
		uc.Log.Info("assessmentUsecase.Advance rejected out-of-order step",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Int(constvars.LoggingStepKey, request.Step),
			zap.Int("current_step", draft.CurrentStep),
		)
		return nil, exceptions.ErrStepOutOfOrder(fmt.Errorf("submitted step %d, current step %d", request.Step, draft.CurrentStep))
	}

	// The section commit and the marker update are strictly sequenced; any
	// failure leaves the draft (and so the current step) untouched.
	err = uc.commitSection(ctx, draft, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Advance error committing section",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Int(constvars.LoggingStepKey, request.Step),
			zap.Error(err),
		)
		return nil, err
	}

	// The marker is reported once per committed section, even on a recommit
	// that cannot move it forward; the server keeps the max.
	newMarker := steps.Marker(draft.LastAnsweredQuestion, request.Step)
	err = uc.RecordClient.MarkQuestionAnswered(ctx, assessmentID, newMarker)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Advance error advancing marker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Int(constvars.LoggingMarkerKey, newMarker),
			zap.Error(err),
		)
		return nil, err
	}

	draft.LastAnsweredQuestion = newMarker
	draft.CurrentStep = steps.Next(request.Step)
	if draft.CurrentStep == constvars.StepComplete && draft.SubmittedAt == nil {
		now := time.Now().UTC()
		draft.SubmittedAt = &now
		uc.publishCompletion(ctx, draft)
	}
	uc.saveDraft(ctx, draft)

	uc.Log.Info("assessmentUsecase.Advance succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingStepKey, draft.CurrentStep),
		zap.Int(constvars.LoggingMarkerKey, draft.LastAnsweredQuestion),
	)
	return progressOf(draft), nil
}

func (uc *assessmentUsecase) Retreat(ctx context.Context, assessmentID string) (*responses.AssessmentProgress, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.Retreat called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	draft, err := uc.loadDraft(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	// Navigation only: nothing is committed or re-fetched, and the progress
	// marker keeps its value.
	draft.CurrentStep = steps.Prev(draft.CurrentStep)
	uc.saveDraft(ctx, draft)

	uc.Log.Info("assessmentUsecase.Retreat succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingStepKey, draft.CurrentStep),
	)
	return progressOf(draft), nil
}

func (uc *assessmentUsecase) ListRecords(ctx context.Context, employeeID, action string) ([]responses.AssessmentRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.ListRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActionKey, action),
	)

	records, err := uc.RecordClient.ListRecordsByEmployee(ctx, employeeID, action)
	if err != nil {
		uc.Log.Error("assessmentUsecase.ListRecords error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.AssessmentRecord, len(records))
	for i, record := range records {
		result[i] = responses.AssessmentRecord{
			AssessmentID:         record.AssessmentID,
			SubjectName:          record.Subject.Name,
			RelationType:         record.Subject.RelationType,
			LastAnsweredQuestion: record.LastAnsweredQuestion,
			Action:               record.Action,
			CreatedAt:            record.CreatedAt,
		}
	}

	uc.Log.Info("assessmentUsecase.ListRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(result)),
	)
	return result, nil
}

// commitSection dispatches the single section payload carried by the advance
// request. Mismatched payloads are rejected before any network call.
func (uc *assessmentUsecase) commitSection(ctx context.Context, draft *models.AssessmentDraft, request *requests.AdvanceStep) error {
	assessmentID := draft.AssessmentID
	actorID := draft.Subject.SubjectID

	switch request.Step {
	case constvars.StepBasicProfile:
		if request.BasicProfile == nil {
			return missingPayload(request.Step)
		}
		payload := toModelBasicProfile(request.BasicProfile)
		if _, err := uc.CommitClient.CommitBasicProfile(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.BasicProfile = *payload
	case constvars.StepPresentingIllness:
		if request.PresentingIllness == nil {
			return missingPayload(request.Step)
		}
		payload := toModelPresentingIllness(request.PresentingIllness)
		if _, err := uc.CommitClient.CommitPresentingIllness(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.PresentingIllness = *payload
	case constvars.StepPastHistory:
		if request.PastHistory == nil {
			return missingPayload(request.Step)
		}
		payload := toModelPastHistory(request.PastHistory)
		if _, err := uc.CommitClient.CommitPastHistory(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.PastHistory = *payload
	case constvars.StepSleepHabits:
		if request.SleepHabits == nil {
			return missingPayload(request.Step)
		}
		payload := toModelSleepHabits(request.SleepHabits)
		if _, err := uc.CommitClient.CommitSleepHabits(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.SleepHabits = *payload
	case constvars.StepEatingHabits:
		if request.EatingHabits == nil {
			return missingPayload(request.Step)
		}
		payload := toModelEatingHabits(request.EatingHabits)
		if _, err := uc.CommitClient.CommitEatingHabits(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.EatingHabits = *payload
	case constvars.StepDrinkingHabits:
		if request.DrinkingHabits == nil {
			return missingPayload(request.Step)
		}
		payload := toModelDrinkingHabits(request.DrinkingHabits)
		if _, err := uc.CommitClient.CommitDrinkingHabits(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.DrinkingHabits = *payload
	case constvars.StepSmokingHabits:
		if request.SmokingHabits == nil {
			return missingPayload(request.Step)
		}
		payload := toModelSmokingHabits(request.SmokingHabits)
		if _, err := uc.CommitClient.CommitSmokingHabits(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.SmokingHabits = *payload
	case constvars.StepHereditary:
		if request.Hereditary == nil {
			return missingPayload(request.Step)
		}
		payload := toModelHereditary(request.Hereditary)
		if _, err := uc.CommitClient.CommitHereditary(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.Hereditary = *payload
	case constvars.StepBowelBladder:
		if request.BowelBladder == nil {
			return missingPayload(request.Step)
		}
		payload := toModelBowelBladder(request.BowelBladder)
		if _, err := uc.CommitClient.CommitBowelBladder(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.BowelBladder = *payload
	case constvars.StepFitness:
		if request.Fitness == nil {
			return missingPayload(request.Step)
		}
		payload := toModelFitness(request.Fitness)
		if _, err := uc.CommitClient.CommitFitness(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.Fitness = *payload
	case constvars.StepMentalWellness:
		if request.MentalWellness == nil {
			return missingPayload(request.Step)
		}
		payload := toModelMentalWellness(request.MentalWellness)
		if _, err := uc.CommitClient.CommitMentalWellness(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.MentalWellness = *payload
	case constvars.StepEmployeeWellness:
		if request.EmployeeWellness == nil {
			return missingPayload(request.Step)
		}
		payload := toModelEmployeeWellness(request.EmployeeWellness)
		if _, err := uc.CommitClient.CommitEmployeeWellness(ctx, assessmentID, actorID, payload); err != nil {
			return err
		}
		draft.EmployeeWellness = *payload
	default:
		return exceptions.ErrStepOutOfOrder(fmt.Errorf("step %d is not a committable section", request.Step))
	}

	return nil
}

func missingPayload(step int) error {
	return exceptions.ErrInputValidation(fmt.Errorf("no payload provided for step %d", step))
}

func (uc *assessmentUsecase) loadDraft(ctx context.Context, assessmentID string) (*models.AssessmentDraft, error) {
	data, err := uc.RedisRepo.Get(ctx, fmt.Sprintf(constvars.RedisKeyDraftFormat, assessmentID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrDraftNotFound(fmt.Errorf("no draft cached for assessment %s", assessmentID))
	}

	draft := new(models.AssessmentDraft)
	err = json.Unmarshal([]byte(data), draft)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return draft, nil
}

// saveDraft failures are logged, not surfaced: the upstream record is the
// source of truth and resume rebuilds the draft from it.
func (uc *assessmentUsecase) saveDraft(ctx context.Context, draft *models.AssessmentDraft) {
	err := uc.RedisRepo.Set(ctx, fmt.Sprintf(constvars.RedisKeyDraftFormat, draft.AssessmentID), draft, draftTTL)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("assessmentUsecase.saveDraft error caching draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, draft.AssessmentID),
			zap.Error(err),
		)
	}
}

// publishCompletion is fire-and-forget; finishing the assessment never
// depends on the broker.
func (uc *assessmentUsecase) publishCompletion(ctx context.Context, draft *models.AssessmentDraft) {
	if uc.Publisher == nil {
		return
	}
	err := uc.Publisher.PublishCompletion(ctx, draft.AssessmentID, draft.Subject.EmployeeID)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("assessmentUsecase.publishCompletion error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, draft.AssessmentID),
			zap.Error(err),
		)
	}
}

func progressOf(draft *models.AssessmentDraft) *responses.AssessmentProgress {
	return &responses.AssessmentProgress{
		AssessmentID:         draft.AssessmentID,
		CurrentStep:          draft.CurrentStep,
		StepName:             steps.Name(draft.CurrentStep),
		LastAnsweredQuestion: draft.LastAnsweredQuestion,
		Complete:             draft.CurrentStep == constvars.StepComplete,
	}
}
