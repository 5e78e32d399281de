package assessments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/dto/requests"
	"hra-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := f.store[key]; exists {
		return false, nil
	}
	if err := f.Set(ctx, key, value, exp); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 1, nil
}

type fakeLocker struct {
	held bool
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if f.held {
		return false, "", nil
	}
	return true, "lock-value", nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

type fakeRecordClient struct {
	createErr     error
	markErr       error
	markedMarkers []int
	records       []models.AssessmentRecord
	listErr       error
}

func (f *fakeRecordClient) CreateGeneralDetails(ctx context.Context, subject *models.Subject, payload *models.GeneralDetails) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return "assessment-1", nil
}

func (f *fakeRecordClient) FindRecordByID(ctx context.Context, assessmentID string) (*models.AssessmentRecord, error) {
	return nil, nil
}

func (f *fakeRecordClient) ListRecordsByEmployee(ctx context.Context, employeeID, action string) ([]models.AssessmentRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeRecordClient) MarkQuestionAnswered(ctx context.Context, assessmentID string, question int) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markedMarkers = append(f.markedMarkers, question)
	return nil
}

func (f *fakeRecordClient) FetchGeneralDetails(ctx context.Context, assessmentID string) (*models.GeneralDetails, error) {
	return nil, nil
}

type fakeCommitClient struct {
	commitErr error
	committed []string
}

func (f *fakeCommitClient) record(section string) (string, error) {
	if f.commitErr != nil {
		return "", f.commitErr
	}
	f.committed = append(f.committed, section)
	return section + "-id", nil
}

func (f *fakeCommitClient) CommitBasicProfile(ctx context.Context, assessmentID, actorID string, payload *models.BasicProfile) (string, error) {
	return f.record(constvars.SectionBasicProfile)
}

func (f *fakeCommitClient) CommitPresentingIllness(ctx context.Context, assessmentID, actorID string, payload *models.PresentingIllness) (string, error) {
	return f.record(constvars.SectionPresentingIllness)
}

func (f *fakeCommitClient) CommitPastHistory(ctx context.Context, assessmentID, actorID string, payload *models.PastHistory) (string, error) {
	return f.record(constvars.SectionPastHistory)
}

func (f *fakeCommitClient) CommitSleepHabits(ctx context.Context, assessmentID, actorID string, payload *models.SleepHabits) (string, error) {
	return f.record(constvars.SectionSleepHabits)
}

func (f *fakeCommitClient) CommitEatingHabits(ctx context.Context, assessmentID, actorID string, payload *models.EatingHabits) (string, error) {
	return f.record(constvars.SectionEatingHabits)
}

func (f *fakeCommitClient) CommitDrinkingHabits(ctx context.Context, assessmentID, actorID string, payload *models.DrinkingHabits) (string, error) {
	return f.record(constvars.SectionDrinkingHabits)
}

func (f *fakeCommitClient) CommitSmokingHabits(ctx context.Context, assessmentID, actorID string, payload *models.SmokingHabits) (string, error) {
	return f.record(constvars.SectionSmokingHabits)
}

func (f *fakeCommitClient) CommitHereditary(ctx context.Context, assessmentID, actorID string, payload *models.Hereditary) (string, error) {
	return f.record(constvars.SectionHereditary)
}

func (f *fakeCommitClient) CommitBowelBladder(ctx context.Context, assessmentID, actorID string, payload *models.BowelBladder) (string, error) {
	return f.record(constvars.SectionBowelBladder)
}

func (f *fakeCommitClient) CommitFitness(ctx context.Context, assessmentID, actorID string, payload *models.Fitness) (string, error) {
	return f.record(constvars.SectionFitness)
}

func (f *fakeCommitClient) CommitMentalWellness(ctx context.Context, assessmentID, actorID string, payload *models.MentalWellness) (string, error) {
	return f.record(constvars.SectionMentalWellness)
}

func (f *fakeCommitClient) CommitEmployeeWellness(ctx context.Context, assessmentID, actorID string, payload *models.EmployeeWellness) (string, error) {
	return f.record(constvars.SectionEmployeeWellness)
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) PublishCompletion(ctx context.Context, assessmentID, employeeID string) error {
	f.published = append(f.published, assessmentID)
	return nil
}

func newTestUsecase(recordClient *fakeRecordClient, commitClient *fakeCommitClient, redis *fakeRedis, locker *fakeLocker, publisher *fakePublisher) *assessmentUsecase {
	return &assessmentUsecase{
		RecordClient: recordClient,
		CommitClient: commitClient,
		RedisRepo:    redis,
		Locker:       locker,
		Publisher:    publisher,
		Log:          zap.NewNop(),
	}
}

func seedDraft(t *testing.T, redis *fakeRedis, draft *models.AssessmentDraft) {
	t.Helper()
	err := redis.Set(context.Background(), fmt.Sprintf(constvars.RedisKeyDraftFormat, draft.AssessmentID), draft, time.Hour)
	assert.NoError(t, err)
}

func loadDraft(t *testing.T, redis *fakeRedis, assessmentID string) *models.AssessmentDraft {
	t.Helper()
	data := redis.store[fmt.Sprintf(constvars.RedisKeyDraftFormat, assessmentID)]
	assert.NotEmpty(t, data)
	draft := new(models.AssessmentDraft)
	assert.NoError(t, json.Unmarshal([]byte(data), draft))
	return draft
}

func beginRequest() *requests.BeginAssessment {
	return &requests.BeginAssessment{
		Subject: requests.Subject{
			SubjectID:    "subject-1",
			Name:         "Asha Rao",
			Gender:       "female",
			DateOfBirth:  "1990-04-12",
			RelationType: "self",
		},
		GeneralDetails: requests.GeneralDetails{Mood: "good"},
	}
}

func TestBegin(t *testing.T) {
	t.Run("Creates Record And Caches Draft", func(t *testing.T) {
		recordClient := &fakeRecordClient{}
		redis := newFakeRedis()
		uc := newTestUsecase(recordClient, &fakeCommitClient{}, redis, &fakeLocker{}, &fakePublisher{})

		progress, err := uc.Begin(context.Background(), "employee-1", beginRequest())

		assert.NoError(t, err)
		assert.Equal(t, "assessment-1", progress.AssessmentID)
		assert.Equal(t, constvars.StepBasicProfile, progress.CurrentStep)
		assert.Equal(t, constvars.SectionBasicProfile, progress.StepName)
		assert.Equal(t, constvars.StepGeneralDetails, progress.LastAnsweredQuestion)
		assert.Equal(t, []int{constvars.StepGeneralDetails}, recordClient.markedMarkers)

		draft := loadDraft(t, redis, "assessment-1")
		assert.Equal(t, "employee-1", draft.Subject.EmployeeID)
		assert.Equal(t, "good", draft.GeneralDetails.Mood)
	})

	t.Run("Marker Failure Surfaces", func(t *testing.T) {
		recordClient := &fakeRecordClient{markErr: exceptions.ErrMarkerUpdate(fmt.Errorf("upstream down"))}
		uc := newTestUsecase(recordClient, &fakeCommitClient{}, newFakeRedis(), &fakeLocker{}, &fakePublisher{})

		progress, err := uc.Begin(context.Background(), "employee-1", beginRequest())

		assert.Error(t, err)
		assert.Nil(t, progress)
	})
}

func TestAdvance(t *testing.T) {
	baseDraft := func() *models.AssessmentDraft {
		return &models.AssessmentDraft{
			AssessmentID:         "assessment-1",
			Subject:              models.Subject{SubjectID: "subject-1", EmployeeID: "employee-1"},
			CurrentStep:          constvars.StepBasicProfile,
			LastAnsweredQuestion: constvars.StepGeneralDetails,
		}
	}
	profilePayload := &requests.BasicProfile{HeightCM: 172, WeightKG: 70, MaritalStatus: "single"}

	t.Run("Commits Then Marks Then Moves Forward", func(t *testing.T) {
		recordClient := &fakeRecordClient{}
		commitClient := &fakeCommitClient{}
		redis := newFakeRedis()
		uc := newTestUsecase(recordClient, commitClient, redis, &fakeLocker{}, &fakePublisher{})
		seedDraft(t, redis, baseDraft())

		progress, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step:         constvars.StepBasicProfile,
			BasicProfile: profilePayload,
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{constvars.SectionBasicProfile}, commitClient.committed)
		assert.Equal(t, []int{constvars.StepBasicProfile}, recordClient.markedMarkers)
		assert.Equal(t, constvars.StepPresentingIllness, progress.CurrentStep)
		assert.Equal(t, constvars.StepBasicProfile, progress.LastAnsweredQuestion)
		assert.False(t, progress.Complete)

		draft := loadDraft(t, redis, "assessment-1")
		assert.Equal(t, 172.0, draft.BasicProfile.HeightCM)
	})

	t.Run("Out Of Order Step Rejected Before Any Network Call", func(t *testing.T) {
		commitClient := &fakeCommitClient{}
		redis := newFakeRedis()
		uc := newTestUsecase(&fakeRecordClient{}, commitClient, redis, &fakeLocker{}, &fakePublisher{})
		seedDraft(t, redis, baseDraft())

		_, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step:        constvars.StepSleepHabits,
			SleepHabits: &requests.SleepHabits{HoursOfSleep: "lessThan7"},
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientStepOutOfOrder, customErr.ClientMessage)
		assert.Empty(t, commitClient.committed)
	})

	t.Run("Missing Payload Rejected Before Any Network Call", func(t *testing.T) {
		commitClient := &fakeCommitClient{}
		recordClient := &fakeRecordClient{}
		redis := newFakeRedis()
		uc := newTestUsecase(recordClient, commitClient, redis, &fakeLocker{}, &fakePublisher{})
		seedDraft(t, redis, baseDraft())

		_, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step: constvars.StepBasicProfile,
		})

		assert.Error(t, err)
		assert.Empty(t, commitClient.committed)
		assert.Empty(t, recordClient.markedMarkers)
	})

	t.Run("Commit Failure Leaves Draft On Current Step", func(t *testing.T) {
		commitClient := &fakeCommitClient{commitErr: exceptions.ErrSectionCommit(fmt.Errorf("upstream down"), constvars.SectionBasicProfile)}
		recordClient := &fakeRecordClient{}
		redis := newFakeRedis()
		uc := newTestUsecase(recordClient, commitClient, redis, &fakeLocker{}, &fakePublisher{})
		seedDraft(t, redis, baseDraft())

		_, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step:         constvars.StepBasicProfile,
			BasicProfile: profilePayload,
		})

		assert.Error(t, err)
		assert.Empty(t, recordClient.markedMarkers, "marker must not advance when the commit failed")

		draft := loadDraft(t, redis, "assessment-1")
		assert.Equal(t, constvars.StepBasicProfile, draft.CurrentStep)
		assert.Equal(t, constvars.StepGeneralDetails, draft.LastAnsweredQuestion)
	})

	t.Run("Marker Failure Leaves Draft On Current Step", func(t *testing.T) {
		recordClient := &fakeRecordClient{markErr: exceptions.ErrMarkerUpdate(fmt.Errorf("upstream down"))}
		redis := newFakeRedis()
		uc := newTestUsecase(recordClient, &fakeCommitClient{}, redis, &fakeLocker{}, &fakePublisher{})
		seedDraft(t, redis, baseDraft())

		_, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step:         constvars.StepBasicProfile,
			BasicProfile: profilePayload,
		})

		assert.Error(t, err)
		draft := loadDraft(t, redis, "assessment-1")
		assert.Equal(t, constvars.StepBasicProfile, draft.CurrentStep)
		assert.Equal(t, constvars.StepGeneralDetails, draft.LastAnsweredQuestion)
	})

	t.Run("Concurrent Advance Rejected", func(t *testing.T) {
		commitClient := &fakeCommitClient{}
		redis := newFakeRedis()
		uc := newTestUsecase(&fakeRecordClient{}, commitClient, redis, &fakeLocker{held: true}, &fakePublisher{})
		seedDraft(t, redis, baseDraft())

		_, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step:         constvars.StepBasicProfile,
			BasicProfile: profilePayload,
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAdvanceInProgress, customErr.ClientMessage)
		assert.Empty(t, commitClient.committed)
	})

	t.Run("Recommitting Earlier Section Never Rewinds Marker", func(t *testing.T) {
		recordClient := &fakeRecordClient{}
		redis := newFakeRedis()
		uc := newTestUsecase(recordClient, &fakeCommitClient{}, redis, &fakeLocker{}, &fakePublisher{})

		draft := baseDraft()
		draft.CurrentStep = constvars.StepPresentingIllness
		draft.LastAnsweredQuestion = constvars.StepHereditary
		seedDraft(t, redis, draft)

		progress, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step: constvars.StepPresentingIllness,
			PresentingIllness: &requests.PresentingIllness{
				Illnesses:       []string{"none"},
				UnderMedication: "no",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, []int{constvars.StepHereditary}, recordClient.markedMarkers, "marker reported after every commit, at its max value")
		assert.Equal(t, constvars.StepHereditary, progress.LastAnsweredQuestion)
		assert.Equal(t, constvars.StepPastHistory, progress.CurrentStep)
	})

	t.Run("Final Section Completes And Publishes", func(t *testing.T) {
		publisher := &fakePublisher{}
		redis := newFakeRedis()
		uc := newTestUsecase(&fakeRecordClient{}, &fakeCommitClient{}, redis, &fakeLocker{}, publisher)

		draft := baseDraft()
		draft.CurrentStep = constvars.StepEmployeeWellness
		draft.LastAnsweredQuestion = constvars.StepMentalWellness
		seedDraft(t, redis, draft)

		progress, err := uc.Advance(context.Background(), "assessment-1", &requests.AdvanceStep{
			Step: constvars.StepEmployeeWellness,
			EmployeeWellness: &requests.EmployeeWellness{
				WorkStressLevel: "moderate",
				WorkLifeBalance: "yes",
				WorkHoursPerDay: "eightToTen",
			},
		})

		assert.NoError(t, err)
		assert.True(t, progress.Complete)
		assert.Equal(t, constvars.StepComplete, progress.CurrentStep)
		assert.Equal(t, []string{"assessment-1"}, publisher.published)

		stored := loadDraft(t, redis, "assessment-1")
		assert.NotNil(t, stored.SubmittedAt)
	})

	t.Run("Unknown Draft Requires Resume", func(t *testing.T) {
		uc := newTestUsecase(&fakeRecordClient{}, &fakeCommitClient{}, newFakeRedis(), &fakeLocker{}, &fakePublisher{})

		_, err := uc.Advance(context.Background(), "assessment-9", &requests.AdvanceStep{
			Step:         constvars.StepBasicProfile,
			BasicProfile: profilePayload,
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRetreat(t *testing.T) {
	redis := newFakeRedis()
	uc := newTestUsecase(&fakeRecordClient{}, &fakeCommitClient{}, redis, &fakeLocker{}, &fakePublisher{})

	draft := &models.AssessmentDraft{
		AssessmentID:         "assessment-1",
		Subject:              models.Subject{SubjectID: "subject-1"},
		CurrentStep:          constvars.StepSleepHabits,
		LastAnsweredQuestion: constvars.StepSleepHabits,
	}
	seedDraft(t, redis, draft)

	progress, err := uc.Retreat(context.Background(), "assessment-1")

	assert.NoError(t, err)
	assert.Equal(t, constvars.StepPastHistory, progress.CurrentStep)
	assert.Equal(t, constvars.StepSleepHabits, progress.LastAnsweredQuestion, "retreat never touches the marker")
}

func TestListRecords(t *testing.T) {
	recordClient := &fakeRecordClient{
		records: []models.AssessmentRecord{
			{
				AssessmentID:         "assessment-1",
				Subject:              models.Subject{Name: "Asha Rao", RelationType: "self"},
				LastAnsweredQuestion: 5,
				Action:               constvars.RecordActionResume,
			},
			{
				AssessmentID:         "assessment-2",
				Subject:              models.Subject{Name: "Ravi Rao", RelationType: "spouse"},
				LastAnsweredQuestion: 13,
				Action:               constvars.RecordActionView,
			},
		},
	}
	uc := newTestUsecase(recordClient, &fakeCommitClient{}, newFakeRedis(), &fakeLocker{}, &fakePublisher{})

	records, err := uc.ListRecords(context.Background(), "employee-1", "")

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, constvars.RecordActionResume, records[0].Action)
	assert.Equal(t, "spouse", records[1].RelationType)
}
