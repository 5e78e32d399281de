package reports

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/dto/responses"
	"hra-service/internal/pkg/exceptions"
	"hra-service/internal/pkg/steps"

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

func (f *fakeRedis) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}
func (f *fakeRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 1, nil
}

// fakeResolver stands in for the resume resolver's upstream rebuild.
type fakeResolver struct {
	draft *models.AssessmentDraft
	err   error
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, assessmentID string) (*responses.ResumeResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &responses.ResumeResult{
		ResumeStep: steps.ResumeTarget(f.draft.LastAnsweredQuestion),
		StepName:   steps.Name(steps.ResumeTarget(f.draft.LastAnsweredQuestion)),
		Draft:      f.draft,
	}, nil
}

type fakeStorage struct {
	storedObjects []string
	storedBytes   int64
}

func (f *fakeStorage) CreateObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	f.storedObjects = append(f.storedObjects, objectName)
	f.storedBytes = objectSize
	return nil
}

func (f *fakeStorage) GetPresignedURL(ctx context.Context, bucketName, objectName string) (string, error) {
	return "https://storage.example.com/" + bucketName + "/" + objectName, nil
}

func newTestUsecase(resolver *fakeResolver, redis *fakeRedis, storage *fakeStorage) *reportUsecase {
	return &reportUsecase{
		Resolver:  resolver,
		RedisRepo: redis,
		Renderer:  NewHTMLRenderer(),
		Storage:   storage,
		Bucket:    "hra-reports",
		Log:       zap.NewNop(),
	}
}

func seedDraft(t *testing.T, redis *fakeRedis, draft *models.AssessmentDraft) {
	t.Helper()
	err := redis.Set(context.Background(), fmt.Sprintf(constvars.RedisKeyDraftFormat, draft.AssessmentID), draft, time.Hour)
	assert.NoError(t, err)
}

func sampleDraft() *models.AssessmentDraft {
	return &models.AssessmentDraft{
		AssessmentID:         "assessment-1",
		Subject:              models.Subject{Name: "Asha Rao", RelationType: "self"},
		CurrentStep:          constvars.StepEatingHabits,
		LastAnsweredQuestion: constvars.StepSleepHabits,
		GeneralDetails:       models.GeneralDetails{Mood: "good"},
		BasicProfile:         models.BasicProfile{HeightCM: 172, WeightKG: 70, BloodGroup: "O+", MaritalStatus: "married"},
		PresentingIllness:    models.PresentingIllness{Illnesses: []string{"diabetes"}, UnderMedication: "yes"},
		SleepHabits:          models.SleepHabits{HoursOfSleep: "lessThan7"},
	}
}

func TestAggregate(t *testing.T) {
	t.Run("Folds Draft Into Full Document", func(t *testing.T) {
		document := aggregate(sampleDraft())

		assert.Equal(t, "assessment-1", document.AssessmentID)
		assert.Equal(t, "good", document.GeneralDetails.Mood)
		assert.Equal(t, 172.0, document.BasicProfile.HeightCM)
		assert.Equal(t, "lessThan7", document.SleepHabits.HoursOfSleep)
		assert.Equal(t, models.EatingHabits{}, document.EatingHabits, "unanswered sections keep their zero value")
		assert.Equal(t, models.EmployeeWellness{}, document.EmployeeWellness)
		assert.NotEmpty(t, document.GeneratedAt)
		assert.Empty(t, document.SubmittedAt)
	})

	t.Run("Stamps Submission Time When Present", func(t *testing.T) {
		draft := sampleDraft()
		submittedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		draft.SubmittedAt = &submittedAt

		document := aggregate(draft)

		assert.Equal(t, "2026-01-15T10:00:00Z", document.SubmittedAt)
	})
}

func TestCompile(t *testing.T) {
	t.Run("Cached Draft Wins Even When Upstream Is Down", func(t *testing.T) {
		resolver := &fakeResolver{err: exceptions.ErrResumeMarkerFetch(fmt.Errorf("upstream down"))}
		redis := newFakeRedis()
		seedDraft(t, redis, sampleDraft())
		uc := newTestUsecase(resolver, redis, &fakeStorage{})

		document, err := uc.Compile(context.Background(), "assessment-1")

		assert.NoError(t, err)
		assert.Equal(t, "lessThan7", document.SleepHabits.HoursOfSleep, "answers held in the cached draft never get blanked")
		assert.Equal(t, []string{"diabetes"}, document.PresentingIllness.Illnesses)
		assert.Zero(t, resolver.calls, "no upstream calls while the draft is cached")
	})

	t.Run("Expired Cache Falls Back To Resume Rehydration", func(t *testing.T) {
		resolver := &fakeResolver{draft: sampleDraft()}
		uc := newTestUsecase(resolver, newFakeRedis(), &fakeStorage{})

		document, err := uc.Compile(context.Background(), "assessment-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, resolver.calls)
		assert.Equal(t, "good", document.GeneralDetails.Mood)
		assert.Equal(t, models.Fitness{}, document.Fitness)
	})

	t.Run("Rebuild Failure Is Fatal When Nothing Is Cached", func(t *testing.T) {
		resolver := &fakeResolver{err: exceptions.ErrResumeMarkerFetch(fmt.Errorf("upstream down"))}
		uc := newTestUsecase(resolver, newFakeRedis(), &fakeStorage{})

		document, err := uc.Compile(context.Background(), "assessment-1")

		assert.Error(t, err)
		assert.Nil(t, document)
	})
}

func TestRender(t *testing.T) {
	t.Run("Download Carries Content", func(t *testing.T) {
		redis := newFakeRedis()
		seedDraft(t, redis, sampleDraft())
		uc := newTestUsecase(&fakeResolver{}, redis, &fakeStorage{})

		rendered, err := uc.Render(context.Background(), "assessment-1", "download")

		assert.NoError(t, err)
		assert.NotEmpty(t, rendered.Content)
		assert.Equal(t, int64(len(rendered.Content)), rendered.SizeBytes)
		assert.Contains(t, rendered.FileName, "hra-report")
		assert.Empty(t, rendered.Bucket)

		html := string(rendered.Content)
		assert.Contains(t, html, "Asha Rao")
		assert.True(t, strings.Contains(html, "Employee Wellness"), "every section block is rendered")
	})

	t.Run("Store Uploads And Presigns", func(t *testing.T) {
		redis := newFakeRedis()
		seedDraft(t, redis, sampleDraft())
		storage := &fakeStorage{}
		uc := newTestUsecase(&fakeResolver{}, redis, storage)

		rendered, err := uc.Render(context.Background(), "assessment-1", "store")

		assert.NoError(t, err)
		assert.Len(t, storage.storedObjects, 1)
		assert.Equal(t, "hra-reports", rendered.Bucket)
		assert.Equal(t, storage.storedObjects[0], rendered.ObjectName)
		assert.Contains(t, rendered.URL, "storage.example.com")
		assert.Equal(t, storage.storedBytes, rendered.SizeBytes)
	})
}

func TestHTMLRenderer(t *testing.T) {
	renderer := NewHTMLRenderer()

	document := &models.ReportDocument{
		AssessmentID: "assessment-1",
		Subject:      models.Subject{Name: "Asha Rao", RelationType: "self"},
		GeneratedAt:  "2026-01-15T10:00:00Z",
		BasicProfile: models.BasicProfile{HeightCM: 172, BloodGroup: "O+"},
		Hereditary:   models.Hereditary{FamilyConditions: []string{"diabetes", "hypertension"}},
	}

	content, contentType, err := renderer.Render(context.Background(), document)

	assert.NoError(t, err)
	assert.Equal(t, constvars.MIMETextHTML, contentType)

	html := string(content)
	assert.Contains(t, html, "assessment-1")
	assert.Contains(t, html, "O+")
	assert.Contains(t, html, "diabetes, hypertension")
	assert.Contains(t, html, "Bowel and Bladder", "empty sections still render their block")
}
