package sections

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestCommitBasicProfile(t *testing.T) {
	t.Run("Commits And Returns Identifier", func(t *testing.T) {
		var received map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.PathBasicProfile, r.URL.Path)

			err := json.NewDecoder(r.Body).Decode(&received)
			assert.NoError(t, err)

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"basicProfileId":"bp-001","message":"saved"}`))
		}))
		defer server.Close()

		client := NewSectionCommitClient(server.URL)
		id, err := client.CommitBasicProfile(context.Background(), "assessment-1", "subject-1", &models.BasicProfile{
			HeightCM:      172,
			WeightKG:      70,
			BloodGroup:    "O+",
			MaritalStatus: "married",
		})

		assert.NoError(t, err)
		assert.Equal(t, "bp-001", id)
		assert.Equal(t, "assessment-1", received["assessmentId"])
		assert.Equal(t, "subject-1", received["actorId"])
		assert.Equal(t, "Married", received["maritalStatus"], "enum should be sent in wire vocabulary")
	})

	t.Run("Upstream Failure Surfaces As Commit Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"database unavailable"}`))
		}))
		defer server.Close()

		client := NewSectionCommitClient(server.URL)
		id, err := client.CommitBasicProfile(context.Background(), "assessment-1", "subject-1", &models.BasicProfile{})

		assert.Error(t, err)
		assert.Empty(t, id)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSectionNotSaved, customErr.ClientMessage)
		assert.Contains(t, customErr.DevMessage, "database unavailable")
	})
}

func TestCommitSmokingHabits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var received map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		assert.Equal(t, "No", received["smokes"], "yes/no answers travel in wire vocabulary")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"smokingHabitsId":"sh-042","message":"saved"}`))
	}))
	defer server.Close()

	client := NewSectionCommitClient(server.URL)
	id, err := client.CommitSmokingHabits(context.Background(), "assessment-1", "subject-1", &models.SmokingHabits{
		Smokes: "no",
	})

	assert.NoError(t, err)
	assert.Equal(t, "sh-042", id)
}

func TestFetchSleepHabits(t *testing.T) {
	t.Run("Rehydrates Saved Section", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.PathSleepHabits+"/assessment-1", r.URL.Path)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{
				"assessmentId": "assessment-1",
				"hoursOfSleep": "Less than 7 hours",
				"troubleFallingAsleep": "Yes",
				"snoring": "No",
				"wakeRested": "No"
			}`))
		}))
		defer server.Close()

		client := NewSectionFetchClient(server.URL)
		section, err := client.FetchSleepHabits(context.Background(), "assessment-1")

		assert.NoError(t, err)
		assert.NotNil(t, section)
		assert.Equal(t, "lessThan7", section.HoursOfSleep, "wire vocabulary should map back to local values")
		assert.Equal(t, "yes", section.TroubleFallingAsleep)
		assert.Equal(t, "no", section.Snoring)
	})

	t.Run("Missing Section Is Not An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewSectionFetchClient(server.URL)
		section, err := client.FetchSleepHabits(context.Background(), "assessment-1")

		assert.NoError(t, err)
		assert.Nil(t, section)
	})

	t.Run("Upstream Failure Surfaces As Fetch Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewSectionFetchClient(server.URL)
		section, err := client.FetchSleepHabits(context.Background(), "assessment-1")

		assert.Error(t, err)
		assert.Nil(t, section)
	})
}
