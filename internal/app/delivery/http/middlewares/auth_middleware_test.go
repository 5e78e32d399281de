package middlewares

import (
	"context"
	"hra-service/internal/app/config"
	"hra-service/internal/app/services/shared/ratelimiter"
	"hra-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedis struct {
	mu     sync.Mutex
	counts map[string]int
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeRedis) Get(ctx context.Context, key string) (string, error)    { return "", nil }
func (f *fakeRedis) Delete(ctx context.Context, key string) error           { return nil }
func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}
func (f *fakeRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	f.counts[key]++
	return f.counts[key], nil
}

func newTestMiddlewares(internalConfig *config.InternalConfig) *Middlewares {
	logger := zap.NewNop()
	return NewMiddlewares(logger, internalConfig, ratelimiter.NewResourceLimiter(&fakeRedis{}, logger))
}

func signTestToken(t *testing.T, secret, employeeID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"employee_id": employeeID,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"
	internalConfig := &config.InternalConfig{JWT: config.JWT{Secret: secret}}
	middlewares := newTestMiddlewares(internalConfig)

	t.Run("Valid Token Sets Subject", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, secret, "employee-42"))

		var capturedSubject string
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedSubject, _ = r.Context().Value(constvars.CONTEXT_SUBJECT_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "employee-42", capturedSubject)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token Signed With Wrong Secret", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, "other-secret", "employee-42"))

		rr := httptest.NewRecorder()
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(&config.InternalConfig{})

	t.Run("Generates Request ID When Absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/assessments", nil)

		var capturedID string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, capturedID)
		assert.Contains(t, capturedID, constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, capturedID, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")

		var capturedID string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-supplied-id", capturedID)
	})
}

func TestAdvanceRateLimit(t *testing.T) {
	internalConfig := &config.InternalConfig{
		RateLimit: config.RateLimit{
			AdvanceWindowDurationSec: 60,
			AdvanceMaxQuota:          2,
		},
	}
	middlewares := newTestMiddlewares(internalConfig)

	handler := middlewares.AdvanceRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Within Quota", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("POST", "/api/v1/assessments/a-1/advance", nil)
			req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SUBJECT_KEY, "employee-42"))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("Over Quota Returns Retry After", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments/a-1/advance", nil)
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SUBJECT_KEY, "employee-42"))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("Missing Subject", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments/a-1/advance", nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
