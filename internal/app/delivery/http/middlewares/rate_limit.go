package middlewares

import (
	"fmt"
	"hra-service/internal/app/services/shared/ratelimiter"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/exceptions"
	"hra-service/internal/pkg/utils"
	"net/http"
)

const advanceLimiterGroup = "hra-advance"

// AdvanceRateLimit throttles section saves per employee with a fixed window.
// It runs after Authenticate so the subject is already in the context.
func (m *Middlewares) AdvanceRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeID := utils.GetSubjectID(r.Context())
		if employeeID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		out, err := m.Limiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      employeeID,
			LimiterGroupName:  advanceLimiterGroup,
			WindowDurationSec: m.InternalConfig.RateLimit.AdvanceWindowDurationSec,
			MaxQuota:          m.InternalConfig.RateLimit.AdvanceMaxQuota,
		})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if !out.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, fmt.Sprintf("%d", out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
