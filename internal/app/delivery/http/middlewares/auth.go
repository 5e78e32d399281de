package middlewares

import (
	"context"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/exceptions"
	"hra-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate verifies the portal-issued bearer token and stores the
// employee subject in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		employeeID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SUBJECT_KEY, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
