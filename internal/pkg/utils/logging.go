package utils

import (
	"context"

	"hra-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSubjectID(ctx context.Context) string {
	if subjectID, ok := ctx.Value(constvars.CONTEXT_SUBJECT_KEY).(string); ok {
		return subjectID
	}
	return ""
}
