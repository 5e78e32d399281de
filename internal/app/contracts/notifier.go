package contracts

import "context"

// CompletionPublisher announces finished assessments to downstream consumers
// (report pre-warmers, wellness dashboards). Publish failures are logged and
// swallowed by callers; completion of the assessment itself never depends on
// the broker being up.
type CompletionPublisher interface {
	PublishCompletion(ctx context.Context, assessmentID, employeeID string) error
}
