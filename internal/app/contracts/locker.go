package contracts

import (
	"context"
	"time"
)

// LockerService guards re-entrant operations; the sequencer takes a lock per
// assessment before an advance so only one persistence request is ever in
// flight for the same assessment.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
