package contracts

import (
	"context"
	"hra-service/internal/app/models"
)

// DocumentRenderer turns a compiled report document into a printable
// artifact. The renderer always receives all thirteen section slots; empty
// sections are rendered as blank blocks, never skipped.
type DocumentRenderer interface {
	Render(ctx context.Context, document *models.ReportDocument) (content []byte, contentType string, err error)
}
