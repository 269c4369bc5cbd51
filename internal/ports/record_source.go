package ports

import (
	"context"

	"github.com/bnema/logdata/internal/domain"
)

// RecordSource yields decoded session events in log order. Next returns io.EOF
// once the log is exhausted.
type RecordSource interface {
	Next(ctx context.Context) (domain.SessionEvent, error)
}
