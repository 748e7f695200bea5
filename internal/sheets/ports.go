package sheets

import (
	"context"

	"ahorro/internal/core"
)

// Ports for outbound adapters.
type SavingWriter interface {
	Append(ctx context.Context, s core.Saving) (rowRef string, err error)
}
