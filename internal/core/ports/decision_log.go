package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/decision"
)

// DecisionLog persists the audit record of each processed order. Append
// failures are observational only and never fail the pipeline.
type DecisionLog interface {
	Append(ctx context.Context, record decision.Record) error
}
