// Package decision models the audit trail of the decision engine: one record
// per processed order capturing the shipping plan that was issued and how the
// pipeline concluded. Records are write-once observational output; the
// pipeline never reads them back to make decisions, so the core stays
// stateless between runs.
package decision

import (
	"time"

	"github.com/google/uuid"
)

// Record is the persisted outcome of processing one order.
type Record struct {
	// RunID correlates all records created by one processing run.
	RunID uuid.UUID

	// OrderNumber is the human-readable order number after any replacement
	// renaming (i.e. with the "-R" suffix when one was applied).
	OrderNumber string

	Outcome Outcome

	// Service is the wire identifier of the selected service.
	Service string

	Notes        string
	Temperature  int
	ShipByOffset int

	// Reason carries the failure or skip reason; empty on success.
	Reason string

	RecordedAt time.Time
}
