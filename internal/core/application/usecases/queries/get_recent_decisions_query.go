// Package queries contains read-only operations over the decision audit log.
// Queries bypass the domain model and read the database directly.
package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

const (
	defaultDecisionLimit = 50
	maxDecisionLimit     = 500
)

var (
	ErrGetRecentDecisionsQueryIsNotConstructed = errors.New(
		"GetRecentDecisionsQuery must be created via NewGetRecentDecisionsQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be between 1 and 500")
)

// GetRecentDecisionsQuery retrieves the latest decision records, newest
// first. A zero limit selects the default page size.
type GetRecentDecisionsQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentDecisionsQuery creates a query for the latest decisions.
// Validates that the limit, when given, does not exceed the maximum page size.
func NewGetRecentDecisionsQuery(limit int) (GetRecentDecisionsQuery, error) {
	query := GetRecentDecisionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetRecentDecisionsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecentDecisionsQueryIsNotConstructed if validation fails.
func (q GetRecentDecisionsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentDecisionsQueryIsNotConstructed)
}

// Limit returns the number of records to fetch.
func (q GetRecentDecisionsQuery) Limit() int {
	return q.limit
}

func (q *GetRecentDecisionsQuery) setLimit(limit int) error {
	if limit < 0 || limit > maxDecisionLimit {
		return ErrLimitIsInvalid
	}
	if limit == 0 {
		limit = defaultDecisionLimit
	}

	q.limit = limit

	return nil
}

// GetRecentDecisionsQueryResponse is one row of the decision audit trail.
type GetRecentDecisionsQueryResponse struct {
	RunID        uuid.UUID
	OrderNumber  string
	Outcome      string
	Service      string
	Notes        string
	Temperature  int
	ShipByOffset int
	Reason       string
	RecordedAt   time.Time
}
