package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRecentDecisionsQueryHandler retrieves the decision audit trail from the
// database, newest records first.
type GetRecentDecisionsQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentDecisionsQueryHandler creates a handler for decision queries.
// Requires a GORM database connection for query execution.
func NewGetRecentDecisionsQueryHandler(db *gorm.DB) GetRecentDecisionsQueryHandler {
	return GetRecentDecisionsQueryHandler{db: db}
}

// Handle executes the query and returns up to Limit records ordered by
// recording time descending.
func (h GetRecentDecisionsQueryHandler) Handle(
	ctx context.Context,
	query GetRecentDecisionsQuery,
) ([]GetRecentDecisionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	decisions := make([]GetRecentDecisionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			run_id,
			order_number,
			outcome,
			service,
			notes,
			temperature,
			ship_by_offset,
			reason,
			recorded_at
		FROM decisions
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRecentDecisionsQueryResponse

		err = rows.Scan(
			&resp.RunID,
			&resp.OrderNumber,
			&resp.Outcome,
			&resp.Service,
			&resp.Notes,
			&resp.Temperature,
			&resp.ShipByOffset,
			&resp.Reason,
			&resp.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		decisions = append(decisions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return decisions, nil
}
