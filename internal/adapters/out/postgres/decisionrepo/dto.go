// Package decisionrepo persists the decision audit trail. Every processed
// order leaves one row behind, keyed by the run that produced it.
package decisionrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/decision"
)

// DecisionDTO is the database row for one recorded decision.
type DecisionDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	RunID        uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber  string    `gorm:"index"`
	Outcome      string
	Service      string
	Notes        string
	Temperature  int
	ShipByOffset int
	Reason       string
	RecordedAt   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "decisions".
func (DecisionDTO) TableName() string {
	return "decisions"
}

func fromDomain(record decision.Record) DecisionDTO {
	return DecisionDTO{
		RunID:        record.RunID,
		OrderNumber:  record.OrderNumber,
		Outcome:      record.Outcome.String(),
		Service:      record.Service,
		Notes:        record.Notes,
		Temperature:  record.Temperature,
		ShipByOffset: record.ShipByOffset,
		Reason:       record.Reason,
		RecordedAt:   record.RecordedAt,
	}
}
