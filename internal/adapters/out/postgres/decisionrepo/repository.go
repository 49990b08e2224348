package decisionrepo

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/decision"
)

// GormDecisionRepository implements ports.DecisionLog using GORM.
type GormDecisionRepository struct {
	db *gorm.DB
}

// NewGormDecisionRepository creates a new GORM decision repository.
func NewGormDecisionRepository(db *gorm.DB) *GormDecisionRepository {
	return &GormDecisionRepository{db: db}
}

// Append inserts one decision record.
func (r *GormDecisionRepository) Append(ctx context.Context, record decision.Record) error {
	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
