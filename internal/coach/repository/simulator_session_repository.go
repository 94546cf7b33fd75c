package repository

import (
	"context"
	"database/sql"

	"frugal-friend/internal/entity"

	"gorm.io/gorm"
)

// NewSimulatorSessionRepository creates a new GORM-based simulator session repository.
func NewSimulatorSessionRepository(db *gorm.DB) SimulatorSessionRepository {
	return &simulatorSessionRepository{db: db}
}

type simulatorSessionRepository struct {
	db *gorm.DB
}

// Create stores a simulator run.
func (r *simulatorSessionRepository) Create(ctx context.Context, session *entity.SimulatorSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// MaxMonthlyContribution returns the largest monthly contribution of the user's saved runs.
func (r *simulatorSessionRepository) MaxMonthlyContribution(ctx context.Context, userID uint) (float64, bool, error) {
	var maxContribution sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&entity.SimulatorSession{}).
		Select("MAX(monthly_contribution)").
		Where("user_id = ?", userID).
		Scan(&maxContribution).Error
	if err != nil {
		return 0, false, err
	}
	return maxContribution.Float64, maxContribution.Valid, nil
}
