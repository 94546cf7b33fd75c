package repository

import (
	"context"
	"errors"
	"fmt"

	"frugal-friend/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewPositionRepository creates a new GORM-based position repository.
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

type positionRepository struct {
	db *gorm.DB
}

// FindByUserAndSymbol retrieves one position.
func (r *positionRepository) FindByUserAndSymbol(ctx context.Context, userID uint, symbol string) (*entity.Position, error) {
	var pos entity.Position
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&pos).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

// FindByUser retrieves every position of a user, including fully sold ones.
func (r *positionRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Position, error) {
	var positions []entity.Position
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("symbol").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// Save inserts or conditionally updates a position.
func (r *positionRepository) Save(ctx context.Context, pos *entity.Position) error {
	if pos.ID == 0 {
		pos.Version = 1
		res := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(pos)
		if res.Error != nil {
			return fmt.Errorf("failed to create position: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			pos.Version = 0
			return ErrVersionConflict
		}
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&entity.Position{}).
		Where("id = ? AND version = ?", pos.ID, pos.Version).
		Updates(map[string]interface{}{
			"shares":       pos.Shares,
			"average_cost": pos.AverageCost,
			"version":      gorm.Expr("version + 1"),
			"updated_at":   gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update position: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	pos.Version++
	return nil
}
