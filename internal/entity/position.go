package entity

import "time"

// Position is a user's paper-trading holding in one symbol. Version increases
// on every save and guards against lost updates.
type Position struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_positions_user_symbol" json:"user_id"`
	Symbol      string    `gorm:"not null;uniqueIndex:idx_positions_user_symbol" json:"symbol"`
	Shares      float64   `gorm:"not null;default:0" json:"shares"`
	AverageCost float64   `gorm:"not null;default:0" json:"average_cost"`
	Version     int64     `gorm:"not null;default:0" json:"version"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Position) TableName() string {
	return "positions"
}
