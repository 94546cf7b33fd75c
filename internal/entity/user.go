package entity

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Email               string         `gorm:"index;not null;default:''" json:"email"`
	FixedBudget         float64        `gorm:"not null;default:0" json:"fixed_budget"`
	FinancialConfidence int            `gorm:"not null;default:5" json:"financial_confidence"`
	RiskTolerance       string         `json:"risk_tolerance"`
	LessonProgress      int            `gorm:"not null;default:0" json:"lesson_progress"`
	Achievements        pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"achievements"`
	TelegramChatID      *int64         `json:"telegram_chat_id,omitempty"`
	Goals               []Goal         `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// HasAchievement reports whether key was already granted.
func (u *User) HasAchievement(key string) bool {
	for _, a := range u.Achievements {
		if a == key {
			return true
		}
	}
	return false
}

type Goal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Name          string    `gorm:"not null" json:"name"`
	TargetAmount  float64   `gorm:"not null" json:"target_amount"`
	CurrentAmount float64   `gorm:"not null;default:0" json:"current_amount"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Goal) TableName() string {
	return "goals"
}
