package entity

import (
	"time"

	"gorm.io/datatypes"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type SimulatorSession struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	UserID              uint           `gorm:"not null;index" json:"user_id"`
	StartAmount         float64        `gorm:"not null" json:"start_amount"`
	MonthlyContribution float64        `gorm:"not null" json:"monthly_contribution"`
	Years               int            `gorm:"not null" json:"years"`
	RiskLevel           RiskLevel      `gorm:"type:varchar(10);not null" json:"risk_level"`
	CourseSummary       string         `gorm:"type:text;not null" json:"course_summary"`
	ProjectedValue      float64        `gorm:"not null" json:"projected_value"`
	Result              datatypes.JSON `json:"result"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (SimulatorSession) TableName() string {
	return "simulator_sessions"
}
