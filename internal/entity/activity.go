package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// NormalizeCategory folds an expense category to one spelling: words separated
// by single spaces, each capitalized and the rest lower case ("  fast FOOD" -> "Fast Food").
func NormalizeCategory(category string) string {
	words := strings.Fields(strings.ToLower(category))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"not null" json:"category"`
	Note      string    `json:"note"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

type Income struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Source    string    `gorm:"not null" json:"source"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Income) TableName() string {
	return "incomes"
}
