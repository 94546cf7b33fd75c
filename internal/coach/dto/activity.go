package dto

import "time"

// CreateExpenseRequest logs an expense. Date defaults to now.
type CreateExpenseRequest struct {
	Amount   float64    `json:"amount" example:"12.5"`
	Category string     `json:"category" example:"Food"`
	Note     string     `json:"note,omitempty"`
	Date     *time.Time `json:"date,omitempty" swaggertype:"string" format:"date-time"`
}

// ExpenseResponse is a logged expense.
type ExpenseResponse struct {
	ID       uint      `json:"id"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Note     string    `json:"note,omitempty"`
	Date     time.Time `json:"date"`
}

// CreateIncomeRequest logs an income. Date defaults to now.
type CreateIncomeRequest struct {
	Amount float64    `json:"amount" example:"1500"`
	Source string     `json:"source" example:"Salary"`
	Date   *time.Time `json:"date,omitempty" swaggertype:"string" format:"date-time"`
}

// IncomeResponse is a logged income.
type IncomeResponse struct {
	ID     uint      `json:"id"`
	Amount float64   `json:"amount"`
	Source string    `json:"source"`
	Date   time.Time `json:"date"`
}

// StreakResponse is the current logging streak.
type StreakResponse struct {
	StreakDays int    `json:"streak_days"`
	Today      string `json:"today"`
}
