package repository

import (
	"context"
	"time"

	"frugal-friend/internal/entity"

	"gorm.io/gorm"
)

// NewActivityRepository creates a new GORM-based activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

type activityRepository struct {
	db *gorm.DB
}

// ActivityDates returns the timestamps of all expenses and incomes of a user.
func (r *activityRepository) ActivityDates(ctx context.Context, userID uint) ([]time.Time, error) {
	var rows []struct {
		Date time.Time
	}
	err := r.db.WithContext(ctx).Raw(
		`SELECT date FROM expenses WHERE owner_id = ?
		 UNION ALL
		 SELECT date FROM incomes WHERE owner_id = ?`, userID, userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}
	return dates, nil
}

// DistinctExpenseCategories counts categories case-insensitively.
func (r *activityRepository) DistinctExpenseCategories(ctx context.Context, userID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(DISTINCT LOWER(TRIM(category))) FROM expenses WHERE owner_id = ?`, userID,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// NewExpenseRepository creates a new GORM-based expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

type expenseRepository struct {
	db *gorm.DB
}

// Create stores a new expense.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// FindByUser retrieves the expenses of a user, newest first.
func (r *expenseRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Expense, error) {
	var expenses []entity.Expense
	if err := r.db.WithContext(ctx).Where("owner_id = ?", userID).Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// NewIncomeRepository creates a new GORM-based income repository.
func NewIncomeRepository(db *gorm.DB) IncomeRepository {
	return &incomeRepository{db: db}
}

type incomeRepository struct {
	db *gorm.DB
}

// Create stores a new income.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	return r.db.WithContext(ctx).Create(income).Error
}

// FindByUser retrieves the incomes of a user, newest first.
func (r *incomeRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Income, error) {
	var incomes []entity.Income
	if err := r.db.WithContext(ctx).Where("owner_id = ?", userID).Order("date DESC, id DESC").Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}
