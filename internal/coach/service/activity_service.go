package service

import (
	"context"
	"math"
	"strings"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/internal/streak"
	"frugal-friend/pkg/logger"
)

// ActivityService defines the interface for logging expenses and incomes.
type ActivityService interface {
	LogExpense(ctx context.Context, userID uint, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	LogIncome(ctx context.Context, userID uint, req *dto.CreateIncomeRequest) (*dto.IncomeResponse, error)
	ListExpenses(ctx context.Context, userID uint) ([]dto.ExpenseResponse, error)
	GetStreak(ctx context.Context, userID uint) (*dto.StreakResponse, error)
}

// NewActivityService creates a new activity service. Streaks are counted in loc.
func NewActivityService(
	expenseRepo repository.ExpenseRepository,
	incomeRepo repository.IncomeRepository,
	activityRepo repository.ActivityRepository,
	loc *time.Location,
	now func() time.Time,
	log *logger.Logger,
) ActivityService {
	return &activityService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		streaks:     &streakCounter{activityRepo: activityRepo, loc: loc, now: now},
		now:         now,
		logger:      log,
	}
}

type activityService struct {
	expenseRepo repository.ExpenseRepository
	incomeRepo  repository.IncomeRepository
	streaks     *streakCounter
	now         func() time.Time
	logger      *logger.Logger
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// LogExpense stores an expense dated now unless the request carries a date.
func (s *activityService) LogExpense(ctx context.Context, userID uint, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	category := entity.NormalizeCategory(req.Category)
	if !validAmount(req.Amount) {
		return nil, invalidRequest("amount must be greater than zero")
	}
	if category == "" {
		return nil, invalidRequest("category is required")
	}

	expense := &entity.Expense{
		OwnerID:  userID,
		Amount:   req.Amount,
		Category: category,
		Note:     strings.TrimSpace(req.Note),
		Date:     s.dateOrNow(req.Date),
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, persistenceError("create expense", err)
	}

	s.logger.DebugContext(ctx, "Expense logged", logger.Field("user_id", userID), logger.StringField("category", category))
	return toExpenseResponse(expense), nil
}

// LogIncome stores an income dated now unless the request carries a date.
func (s *activityService) LogIncome(ctx context.Context, userID uint, req *dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	source := strings.TrimSpace(req.Source)
	if !validAmount(req.Amount) {
		return nil, invalidRequest("amount must be greater than zero")
	}
	if source == "" {
		return nil, invalidRequest("source is required")
	}

	income := &entity.Income{
		OwnerID: userID,
		Amount:  req.Amount,
		Source:  source,
		Date:    s.dateOrNow(req.Date),
	}
	if err := s.incomeRepo.Create(ctx, income); err != nil {
		return nil, persistenceError("create income", err)
	}
	return &dto.IncomeResponse{ID: income.ID, Amount: income.Amount, Source: income.Source, Date: income.Date}, nil
}

func (s *activityService) ListExpenses(ctx context.Context, userID uint) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, persistenceError("load expenses", err)
	}
	resp := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = *toExpenseResponse(&expenses[i])
	}
	return resp, nil
}

func (s *activityService) GetStreak(ctx context.Context, userID uint) (*dto.StreakResponse, error) {
	days, today, err := s.streaks.count(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.StreakResponse{StreakDays: days, Today: today.String()}, nil
}

func (s *activityService) dateOrNow(d *time.Time) time.Time {
	if d == nil || d.IsZero() {
		return s.now()
	}
	return *d
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{ID: e.ID, Amount: e.Amount, Category: e.Category, Note: e.Note, Date: e.Date}
}

// streakCounter derives the logging streak of a user in a fixed time zone.
type streakCounter struct {
	activityRepo repository.ActivityRepository
	loc          *time.Location
	now          func() time.Time
}

func (c *streakCounter) count(ctx context.Context, userID uint) (int, streak.Date, error) {
	today := streak.DateOf(c.now().In(c.loc))
	dates, err := c.activityRepo.ActivityDates(ctx, userID)
	if err != nil {
		return 0, today, persistenceError("load activity dates", err)
	}
	return streak.ConsecutiveDays(streak.NewDateSet(c.loc, dates...), today), today, nil
}
