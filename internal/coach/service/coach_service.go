package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/utils"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
)

// maxSummaryExpenses bounds how many recent expenses are rendered into the prompt.
const maxSummaryExpenses = 50

// CoachService defines the interface for the personalized financial summary.
type CoachService interface {
	Summary(ctx context.Context, userID uint) (*dto.CoachSummaryResponse, error)
}

// NewCoachService creates a new coach service. Generated summaries are cached per user for cacheTTL.
func NewCoachService(
	userRepo repository.UserRepository,
	expenseRepo repository.ExpenseRepository,
	generator repository.TextGenerator,
	log *logger.Logger,
	timeout time.Duration,
	cacheTTL time.Duration,
) CoachService {
	return &coachService{
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		text:        &textWriter{generator: generator, timeout: timeout, logger: log},
		cache:       cache.New(cacheTTL, 2*cacheTTL),
		logger:      log,
	}
}

type coachService struct {
	userRepo    repository.UserRepository
	expenseRepo repository.ExpenseRepository
	text        *textWriter
	cache       *cache.Cache
	logger      *logger.Logger
}

type cachedSummary struct {
	fingerprint uint64
	resp        dto.CoachSummaryResponse
}

func summaryCacheKey(userID uint) string {
	return fmt.Sprintf("summary:%d", userID)
}

// summaryFingerprint hashes every input of the summary prompt, so a cached
// summary is reused only while the profile and expenses are unchanged.
func summaryFingerprint(user *entity.User, expenses []entity.Expense) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%.2f|%d|%s\n", user.FixedBudget, user.FinancialConfidence, firstGoalName(user.Goals))
	for _, e := range expenses {
		fmt.Fprintf(d, "%d|%s|%.2f\n", e.ID, e.Category, e.Amount)
	}
	return d.Sum64()
}

// Summary returns the three-part weekly snapshot for the user.
func (s *coachService) Summary(ctx context.Context, userID uint) (*dto.CoachSummaryResponse, error) {
	user, err := s.userRepo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, persistenceError("load user", err)
	}
	expenses, err := s.expenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, persistenceError("load expenses", err)
	}
	if len(expenses) == 0 {
		return &dto.CoachSummaryResponse{Summary: WelcomeSummary}, nil
	}
	if len(expenses) > maxSummaryExpenses {
		expenses = expenses[:maxSummaryExpenses]
	}

	key := summaryCacheKey(userID)
	fingerprint := summaryFingerprint(user, expenses)
	if cached, found := s.cache.Get(key); found {
		if entry := cached.(cachedSummary); entry.fingerprint == fingerprint {
			s.logger.DebugContext(ctx, "Coach summary cache hit", logger.Field("user_id", userID))
			resp := entry.resp
			return &resp, nil
		}
	}

	totals := make(map[string]float64)
	lines := make([]repository.ExpenseLine, 0, len(expenses))
	for _, e := range expenses {
		category := entity.NormalizeCategory(e.Category)
		totals[category] += e.Amount
		lines = append(lines, repository.ExpenseLine{Category: category, Amount: e.Amount})
	}
	highest, spent := highestCategory(totals)

	prompt := repository.BuildFinancialSummaryPrompt(repository.SummaryContext{
		FixedBudget:         user.FixedBudget,
		FinancialConfidence: user.FinancialConfidence,
		GoalName:            firstGoalName(user.Goals),
		HighestCategory:     highest,
		HighestSpent:        spent,
		Expenses:            lines,
	})

	summary, generated := s.text.write(ctx, "coach_summary", prompt, OfflineSummary)
	resp := dto.CoachSummaryResponse{
		Summary:         summary,
		HighestCategory: highest,
		HighestSpent:    spent,
		Generated:       generated,
	}
	if generated {
		s.cache.SetDefault(key, cachedSummary{fingerprint: fingerprint, resp: resp})
	}
	return &resp, nil
}

// highestCategory picks the category with the largest total, breaking ties by name.
func highestCategory(totals map[string]float64) (string, float64) {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestTotal := "Uncategorized", 0.0
	for _, name := range names {
		if totals[name] > bestTotal {
			best, bestTotal = name, totals[name]
		}
	}
	return best, utils.RoundCents(bestTotal)
}
