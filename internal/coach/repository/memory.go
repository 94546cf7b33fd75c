package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"frugal-friend/internal/entity"
)

// MemoryStore keeps every collection in process memory. It backs the
// repositories when storage.in_memory is set and in tests.
type MemoryStore struct {
	mu        sync.RWMutex
	seq       uint
	positions map[uint]*entity.Position
	users     map[uint]*entity.User
	goals     map[uint][]entity.Goal
	expenses  []entity.Expense
	incomes   []entity.Income
	sessions  []entity.SimulatorSession
	now       func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		positions: make(map[uint]*entity.Position),
		users:     make(map[uint]*entity.User),
		goals:     make(map[uint][]entity.Goal),
		now:       time.Now,
	}
}

func (s *MemoryStore) nextID() uint {
	s.seq++
	return s.seq
}

// Positions returns the store's PositionRepository.
func (s *MemoryStore) Positions() PositionRepository { return memoryPositions{s} }

// Activity returns the store's ActivityRepository.
func (s *MemoryStore) Activity() ActivityRepository { return memoryActivity{s} }

// Expenses returns the store's ExpenseRepository.
func (s *MemoryStore) Expenses() ExpenseRepository { return memoryExpenses{s} }

// Incomes returns the store's IncomeRepository.
func (s *MemoryStore) Incomes() IncomeRepository { return memoryIncomes{s} }

// Users returns the store's UserRepository.
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// SimulatorSessions returns the store's SimulatorSessionRepository.
func (s *MemoryStore) SimulatorSessions() SimulatorSessionRepository { return memorySessions{s} }

type memoryPositions struct{ s *MemoryStore }

func (r memoryPositions) FindByUserAndSymbol(_ context.Context, userID uint, symbol string) (*entity.Position, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.positions {
		if p.UserID == userID && p.Symbol == symbol {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryPositions) FindByUser(_ context.Context, userID uint) ([]entity.Position, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.Position
	for _, p := range r.s.positions {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

func (r memoryPositions) Save(_ context.Context, pos *entity.Position) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if pos.ID == 0 {
		for _, p := range r.s.positions {
			if p.UserID == pos.UserID && p.Symbol == pos.Symbol {
				return ErrVersionConflict
			}
		}
		pos.ID = r.s.nextID()
		pos.Version = 1
		pos.CreatedAt, pos.UpdatedAt = now, now
		cp := *pos
		r.s.positions[pos.ID] = &cp
		return nil
	}

	stored, ok := r.s.positions[pos.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != pos.Version {
		return ErrVersionConflict
	}
	pos.Version++
	pos.UpdatedAt = now
	cp := *pos
	r.s.positions[pos.ID] = &cp
	return nil
}

type memoryActivity struct{ s *MemoryStore }

func (r memoryActivity) ActivityDates(_ context.Context, userID uint) ([]time.Time, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var dates []time.Time
	for _, e := range r.s.expenses {
		if e.OwnerID == userID {
			dates = append(dates, e.Date)
		}
	}
	for _, i := range r.s.incomes {
		if i.OwnerID == userID {
			dates = append(dates, i.Date)
		}
	}
	return dates, nil
}

func (r memoryActivity) DistinctExpenseCategories(_ context.Context, userID uint) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, e := range r.s.expenses {
		if e.OwnerID == userID {
			seen[entity.NormalizeCategory(e.Category)] = struct{}{}
		}
	}
	return len(seen), nil
}

type memoryExpenses struct{ s *MemoryStore }

func (r memoryExpenses) Create(_ context.Context, expense *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	expense.ID = r.s.nextID()
	expense.CreatedAt = r.s.now()
	r.s.expenses = append(r.s.expenses, *expense)
	return nil
}

func (r memoryExpenses) FindByUser(_ context.Context, userID uint) ([]entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.Expense
	for _, e := range r.s.expenses {
		if e.OwnerID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

type memoryIncomes struct{ s *MemoryStore }

func (r memoryIncomes) Create(_ context.Context, income *entity.Income) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	income.ID = r.s.nextID()
	income.CreatedAt = r.s.now()
	r.s.incomes = append(r.s.incomes, *income)
	return nil
}

func (r memoryIncomes) FindByUser(_ context.Context, userID uint) ([]entity.Income, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.Income
	for _, i := range r.s.incomes {
		if i.OwnerID == userID {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Date.After(out[b].Date) })
	return out, nil
}

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) copyUser(u *entity.User) *entity.User {
	cp := *u
	cp.Achievements = append([]string(nil), u.Achievements...)
	cp.Goals = append([]entity.Goal(nil), r.s.goals[u.ID]...)
	return &cp
}

func (r memoryUsers) FindByID(_ context.Context, id uint) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.copyUser(u), nil
}

func (r memoryUsers) FindOrCreate(_ context.Context, id uint) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		now := r.s.now()
		u = &entity.User{ID: id, FinancialConfidence: 5, Achievements: []string{}, CreatedAt: now, UpdatedAt: now}
		r.s.users[id] = u
	}
	return r.copyUser(u), nil
}

func (r memoryUsers) GetLessonProgress(_ context.Context, id uint) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return 0, ErrNotFound
	}
	return u.LessonProgress, nil
}

func (r memoryUsers) CompleteLesson(_ context.Context, id uint, expected, next int, achievement string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return ErrNotFound
	}
	if u.LessonProgress != expected {
		return ErrVersionConflict
	}
	u.LessonProgress = next
	if !u.HasAchievement(achievement) {
		u.Achievements = append(u.Achievements, achievement)
	}
	u.UpdatedAt = r.s.now()
	return nil
}

func (r memoryUsers) UpdateOnboarding(_ context.Context, user *entity.User, goals []entity.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	if user.Email != "" {
		u.Email = user.Email
	}
	u.FixedBudget = user.FixedBudget
	u.FinancialConfidence = user.FinancialConfidence
	u.RiskTolerance = user.RiskTolerance
	u.TelegramChatID = user.TelegramChatID
	u.UpdatedAt = r.s.now()

	stored := make([]entity.Goal, len(goals))
	for i, g := range goals {
		g.ID = r.s.nextID()
		g.UserID = user.ID
		g.CreatedAt = r.s.now()
		goals[i] = g
		stored[i] = g
	}
	r.s.goals[user.ID] = stored
	return nil
}

type memorySessions struct{ s *MemoryStore }

func (r memorySessions) Create(_ context.Context, session *entity.SimulatorSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session.ID = r.s.nextID()
	session.CreatedAt = r.s.now()
	r.s.sessions = append(r.s.sessions, *session)
	return nil
}

func (r memorySessions) MaxMonthlyContribution(_ context.Context, userID uint) (float64, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var (
		best  float64
		found bool
	)
	for _, sess := range r.s.sessions {
		if sess.UserID != userID {
			continue
		}
		if !found || sess.MonthlyContribution > best {
			best = sess.MonthlyContribution
		}
		found = true
	}
	return best, found, nil
}
