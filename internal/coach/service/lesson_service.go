package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/internal/lesson"
	"frugal-friend/pkg/lock"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/metrics"
	"frugal-friend/pkg/telegram"
)

// LessonService defines the interface for lesson progress.
type LessonService interface {
	GetStatus(ctx context.Context, userID uint) (*dto.LessonStatusResponse, error)
	Advance(ctx context.Context, userID uint) (*dto.AdvanceResponse, error)
}

// NewLessonService creates a new lesson service.
func NewLessonService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	sessionRepo repository.SimulatorSessionRepository,
	locker lock.Locker,
	notifier telegram.Notifier,
	loc *time.Location,
	now func() time.Time,
	log *logger.Logger,
) LessonService {
	return &lessonService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		streaks:      &streakCounter{activityRepo: activityRepo, loc: loc, now: now},
		locker:       locker,
		notifier:     notifier,
		logger:       log,
	}
}

type lessonService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	sessionRepo  repository.SimulatorSessionRepository
	streaks      *streakCounter
	locker       lock.Locker
	notifier     telegram.Notifier
	logger       *logger.Logger
}

// GetStatus reports the user's progress and whether the next lesson can be unlocked.
func (s *lessonService) GetStatus(ctx context.Context, userID uint) (*dto.LessonStatusResponse, error) {
	user, err := s.userRepo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, persistenceError("load user", err)
	}
	facts, err := s.loadFacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	nextIndex := user.LessonProgress + 1
	criteria := lesson.CriteriaFor(nextIndex)
	resp := &dto.LessonStatusResponse{
		LessonProgress: user.LessonProgress,
		StreakDays:     facts.StreakDays,
		Next: dto.CriteriaResponse{
			LessonIndex: nextIndex,
			Key:         criteria.Key,
			Description: criteria.Description,
			Met:         criteria.Met(facts),
		},
		Achievements: append([]string{}, user.Achievements...),
	}
	for _, l := range lesson.Lessons() {
		resp.Lessons = append(resp.Lessons, dto.LessonResponse{
			Index:       l.Index,
			Title:       l.Title,
			Description: l.Description,
			Difficulty:  l.Difficulty,
			Unlocked:    l.Index <= user.LessonProgress,
		})
	}
	return resp, nil
}

// Advance unlocks the next lesson when its criteria hold and grants the
// matching achievement. Advances of one user are serialized.
func (s *lessonService) Advance(ctx context.Context, userID uint) (*dto.AdvanceResponse, error) {
	ctx = logger.WithContext(ctx, logger.Field("user_id", userID))

	user, next, facts, err := s.advanceLocked(ctx, userID)
	if err != nil {
		if errors.Is(err, lesson.ErrAssignmentIncomplete) {
			metrics.LessonAdvances.WithLabelValues("incomplete").Inc()
			s.logger.InfoContext(ctx, "Lesson criteria not met", logger.ErrorField(err))
		} else {
			metrics.LessonAdvances.WithLabelValues("error").Inc()
			s.logger.ErrorContext(ctx, "Failed to advance lesson", logger.ErrorField(err))
		}
		return nil, err
	}
	metrics.LessonAdvances.WithLabelValues("advanced").Inc()

	title := fmt.Sprintf("Lesson %d", next)
	if l, ok := lesson.Get(next); ok {
		title = l.Title
	}
	s.notify(ctx, user, next, title, facts.StreakDays)

	return &dto.AdvanceResponse{
		LessonProgress: next,
		Achievement:    lesson.AchievementKey(next),
		Message:        fmt.Sprintf("Unlocked %s!", title),
	}, nil
}

func (s *lessonService) advanceLocked(ctx context.Context, userID uint) (*entity.User, int, lesson.Facts, error) {
	unlock, err := s.locker.Lock(ctx, lock.LessonKey(userID))
	if err != nil {
		return nil, 0, lesson.Facts{}, persistenceError("acquire lesson lock", err)
	}
	defer unlock()

	user, err := s.userRepo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, 0, lesson.Facts{}, persistenceError("load user", err)
	}
	facts, err := s.loadFacts(ctx, userID)
	if err != nil {
		return nil, 0, facts, err
	}

	next, err := lesson.Advance(user.LessonProgress, facts)
	if err != nil {
		return nil, user.LessonProgress, facts, err
	}

	if err := s.userRepo.CompleteLesson(ctx, userID, user.LessonProgress, next, lesson.AchievementKey(next)); err != nil {
		return nil, 0, facts, persistenceError("complete lesson", err)
	}
	return user, next, facts, nil
}

func (s *lessonService) loadFacts(ctx context.Context, userID uint) (lesson.Facts, error) {
	var facts lesson.Facts

	days, _, err := s.streaks.count(ctx, userID)
	if err != nil {
		return facts, err
	}
	facts.StreakDays = days

	maxContribution, found, err := s.sessionRepo.MaxMonthlyContribution(ctx, userID)
	if err != nil {
		return facts, persistenceError("load simulator sessions", err)
	}
	facts.HasSimulatorSession = found
	facts.MaxMonthlyContribution = maxContribution

	categories, err := s.activityRepo.DistinctExpenseCategories(ctx, userID)
	if err != nil {
		return facts, persistenceError("count expense categories", err)
	}
	facts.DistinctExpenseCategories = categories
	return facts, nil
}

func (s *lessonService) notify(ctx context.Context, user *entity.User, index int, title string, streakDays int) {
	if s.notifier == nil || user.TelegramChatID == nil {
		return
	}
	msg := telegram.FormatLessonUnlocked(index, title, lesson.CriteriaFor(index).Description, streakDays)
	if err := s.notifier.SendMessageUser(msg, *user.TelegramChatID); err != nil {
		s.logger.WarnContext(ctx, "Failed to send lesson notification", logger.ErrorField(err))
	}
}
