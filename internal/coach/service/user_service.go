package service

import (
	"context"
	"strings"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/pkg/logger"
)

// UserService defines the interface for onboarding and profiles.
type UserService interface {
	Onboard(ctx context.Context, userID uint, req *dto.OnboardingRequest) (*dto.UserResponse, error)
	Profile(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, log *logger.Logger) UserService {
	return &userService{userRepo: userRepo, logger: log}
}

type userService struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// Onboard sets the budget profile and replaces the user's goals.
func (s *userService) Onboard(ctx context.Context, userID uint, req *dto.OnboardingRequest) (*dto.UserResponse, error) {
	if req.FixedBudget < 0 {
		return nil, invalidRequest("fixed budget must not be negative")
	}
	confidence := req.FinancialConfidence
	if confidence == 0 {
		confidence = 5
	}
	if confidence < 1 || confidence > 10 {
		return nil, invalidRequest("financial confidence must be between 1 and 10")
	}
	risk := ""
	if strings.TrimSpace(req.RiskTolerance) != "" {
		level, err := ParseRiskLevel(req.RiskTolerance)
		if err != nil {
			return nil, err
		}
		risk = string(level)
	}

	goals := make([]entity.Goal, 0, len(req.Goals))
	for _, g := range req.Goals {
		name := strings.TrimSpace(g.Name)
		if name == "" || !(g.TargetAmount > 0) || g.CurrentAmount < 0 {
			return nil, invalidRequest("each goal needs a name and a positive target amount")
		}
		goals = append(goals, entity.Goal{Name: name, TargetAmount: g.TargetAmount, CurrentAmount: g.CurrentAmount})
	}

	if _, err := s.userRepo.FindOrCreate(ctx, userID); err != nil {
		return nil, persistenceError("load user", err)
	}
	user := &entity.User{
		ID:                  userID,
		Email:               strings.TrimSpace(req.Email),
		FixedBudget:         req.FixedBudget,
		FinancialConfidence: confidence,
		RiskTolerance:       risk,
		TelegramChatID:      req.TelegramChatID,
	}
	if err := s.userRepo.UpdateOnboarding(ctx, user, goals); err != nil {
		return nil, persistenceError("save onboarding", err)
	}

	s.logger.InfoContext(ctx, "User onboarded", logger.Field("user_id", userID), logger.IntField("goals", len(goals)))
	return s.Profile(ctx, userID)
}

func (s *userService) Profile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, persistenceError("load user", err)
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:                  u.ID,
		Email:               u.Email,
		FixedBudget:         u.FixedBudget,
		FinancialConfidence: u.FinancialConfidence,
		RiskTolerance:       u.RiskTolerance,
		LessonProgress:      u.LessonProgress,
		Achievements:        append([]string{}, u.Achievements...),
		Goals:               make([]dto.GoalResponse, 0, len(u.Goals)),
	}
	for _, g := range u.Goals {
		resp.Goals = append(resp.Goals, dto.GoalResponse{ID: g.ID, Name: g.Name, TargetAmount: g.TargetAmount, CurrentAmount: g.CurrentAmount})
	}
	return resp
}

func firstGoalName(goals []entity.Goal) string {
	if len(goals) == 0 {
		return ""
	}
	return goals[0].Name
}
