package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/utils"

	"gorm.io/datatypes"
)

const maxSimulationYears = 50

// annualRates are the mock yearly returns of each risk level.
var annualRates = map[entity.RiskLevel]float64{
	entity.RiskLow:    0.05,
	entity.RiskMedium: 0.08,
	entity.RiskHigh:   0.12,
}

// ParseRiskLevel converts a case-insensitive risk level name.
func ParseRiskLevel(s string) (entity.RiskLevel, error) {
	for level := range annualRates {
		if strings.EqualFold(strings.TrimSpace(s), string(level)) {
			return level, nil
		}
	}
	return "", invalidRequest("risk level must be Low, Medium or High")
}

// Project compounds start and a monthly contribution over years at the
// annual rate of risk, compounded monthly.
func Project(start, monthly float64, years int, risk entity.RiskLevel) dto.SimulationResult {
	rate := annualRates[risk]
	months := years * 12
	monthlyRate := rate / 12

	growth := math.Pow(1+monthlyRate, float64(months))
	future := start * growth
	if monthlyRate > 0 {
		future += monthly * (growth - 1) / monthlyRate
	} else {
		future += monthly * float64(months)
	}
	contributed := start + monthly*float64(months)

	return dto.SimulationResult{
		StartAmount:         start,
		MonthlyContribution: monthly,
		TotalYears:          years,
		AnnualRatePercent:   utils.Round(rate*100, 1),
		TotalContributed:    utils.RoundCents(contributed),
		ProjectedFinalValue: utils.RoundCents(future),
		TotalGain:           utils.RoundCents(future - contributed),
	}
}

// SimulatorService defines the interface for investment simulations.
type SimulatorService interface {
	Run(ctx context.Context, userID uint, req *dto.SimulatorRequest) (*dto.SimulatorResponse, error)
}

// NewSimulatorService creates a new simulator service.
func NewSimulatorService(
	sessionRepo repository.SimulatorSessionRepository,
	userRepo repository.UserRepository,
	generator repository.TextGenerator,
	log *logger.Logger,
	timeout time.Duration,
) SimulatorService {
	return &simulatorService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		text:        &textWriter{generator: generator, timeout: timeout, logger: log},
		logger:      log,
	}
}

type simulatorService struct {
	sessionRepo repository.SimulatorSessionRepository
	userRepo    repository.UserRepository
	text        *textWriter
	logger      *logger.Logger
}

// Run projects the simulation, writes a micro-course about it and saves the session.
func (s *simulatorService) Run(ctx context.Context, userID uint, req *dto.SimulatorRequest) (*dto.SimulatorResponse, error) {
	if req.StartAmount < 0 || req.MonthlyContribution < 0 ||
		math.IsInf(req.StartAmount, 0) || math.IsInf(req.MonthlyContribution, 0) ||
		math.IsNaN(req.StartAmount) || math.IsNaN(req.MonthlyContribution) {
		return nil, invalidRequest("amounts must not be negative")
	}
	if req.Years < 1 || req.Years > maxSimulationYears {
		return nil, invalidRequest("years must be between 1 and %d", maxSimulationYears)
	}
	risk, err := ParseRiskLevel(req.RiskLevel)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, persistenceError("load user", err)
	}

	result := Project(req.StartAmount, req.MonthlyContribution, req.Years, risk)
	course, _ := s.text.write(ctx, "micro_course", repository.BuildMicroCoursePrompt(repository.CourseContext{
		GoalName:            firstGoalName(user.Goals),
		FinancialConfidence: user.FinancialConfidence,
		ProjectedValue:      result.ProjectedFinalValue,
		TotalGain:           result.TotalGain,
		Years:               result.TotalYears,
		AnnualRatePercent:   result.AnnualRatePercent,
	}), OfflineCourse)

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal simulation result: %w", err)
	}
	session := &entity.SimulatorSession{
		UserID:              userID,
		StartAmount:         req.StartAmount,
		MonthlyContribution: req.MonthlyContribution,
		Years:               req.Years,
		RiskLevel:           risk,
		CourseSummary:       course,
		ProjectedValue:      result.ProjectedFinalValue,
		Result:              datatypes.JSON(raw),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, persistenceError("save simulator session", err)
	}

	s.logger.InfoContext(ctx, "Simulation saved",
		logger.Field("user_id", userID),
		logger.StringField("risk_level", string(risk)),
		logger.FloatField("projected_value", result.ProjectedFinalValue),
	)
	return &dto.SimulatorResponse{
		SessionID:     session.ID,
		RiskLevel:     string(risk),
		Result:        result,
		CourseSummary: course,
	}, nil
}
