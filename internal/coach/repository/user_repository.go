package repository

import (
	"context"
	"errors"
	"fmt"

	"frugal-friend/internal/entity"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewUserRepository creates a new GORM-based user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

type userRepository struct {
	db *gorm.DB
}

// FindByID retrieves a user with its goals.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Preload("Goals").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreate retrieves a user, inserting an empty profile when missing.
func (r *userRepository) FindOrCreate(ctx context.Context, id uint) (*entity.User, error) {
	user := entity.User{ID: id, FinancialConfidence: 5, Achievements: pq.StringArray{}}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return r.FindByID(ctx, id)
}

// GetLessonProgress returns the lesson progress of a user.
func (r *userRepository) GetLessonProgress(ctx context.Context, id uint) (int, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Select("lesson_progress").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return user.LessonProgress, nil
}

// CompleteLesson advances the lesson progress and appends the achievement in a
// single statement guarded by the expected progress.
func (r *userRepository) CompleteLesson(ctx context.Context, id uint, expected, next int, achievement string) error {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE users SET lesson_progress = ?,
		   achievements = CASE WHEN ? = ANY(achievements) THEN achievements ELSE array_append(achievements, ?) END,
		   updated_at = NOW()
		 WHERE id = ? AND lesson_progress = ?`,
		next, achievement, achievement, id, expected,
	)
	if res.Error != nil {
		return fmt.Errorf("failed to complete lesson: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

// UpdateOnboarding saves the profile fields and replaces the user's goals within a transaction.
func (r *userRepository) UpdateOnboarding(ctx context.Context, user *entity.User, goals []entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"fixed_budget":         user.FixedBudget,
			"financial_confidence": user.FinancialConfidence,
			"risk_tolerance":       user.RiskTolerance,
			"telegram_chat_id":     user.TelegramChatID,
		}
		if user.Email != "" {
			updates["email"] = user.Email
		}
		res := tx.Model(&entity.User{}).Where("id = ?", user.ID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&entity.Goal{}).Error; err != nil {
			return err
		}
		if len(goals) == 0 {
			return nil
		}
		for i := range goals {
			goals[i].UserID = user.ID
		}
		return tx.Create(&goals).Error
	})
}
