package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teampulse/internal/infra"
	"teampulse/internal/models/db_models"
)

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *db_models.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]db_models.Feedback, error)
	Update(ctx context.Context, feedback *db_models.Feedback) error
	DeleteWithComments(ctx context.Context, id uuid.UUID) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Insert(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	err := r.db.WithContext(ctx).First(&feedback, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

// DeleteWithComments removes a feedback row and its comments in one
// transaction so no orphaned comment rows survive.
func (r *feedbackRepository) DeleteWithComments(ctx context.Context, id uuid.UUID) error {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}

	err := tx.Where("feedback_id = ?", id).Delete(&db_models.FeedbackComment{}).Error
	if err == nil {
		err = tx.Where("id = ?", id).Delete(&db_models.Feedback{}).Error
	}
	infra.ReleaseTransaction(tx, err)
	return err
}
