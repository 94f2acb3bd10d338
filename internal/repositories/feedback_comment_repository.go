package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teampulse/internal/models/db_models"
)

type FeedbackCommentRepository interface {
	Insert(ctx context.Context, comment *db_models.FeedbackComment) error
	ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]db_models.FeedbackComment, error)
}

type feedbackCommentRepository struct {
	db *gorm.DB
}

func NewFeedbackCommentRepository(db *gorm.DB) FeedbackCommentRepository {
	return &feedbackCommentRepository{db: db}
}

func (r *feedbackCommentRepository) Insert(ctx context.Context, comment *db_models.FeedbackComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *feedbackCommentRepository) ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]db_models.FeedbackComment, error) {
	var comments []db_models.FeedbackComment
	err := r.db.WithContext(ctx).
		Where("feedback_id = ?", feedbackID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
