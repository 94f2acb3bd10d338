package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teampulse/internal/models/db_models"
)

type FeedbackRequestRepository interface {
	Insert(ctx context.Context, request *db_models.FeedbackRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.FeedbackRequest, error)
	ListByManager(ctx context.Context, managerID uuid.UUID, fulfilled bool) ([]db_models.FeedbackRequest, error)
	Update(ctx context.Context, request *db_models.FeedbackRequest) error
}

type feedbackRequestRepository struct {
	db *gorm.DB
}

func NewFeedbackRequestRepository(db *gorm.DB) FeedbackRequestRepository {
	return &feedbackRequestRepository{db: db}
}

func (r *feedbackRequestRepository) Insert(ctx context.Context, request *db_models.FeedbackRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *feedbackRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.FeedbackRequest, error) {
	var request db_models.FeedbackRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *feedbackRequestRepository) ListByManager(ctx context.Context, managerID uuid.UUID, fulfilled bool) ([]db_models.FeedbackRequest, error) {
	var requests []db_models.FeedbackRequest
	err := r.db.WithContext(ctx).
		Where("manager_id = ? AND fulfilled = ?", managerID, fulfilled).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *feedbackRequestRepository) Update(ctx context.Context, request *db_models.FeedbackRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
