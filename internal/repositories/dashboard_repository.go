package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teampulse/internal/models/db_models"
)

type DashboardRepository interface {
	ListTeam(ctx context.Context, managerID uuid.UUID) ([]db_models.User, error)
	SentimentCountsByManager(ctx context.Context, managerID uuid.UUID) ([]SentimentCountRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type SentimentCountRow struct {
	EmployeeID string `gorm:"column:employee_id"`
	Sentiment  string `gorm:"column:sentiment"`
	Count      int64  `gorm:"column:count"`
}

func (r *dashboardRepository) ListTeam(ctx context.Context, managerID uuid.UUID) ([]db_models.User, error) {
	var team []db_models.User
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC, id ASC").
		Find(&team).Error
	return team, err
}

func (r *dashboardRepository) SentimentCountsByManager(ctx context.Context, managerID uuid.UUID) ([]SentimentCountRow, error) {
	var rows []SentimentCountRow
	err := r.db.WithContext(ctx).
		Table("feedbacks f").
		Select("f.employee_id, f.sentiment, COUNT(*) AS count").
		Joins("JOIN users u ON u.id = f.employee_id").
		Where("u.manager_id = ?", managerID).
		Group("f.employee_id, f.sentiment").
		Find(&rows).Error
	return rows, err
}
