package db_models

import (
	"github.com/google/uuid"
)

type FeedbackRequest struct {
	BaseModel
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	ManagerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message    string    `gorm:"type:text"`
	Tags       string
	Fulfilled  bool `gorm:"not null;default:false"`
}
