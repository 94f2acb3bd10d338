package db_models

import (
	"github.com/google/uuid"
)

type FeedbackComment struct {
	BaseModel
	FeedbackID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	Comment    string    `gorm:"type:text;not null"`
}
