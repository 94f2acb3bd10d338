package db_models

import (
	"github.com/google/uuid"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

type Feedback struct {
	BaseModel
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ManagerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Strengths      string    `gorm:"type:text;not null"`
	AreasToImprove string    `gorm:"type:text;not null"`
	Sentiment      string    `gorm:"type:varchar(16);not null"`
	Tags           string    // comma-separated, optional
	Acknowledged   bool      `gorm:"not null;default:false"`
}
