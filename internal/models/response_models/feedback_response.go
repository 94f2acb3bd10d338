package response_models

import "time"

type FeedbackResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	ManagerID      string    `json:"manager_id"`
	Strengths      string    `json:"strengths"`
	AreasToImprove string    `json:"areas_to_improve"`
	Sentiment      string    `json:"sentiment"`
	Tags           string    `json:"tags,omitempty"`
	Acknowledged   bool      `json:"acknowledged"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type FeedbackRequestResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	ManagerID  string    `json:"manager_id"`
	Message    string    `json:"message,omitempty"`
	Tags       string    `json:"tags,omitempty"`
	Fulfilled  bool      `json:"fulfilled"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	FeedbackID string    `json:"feedback_id"`
	UserID     string    `json:"user_id"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
