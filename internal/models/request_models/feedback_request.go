package request_models

// FeedbackPayload is used for both create and update. Updates are
// full-replace: every mutable field must be supplied, an empty tags
// value clears stored tags.
type FeedbackPayload struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	Strengths      string `json:"strengths" binding:"required"`
	AreasToImprove string `json:"areas_to_improve" binding:"required"`
	Sentiment      string `json:"sentiment" binding:"required,oneof=positive neutral negative"`
	Tags           string `json:"tags"`
}

type FeedbackRequestPayload struct {
	Message string `json:"message"`
	Tags    string `json:"tags"`
}

type CommentPayload struct {
	Comment string `json:"comment" binding:"required"`
}
