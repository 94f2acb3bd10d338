package response_models

// SentimentBreakdown always carries all three buckets, zero counts included.
type SentimentBreakdown struct {
	Positive int64 `json:"positive"`
	Neutral  int64 `json:"neutral"`
	Negative int64 `json:"negative"`
}

type TeamMemberSummary struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	FeedbackCount int64              `json:"feedback_count"`
	Sentiments    SentimentBreakdown `json:"sentiments"`
}
