package services

import (
	"context"

	"teampulse/internal/access"
	"teampulse/internal/models/db_models"
	"teampulse/internal/models/response_models"
	"teampulse/internal/repositories"
	"teampulse/pkg/utils"
)

type DashboardService interface {
	BuildManagerDashboard(ctx context.Context, principal access.Principal) ([]response_models.TeamMemberSummary, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// BuildManagerDashboard produces one summary per direct report, in
// ascending name/id order, recomputed fully on every call.
func (s *dashboardService) BuildManagerDashboard(ctx context.Context, principal access.Principal) ([]response_models.TeamMemberSummary, error) {
	if err := access.RequireManager(principal); err != nil {
		return nil, err
	}

	team, err := s.repo.ListTeam(ctx, principal.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows, err := s.repo.SentimentCountsByManager(ctx, principal.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	counts := make(map[string]response_models.SentimentBreakdown, len(team))
	totals := make(map[string]int64, len(team))
	for _, row := range rows {
		breakdown := counts[row.EmployeeID]
		switch row.Sentiment {
		case db_models.SentimentPositive:
			breakdown.Positive += row.Count
		case db_models.SentimentNeutral:
			breakdown.Neutral += row.Count
		case db_models.SentimentNegative:
			breakdown.Negative += row.Count
		}
		counts[row.EmployeeID] = breakdown
		totals[row.EmployeeID] += row.Count
	}

	summaries := make([]response_models.TeamMemberSummary, 0, len(team))
	for i := range team {
		member := &team[i]
		id := member.ID.String()
		summaries = append(summaries, response_models.TeamMemberSummary{
			ID:            id,
			Name:          member.Name,
			Email:         member.Email,
			FeedbackCount: totals[id],
			Sentiments:    counts[id],
		})
	}
	return summaries, nil
}
