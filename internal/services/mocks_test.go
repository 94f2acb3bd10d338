package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"teampulse/internal/models/db_models"
	"teampulse/internal/repositories"
)

// memStore is an in-memory stand-in for the relational store so
// service tests run without a database. Thin adapters below expose it
// through each repository interface.
type memStore struct {
	users     map[uuid.UUID]db_models.User
	feedbacks map[uuid.UUID]db_models.Feedback
	comments  map[uuid.UUID]db_models.FeedbackComment
	requests  map[uuid.UUID]db_models.FeedbackRequest
	clock     time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uuid.UUID]db_models.User),
		feedbacks: make(map[uuid.UUID]db_models.Feedback),
		comments:  make(map[uuid.UUID]db_models.FeedbackComment),
		requests:  make(map[uuid.UUID]db_models.FeedbackRequest),
		clock:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick advances a fake clock so created_at ordering is deterministic.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) addUser(name, email, role string, managerID *uuid.UUID) db_models.User {
	user := db_models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		ManagerID:    managerID,
	}
	user.ID = uuid.New()
	now := s.tick()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user
}

// ---------- UserRepository ----------

type mockUserRepo struct{ store *memStore }

var _ repositories.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := m.store.tick()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.store.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, ok := m.store.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for _, user := range m.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ListTeam(ctx context.Context, managerID uuid.UUID) ([]db_models.User, error) {
	return m.store.listTeam(managerID), nil
}

func (s *memStore) listTeam(managerID uuid.UUID) []db_models.User {
	var team []db_models.User
	for _, user := range s.users {
		if user.ManagerID != nil && *user.ManagerID == managerID {
			team = append(team, user)
		}
	}
	sort.Slice(team, func(i, j int) bool {
		if team[i].Name != team[j].Name {
			return team[i].Name < team[j].Name
		}
		return team[i].ID.String() < team[j].ID.String()
	})
	return team
}

// ---------- FeedbackRepository ----------

type mockFeedbackRepo struct{ store *memStore }

var _ repositories.FeedbackRepository = (*mockFeedbackRepo)(nil)

func (m *mockFeedbackRepo) Insert(ctx context.Context, feedback *db_models.Feedback) error {
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	now := m.store.tick()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now
	m.store.feedbacks[feedback.ID] = *feedback
	return nil
}

func (m *mockFeedbackRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error) {
	feedback, ok := m.store.feedbacks[id]
	if !ok {
		return nil, nil
	}
	return &feedback, nil
}

func (m *mockFeedbackRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	for _, feedback := range m.store.feedbacks {
		if feedback.EmployeeID == employeeID {
			feedbacks = append(feedbacks, feedback)
		}
	}
	sort.Slice(feedbacks, func(i, j int) bool {
		return feedbacks[i].CreatedAt.Before(feedbacks[j].CreatedAt)
	})
	return feedbacks, nil
}

func (m *mockFeedbackRepo) Update(ctx context.Context, feedback *db_models.Feedback) error {
	feedback.UpdatedAt = m.store.tick()
	m.store.feedbacks[feedback.ID] = *feedback
	return nil
}

func (m *mockFeedbackRepo) DeleteWithComments(ctx context.Context, id uuid.UUID) error {
	for commentID, comment := range m.store.comments {
		if comment.FeedbackID == id {
			delete(m.store.comments, commentID)
		}
	}
	delete(m.store.feedbacks, id)
	return nil
}

// ---------- FeedbackCommentRepository ----------

type mockCommentRepo struct{ store *memStore }

var _ repositories.FeedbackCommentRepository = (*mockCommentRepo)(nil)

func (m *mockCommentRepo) Insert(ctx context.Context, comment *db_models.FeedbackComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	now := m.store.tick()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	m.store.comments[comment.ID] = *comment
	return nil
}

func (m *mockCommentRepo) ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]db_models.FeedbackComment, error) {
	var comments []db_models.FeedbackComment
	for _, comment := range m.store.comments {
		if comment.FeedbackID == feedbackID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

// ---------- FeedbackRequestRepository ----------

type mockRequestRepo struct{ store *memStore }

var _ repositories.FeedbackRequestRepository = (*mockRequestRepo)(nil)

func (m *mockRequestRepo) Insert(ctx context.Context, request *db_models.FeedbackRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	now := m.store.tick()
	request.CreatedAt = now
	request.UpdatedAt = now
	m.store.requests[request.ID] = *request
	return nil
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.FeedbackRequest, error) {
	request, ok := m.store.requests[id]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (m *mockRequestRepo) ListByManager(ctx context.Context, managerID uuid.UUID, fulfilled bool) ([]db_models.FeedbackRequest, error) {
	var requests []db_models.FeedbackRequest
	for _, request := range m.store.requests {
		if request.ManagerID == managerID && request.Fulfilled == fulfilled {
			requests = append(requests, request)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

func (m *mockRequestRepo) Update(ctx context.Context, request *db_models.FeedbackRequest) error {
	request.UpdatedAt = m.store.tick()
	m.store.requests[request.ID] = *request
	return nil
}

// ---------- DashboardRepository ----------

type mockDashboardRepo struct{ store *memStore }

var _ repositories.DashboardRepository = (*mockDashboardRepo)(nil)

func (m *mockDashboardRepo) ListTeam(ctx context.Context, managerID uuid.UUID) ([]db_models.User, error) {
	return m.store.listTeam(managerID), nil
}

func (m *mockDashboardRepo) SentimentCountsByManager(ctx context.Context, managerID uuid.UUID) ([]repositories.SentimentCountRow, error) {
	type key struct {
		employee  uuid.UUID
		sentiment string
	}
	grouped := make(map[key]int64)
	for _, feedback := range m.store.feedbacks {
		employee, ok := m.store.users[feedback.EmployeeID]
		if !ok || employee.ManagerID == nil || *employee.ManagerID != managerID {
			continue
		}
		grouped[key{feedback.EmployeeID, feedback.Sentiment}]++
	}
	var rows []repositories.SentimentCountRow
	for k, count := range grouped {
		rows = append(rows, repositories.SentimentCountRow{
			EmployeeID: k.employee.String(),
			Sentiment:  k.sentiment,
			Count:      count,
		})
	}
	return rows, nil
}
