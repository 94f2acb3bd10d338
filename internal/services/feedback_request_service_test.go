package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teampulse/internal/models/db_models"
	"teampulse/internal/models/request_models"
	"teampulse/pkg/utils"
)

type requestFixture struct {
	store    *memStore
	service  FeedbackRequestServiceInterface
	manager  db_models.User
	other    db_models.User
	employee db_models.User
	orphan   db_models.User // employee without a manager
}

func newRequestFixture() *requestFixture {
	store := newMemStore()
	manager := store.addUser("Alice", "alice@example.com", db_models.RoleManager, nil)
	other := store.addUser("Mallory", "mallory@example.com", db_models.RoleManager, nil)
	employee := store.addUser("Carol", "carol@example.com", db_models.RoleEmployee, &manager.ID)
	orphan := store.addUser("Dan", "dan@example.com", db_models.RoleEmployee, nil)

	service := NewFeedbackRequestService(
		&mockRequestRepo{store: store},
		&mockUserRepo{store: store},
	)
	return &requestFixture{
		store:    store,
		service:  service,
		manager:  manager,
		other:    other,
		employee: employee,
		orphan:   orphan,
	}
}

func TestRequestCreate_RequiresEmployee(t *testing.T) {
	f := newRequestFixture()

	_, err := f.service.Create(context.Background(), principalOf(f.manager), request_models.FeedbackRequestPayload{})
	assert.ErrorIs(t, err, utils.ErrEmployeeOnly)
}

func TestRequestCreate_NoManagerAssigned(t *testing.T) {
	f := newRequestFixture()

	_, err := f.service.Create(context.Background(), principalOf(f.orphan), request_models.FeedbackRequestPayload{
		Message: "please review my quarter",
	})
	assert.ErrorIs(t, err, utils.ErrNoManagerAssigned)
	assert.Empty(t, f.store.requests)
}

func TestRequestCreate_AddressedToOwnManager(t *testing.T) {
	f := newRequestFixture()

	created, err := f.service.Create(context.Background(), principalOf(f.employee), request_models.FeedbackRequestPayload{
		Message: "quarterly check-in",
		Tags:    "communication",
	})
	require.NoError(t, err)

	assert.Equal(t, f.manager.ID.String(), created.ManagerID)
	assert.Equal(t, f.employee.ID.String(), created.EmployeeID)
	assert.False(t, created.Fulfilled)
}

func TestRequestList_FilterAndOwnership(t *testing.T) {
	f := newRequestFixture()
	created, err := f.service.Create(context.Background(), principalOf(f.employee), request_models.FeedbackRequestPayload{
		Tags: "communication",
	})
	require.NoError(t, err)

	// the request is pending for its manager
	pending, err := f.service.ListForManager(context.Background(), principalOf(f.manager), false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)

	// and invisible to a different manager
	pendingOther, err := f.service.ListForManager(context.Background(), principalOf(f.other), false)
	require.NoError(t, err)
	assert.Empty(t, pendingOther)

	// employees cannot list requests
	_, err = f.service.ListForManager(context.Background(), principalOf(f.employee), false)
	assert.ErrorIs(t, err, utils.ErrManagerOnly)
}

func TestRequestFulfill_MovesBetweenFilters(t *testing.T) {
	f := newRequestFixture()
	created, err := f.service.Create(context.Background(), principalOf(f.employee), request_models.FeedbackRequestPayload{})
	require.NoError(t, err)
	requestID := uuid.MustParse(created.ID)

	fulfilled, err := f.service.Fulfill(context.Background(), principalOf(f.manager), requestID)
	require.NoError(t, err)
	assert.True(t, fulfilled.Fulfilled)

	pending, err := f.service.ListForManager(context.Background(), principalOf(f.manager), false)
	require.NoError(t, err)
	assert.Empty(t, pending)

	done, err := f.service.ListForManager(context.Background(), principalOf(f.manager), true)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, created.ID, done[0].ID)
}

func TestRequestFulfill_Idempotent(t *testing.T) {
	f := newRequestFixture()
	created, err := f.service.Create(context.Background(), principalOf(f.employee), request_models.FeedbackRequestPayload{})
	require.NoError(t, err)
	requestID := uuid.MustParse(created.ID)

	_, err = f.service.Fulfill(context.Background(), principalOf(f.manager), requestID)
	require.NoError(t, err)

	again, err := f.service.Fulfill(context.Background(), principalOf(f.manager), requestID)
	require.NoError(t, err)
	assert.True(t, again.Fulfilled)
}

func TestRequestFulfill_NotOwnedLooksLikeNotFound(t *testing.T) {
	f := newRequestFixture()
	created, err := f.service.Create(context.Background(), principalOf(f.employee), request_models.FeedbackRequestPayload{})
	require.NoError(t, err)

	_, err = f.service.Fulfill(context.Background(), principalOf(f.other), uuid.MustParse(created.ID))
	assert.ErrorIs(t, err, utils.ErrRequestNotFound)

	_, err = f.service.Fulfill(context.Background(), principalOf(f.manager), uuid.New())
	assert.ErrorIs(t, err, utils.ErrRequestNotFound)
}
