package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teampulse/internal/models/db_models"
	"teampulse/internal/models/request_models"
	"teampulse/pkg/utils"
)

func newAccountFixture(t *testing.T) (*memStore, AccountServiceInterface) {
	t.Helper()
	store := newMemStore()
	return store, NewAccountService(&mockUserRepo{store: store})
}

func registerUser(t *testing.T, service AccountServiceInterface, name, email, role string, managerID *string) {
	t.Helper()
	_, err := service.Register(context.Background(), request_models.RegisterRequest{
		Name:      name,
		Email:     email,
		Password:  "secret123",
		Role:      role,
		ManagerID: managerID,
	})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	_, service := newAccountFixture(t)
	registerUser(t, service, "Alice", "alice@example.com", db_models.RoleManager, nil)

	resp, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, db_models.RoleManager, resp.Role)

	_, err = service.Login(context.Background(), request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, service := newAccountFixture(t)
	registerUser(t, service, "Alice", "alice@example.com", db_models.RoleManager, nil)

	_, err := service.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Impostor",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     db_models.RoleEmployee,
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestRegister_EmployeeManagerMustBeManager(t *testing.T) {
	_, service := newAccountFixture(t)
	registerUser(t, service, "Alice", "alice@example.com", db_models.RoleManager, nil)

	bob, err := service.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret123",
		Role:     db_models.RoleEmployee,
	})
	require.NoError(t, err)

	// referencing an employee as manager is rejected
	_, err = service.Register(context.Background(), request_models.RegisterRequest{
		Name:      "Carol",
		Email:     "carol@example.com",
		Password:  "secret123",
		Role:      db_models.RoleEmployee,
		ManagerID: &bob.ID,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidManagerRef)

	unknown := "2b1f0f5e-0000-0000-0000-000000000000"
	_, err = service.Register(context.Background(), request_models.RegisterRequest{
		Name:      "Dan",
		Email:     "dan@example.com",
		Password:  "secret123",
		Role:      db_models.RoleEmployee,
		ManagerID: &unknown,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidManagerRef)
}

func TestRegister_EmployeeUnderManager(t *testing.T) {
	_, service := newAccountFixture(t)

	alice, err := service.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     db_models.RoleManager,
	})
	require.NoError(t, err)

	bob, err := service.Register(context.Background(), request_models.RegisterRequest{
		Name:      "Bob",
		Email:     "bob@example.com",
		Password:  "secret123",
		Role:      db_models.RoleEmployee,
		ManagerID: &alice.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, bob.ManagerID)
	assert.Equal(t, alice.ID, *bob.ManagerID)
}

func TestListTeam(t *testing.T) {
	store, service := newAccountFixture(t)
	manager := store.addUser("Alice", "alice@example.com", db_models.RoleManager, nil)
	other := store.addUser("Mallory", "mallory@example.com", db_models.RoleManager, nil)
	store.addUser("Zoe", "zoe@example.com", db_models.RoleEmployee, &manager.ID)
	store.addUser("Bob", "bob@example.com", db_models.RoleEmployee, &manager.ID)
	store.addUser("Eve", "eve@example.com", db_models.RoleEmployee, &other.ID)

	team, err := service.ListTeam(context.Background(), principalOf(manager))
	require.NoError(t, err)
	require.Len(t, team, 2)
	// ascending name order
	assert.Equal(t, "Bob", team[0].Name)
	assert.Equal(t, "Zoe", team[1].Name)

	employee := store.addUser("Bee", "bee@example.com", db_models.RoleEmployee, &manager.ID)
	_, err = service.ListTeam(context.Background(), principalOf(employee))
	assert.ErrorIs(t, err, utils.ErrManagerOnly)
}

func TestGetSelf(t *testing.T) {
	store, service := newAccountFixture(t)
	user := store.addUser("Alice", "alice@example.com", db_models.RoleManager, nil)

	me, err := service.GetSelf(context.Background(), principalOf(user))
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), me.ID)
	assert.Equal(t, "alice@example.com", me.Email)
}
