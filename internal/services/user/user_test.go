package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexusgrowth/client-portal/internal/models"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdateUser(ctx context.Context, id string, user models.User) (int, error) {
	args := m.Called(ctx, id, user)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) DeleteUser(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) GetRoleIDByName(ctx context.Context, name string) (*string, error) {
	args := m.Called(ctx, name)
	if res := args.Get(0); res != nil {
		return res.(*string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) ListRoles(ctx context.Context) ([]models.Role, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreate_AdminDropsClientBinding(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetRoleIDByName", mock.Anything, "ADMIN").Return(strPtr("role-admin"), nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.ClientID == nil && u.Role == "ADMIN" && u.RoleID != nil
	})).Return("user-1", nil)

	svc := New(repo)
	id, err := svc.Create(context.Background(), models.DummyUser{
		ClientID: "client-1",
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     "ADMIN",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	repo.AssertExpectations(t)
}

func TestCreate_AdminAliasResolvesCanonicalRoleID(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetRoleIDByName", mock.Anything, "ADMIN").Return(strPtr("role-admin"), nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Role == "Administrador" && u.ClientID == nil
	})).Return("user-2", nil)

	svc := New(repo)
	_, err := svc.Create(context.Background(), models.DummyUser{
		Name:     "Admin",
		Email:    "admin2@example.com",
		Password: "secret123",
		Role:     "Administrador",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_TenantRequiresClientID(t *testing.T) {
	svc := New(new(MockRepo))
	_, err := svc.Create(context.Background(), models.DummyUser{
		Name:     "Cliente",
		Email:    "c@example.com",
		Password: "secret123",
		Role:     "CLIENTE",
	})

	assert.ErrorIs(t, err, ErrTenantWithoutClient)
}

func TestCreate_TenantKeepsClientBinding(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetRoleIDByName", mock.Anything, "CLIENTE").Return(strPtr("role-client"), nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.ClientID != nil && *u.ClientID == "client-1"
	})).Return("user-3", nil)

	svc := New(repo)
	_, err := svc.Create(context.Background(), models.DummyUser{
		ClientID: "client-1",
		Name:     "Cliente",
		Email:    "c@example.com",
		Password: "secret123",
		Role:     "CLIENTE",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_UnknownRole(t *testing.T) {
	svc := New(new(MockRepo))
	_, err := svc.Create(context.Background(), models.DummyUser{
		Name:     "X",
		Email:    "x@example.com",
		Password: "secret123",
		Role:     "superuser",
	})

	assert.Error(t, err)
}

func TestUpdate_EmptyPasswordKeepsHash(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetRoleIDByName", mock.Anything, "ADMIN").Return(nil, nil)
	repo.On("UpdateUser", mock.Anything, "user-1", mock.MatchedBy(func(u models.User) bool {
		return u.PasswordHash == ""
	})).Return(1, nil)

	svc := New(repo)
	n, err := svc.Update(context.Background(), "user-1", models.DummyUserUpdate{
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  "ADMIN",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	repo.AssertExpectations(t)
}

func TestDelete_SelfDeleteDenied(t *testing.T) {
	repo := new(MockRepo)

	svc := New(repo)
	_, err := svc.Delete(context.Background(), "user-1", "user-1")

	assert.ErrorIs(t, err, ErrSelfDelete)
	repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestDelete_OtherUser(t *testing.T) {
	repo := new(MockRepo)
	repo.On("DeleteUser", mock.Anything, "user-2").Return(1, nil)

	svc := New(repo)
	n, err := svc.Delete(context.Background(), "user-1", "user-2")

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	repo.AssertExpectations(t)
}

func strPtr(s string) *string { return &s }
