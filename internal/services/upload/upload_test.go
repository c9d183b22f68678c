package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexusgrowth/client-portal/internal/blob"
)

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) GetUserAvatarURL(ctx context.Context, id string) (*string, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) UpdateUserAvatarURL(ctx context.Context, id string, url *string) (int, error) {
	args := m.Called(ctx, id, url)
	return args.Int(0), args.Error(1)
}

type MockClients struct {
	mock.Mock
}

func (m *MockClients) GetClientLogoURL(ctx context.Context, id string) (*string, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClients) UpdateClientLogoURL(ctx context.Context, id string, url *string) (int, error) {
	args := m.Called(ctx, id, url)
	return args.Int(0), args.Error(1)
}

func newStore(t *testing.T) (*blob.LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := blob.NewLocalStore(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)
	return store, dir
}

func TestReplaceAvatar_FirstUpload(t *testing.T) {
	store, dir := newStore(t)
	users := new(MockUsers)
	users.On("GetUserAvatarURL", mock.Anything, "user-1").Return(nil, nil)
	users.On("UpdateUserAvatarURL", mock.Anything, "user-1", mock.AnythingOfType("*string")).Return(1, nil)

	svc := New(users, new(MockClients), store)
	url, err := svc.ReplaceAvatar(context.Background(), "user-1", "me.png", strings.NewReader("img"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/avatars/user-1/"))

	rel := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestReplaceLogo_DeletesOldBlob(t *testing.T) {
	store, dir := newStore(t)
	oldURL, err := store.Put(context.Background(), "logos/client-1/old.png", strings.NewReader("old"))
	require.NoError(t, err)

	clients := new(MockClients)
	clients.On("GetClientLogoURL", mock.Anything, "client-1").Return(&oldURL, nil)
	clients.On("UpdateClientLogoURL", mock.Anything, "client-1", mock.AnythingOfType("*string")).Return(1, nil)

	svc := New(new(MockUsers), clients, store)
	newURL, err := svc.ReplaceLogo(context.Background(), "client-1", "logo.png", strings.NewReader("new"))

	require.NoError(t, err)
	assert.NotEqual(t, oldURL, newURL)

	oldRel := strings.TrimPrefix(oldURL, "http://localhost:8080/uploads/")
	_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(oldRel)))
	assert.True(t, os.IsNotExist(statErr))
	clients.AssertExpectations(t)
}

func TestReplaceAvatar_RowUpdateFailureRemovesNewBlob(t *testing.T) {
	store, dir := newStore(t)
	users := new(MockUsers)
	users.On("GetUserAvatarURL", mock.Anything, "user-1").Return(nil, nil)
	users.On("UpdateUserAvatarURL", mock.Anything, "user-1", mock.AnythingOfType("*string")).
		Return(0, errors.New("db down"))

	svc := New(users, new(MockClients), store)
	_, err := svc.ReplaceAvatar(context.Background(), "user-1", "me.png", strings.NewReader("img"))

	require.Error(t, err)

	entries, readErr := os.ReadDir(filepath.Join(dir, "avatars", "user-1"))
	if readErr == nil {
		assert.Empty(t, entries)
	}
}
