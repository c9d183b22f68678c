package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	s, err := NewLocalStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func TestPutAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	url, err := s.Put(ctx, "avatars/client/abc.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/avatars/client/abc.png", url)

	data, err := os.ReadFile(filepath.Join(s.baseDir, "avatars", "client", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(s.baseDir, "avatars", "client", "abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_ForeignURL(t *testing.T) {
	s := newTestStore(t)

	err := s.Delete(context.Background(), "https://elsewhere.example.com/x.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForeignURL)
	assert.False(t, s.Owns("https://elsewhere.example.com/x.png"))
}

func TestPut_RejectsTraversal(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Put(context.Background(), "../outside.txt", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestPut_OverwriteReplacesContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Put(ctx, "icons/a.png", strings.NewReader("old"))
	require.NoError(t, err)
	url, err := s.Put(ctx, "icons/a.png", strings.NewReader("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(s.baseDir, "icons", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.True(t, s.Owns(url))
}
