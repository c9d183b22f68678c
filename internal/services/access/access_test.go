package access

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexusgrowth/client-portal/internal/blob"
	"github.com/nexusgrowth/client-portal/internal/models"
	"github.com/nexusgrowth/client-portal/internal/secrets"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) CreateAccess(ctx context.Context, access models.Access) (string, error) {
	args := m.Called(ctx, access)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) ListAccesses(ctx context.Context, clientID *string) ([]models.AccessWithClient, error) {
	args := m.Called(ctx, clientID)
	if res := args.Get(0); res != nil {
		return res.([]models.AccessWithClient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) ListAccessesByClient(ctx context.Context, clientID string) ([]models.Access, error) {
	args := m.Called(ctx, clientID)
	if res := args.Get(0); res != nil {
		return res.([]models.Access), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) GetAccessByID(ctx context.Context, id string) (*models.Access, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Access), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdateAccess(ctx context.Context, id string, access models.Access) (int, error) {
	args := m.Called(ctx, id, access)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) DeleteAccess(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) GetAccessIconURL(ctx context.Context, id string) (*string, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdateAccessIconURL(ctx context.Context, id string, url *string) (int, error) {
	args := m.Called(ctx, id, url)
	return args.Int(0), args.Error(1)
}

// reverseEncoder помогает убедиться, что секреты действительно проходят
// через кодировщик в обе стороны.
type reverseEncoder struct{}

func (reverseEncoder) Encode(plaintext string) (string, error) { return reverse(plaintext), nil }
func (reverseEncoder) Decode(stored string) (string, error)    { return reverse(stored), nil }

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func TestCreate_EncodesSecret(t *testing.T) {
	repo := new(MockRepo)
	repo.On("CreateAccess", mock.Anything, mock.MatchedBy(func(a models.Access) bool {
		return a.Password == "terces"
	})).Return("access-1", nil)

	svc := New(repo, reverseEncoder{}, nil)
	id, err := svc.Create(context.Background(), models.DummyAccess{
		ClientID:    "client-1",
		ServiceName: "Google Ads",
		Login:       "ads@client.com",
		Password:    "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-1", id)
	repo.AssertExpectations(t)
}

func TestList_DecodesSecrets(t *testing.T) {
	repo := new(MockRepo)
	repo.On("ListAccesses", mock.Anything, (*string)(nil)).Return([]models.AccessWithClient{
		{Access: models.Access{ID: "a1", Password: "terces"}},
	}, nil)

	svc := New(repo, reverseEncoder{}, nil)
	items, err := svc.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "secret", items[0].Password)
}

func TestCreateBulk_CreatesTemplateSet(t *testing.T) {
	repo := new(MockRepo)
	for _, tpl := range Templates {
		tpl := tpl
		repo.On("CreateAccess", mock.Anything, mock.MatchedBy(func(a models.Access) bool {
			return a.ServiceName == tpl.ServiceName && a.ClientID == "client-1" && a.Login == "shared@client.com"
		})).Return("id-"+tpl.ServiceName, nil).Once()
	}

	svc := New(repo, secrets.Noop{}, nil)
	ids, err := svc.CreateBulk(context.Background(), models.DummyBulkAccesses{
		ClientID: "client-1",
		Login:    "shared@client.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Len(t, ids, len(Templates))
	repo.AssertExpectations(t)
}

func TestReplaceIcon_UploadsBeforeDeletingOld(t *testing.T) {
	store, err := blob.NewLocalStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	oldURL, err := store.Put(context.Background(), "access-icons/a1/old.png", strings.NewReader("old"))
	require.NoError(t, err)

	repo := new(MockRepo)
	repo.On("GetAccessIconURL", mock.Anything, "a1").Return(&oldURL, nil)
	repo.On("UpdateAccessIconURL", mock.Anything, "a1", mock.AnythingOfType("*string")).Return(1, nil)

	svc := New(repo, secrets.Noop{}, store)
	newURL, err := svc.ReplaceIcon(context.Background(), "a1", "icon.png", strings.NewReader("new"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(newURL, "http://localhost:8080/uploads/access-icons/a1/"))
	// старый блоб уже удалён — повторное удаление падает
	assert.Error(t, store.Delete(context.Background(), oldURL))
	repo.AssertExpectations(t)
}
