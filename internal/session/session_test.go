package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/api/mock"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

var testUser = &entities.User{
	ID:    1,
	Email: "user@example.com",
	Name:  "Мария",
	Role:  entities.RoleUser,
}

func newStore(t *testing.T) (*Store, *mock.MockClient, string) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mock.NewMockClient(ctrl)
	statePath := filepath.Join(t.TempDir(), "session.json")

	return New(client, statePath), client, statePath
}

func TestStore_Login(t *testing.T) {
	s, client, statePath := newStore(t)

	gomock.InOrder(
		client.EXPECT().Login(gomock.Any(), "user@example.com", "secret").Return("tkn", nil),
		client.EXPECT().SetToken("tkn"),
		client.EXPECT().Me(gomock.Any()).Return(testUser, nil),
	)

	require.NoError(t, s.Login(context.Background(), "user@example.com", "secret"))

	assert.True(t, s.Authenticated())
	assert.Equal(t, "tkn", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "Мария", s.User().Name)

	b, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"tkn"}`, string(b))
}

func TestStore_Login_profileFailure(t *testing.T) {
	s, client, statePath := newStore(t)

	gomock.InOrder(
		client.EXPECT().Login(gomock.Any(), "user@example.com", "secret").Return("tkn", nil),
		client.EXPECT().SetToken("tkn"),
		client.EXPECT().Me(gomock.Any()).Return(nil, api.ErrUnauthorized),
		client.EXPECT().SetToken(""),
	)

	require.Error(t, s.Login(context.Background(), "user@example.com", "secret"))

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.NoFileExists(t, statePath)
}

func TestStore_Restore(t *testing.T) {
	s, client, statePath := newStore(t)

	require.NoError(t, os.WriteFile(statePath, []byte(`{"token":"tkn"}`), 0o600))

	gomock.InOrder(
		client.EXPECT().SetToken("tkn"),
		client.EXPECT().Me(gomock.Any()).Return(testUser, nil),
	)

	require.NoError(t, s.Restore(context.Background()))

	assert.True(t, s.Authenticated())
	assert.Equal(t, int64(1), s.User().ID)
}

func TestStore_Restore_rejectedToken(t *testing.T) {
	s, client, statePath := newStore(t)

	require.NoError(t, os.WriteFile(statePath, []byte(`{"token":"stale"}`), 0o600))

	gomock.InOrder(
		client.EXPECT().SetToken("stale"),
		client.EXPECT().Me(gomock.Any()).Return(nil, api.ErrUnauthorized),
		client.EXPECT().SetToken(""),
	)

	require.NoError(t, s.Restore(context.Background()))

	assert.False(t, s.Authenticated())
	assert.NoFileExists(t, statePath)
}

func TestStore_Restore_noState(t *testing.T) {
	s, _, _ := newStore(t)

	require.NoError(t, s.Restore(context.Background()))
	assert.False(t, s.Authenticated())
}

func TestStore_Logout(t *testing.T) {
	s, client, statePath := newStore(t)

	gomock.InOrder(
		client.EXPECT().Login(gomock.Any(), "user@example.com", "secret").Return("tkn", nil),
		client.EXPECT().SetToken("tkn"),
		client.EXPECT().Me(gomock.Any()).Return(testUser, nil),
		client.EXPECT().SetToken(""),
	)

	require.NoError(t, s.Login(context.Background(), "user@example.com", "secret"))
	s.Logout()

	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
	assert.NoFileExists(t, statePath)
}

func TestStore_Can(t *testing.T) {
	tt := []struct {
		name string
		user *entities.User
		cap  entities.Capability
		want bool
	}{
		{
			name: "user can favorite",
			user: &entities.User{Role: entities.RoleUser},
			cap:  entities.CapFavorite,
			want: true,
		},
		{
			name: "user cannot moderate",
			user: &entities.User{Role: entities.RoleUser},
			cap:  entities.CapModerate,
			want: false,
		},
		{
			name: "admin can manage users",
			user: &entities.User{Role: entities.RoleAdmin},
			cap:  entities.CapManageUsers,
			want: true,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newStore(t)
			s.user, s.token = tc.user, "tkn"

			assert.Equal(t, tc.want, s.Can(tc.cap))
		})
	}

	t.Run("unauthenticated has no capabilities", func(t *testing.T) {
		s, _, _ := newStore(t)
		assert.False(t, s.Can(entities.CapFavorite))
	})
}

func TestStore_TokenExpiresAt(t *testing.T) {
	s, _, _ := newStore(t)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	s.token = token
	assert.True(t, exp.Equal(s.TokenExpiresAt()))

	s.token = "not-a-jwt"
	assert.True(t, s.TokenExpiresAt().IsZero())

	s.token = ""
	assert.True(t, s.TokenExpiresAt().IsZero())
}

func TestStore_RefreshUser(t *testing.T) {
	s, client, _ := newStore(t)
	s.token, s.user = "tkn", testUser

	updated := *testUser
	updated.City = "Омск"

	client.EXPECT().Me(gomock.Any()).Return(&updated, nil)

	require.NoError(t, s.RefreshUser(context.Background()))
	assert.Equal(t, "Омск", s.User().City)

	t.Run("unauthenticated", func(t *testing.T) {
		s, _, _ := newStore(t)
		assert.ErrorIs(t, s.RefreshUser(context.Background()), ErrNotAuthenticated)
	})
}

func TestStore_statePermissions(t *testing.T) {
	s, client, statePath := newStore(t)

	gomock.InOrder(
		client.EXPECT().Login(gomock.Any(), "user@example.com", "secret").Return("tkn", nil),
		client.EXPECT().SetToken("tkn"),
		client.EXPECT().Me(gomock.Any()).Return(testUser, nil),
	)

	require.NoError(t, s.Login(context.Background(), "user@example.com", "secret"))

	info, err := os.Stat(statePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	var st state
	b, err := os.ReadFile(statePath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &st))
	assert.Equal(t, "tkn", st.Token)
}
