package rest

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/apitest"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

func setup(t *testing.T) (*apitest.Backend, *Client) {
	t.Helper()

	backend := apitest.New()
	backend.Organizations = []entities.Organization{
		{ID: 1, Name: "Добрые руки", City: "Москва", Status: entities.ModerationApproved},
		{ID: 2, Name: "Чистый город", City: "Омск", Status: entities.ModerationApproved},
	}
	backend.Events = []entities.Event{
		{ID: 10, Title: "Субботник", City: "Москва", OrganizationID: 1, Date: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 11, Title: "Марафон", City: entities.AllCities, OrganizationID: 2},
	}
	backend.News = []entities.News{
		{ID: 20, Title: "Открытие центра", PublishedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	backend.KnowledgeBase = []entities.KnowledgeBaseItem{
		{ID: 30, Title: "Как стать волонтером", Type: entities.MaterialDocument},
	}

	srv := backend.Start()
	t.Cleanup(srv.Close)

	return backend, New(srv.URL)
}

func TestClient_publicReads(t *testing.T) {
	ctx := context.Background()
	_, c := setup(t)

	oo, err := c.Organizations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, oo, 2)
	assert.Equal(t, "Добрые руки", oo[0].Name)

	limited, err := c.Organizations(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	e, err := c.Event(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Субботник", e.Title)
	assert.EqualValues(t, 1, e.OrganizationID)
	assert.Equal(t, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), e.Date)

	_, err = c.Event(ctx, 999)
	assert.True(t, errors.Is(err, api.ErrNotFound))

	nn, err := c.News(ctx, 0)
	require.NoError(t, err)
	require.Len(t, nn, 1)
	assert.Equal(t, "Открытие центра", nn[0].Title)

	kb, err := c.KnowledgeBase(ctx, 0)
	require.NoError(t, err)
	require.Len(t, kb, 1)
	assert.Equal(t, entities.MaterialDocument, kb[0].Type)
}

func TestClient_loginAndMe(t *testing.T) {
	ctx := context.Background()
	_, c := setup(t)

	// unauthenticated /users/me rejects
	_, err := c.Me(ctx)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))

	_, err = c.Login(ctx, "user@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Неверный логин или пароль", apiErr.Detail)

	token, err := c.Login(ctx, "user@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "test-token", token)

	c.SetToken(token)

	u, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", u.Email)
	assert.Equal(t, entities.RoleUser, u.Role)
}

func TestClient_favoritesRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend, c := setup(t)
	c.SetToken(backend.Token)

	require.NoError(t, c.AddFavorite(ctx, entities.FavoriteEvents, 10))

	ee, err := c.FavoriteEvents(ctx)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.EqualValues(t, 10, ee[0].ID)

	require.NoError(t, c.RemoveFavorite(ctx, entities.FavoriteEvents, 10))

	ee, err = c.FavoriteEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, ee)
}

func TestClient_attendance(t *testing.T) {
	ctx := context.Background()
	backend, c := setup(t)
	c.SetToken(backend.Token)

	require.NoError(t, c.RegisterForEvent(ctx, 11))

	ee, err := c.MyEvents(ctx)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.Equal(t, "Марафон", ee[0].Title)

	require.NoError(t, c.UnregisterFromEvent(ctx, 11))

	ee, err = c.MyEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, ee)
}

func TestClient_moderation(t *testing.T) {
	ctx := context.Background()
	backend, c := setup(t)
	c.SetToken(backend.Token)

	backend.PendingOrganizations = []entities.Organization{
		{ID: 3, Name: "Новое НКО", Email: "new@nko.ru", Status: entities.ModerationPending},
	}

	pending, err := c.PendingOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, c.ApproveOrganization(ctx, "new@nko.ru"))

	pending, err = c.PendingOrganizations(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	oo, err := c.Organizations(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, oo, 3)
}

func TestClient_multipartApplication(t *testing.T) {
	ctx := context.Background()
	backend, c := setup(t)

	err := c.SubmitNKOApplication(ctx, api.NKOApplicationParams{
		Fields:   map[string]string{"organization_name": "Добро", "email": "a@b.ru"},
		LogoName: "logo.png",
		Logo:     bytes.NewReader([]byte{0x89, 'P', 'N', 'G'}),
	})
	require.NoError(t, err)

	calls := backend.Calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, "POST /auth/register/nko-application", calls[len(calls)-1])
}

func TestClient_cacheTTL(t *testing.T) {
	ctx := context.Background()

	backend := apitest.New()
	backend.Events = []entities.Event{{ID: 1, Title: "x"}}
	srv := backend.Start()
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithCacheTTL(time.Minute))

	_, err := c.Events(ctx, 0)
	require.NoError(t, err)
	_, err = c.Events(ctx, 0)
	require.NoError(t, err)

	assert.Len(t, backend.Calls(), 1, "second read must be served from cache")

	// detail reads bypass the cache
	_, err = c.Event(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, backend.Calls(), 2)
}
