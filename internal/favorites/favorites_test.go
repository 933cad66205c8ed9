package favorites

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobrye-dela/dobro-go/internal/api/mock"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

var (
	testEvent = entities.Event{ID: 1, Title: "Субботник", City: "Москва"}
	testNews  = entities.News{ID: 5, Title: "Итоги года"}
	testOrg   = entities.Organization{ID: 10, Name: "Фонд добрых дел"}
	testItem  = entities.KnowledgeBaseItem{ID: 7, Title: "Как открыть НКО"}
)

func newStore(t *testing.T) (*Store, *mock.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mock.NewMockClient(ctrl)
	return New(client), client
}

func TestStore_Load(t *testing.T) {
	s, client := newStore(t)

	client.EXPECT().FavoriteEvents(gomock.Any()).Return([]entities.Event{testEvent}, nil)
	client.EXPECT().FavoriteNews(gomock.Any()).Return([]entities.News{testNews}, nil)
	client.EXPECT().FavoriteOrganizations(gomock.Any()).Return([]entities.Organization{testOrg}, nil)
	client.EXPECT().FavoriteKnowledgeBase(gomock.Any()).Return([]entities.KnowledgeBaseItem{testItem}, nil)
	client.EXPECT().MyEvents(gomock.Any()).Return([]entities.Event{testEvent}, nil)

	require.NoError(t, s.Load(context.Background()))

	assert.True(t, s.IsFavoriteEvent(1))
	assert.True(t, s.IsFavoriteNews(5))
	assert.True(t, s.IsFavoriteOrganization(10))
	assert.True(t, s.IsFavoriteKnowledgeBaseItem(7))
	assert.True(t, s.IsAttending(1))
}

func TestStore_Load_failedCollectionIsIsolated(t *testing.T) {
	s, client := newStore(t)

	client.EXPECT().FavoriteEvents(gomock.Any()).Return(nil, errors.New("boom"))
	client.EXPECT().FavoriteNews(gomock.Any()).Return([]entities.News{testNews}, nil)
	client.EXPECT().FavoriteOrganizations(gomock.Any()).Return([]entities.Organization{testOrg}, nil)
	client.EXPECT().FavoriteKnowledgeBase(gomock.Any()).Return([]entities.KnowledgeBaseItem{testItem}, nil)
	client.EXPECT().MyEvents(gomock.Any()).Return([]entities.Event{testEvent}, nil)

	require.NoError(t, s.Load(context.Background()))

	assert.Empty(t, s.Events())
	assert.True(t, s.IsFavoriteNews(5))
	assert.True(t, s.IsAttending(1))
}

func TestStore_Toggle_roundTrip(t *testing.T) {
	s, client := newStore(t)

	gomock.InOrder(
		client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteEvents, int64(1)).Return(nil),
		client.EXPECT().RemoveFavorite(gomock.Any(), entities.FavoriteEvents, int64(1)).Return(nil),
	)

	now, err := s.ToggleEvent(context.Background(), testEvent)
	require.NoError(t, err)
	assert.True(t, now)
	assert.True(t, s.IsFavoriteEvent(1))
	assert.Equal(t, []entities.Event{testEvent}, s.Events())

	now, err = s.ToggleEvent(context.Background(), testEvent)
	require.NoError(t, err)
	assert.False(t, now)
	assert.False(t, s.IsFavoriteEvent(1))
	assert.Empty(t, s.Events())
}

func TestStore_Toggle_eachKindHitsItsEndpoint(t *testing.T) {
	s, client := newStore(t)

	client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteNews, int64(5)).Return(nil)
	client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteNKOs, int64(10)).Return(nil)
	client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteKnowledgeBase, int64(7)).Return(nil)

	now, err := s.ToggleNews(context.Background(), testNews)
	require.NoError(t, err)
	assert.True(t, now)

	now, err = s.ToggleOrganization(context.Background(), testOrg)
	require.NoError(t, err)
	assert.True(t, now)

	now, err = s.ToggleKnowledgeBaseItem(context.Background(), testItem)
	require.NoError(t, err)
	assert.True(t, now)
}

func TestStore_Toggle_failureRefetchesAuthoritativeCopy(t *testing.T) {
	s, client := newStore(t)

	authoritative := []entities.Event{{ID: 2, Title: "Сбор книг"}}

	gomock.InOrder(
		client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteEvents, int64(1)).Return(errors.New("boom")),
		client.EXPECT().FavoriteEvents(gomock.Any()).Return(authoritative, nil),
	)

	now, err := s.ToggleEvent(context.Background(), testEvent)
	require.Error(t, err)
	assert.False(t, now)
	assert.Equal(t, authoritative, s.Events(), "server copy wins over the optimistic flip")
}

func TestStore_Toggle_failedRefetchRevertsFlip(t *testing.T) {
	s, client := newStore(t)

	gomock.InOrder(
		client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteEvents, int64(1)).Return(errors.New("boom")),
		client.EXPECT().FavoriteEvents(gomock.Any()).Return(nil, errors.New("boom again")),
	)

	now, err := s.ToggleEvent(context.Background(), testEvent)
	require.Error(t, err)
	assert.False(t, now)
	assert.Empty(t, s.Events())
}

func TestStore_Toggle_inFlightGuard(t *testing.T) {
	s, client := newStore(t)

	started := make(chan struct{})
	release := make(chan struct{})

	client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteEvents, int64(1)).
		DoAndReturn(func(context.Context, entities.FavoriteKind, int64) error {
			close(started)
			<-release
			return nil
		})

	done := make(chan struct{})
	go func() {
		defer close(done)

		now, err := s.ToggleEvent(context.Background(), testEvent)
		assert.NoError(t, err)
		assert.True(t, now)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first toggle never reached the client")
	}

	_, err := s.ToggleEvent(context.Background(), testEvent)
	assert.ErrorIs(t, err, ErrToggleInFlight)

	close(release)
	<-done

	// A different entity is not blocked by the guard.
	client.EXPECT().AddFavorite(gomock.Any(), entities.FavoriteEvents, int64(2)).Return(nil)
	now, err := s.ToggleEvent(context.Background(), entities.Event{ID: 2})
	require.NoError(t, err)
	assert.True(t, now)
}

func TestStore_Clear(t *testing.T) {
	s, client := newStore(t)

	client.EXPECT().FavoriteEvents(gomock.Any()).Return([]entities.Event{testEvent}, nil)
	client.EXPECT().FavoriteNews(gomock.Any()).Return([]entities.News{testNews}, nil)
	client.EXPECT().FavoriteOrganizations(gomock.Any()).Return([]entities.Organization{testOrg}, nil)
	client.EXPECT().FavoriteKnowledgeBase(gomock.Any()).Return([]entities.KnowledgeBaseItem{testItem}, nil)
	client.EXPECT().MyEvents(gomock.Any()).Return([]entities.Event{testEvent}, nil)

	require.NoError(t, s.Load(context.Background()))
	s.Clear()

	assert.Empty(t, s.Events())
	assert.Empty(t, s.News())
	assert.Empty(t, s.Organizations())
	assert.Empty(t, s.KnowledgeBase())
	assert.Empty(t, s.Attended())
}

func TestStore_ToggleAttendance_register(t *testing.T) {
	s, client := newStore(t)

	serverCopy := []entities.Event{testEvent, {ID: 3, Title: "Донорская акция"}}

	gomock.InOrder(
		client.EXPECT().RegisterForEvent(gomock.Any(), int64(1)).Return(nil),
		client.EXPECT().MyEvents(gomock.Any()).Return(serverCopy, nil),
	)

	attending, err := s.ToggleAttendance(context.Background(), testEvent)
	require.NoError(t, err)
	assert.True(t, attending)
	assert.Equal(t, serverCopy, s.Attended(), "registration trusts the refetched list")
}

func TestStore_ToggleAttendance_registerRefetchFailure(t *testing.T) {
	s, client := newStore(t)

	gomock.InOrder(
		client.EXPECT().RegisterForEvent(gomock.Any(), int64(1)).Return(nil),
		client.EXPECT().MyEvents(gomock.Any()).Return(nil, errors.New("boom")),
	)

	attending, err := s.ToggleAttendance(context.Background(), testEvent)
	require.NoError(t, err)
	assert.True(t, attending)
	assert.Equal(t, []entities.Event{testEvent}, s.Attended(), "optimistic copy kept until next refetch")
}

func TestStore_ToggleAttendance_unregister(t *testing.T) {
	s, client := newStore(t)
	s.attended = []entities.Event{testEvent}

	client.EXPECT().UnregisterFromEvent(gomock.Any(), int64(1)).Return(nil)

	attending, err := s.ToggleAttendance(context.Background(), testEvent)
	require.NoError(t, err)
	assert.False(t, attending)
	assert.Empty(t, s.Attended())
}

func TestStore_ToggleAttendance_unregisterFailure(t *testing.T) {
	s, client := newStore(t)
	s.attended = []entities.Event{testEvent}

	serverCopy := []entities.Event{testEvent}

	gomock.InOrder(
		client.EXPECT().UnregisterFromEvent(gomock.Any(), int64(1)).Return(errors.New("boom")),
		client.EXPECT().MyEvents(gomock.Any()).Return(serverCopy, nil),
	)

	attending, err := s.ToggleAttendance(context.Background(), testEvent)
	require.Error(t, err)
	assert.True(t, attending)
	assert.Equal(t, serverCopy, s.Attended())
}

func TestStore_ToggleAttendance_unregisterFailedRefetchReverts(t *testing.T) {
	s, client := newStore(t)
	s.attended = []entities.Event{testEvent}

	gomock.InOrder(
		client.EXPECT().UnregisterFromEvent(gomock.Any(), int64(1)).Return(errors.New("boom")),
		client.EXPECT().MyEvents(gomock.Any()).Return(nil, errors.New("boom again")),
	)

	attending, err := s.ToggleAttendance(context.Background(), testEvent)
	require.Error(t, err)
	assert.True(t, attending)
	assert.Equal(t, []entities.Event{testEvent}, s.Attended())
}
