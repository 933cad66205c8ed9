// Package favorites keeps the per-user collections (favorite entities and
// attended events) in sync with the backend, applying optimistic local flips
// that are reconciled with an authoritative refetch when a call fails.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// ErrToggleInFlight is returned when a toggle for the same entity has not
// finished yet. The caller should keep the current state and retry later.
var ErrToggleInFlight = errors.New("toggle already in flight")

// attendanceFlight namespaces attendance toggles in the in-flight set so
// they never collide with event favorites.
const attendanceFlight = entities.FavoriteKind("attendance")

type flightKey struct {
	kind entities.FavoriteKind
	id   int64
}

// Store holds the authenticated user's favorites and attended events. All
// methods are safe for concurrent use.
type Store struct {
	client api.Client
	log    logrus.FieldLogger

	mu       sync.Mutex
	inFlight map[flightKey]struct{}

	events        []entities.Event
	news          []entities.News
	organizations []entities.Organization
	knowledgeBase []entities.KnowledgeBaseItem
	attended      []entities.Event
}

// New ...
func New(client api.Client) *Store {
	return &Store{
		client:   client,
		log:      logrus.WithField("package", "favorites"),
		inFlight: make(map[flightKey]struct{}),
	}
}

// Load fetches every collection concurrently. A failed collection is logged
// and left empty so one broken endpoint does not blank the others.
func (s *Store) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.client.FavoriteEvents(ctx)
		if err != nil {
			s.log.WithError(err).Warn("failed to load favorite events")
			return nil
		}
		s.mu.Lock()
		s.events = items
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		items, err := s.client.FavoriteNews(ctx)
		if err != nil {
			s.log.WithError(err).Warn("failed to load favorite news")
			return nil
		}
		s.mu.Lock()
		s.news = items
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		items, err := s.client.FavoriteOrganizations(ctx)
		if err != nil {
			s.log.WithError(err).Warn("failed to load favorite organizations")
			return nil
		}
		s.mu.Lock()
		s.organizations = items
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		items, err := s.client.FavoriteKnowledgeBase(ctx)
		if err != nil {
			s.log.WithError(err).Warn("failed to load favorite knowledge base")
			return nil
		}
		s.mu.Lock()
		s.knowledgeBase = items
		s.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		items, err := s.client.MyEvents(ctx)
		if err != nil {
			s.log.WithError(err).Warn("failed to load attended events")
			return nil
		}
		s.mu.Lock()
		s.attended = items
		s.mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Clear drops every collection, e.g. on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	s.news = nil
	s.organizations = nil
	s.knowledgeBase = nil
	s.attended = nil
}

// ToggleEvent flips the favorite state of an event and reports the new state.
func (s *Store) ToggleEvent(ctx context.Context, e entities.Event) (bool, error) {
	return toggle(ctx, s, entities.FavoriteEvents, e, &s.events, eventID, s.client.FavoriteEvents)
}

// ToggleNews flips the favorite state of a news item and reports the new state.
func (s *Store) ToggleNews(ctx context.Context, n entities.News) (bool, error) {
	return toggle(ctx, s, entities.FavoriteNews, n, &s.news, newsID, s.client.FavoriteNews)
}

// ToggleOrganization flips the favorite state of an organization and reports
// the new state.
func (s *Store) ToggleOrganization(ctx context.Context, o entities.Organization) (bool, error) {
	return toggle(ctx, s, entities.FavoriteNKOs, o, &s.organizations, organizationID, s.client.FavoriteOrganizations)
}

// ToggleKnowledgeBaseItem flips the favorite state of a knowledge base item
// and reports the new state.
func (s *Store) ToggleKnowledgeBaseItem(ctx context.Context, item entities.KnowledgeBaseItem) (bool, error) {
	return toggle(ctx, s, entities.FavoriteKnowledgeBase, item, &s.knowledgeBase, knowledgeBaseItemID, s.client.FavoriteKnowledgeBase)
}

// IsFavoriteEvent ...
func (s *Store) IsFavoriteEvent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.events, id, eventID)
}

// IsFavoriteNews ...
func (s *Store) IsFavoriteNews(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.news, id, newsID)
}

// IsFavoriteOrganization ...
func (s *Store) IsFavoriteOrganization(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.organizations, id, organizationID)
}

// IsFavoriteKnowledgeBaseItem ...
func (s *Store) IsFavoriteKnowledgeBaseItem(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.knowledgeBase, id, knowledgeBaseItemID)
}

// Events returns a copy of the favorite events.
func (s *Store) Events() []entities.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Event(nil), s.events...)
}

// News returns a copy of the favorite news.
func (s *Store) News() []entities.News {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.News(nil), s.news...)
}

// Organizations returns a copy of the favorite organizations.
func (s *Store) Organizations() []entities.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Organization(nil), s.organizations...)
}

// KnowledgeBase returns a copy of the favorite knowledge base items.
func (s *Store) KnowledgeBase() []entities.KnowledgeBaseItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.KnowledgeBaseItem(nil), s.knowledgeBase...)
}

// Attended returns a copy of the events the user registered for.
func (s *Store) Attended() []entities.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Event(nil), s.attended...)
}

// IsAttending ...
func (s *Store) IsAttending(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.attended, id, eventID)
}

// ToggleAttendance registers for or withdraws from an event and reports
// whether the user is attending afterwards. Registration trusts the refetched
// server list; withdrawal is applied optimistically and reconciled with a
// refetch when the call fails.
func (s *Store) ToggleAttendance(ctx context.Context, e entities.Event) (bool, error) {
	key := flightKey{kind: attendanceFlight, id: e.ID}

	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return contains(s.attended, e.ID, eventID), ErrToggleInFlight
	}
	s.inFlight[key] = struct{}{}
	attending := contains(s.attended, e.ID, eventID)
	if attending {
		s.attended = remove(s.attended, e.ID, eventID)
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	if attending {
		if err := s.client.UnregisterFromEvent(ctx, e.ID); err != nil {
			s.reconcileAttended(ctx, func() {
				s.attended = append(s.attended, e)
			})
			return s.IsAttending(e.ID), fmt.Errorf("failed to unregister from event: %w", err)
		}
		return false, nil
	}

	if err := s.client.RegisterForEvent(ctx, e.ID); err != nil {
		return false, fmt.Errorf("failed to register for event: %w", err)
	}

	items, err := s.client.MyEvents(ctx)
	if err != nil {
		// Registration went through; keep an optimistic copy until the
		// next successful refetch.
		s.log.WithError(err).Warn("failed to refetch attended events")
		s.mu.Lock()
		s.attended = append(s.attended, e)
		s.mu.Unlock()
		return true, nil
	}

	s.mu.Lock()
	s.attended = items
	s.mu.Unlock()

	return true, nil
}

// reconcileAttended replaces the attended list with the server copy, falling
// back to revert when the refetch fails too.
func (s *Store) reconcileAttended(ctx context.Context, revert func()) {
	items, err := s.client.MyEvents(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.WithError(err).Warn("failed to refetch attended events")
		revert()
		return
	}
	s.attended = items
}

// toggle flips membership of item in coll optimistically, pushes the change
// to the backend and, when the call fails, replaces coll with the server's
// authoritative copy (reverting the flip only when the refetch fails too).
func toggle[T any](
	ctx context.Context,
	s *Store,
	kind entities.FavoriteKind,
	item T,
	coll *[]T,
	idOf func(T) int64,
	fetch func(context.Context) ([]T, error),
) (bool, error) {
	id := idOf(item)
	key := flightKey{kind: kind, id: id}

	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		was := contains(*coll, id, idOf)
		s.mu.Unlock()
		return was, ErrToggleInFlight
	}
	s.inFlight[key] = struct{}{}

	was := contains(*coll, id, idOf)
	if was {
		*coll = remove(*coll, id, idOf)
	} else {
		*coll = append(*coll, item)
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	var err error
	if was {
		err = s.client.RemoveFavorite(ctx, kind, id)
	} else {
		err = s.client.AddFavorite(ctx, kind, id)
	}
	if err == nil {
		return !was, nil
	}

	items, ferr := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ferr != nil {
		s.log.WithError(ferr).WithField("kind", kind).Warn("failed to refetch favorites")
		if was {
			*coll = append(*coll, item)
		} else {
			*coll = remove(*coll, id, idOf)
		}
		return was, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	*coll = items
	return contains(items, id, idOf), fmt.Errorf("failed to toggle favorite: %w", err)
}

func contains[T any](items []T, id int64, idOf func(T) int64) bool {
	for i := range items {
		if idOf(items[i]) == id {
			return true
		}
	}
	return false
}

func remove[T any](items []T, id int64, idOf func(T) int64) []T {
	out := items[:0]
	for i := range items {
		if idOf(items[i]) != id {
			out = append(out, items[i])
		}
	}
	return out
}

func eventID(e entities.Event) int64 { return e.ID }

func newsID(n entities.News) int64 { return n.ID }

func organizationID(o entities.Organization) int64 { return o.ID }

func knowledgeBaseItemID(i entities.KnowledgeBaseItem) int64 { return i.ID }
