// Package catalog caches the public collections (organizations, events,
// news, knowledge base) fetched from the backend, so list views filter and
// group in memory without re-hitting the network.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dobrye-dela/dobro-go/internal/api"
	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// Store holds the last fetched copy of each public collection. A collection
// that failed to load stays empty; the others are unaffected.
type Store struct {
	client api.Client
	log    logrus.FieldLogger

	mu            sync.RWMutex
	organizations []entities.Organization
	events        []entities.Event
	news          []entities.News
	knowledgeBase []entities.KnowledgeBaseItem
}

// New ...
func New(client api.Client) *Store {
	return &Store{
		client: client,
		log:    logrus.WithField("package", "catalog"),
	}
}

// Load fetches all collections concurrently. A failed collection is logged
// and left empty; Load itself fails only when ctx is done.
func (s *Store) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.RefreshOrganizations(ctx); err != nil {
			s.log.WithError(err).Warn("failed to load organizations")
		}
		return nil
	})
	g.Go(func() error {
		if err := s.RefreshEvents(ctx); err != nil {
			s.log.WithError(err).Warn("failed to load events")
		}
		return nil
	})
	g.Go(func() error {
		if err := s.RefreshNews(ctx); err != nil {
			s.log.WithError(err).Warn("failed to load news")
		}
		return nil
	})
	g.Go(func() error {
		if err := s.RefreshKnowledgeBase(ctx); err != nil {
			s.log.WithError(err).Warn("failed to load knowledge base")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// RefreshOrganizations re-fetches the organizations collection.
func (s *Store) RefreshOrganizations(ctx context.Context) error {
	items, err := s.client.Organizations(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch organizations: %w", err)
	}

	s.mu.Lock()
	s.organizations = items
	s.mu.Unlock()

	return nil
}

// RefreshEvents re-fetches the events collection.
func (s *Store) RefreshEvents(ctx context.Context) error {
	items, err := s.client.Events(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	s.mu.Lock()
	s.events = items
	s.mu.Unlock()

	return nil
}

// RefreshNews re-fetches the news collection.
func (s *Store) RefreshNews(ctx context.Context) error {
	items, err := s.client.News(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch news: %w", err)
	}

	s.mu.Lock()
	s.news = items
	s.mu.Unlock()

	return nil
}

// RefreshKnowledgeBase re-fetches the knowledge base collection.
func (s *Store) RefreshKnowledgeBase(ctx context.Context) error {
	items, err := s.client.KnowledgeBase(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch knowledge base: %w", err)
	}

	s.mu.Lock()
	s.knowledgeBase = items
	s.mu.Unlock()

	return nil
}

// Organizations returns a copy of the cached organizations.
func (s *Store) Organizations() []entities.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Organization(nil), s.organizations...)
}

// Events returns a copy of the cached events.
func (s *Store) Events() []entities.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Event(nil), s.events...)
}

// News returns a copy of the cached news.
func (s *Store) News() []entities.News {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.News(nil), s.news...)
}

// KnowledgeBase returns a copy of the cached knowledge base items.
func (s *Store) KnowledgeBase() []entities.KnowledgeBaseItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.KnowledgeBaseItem(nil), s.knowledgeBase...)
}

// OrganizationByID looks up a cached organization.
func (s *Store) OrganizationByID(id int64) (entities.Organization, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.organizations {
		if s.organizations[i].ID == id {
			return s.organizations[i], true
		}
	}
	return entities.Organization{}, false
}

// OrganizerName resolves the display name of an event's organizer: the cached
// organization's name when the event carries an organization id known to the
// catalog, otherwise the event's own free-text organizer field.
func (s *Store) OrganizerName(e entities.Event) string {
	if e.OrganizationID != 0 {
		if org, ok := s.OrganizationByID(e.OrganizationID); ok {
			if org.ShortName != "" {
				return org.ShortName
			}
			return org.Name
		}
	}
	return e.Organizer
}
