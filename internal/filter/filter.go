// Package filter contains the pure filtering and aggregation functions
// shared by the calendar, list and map views.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// Fields is the filterable projection of an entity. A zero Date means the
// entity has no usable date and never matches a date-range bound.
type Fields struct {
	City           string
	OrganizationID int64
	Tags           []string
	Date           time.Time
	Texts          []string
}

// Criteria describes one filtered view. Dimensions combine with AND; the
// values inside a multi-select dimension combine with OR. An empty
// dimension applies no filtering.
type Criteria struct {
	Cities          []string
	OrganizationIDs []int64
	Tags            []string
	DateFrom        *time.Time
	DateTo          *time.Time
	SearchText      string
}

// Apply returns the members of items matching every active dimension of c.
// The result is a new slice preserving the relative order of items; Apply
// has no side effects and is safe to call on every refresh.
func Apply[T any](items []T, c Criteria, fields func(T) Fields) []T {
	out := make([]T, 0, len(items))

	for _, item := range items {
		if matches(fields(item), c) {
			out = append(out, item)
		}
	}

	return out
}

func matches(f Fields, c Criteria) bool {
	if len(c.Cities) > 0 && !matchesCity(f.City, c.Cities) {
		return false
	}

	if len(c.OrganizationIDs) > 0 && !containsInt64(c.OrganizationIDs, f.OrganizationID) {
		return false
	}

	if len(c.Tags) > 0 && !intersects(f.Tags, c.Tags) {
		return false
	}

	if c.DateFrom != nil {
		if f.Date.IsZero() || dayStart(f.Date).Before(dayStart(*c.DateFrom)) {
			return false
		}
	}

	if c.DateTo != nil {
		if f.Date.IsZero() || f.Date.After(dayEnd(*c.DateTo)) {
			return false
		}
	}

	if c.SearchText != "" && !matchesSearch(f.Texts, c.SearchText) {
		return false
	}

	return true
}

// matchesCity honours the "all cities" sentinel: entities not scoped to a
// single city stay visible regardless of the selected cities.
func matchesCity(city string, cities []string) bool {
	if city == "" {
		return false
	}

	if city == entities.AllCities {
		return true
	}

	for _, c := range cities {
		if c == city {
			return true
		}
	}

	return false
}

func matchesSearch(texts []string, search string) bool {
	needle := strings.ToLower(search)

	for _, t := range texts {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}

	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}

	return false
}

func containsInt64(vv []int64, v int64) bool {
	for _, x := range vv {
		if x == v {
			return true
		}
	}

	return false
}

// dayStart zeroes the time of day, the inclusive lower bound.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayEnd is 23:59:59.999999999, the inclusive upper bound.
func dayEnd(t time.Time) time.Time {
	return dayStart(t).Add(24*time.Hour - time.Nanosecond)
}

// Toggle flips the membership of v in the multi-select dimension values.
// Selecting then deselecting the same value restores the original set.
func Toggle[T comparable](values []T, v T) []T {
	out := make([]T, 0, len(values)+1)

	found := false
	for _, x := range values {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}

	if !found {
		out = append(out, v)
	}

	return out
}

// EventFields projects an event for filtering.
func EventFields(e entities.Event) Fields {
	return Fields{
		City:           e.City,
		OrganizationID: e.OrganizationID,
		Tags:           e.Tags,
		Date:           e.Date,
		Texts:          []string{e.Title, e.Description, e.FullDescription},
	}
}

// NewsFields projects a news item for filtering.
func NewsFields(n entities.News) Fields {
	return Fields{
		City:  n.City,
		Tags:  n.Tags,
		Date:  n.PublishedAt,
		Texts: []string{n.Title, n.Summary, n.Content},
	}
}

// OrganizationFields projects an organization for filtering.
func OrganizationFields(o entities.Organization) Fields {
	return Fields{
		City:           o.City,
		OrganizationID: o.ID,
		Texts:          []string{o.Name, o.ShortName, o.Description},
	}
}

// Events filters events.
func Events(ee []entities.Event, c Criteria) []entities.Event {
	return Apply(ee, c, EventFields)
}

// News filters news and orders the result most recent first.
func News(nn []entities.News, c Criteria) []entities.News {
	out := Apply(nn, c, NewsFields)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	return out
}

// Organizations filters organizations.
func Organizations(oo []entities.Organization, c Criteria) []entities.Organization {
	return Apply(oo, c, OrganizationFields)
}
