// Package apitest is an in-process fake of the platform backend used to
// exercise the REST client and the stores in tests.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dobrye-dela/dobro-go/internal/entities"
)

// Backend holds the fixture state served to the client under test. Fields
// may be set directly before the first request; afterwards mutate only
// through requests.
type Backend struct {
	mu sync.Mutex

	// Token is the bearer credential accepted on authenticated routes.
	Token    string
	Email    string
	Password string
	User     entities.User

	Organizations []entities.Organization
	Events        []entities.Event
	News          []entities.News
	KnowledgeBase []entities.KnowledgeBaseItem

	FavoriteEvents        []entities.Event
	FavoriteNews          []entities.News
	FavoriteOrganizations []entities.Organization
	FavoriteKnowledgeBase []entities.KnowledgeBaseItem
	Attending             []entities.Event

	PendingOrganizations []entities.Organization
	PendingEvents        []entities.Event

	// Fail makes the matched request fail with 500 and a detail message.
	Fail func(r *http.Request) bool

	calls []string
}

// New returns a backend with a logged-in test user.
func New() *Backend {
	return &Backend{
		Token:    "test-token",
		Email:    "user@example.com",
		Password: "secret",
		User: entities.User{
			ID:    1,
			Email: "user@example.com",
			Name:  "Тест",
			City:  "Москва",
			Role:  entities.RoleUser,
		},
	}
}

// Start runs the backend on an httptest server. The caller owns Close.
func (b *Backend) Start() *httptest.Server {
	return httptest.NewServer(b.Handler())
}

// Calls returns "METHOD /path" entries in arrival order.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.calls))
	copy(out, b.calls)

	return out
}

// ResetCalls clears the recorded request log.
func (b *Backend) ResetCalls() {
	b.mu.Lock()
	b.calls = nil
	b.mu.Unlock()
}

// Handler builds the route table.
func (b *Backend) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)

	r.Post("/auth/login", b.login)
	r.Post("/auth/register/user", b.ok)
	r.Post("/auth/register/nko", b.ok)
	r.Post("/auth/register/representative", b.ok)
	r.Post("/auth/register/nko-application", b.ok)

	r.Get("/public/nkos", listHandler(b, &b.Organizations))
	r.Get("/public/nkos/{id}", itemHandler(b, &b.Organizations, func(o entities.Organization) int64 { return o.ID }))
	r.Get("/public/events", listHandler(b, &b.Events))
	r.Get("/public/events/{id}", itemHandler(b, &b.Events, func(e entities.Event) int64 { return e.ID }))
	r.Get("/public/news", listHandler(b, &b.News))
	r.Get("/public/news/{id}", itemHandler(b, &b.News, func(n entities.News) int64 { return n.ID }))
	r.Get("/public/knowledge-base", listHandler(b, &b.KnowledgeBase))
	r.Get("/public/knowledge-base/{id}", itemHandler(b, &b.KnowledgeBase, func(i entities.KnowledgeBaseItem) int64 { return i.ID }))

	r.Group(func(r chi.Router) {
		r.Use(b.authenticated)

		r.Get("/users/me", b.me)
		r.Get("/users/me/events", listHandler(b, &b.Attending))
		r.Post("/users/me/events/register", b.registerForEvent)
		r.Delete("/users/me/events/{id}", b.unregisterFromEvent)

		r.Get("/favorites/events", listHandler(b, &b.FavoriteEvents))
		r.Get("/favorites/news", listHandler(b, &b.FavoriteNews))
		r.Get("/favorites/nkos", listHandler(b, &b.FavoriteOrganizations))
		r.Get("/favorites/knowledge-base", listHandler(b, &b.FavoriteKnowledgeBase))

		r.Post("/favorites/events/{id}", toggleHandler(b, &b.Events, &b.FavoriteEvents, eventID, true))
		r.Delete("/favorites/events/{id}", toggleHandler(b, &b.Events, &b.FavoriteEvents, eventID, false))
		r.Post("/favorites/news/{id}", toggleHandler(b, &b.News, &b.FavoriteNews, newsID, true))
		r.Delete("/favorites/news/{id}", toggleHandler(b, &b.News, &b.FavoriteNews, newsID, false))
		r.Post("/favorites/nkos/{id}", toggleHandler(b, &b.Organizations, &b.FavoriteOrganizations, orgID, true))
		r.Delete("/favorites/nkos/{id}", toggleHandler(b, &b.Organizations, &b.FavoriteOrganizations, orgID, false))
		r.Post("/favorites/knowledge-base/{id}", toggleHandler(b, &b.KnowledgeBase, &b.FavoriteKnowledgeBase, kbID, true))
		r.Delete("/favorites/knowledge-base/{id}", toggleHandler(b, &b.KnowledgeBase, &b.FavoriteKnowledgeBase, kbID, false))

		r.Get("/admin/nkos/pending", listHandler(b, &b.PendingOrganizations))
		r.Post("/admin/nkos/{email}/approve", b.approveOrganization)
		r.Post("/admin/nkos/{email}/reject", b.rejectOrganization)
		r.Get("/admin/events/pending", listHandler(b, &b.PendingEvents))
		r.Post("/admin/events/{id}/approve", b.ok)
		r.Post("/admin/events/{id}/reject", b.ok)

		r.Get("/nko/profile/me", b.nkoProfile)
		r.Post("/nko/profile/me/submit-moderation", b.ok)
	})

	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, r.Method+" "+r.URL.Path)
		b.mu.Unlock()

		if b.Fail != nil && b.Fail(r) {
			writeError(w, http.StatusInternalServerError, "injected failure")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+b.Token {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if req.Email != b.Email || req.Password != b.Password {
		writeError(w, http.StatusUnauthorized, "Неверный логин или пароль")
		return
	}

	writeJSON(w, map[string]string{"access_token": b.Token})
}

func (b *Backend) me(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	u := b.User
	b.mu.Unlock()

	writeJSON(w, u)
}

func (b *Backend) nkoProfile(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, o := range b.Organizations {
		if o.ID == b.User.OrganizationID {
			writeJSON(w, o)
			return
		}
	}

	writeError(w, http.StatusNotFound, "profile not found")
}

func (b *Backend) registerForEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID int64 `json:"event_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range b.Events {
		if e.ID == req.EventID {
			b.Attending = append(b.Attending, e)
			writeJSON(w, map[string]string{"status": "registered"})
			return
		}
	}

	writeError(w, http.StatusNotFound, "event not found")
}

func (b *Backend) unregisterFromEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.Attending {
		if e.ID == id {
			b.Attending = append(b.Attending[:i], b.Attending[i+1:]...)
			writeJSON(w, map[string]string{"status": "unregistered"})
			return
		}
	}

	writeError(w, http.StatusNotFound, "registration not found")
}

func (b *Backend) approveOrganization(w http.ResponseWriter, r *http.Request) {
	b.moderateOrganization(w, r, entities.ModerationApproved)
}

func (b *Backend) rejectOrganization(w http.ResponseWriter, r *http.Request) {
	b.moderateOrganization(w, r, entities.ModerationRejected)
}

func (b *Backend) moderateOrganization(w http.ResponseWriter, r *http.Request, status entities.ModerationStatus) {
	email := chi.URLParam(r, "email")

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, o := range b.PendingOrganizations {
		if o.Email == email {
			o.Status = status
			b.PendingOrganizations = append(b.PendingOrganizations[:i], b.PendingOrganizations[i+1:]...)
			if status == entities.ModerationApproved {
				b.Organizations = append(b.Organizations, o)
			}
			writeJSON(w, o)
			return
		}
	}

	writeError(w, http.StatusNotFound, "application not found")
}

func (b *Backend) ok(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func listHandler[T any](b *Backend, items *[]T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		out := make([]T, len(*items))
		copy(out, *items)
		b.mu.Unlock()

		if s := r.URL.Query().Get("limit"); s != "" {
			if limit, err := strconv.Atoi(s); err == nil && limit < len(out) {
				out = out[:limit]
			}
		}

		writeJSON(w, out)
	}
}

func itemHandler[T any](b *Backend, items *[]T, id func(T) int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		want, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		for _, item := range *items {
			if id(item) == want {
				writeJSON(w, item)
				return
			}
		}

		writeError(w, http.StatusNotFound, "not found")
	}
}

func toggleHandler[T any](b *Backend, catalog, favorites *[]T, id func(T) int64, add bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		want, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		if add {
			for _, item := range *catalog {
				if id(item) == want {
					*favorites = append(*favorites, item)
					writeJSON(w, map[string]string{"status": "added"})
					return
				}
			}
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		for i, item := range *favorites {
			if id(item) == want {
				*favorites = append((*favorites)[:i], (*favorites)[i+1:]...)
				writeJSON(w, map[string]string{"status": "removed"})
				return
			}
		}

		writeError(w, http.StatusNotFound, "not found")
	}
}

func eventID(e entities.Event) int64             { return e.ID }
func newsID(n entities.News) int64               { return n.ID }
func orgID(o entities.Organization) int64        { return o.ID }
func kbID(item entities.KnowledgeBaseItem) int64 { return item.ID }

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"detail":%q}`, detail)
}
