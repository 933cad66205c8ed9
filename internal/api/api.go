// Package api contains the client interface for the platform REST API.
package api

import (
	"context"
	"errors"
	"io"

	"github.com/dobrye-dela/dobro-go/internal/entities"
)

//go:generate mockgen -destination=./mock/api.go -package=mock -source=api.go

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// ErrUnauthorized means the bearer token is missing, expired or rejected;
// the caller should route the user to the login view.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden means the backend refused the action for the current role.
var ErrForbidden = errors.New("forbidden")

// RegisterUserParams ...
type RegisterUserParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city_name"`
	Name     string `json:"name"`
}

// RegisterNKOParams ...
type RegisterNKOParams struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	OrganizationName string `json:"organization_name"`
}

// RegisterRepresentativeParams ...
type RegisterRepresentativeParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city_name"`
	Name     string `json:"name"`
	NKOEmail string `json:"nko_email"`
}

// NKOApplicationParams is sent as multipart form data; Logo may be nil.
type NKOApplicationParams struct {
	Fields   map[string]string
	LogoName string
	Logo     io.Reader
}

// Statistics is the admin dashboard summary.
type Statistics struct {
	Users         int `json:"users_count"`
	Organizations int `json:"nkos_count"`
	Events        int `json:"events_count"`
	News          int `json:"news_count"`
}

// Client provides methods for interacting with the platform backend. The
// backend owns every entity; anything a Client returns is an advisory copy.
type Client interface {
	// SetToken sets the bearer credential attached to authenticated
	// requests. An empty token clears it.
	SetToken(token string)

	Login(ctx context.Context, email, password string) (token string, err error)
	RegisterUser(ctx context.Context, p RegisterUserParams) error
	RegisterNKO(ctx context.Context, p RegisterNKOParams) error
	RegisterRepresentative(ctx context.Context, p RegisterRepresentativeParams) error
	SubmitNKOApplication(ctx context.Context, p NKOApplicationParams) error

	Me(ctx context.Context) (*entities.User, error)
	UpdateName(ctx context.Context, name string) error
	UpdateCity(ctx context.Context, city string) error
	MyEvents(ctx context.Context) ([]entities.Event, error)
	RegisterForEvent(ctx context.Context, eventID int64) error
	UnregisterFromEvent(ctx context.Context, eventID int64) error

	// limit <= 0 means no limit.
	Organizations(ctx context.Context, limit int) ([]entities.Organization, error)
	Organization(ctx context.Context, id int64) (*entities.Organization, error)
	OrganizationMembersCount(ctx context.Context, id int64) (int, error)
	Events(ctx context.Context, limit int) ([]entities.Event, error)
	Event(ctx context.Context, id int64) (*entities.Event, error)
	News(ctx context.Context, limit int) ([]entities.News, error)
	NewsItem(ctx context.Context, id int64) (*entities.News, error)
	KnowledgeBase(ctx context.Context, limit int) ([]entities.KnowledgeBaseItem, error)
	KnowledgeBaseItem(ctx context.Context, id int64) (*entities.KnowledgeBaseItem, error)
	Cities(ctx context.Context) ([]string, error)
	CitiesWithOrganizations(ctx context.Context) ([]string, error)

	FavoriteEvents(ctx context.Context) ([]entities.Event, error)
	FavoriteNews(ctx context.Context) ([]entities.News, error)
	FavoriteOrganizations(ctx context.Context) ([]entities.Organization, error)
	FavoriteKnowledgeBase(ctx context.Context) ([]entities.KnowledgeBaseItem, error)
	AddFavorite(ctx context.Context, kind entities.FavoriteKind, id int64) error
	RemoveFavorite(ctx context.Context, kind entities.FavoriteKind, id int64) error

	Statistics(ctx context.Context) (*Statistics, error)
	UsersWithRoles(ctx context.Context) ([]entities.User, error)
	UpdateUserRole(ctx context.Context, email string, role entities.Role) error
	PendingOrganizations(ctx context.Context) ([]entities.Organization, error)
	ApproveOrganization(ctx context.Context, email string) error
	RejectOrganization(ctx context.Context, email, reason string) error
	PendingEvents(ctx context.Context) ([]entities.Event, error)
	ApproveEvent(ctx context.Context, id int64) error
	RejectEvent(ctx context.Context, id int64, reason string) error
	CreateEvent(ctx context.Context, e *entities.Event) (int64, error)
	UpdateEvent(ctx context.Context, e *entities.Event) error
	DeleteEvent(ctx context.Context, id int64) error
	CreateNews(ctx context.Context, n *entities.News) (int64, error)
	UpdateNews(ctx context.Context, n *entities.News) error
	DeleteNews(ctx context.Context, id int64) error
	CreateKnowledgeBaseItem(ctx context.Context, item *entities.KnowledgeBaseItem) (int64, error)
	UpdateKnowledgeBaseItem(ctx context.Context, item *entities.KnowledgeBaseItem) error
	DeleteKnowledgeBaseItem(ctx context.Context, id int64) error
	UploadFile(ctx context.Context, resource string, id int64, filename string, r io.Reader) (path string, err error)

	NKOProfile(ctx context.Context) (*entities.Organization, error)
	UpdateNKOProfile(ctx context.Context, o *entities.Organization) error
	SubmitForModeration(ctx context.Context) error
	OrganizationEvents(ctx context.Context, organizationID int64) ([]entities.Event, error)
}
