// Package entities contains main entities of the platform.
package entities

import (
	"encoding/json"
	"time"
)

// AllCities is the sentinel city value the backend uses for entities that
// are not scoped to a single city. Such entities pass any city filter.
const AllCities = "Все города"

// FavoriteKind is one of the four favoritable resource families.
// The value is the path segment of the /favorites/{kind}/{id} endpoints.
type FavoriteKind string

// Favorite kinds.
const (
	FavoriteEvents        FavoriteKind = "events"
	FavoriteNews          FavoriteKind = "news"
	FavoriteNKOs          FavoriteKind = "nkos"
	FavoriteKnowledgeBase FavoriteKind = "knowledge-base"
)

// MaterialType of a knowledge base item.
type MaterialType string

// Material types.
const (
	MaterialDocument MaterialType = "document"
	MaterialVideo    MaterialType = "video"
	MaterialLink     MaterialType = "link"
)

// Organization ...
type Organization struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	ShortName       string           `json:"short_name"`
	Email           string           `json:"email"`
	Category        string           `json:"category"`
	City            string           `json:"city_name"`
	Description     string           `json:"description"`
	Logo            string           `json:"logo"`
	SocialLinks     []string         `json:"social_links"`
	Status          ModerationStatus `json:"moderation_status"`
	RejectionReason string           `json:"rejection_reason"`
	FoundedYear     int              `json:"founded_year"`
	VolunteersCount int              `json:"volunteers_count"`
}

// EventCategory is the id+name category pair of an event.
type EventCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Event ...
// Date is zero when the backend sent no date or an unparseable one;
// such events never match a date-range filter.
type Event struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	FullDescription string           `json:"full_description"`
	Date            time.Time        `json:"date"`
	Deadline        time.Time        `json:"registration_deadline"`
	Address         string           `json:"address"`
	City            string           `json:"city_name"`
	Category        EventCategory    `json:"category"`
	OrganizationID  int64            `json:"organization_id"`
	Organizer       string           `json:"organizer"`
	Capacity        int              `json:"capacity"`
	Image           string           `json:"image"`
	Tags            []string         `json:"tags"`
	Status          ModerationStatus `json:"moderation_status"`
}

// News ...
type News struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"short_content"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	City        string    `json:"city_name"`
	PublishedAt time.Time `json:"published_at"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image"`
	Attachments []string  `json:"attachments"`
}

// KnowledgeBaseItem ...
type KnowledgeBaseItem struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Category string       `json:"category"`
	Type     MaterialType `json:"material_type"`
	Content  string       `json:"content"`
	URL      string       `json:"url"`
	Files    []string     `json:"files"`
}

// User is the authenticated principal as returned by /users/me.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	City           string    `json:"city_name"`
	Role           Role      `json:"role"`
	OrganizationID int64     `json:"organization_id"`
	RegisteredAt   time.Time `json:"registered_at"`
	Photo          string    `json:"photo"`
}

// rawOrganization mirrors the heterogeneous shapes the backend returns.
type rawOrganization struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	OrgName         string           `json:"organization_name"`
	ShortName       string           `json:"short_name"`
	Email           string           `json:"email"`
	Category        string           `json:"category"`
	City            string           `json:"city"`
	CityName        string           `json:"city_name"`
	Description     string           `json:"description"`
	Logo            string           `json:"logo"`
	LogoURL         string           `json:"logo_url"`
	SocialLinks     []string         `json:"social_links"`
	Status          ModerationStatus `json:"moderation_status"`
	AltStatus       ModerationStatus `json:"status"`
	RejectionReason string           `json:"rejection_reason"`
	FoundedYear     int              `json:"founded_year"`
	VolunteersCount int              `json:"volunteers_count"`
}

// UnmarshalJSON normalizes the backend's fallback fields into the
// canonical shape so downstream code never re-implements the lookup.
func (o *Organization) UnmarshalJSON(data []byte) error {
	var raw rawOrganization
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Organization{
		ID:              raw.ID,
		Name:            firstNonEmpty(raw.Name, raw.OrgName),
		ShortName:       raw.ShortName,
		Email:           raw.Email,
		Category:        raw.Category,
		City:            firstNonEmpty(raw.CityName, raw.City),
		Description:     raw.Description,
		Logo:            firstNonEmpty(raw.Logo, raw.LogoURL),
		SocialLinks:     raw.SocialLinks,
		Status:          raw.Status,
		RejectionReason: raw.RejectionReason,
		FoundedYear:     raw.FoundedYear,
		VolunteersCount: raw.VolunteersCount,
	}

	if o.Status == "" {
		o.Status = raw.AltStatus
	}
	if o.Status == "" {
		o.Status = ModerationNotSubmitted
	}

	return nil
}

type rawRef struct {
	ID int64 `json:"id"`
}

type rawEvent struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	FullDescription string           `json:"full_description"`
	Date            string           `json:"date"`
	EventDate       string           `json:"event_date"`
	EventDatetime   string           `json:"event_datetime"`
	Deadline        string           `json:"registration_deadline"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	CityName        string           `json:"city_name"`
	Category        json.RawMessage  `json:"category"`
	OrganizationID  int64            `json:"organization_id"`
	OrganizationID2 int64            `json:"organizationId"`
	NKO             *rawRef          `json:"nko"`
	Organization    *rawRef          `json:"organization"`
	Organizer       string           `json:"organizer"`
	Capacity        int              `json:"capacity"`
	Image           string           `json:"image"`
	ImageURL        string           `json:"image_url"`
	Images          []string         `json:"images"`
	Tags            []string         `json:"tags"`
	Status          ModerationStatus `json:"moderation_status"`
	AltStatus       ModerationStatus `json:"status"`
}

// UnmarshalJSON normalizes the event shape: the date may arrive under
// date, event_date or event_datetime; the image under image, image_url or
// images[0]; the organizer id under organization_id, organizationId or a
// nested nko/organization object.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Event{
		ID:              raw.ID,
		Title:           raw.Title,
		Description:     raw.Description,
		FullDescription: raw.FullDescription,
		Date:            parseTime(firstNonEmpty(raw.Date, raw.EventDate, raw.EventDatetime)),
		Deadline:        parseTime(raw.Deadline),
		Address:         raw.Address,
		City:            firstNonEmpty(raw.CityName, raw.City),
		OrganizationID:  raw.OrganizationID,
		Organizer:       raw.Organizer,
		Capacity:        raw.Capacity,
		Image:           firstNonEmpty(raw.Image, raw.ImageURL, firstOf(raw.Images)),
		Tags:            raw.Tags,
		Status:          raw.Status,
	}

	if e.OrganizationID == 0 {
		e.OrganizationID = raw.OrganizationID2
	}
	if e.OrganizationID == 0 && raw.NKO != nil {
		e.OrganizationID = raw.NKO.ID
	}
	if e.OrganizationID == 0 && raw.Organization != nil {
		e.OrganizationID = raw.Organization.ID
	}

	if e.Status == "" {
		e.Status = raw.AltStatus
	}
	if e.Status == "" {
		e.Status = ModerationNotSubmitted
	}

	// the category arrives either as an id+name object or a bare label
	if len(raw.Category) > 0 {
		var c EventCategory
		if err := json.Unmarshal(raw.Category, &c); err != nil {
			var name string
			if err := json.Unmarshal(raw.Category, &name); err == nil {
				c = EventCategory{Name: name}
			}
		}
		e.Category = c
	}

	return nil
}

type rawNews struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"short_content"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	City        string   `json:"city"`
	CityName    string   `json:"city_name"`
	PublishedAt string   `json:"published_at"`
	PublishDate string   `json:"publish_date"`
	Date        string   `json:"date"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images"`
	Attachments []string `json:"attachments"`
}

// UnmarshalJSON normalizes the news shape, see Event.UnmarshalJSON.
func (n *News) UnmarshalJSON(data []byte) error {
	var raw rawNews
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = News{
		ID:          raw.ID,
		Title:       raw.Title,
		Summary:     raw.Summary,
		Content:     raw.Content,
		Category:    raw.Category,
		City:        firstNonEmpty(raw.CityName, raw.City),
		PublishedAt: parseTime(firstNonEmpty(raw.PublishedAt, raw.PublishDate, raw.Date)),
		Author:      raw.Author,
		Tags:        raw.Tags,
		Image:       firstNonEmpty(raw.Image, raw.ImageURL, firstOf(raw.Images)),
		Attachments: raw.Attachments,
	}

	return nil
}

// timeLayouts are the datetime shapes observed in backend responses.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime returns the zero time when s is empty or unparseable.
func parseTime(s string) time.Time {
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func firstOf(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	return ss[0]
}
