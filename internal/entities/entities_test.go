package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_UnmarshalJSON_dateFallbacks(t *testing.T) {
	tt := []struct {
		name string
		in   string
		date time.Time
	}{
		{
			name: "date",
			in:   `{"id":1,"date":"2025-01-10T12:30:00Z"}`,
			date: time.Date(2025, 1, 10, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "event_date",
			in:   `{"id":1,"event_date":"2025-01-10"}`,
			date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "event_datetime",
			in:   `{"id":1,"event_datetime":"2025-01-10 12:30:00"}`,
			date: time.Date(2025, 1, 10, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "unparseable date is zero",
			in:   `{"id":1,"date":"завтра"}`,
			date: time.Time{},
		},
		{
			name: "missing date is zero",
			in:   `{"id":1}`,
			date: time.Time{},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			var e Event
			require.NoError(t, json.Unmarshal([]byte(tc.in), &e))
			assert.True(t, tc.date.Equal(e.Date), "got %s", e.Date)
		})
	}
}

func TestEvent_UnmarshalJSON_organizationFallbacks(t *testing.T) {
	tt := []struct {
		name string
		in   string
		id   int64
	}{
		{"organization_id", `{"organization_id":5}`, 5},
		{"organizationId", `{"organizationId":6}`, 6},
		{"nested nko", `{"nko":{"id":7}}`, 7},
		{"nested organization", `{"organization":{"id":8}}`, 8},
		{"unresolved", `{"organizer":"Волонтеры города"}`, 0},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			var e Event
			require.NoError(t, json.Unmarshal([]byte(tc.in), &e))
			assert.Equal(t, tc.id, e.OrganizationID)
		})
	}
}

func TestEvent_UnmarshalJSON_imageAndCategory(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"images":["a.jpg","b.jpg"],"category":{"id":2,"name":"Экология"}}`), &e))
	assert.Equal(t, "a.jpg", e.Image)
	assert.Equal(t, EventCategory{ID: 2, Name: "Экология"}, e.Category)

	require.NoError(t, json.Unmarshal([]byte(`{"image_url":"c.jpg","category":"Спорт"}`), &e))
	assert.Equal(t, "c.jpg", e.Image)
	assert.Equal(t, "Спорт", e.Category.Name)
}

func TestOrganization_UnmarshalJSON(t *testing.T) {
	var o Organization
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":1,"organization_name":"Добро","city":"г. Саров","logo_url":"l.png","status":"pending"
	}`), &o))

	assert.Equal(t, "Добро", o.Name)
	assert.Equal(t, "г. Саров", o.City)
	assert.Equal(t, "l.png", o.Logo)
	assert.Equal(t, ModerationPending, o.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"name":"Свет","city_name":"Москва"}`), &o))
	assert.Equal(t, "Москва", o.City)
	assert.Equal(t, ModerationNotSubmitted, o.Status)
}

func TestNews_UnmarshalJSON(t *testing.T) {
	var n News
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":3,"title":"t","publish_date":"2025-02-01","image":"i.png","city_name":"Омск"
	}`), &n))

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), n.PublishedAt)
	assert.Equal(t, "i.png", n.Image)
	assert.Equal(t, "Омск", n.City)
}

func TestModerationStatus_CanTransitionTo(t *testing.T) {
	tt := []struct {
		from ModerationStatus
		to   ModerationStatus
		ok   bool
	}{
		{ModerationNotSubmitted, ModerationPending, true},
		{ModerationPending, ModerationApproved, true},
		{ModerationPending, ModerationRejected, true},
		{ModerationRejected, ModerationPending, true},
		{ModerationApproved, ModerationPending, false},
		{ModerationApproved, ModerationRejected, false},
		{ModerationNotSubmitted, ModerationApproved, false},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, ModerationRejected.CanResubmit())
	assert.False(t, ModerationApproved.CanResubmit())
}

func TestRole_Can(t *testing.T) {
	assert.True(t, RoleUser.Can(CapFavorite))
	assert.False(t, RoleUser.Can(CapModerate))
	assert.True(t, RoleNKO.Can(CapManageOrganization))
	assert.True(t, RoleModerator.Can(CapModerate))
	assert.False(t, RoleModerator.Can(CapManageUsers))
	assert.True(t, RoleAdmin.Can(CapManageContent))
	assert.False(t, Role("ghost").Can(CapFavorite))
	assert.False(t, Role("ghost").Valid())
}
