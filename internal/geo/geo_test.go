package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobrye-dela/dobro-go/internal/entities"
)

func TestNormalize(t *testing.T) {
	tt := []struct {
		in   string
		want string
	}{
		{"г. Москва", "москва"},
		{"Москва", "москва"},
		{"москва ", "москва"},
		{"город Санкт-Петербург", "санкт-петербург"},
		{"  Омск", "омск"},
		{"Городец", "городец"}, // prefix needs trailing whitespace
		{"", ""},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}

	assert.Equal(t, Normalize("г. Москва"), Normalize("Москва"))
	assert.Equal(t, Normalize("Москва"), Normalize("москва "))
}

func TestLookup(t *testing.T) {
	canonical, p, ok := Lookup("г. саров")
	require.True(t, ok)
	assert.Equal(t, "Саров", canonical)
	assert.InDelta(t, 54.9317, p.Lat, 0.0001)
	assert.InDelta(t, 43.33, p.Lng, 0.0001)

	_, _, ok = Lookup("Атлантида")
	assert.False(t, ok)
}

func TestGroupByCity(t *testing.T) {
	oo := []entities.Organization{
		{ID: 1, City: "г. Москва"},
		{ID: 2, City: "Москва"},
		{ID: 3, City: "москва "},
		{ID: 4, City: "Атлантида"},
		{ID: 5, City: "Омск"},
		{ID: 6},
	}

	g := GroupByCity(oo, func(o entities.Organization) string { return o.City })

	require.Len(t, g.Buckets["Москва"], 3)
	require.Len(t, g.Buckets["Омск"], 1)
	assert.Equal(t, 4, g.Total())
	assert.Equal(t, 2, g.CityCount())
	assert.Equal(t, map[string]int{"Москва": 3, "Омск": 1}, g.Counts())
}

func TestGroupByCity_deterministic(t *testing.T) {
	ee := []entities.Event{
		{ID: 1, City: "Саров"},
		{ID: 2, City: "г. Саров"},
	}

	city := func(e entities.Event) string { return e.City }

	first := GroupByCity(ee, city)
	second := GroupByCity(ee, city)
	assert.Equal(t, first.Buckets, second.Buckets)

	// relative order inside a bucket follows input order
	require.Len(t, first.Buckets["Саров"], 2)
	assert.EqualValues(t, 1, first.Buckets["Саров"][0].ID)
	assert.EqualValues(t, 2, first.Buckets["Саров"][1].ID)
}
