// Package geo maps free-text city names onto a fixed table of known
// coordinates and groups entities by canonical city for the map view.
package geo

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Point is a latitude/longitude pair.
type Point struct {
	Lat float64
	Lng float64
}

// cityCoordinates is compiled-in configuration: canonical display names of
// the cities the platform operates in, keyed as they should appear on the
// map.
var cityCoordinates = map[string]Point{
	"Ангарск":          {52.5367, 103.8986},
	"Балаково":         {52.0278, 47.8007},
	"Билибино":         {68.0546, 166.4376},
	"Волгодонск":       {47.5133, 42.1530},
	"Глазов":           {58.1394, 52.6586},
	"Десногорск":       {54.1495, 33.2924},
	"Димитровград":     {54.2138, 49.6183},
	"Екатеринбург":     {56.8389, 60.6057},
	"Заречный":         {56.8046, 61.3161},
	"Заречный ЗАТО":    {53.2028, 45.1928},
	"Железногорск":     {56.2531, 93.5325},
	"Зеленогорск":      {56.1128, 94.5886},
	"Краснокаменск":    {50.0976, 118.0362},
	"Курчатов":         {51.6607, 35.6526},
	"Лесной":           {58.6392, 59.7992},
	"Москва":           {55.7558, 37.6173},
	"Нижний Новгород":  {56.3269, 44.0075},
	"Нововоронеж":      {51.3138, 39.2113},
	"Новоуральск":      {57.2454, 60.0891},
	"Обнинск":          {55.0969, 36.6103},
	"Озерск":           {55.7558, 60.7028},
	"Омск":             {54.9885, 73.3242},
	"Полярные Зори":    {67.3667, 32.4982},
	"Певек":            {69.7008, 170.3131},
	"Ростов-на-Дону":   {47.2357, 39.7015},
	"Санкт-Петербург":  {59.9343, 30.3351},
	"Саров":            {54.9317, 43.3300},
	"Северск":          {56.6003, 84.8544},
	"Снежинск":         {56.0850, 60.7306},
	"Сосновый Бор":     {59.9016, 29.0891},
	"Трехгорный":       {54.8130, 58.4525},
	"Удомля":           {57.8786, 34.9932},
	"Усолье-Сибирское": {52.7517, 103.6453},
	"Электросталь":     {55.7933, 38.4398},
}

// normalizedIndex maps Normalize(canonical) back to the canonical name.
var normalizedIndex = func() map[string]string {
	m := make(map[string]string, len(cityCoordinates))
	for name := range cityCoordinates {
		m[Normalize(name)] = name
	}

	return m
}()

// Normalize lowers the case, strips a leading "г." or "город" prefix token
// with its following whitespace, and trims. Two city strings denote the
// same location iff their normalized forms are equal.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	for _, prefix := range []string{"г.", "город"} {
		if !strings.HasPrefix(s, prefix) {
			continue
		}

		rest := strings.TrimLeft(s[len(prefix):], " \t")
		// the prefix counts only when whitespace separated it from the name
		if rest != s[len(prefix):] && rest != "" {
			s = rest
			break
		}
	}

	return strings.TrimSpace(s)
}

// Lookup resolves a free-text city name to its canonical table entry.
func Lookup(name string) (canonical string, p Point, ok bool) {
	canonical, ok = normalizedIndex[Normalize(name)]
	if !ok {
		return "", Point{}, false
	}

	return canonical, cityCoordinates[canonical], true
}

// Grouping is the deterministic result of bucketing entities by canonical
// city name.
type Grouping[T any] struct {
	// Buckets is keyed by the canonical display city name.
	Buckets map[string][]T
}

// GroupByCity buckets items by the canonical form of their city. Items
// whose city has no table entry are dropped from the result with a
// diagnostic; they never abort the grouping.
func GroupByCity[T any](items []T, city func(T) string) Grouping[T] {
	g := Grouping[T]{Buckets: make(map[string][]T)}

	for _, item := range items {
		raw := city(item)
		if raw == "" {
			continue
		}

		canonical, _, ok := Lookup(raw)
		if !ok {
			logrus.WithField("city", raw).Warn("no coordinates for city, skipping on map")
			continue
		}

		g.Buckets[canonical] = append(g.Buckets[canonical], item)
	}

	return g
}

// Counts returns the number of entities per canonical city.
func (g Grouping[T]) Counts() map[string]int {
	out := make(map[string]int, len(g.Buckets))
	for city, items := range g.Buckets {
		out[city] = len(items)
	}

	return out
}

// Total returns the number of matched entities across all cities.
func (g Grouping[T]) Total() int {
	n := 0
	for _, items := range g.Buckets {
		n += len(items)
	}

	return n
}

// CityCount returns the number of matched cities.
func (g Grouping[T]) CityCount() int {
	return len(g.Buckets)
}
