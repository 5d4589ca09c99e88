// Package stats computes read-only summaries of a stop dataset.
package stats

import (
	"strconv"
	"strings"
	"time"

	"github.com/thoreinstein/stopcheck/internal/geo"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

// Summary aggregates the descriptive numbers of one dataset.
type Summary struct {
	// Records is the total number of stops.
	Records int `json:"records"`

	// Bounds is the bounding box over stops with in-range coordinates,
	// nil when no stop has usable coordinates.
	Bounds *geo.Bounds `json:"bounds,omitempty"`

	// FirstArrival and LastDeparture are the raw date strings of the
	// earliest arrival and latest departure that parse.
	FirstArrival  string `json:"first_arrival,omitempty"`
	LastDeparture string `json:"last_departure,omitempty"`

	// DeclaredDistanceKm sums the "distance" fields that parse as
	// kilometer values.
	DeclaredDistanceKm float64 `json:"declared_distance_km"`

	// RouteDistanceKm is the great-circle length of the stop sequence,
	// chaining stops with usable coordinates in dataset order.
	RouteDistanceKm float64 `json:"route_distance_km"`
}

// Summarize computes the summary. It never mutates the dataset and
// skips fields it cannot interpret rather than failing.
func Summarize(ds stop.Dataset) *Summary {
	s := &Summary{Records: len(ds)}

	var (
		firstArrival  time.Time
		lastDeparture time.Time
		prev          *geo.Point
	)

	for _, rec := range ds {
		if p, ok := point(rec); ok {
			if s.Bounds == nil {
				s.Bounds = geo.NewBounds(p)
			} else {
				s.Bounds.Extend(p)
			}
			if prev != nil {
				s.RouteDistanceKm += geo.Haversine(*prev, p)
			}
			p := p
			prev = &p
		}

		if raw, ok := rec.String("arrival"); ok {
			if t, ok := stop.ParseDate(raw); ok {
				if firstArrival.IsZero() || t.Before(firstArrival) {
					firstArrival = t
					s.FirstArrival = raw
				}
			}
		}
		if raw, ok := rec.String("departure"); ok {
			if t, ok := stop.ParseDate(raw); ok {
				if t.After(lastDeparture) {
					lastDeparture = t
					s.LastDeparture = raw
				}
			}
		}

		if raw, ok := rec.String("distance"); ok {
			s.DeclaredDistanceKm += parseDistanceKm(raw)
		}
	}

	return s
}

func point(rec stop.Record) (geo.Point, bool) {
	if !rec.Has("lat") || !rec.Has("lon") {
		return geo.Point{}, false
	}
	lat, latErr := stop.ToFloat(rec["lat"])
	lon, lonErr := stop.ToFloat(rec["lon"])
	if latErr != nil || lonErr != nil {
		return geo.Point{}, false
	}
	p := geo.Point{Lat: lat, Lon: lon}
	return p, p.Valid()
}

// parseDistanceKm extracts a kilometer value from free-form distance
// text such as "10 km" or "12.5KM". Unparsable text counts as zero.
func parseDistanceKm(s string) float64 {
	s = strings.TrimSpace(strings.ToUpper(s))
	s = strings.TrimSuffix(s, "KM")
	s = strings.TrimSpace(s)

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}
