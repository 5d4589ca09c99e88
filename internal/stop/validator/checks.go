package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/stopcheck/internal/geo"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

// Check is one independent predicate over a record. Checks run in a
// fixed order and all of them run even after one fails, so every issue
// on a row is reported. In fix mode a check may repair the record in
// place instead of failing it.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Run examines the record and returns the outcome.
	Run(rec stop.Record, fix bool) Outcome
}

// completenessCheck reports required fields absent from the record.
type completenessCheck struct {
	required []string
}

func (c *completenessCheck) Name() string { return "completeness" }

func (c *completenessCheck) Run(rec stop.Record, _ bool) Outcome {
	out := pass()
	if missing := rec.Missing(c.required); len(missing) > 0 {
		out.errorf(c.Name(), "missing fields: %s", strings.Join(missing, ", "))
	}
	return out
}

// coordinateCheck coerces lat/lon and verifies their ranges. Missing
// values default to 0 before coercion so an absent coordinate does not
// crash the check; the completeness check is what flags the absence.
type coordinateCheck struct{}

func (c *coordinateCheck) Name() string { return "coordinates" }

func (c *coordinateCheck) Run(rec stop.Record, _ bool) Outcome {
	out := pass()

	lat, latErr := stop.ToFloat(rec["lat"])
	lon, lonErr := stop.ToFloat(rec["lon"])
	if latErr != nil || lonErr != nil {
		out.errorf(c.Name(), "lat/lon not numeric: lat=%v lon=%v", rec["lat"], rec["lon"])
		return out
	}

	// Bounds are checked independently; a row can fail both.
	if !geo.ValidLat(lat) {
		out.errorf(c.Name(), "lat out of range: %v", lat)
	}
	if !geo.ValidLon(lon) {
		out.errorf(c.Name(), "lon out of range: %v", lon)
	}
	return out
}

// dateOrderCheck verifies arrival <= departure when both parse.
// Unparsable dates carry no information and produce no diagnostic.
// In fix mode an inverted pair is swapped and counts as repaired,
// not failed.
type dateOrderCheck struct{}

func (c *dateOrderCheck) Name() string { return "dates" }

func (c *dateOrderCheck) Run(rec stop.Record, fix bool) Outcome {
	out := pass()

	arrivalRaw, _ := rec.String("arrival")
	departureRaw, _ := rec.String("departure")
	arrival, aOK := stop.ParseDate(arrivalRaw)
	departure, dOK := stop.ParseDate(departureRaw)
	if !aOK || !dOK || !arrival.After(departure) {
		return out
	}

	if fix {
		out.infof(c.Name(), "arrival %s is after departure %s", arrivalRaw, departureRaw)
		rec["arrival"], rec["departure"] = departureRaw, arrivalRaw
		out.infof(c.Name(), "swapping arrival/departure to fix ordering")
	} else {
		out.errorf(c.Name(), "arrival %s is after departure %s", arrivalRaw, departureRaw)
	}
	return out
}

// placeholderCheck flags the known stand-in text in the link field.
// Fix mode clears the link instead of failing the row.
type placeholderCheck struct {
	placeholder string
}

func (c *placeholderCheck) Name() string { return "placeholder" }

func (c *placeholderCheck) Run(rec stop.Record, fix bool) Outcome {
	out := pass()

	link, ok := rec.String("link")
	if !ok || !strings.Contains(link, c.placeholder) {
		return out
	}

	if fix {
		out.infof(c.Name(), "placeholder in link field")
		rec["link"] = ""
		out.infof(c.Name(), "cleared placeholder link")
	} else {
		out.errorf(c.Name(), "placeholder in link field")
	}
	return out
}

// linkShapeCheck flags links that are too long to be plausible without
// looking like a URL. Fix mode clears them.
type linkShapeCheck struct {
	maxLen int
}

func (c *linkShapeCheck) Name() string { return "link-shape" }

func (c *linkShapeCheck) Run(rec stop.Record, fix bool) Outcome {
	out := pass()

	link, ok := rec.String("link")
	// Length is in characters, not bytes.
	if !ok || strings.Contains(link, "http") || utf8.RuneCountInString(link) <= c.maxLen {
		return out
	}

	if fix {
		out.infof(c.Name(), "suspicious link content (too long / not a URL)")
		rec["link"] = ""
	} else {
		out.errorf(c.Name(), "suspicious link content (too long / not a URL)")
	}
	return out
}

// normalizeCheck trims and strips every string field. It runs only in
// fix mode, never fails a row, and never faults: see Normalize.
type normalizeCheck struct{}

func (c *normalizeCheck) Name() string { return "normalize" }

func (c *normalizeCheck) Run(rec stop.Record, fix bool) Outcome {
	if !fix {
		return pass()
	}
	for k, v := range rec {
		if s, ok := v.(string); ok {
			rec[k] = Normalize(s)
		}
	}
	return pass()
}
