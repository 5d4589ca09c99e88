// Package stop defines the stop dataset model and its JSON lifecycle.
//
// A stop is one entry in a travel itinerary: a named location with
// coordinates, arrival/departure dates, and descriptive fields. Field
// types are not enforced on input; records carry whatever the JSON
// document held and validation decides what is acceptable.
package stop

import (
	"strconv"
	"strings"

	"github.com/thoreinstein/stopcheck/internal/errors"
)

// RequiredFields is the canonical set of fields every record must carry.
var RequiredFields = []string{
	"number", "name", "lat", "lon",
	"arrival", "departure", "duration", "distance",
	"type", "link", "season",
}

// Record is one stop entry: a loosely typed field-name to value mapping.
type Record map[string]any

// Has reports whether the field is present in the record.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String returns the field's value if it is a string.
func (r Record) String(field string) (string, bool) {
	s, ok := r[field].(string)
	return s, ok
}

// Missing returns the required fields absent from the record,
// in the order given.
func (r Record) Missing(required []string) []string {
	var missing []string
	for _, f := range required {
		if !r.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// ToFloat coerces a JSON value to a float64. It accepts numbers
// (json.Number or decoded float64/int) and numeric strings, matching
// the leniency of the original data entry tooling. nil coerces to 0.
func ToFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case interface{ Float64() (float64, error) }: // json.Number
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "coercing %q", n)
		}
		return f, nil
	default:
		return 0, errors.Newf("cannot coerce %T to float", v)
	}
}
