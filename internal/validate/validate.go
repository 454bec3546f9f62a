// Package validate checks county_data request payloads before any store
// access. It is pure: every function depends only on its input and the fixed
// measure set, so a rejected request never costs a database round trip.
package validate

import "errors"

// Sentinel errors returned by Payload. Handlers translate these into the
// API's error envelope; the messages here are internal and never serialized.
var (
	ErrTeapot         = errors.New("teapot")
	ErrMissingZip     = errors.New("missing required parameter: zip")
	ErrMissingMeasure = errors.New("missing required parameter: measure_name")
	ErrZipFormat      = errors.New("invalid zip code format")
	ErrUnknownMeasure = errors.New("unknown measure_name")
)

// measures is the fixed set of recognized measure names. Matching is exact
// and case-sensitive. The set is initialized once and never mutated.
var measures = map[string]struct{}{
	"Violent crime rate":              {},
	"Unemployment":                    {},
	"Children in poverty":             {},
	"Diabetic screening":              {},
	"Mammography screening":           {},
	"Preventable hospital stays":      {},
	"Uninsured":                       {},
	"Sexually transmitted infections": {},
	"Physical inactivity":             {},
	"Adult obesity":                   {},
	"Premature Death":                 {},
	"Daily fine particulate matter":   {},
}

// MeasureNames returns the recognized measure names in unspecified order.
func MeasureNames() []string {
	out := make([]string, 0, len(measures))
	for m := range measures {
		out = append(out, m)
	}
	return out
}

// ValidMeasure reports whether name is one of the twelve recognized
// measure names.
func ValidMeasure(name string) bool {
	_, ok := measures[name]
	return ok
}

// ValidZip reports whether zip is exactly five decimal digits. ZIP codes are
// opaque string keys; they are never parsed as numbers because that would
// drop leading zeros.
func ValidZip(zip string) bool {
	if len(zip) != 5 {
		return false
	}
	for i := 0; i < len(zip); i++ {
		if zip[i] < '0' || zip[i] > '9' {
			return false
		}
	}
	return true
}

// Payload validates an already-decoded JSON object and extracts the lookup
// arguments. Checks run in a fixed order: the teapot bypass first, then
// presence of zip and measure_name, then zip format, then measure
// membership. The first failure wins.
//
// A JSON null value counts as missing, matching the original service. Any
// other non-string value fails the same shape check a malformed string
// would.
func Payload(body map[string]any) (zip, measure string, err error) {
	if v, ok := body["coffee"]; ok {
		if s, ok := v.(string); ok && s == "teapot" {
			return "", "", ErrTeapot
		}
	}

	zv, ok := body["zip"]
	if !ok || zv == nil {
		return "", "", ErrMissingZip
	}
	zs, isStr := zv.(string)
	if isStr && zs == "" {
		return "", "", ErrMissingZip
	}

	mv, ok := body["measure_name"]
	if !ok || mv == nil {
		return "", "", ErrMissingMeasure
	}
	ms, mIsStr := mv.(string)
	if mIsStr && ms == "" {
		return "", "", ErrMissingMeasure
	}

	if !isStr || !ValidZip(zs) {
		return "", "", ErrZipFormat
	}
	if !mIsStr || !ValidMeasure(ms) {
		return "", "", ErrUnknownMeasure
	}
	return zs, ms, nil
}
