package util

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// NormalizeIDs coerces arbitrary decoded input into a clean ordered slice of
// numeric ids. Anything that is not array-like yields an empty slice, and
// elements that do not survive numeric coercion (NaN, infinities, text) are
// dropped. Order is preserved and duplicates are kept; callers that need set
// semantics deduplicate themselves. Never returns nil and never fails.
func NormalizeIDs(value interface{}) []int64 {
	out := []int64{}

	switch v := value.(type) {
	case nil:
		return out
	case []int64:
		return append(out, v...)
	case pq.Int64Array:
		return append(out, v...)
	case []int:
		for _, n := range v {
			out = append(out, int64(n))
		}
		return out
	case []float64:
		for _, f := range v {
			if id, ok := coerceID(f); ok {
				out = append(out, id)
			}
		}
		return out
	case []string:
		for _, s := range v {
			if id, ok := coerceID(s); ok {
				out = append(out, id)
			}
		}
		return out
	case []interface{}:
		for _, el := range v {
			if id, ok := coerceID(el); ok {
				out = append(out, id)
			}
		}
		return out
	default:
		return out
	}
}

// coerceID converts a single element to an id, mirroring what a JSON decode
// can hand us: float64 for numbers, string for quoted numbers, json.Number
// when decoders are configured that way.
func coerceID(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case json.Number:
		return coerceID(v.String())
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// ParseCommaSeparatedIDs parses query values like "1,2,3" into ids, dropping
// anything non-numeric. Returns nil when there is nothing to parse.
func ParseCommaSeparatedIDs(values []string) []int64 {
	if len(values) == 0 {
		return nil
	}

	raw := values[0]
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return NormalizeIDs(out)
}
