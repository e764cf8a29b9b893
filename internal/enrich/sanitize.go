// internal/enrich/sanitize.go
package enrich

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Sanitize coerces an untrusted numeric value from any upstream source into a
// safe non-negative finite float64. Strings are parsed as decimal numbers.
// Anything unparsable, NaN, infinite or negative comes back as 0, so
// malformed data can never reach downstream arithmetic or render output.
func Sanitize(value interface{}) float64 {
	var f float64

	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}

	return f
}
