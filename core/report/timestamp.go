package report

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

// ParseTimestamp converts a loosely-typed epoch-seconds value into a definite
// point in time. The upstream feed is not schema-guaranteed: the value may be
// absent, an empty string, a textual null token, a number or a numeric
// string. Anything unparseable, non-finite or zero yields an invalid
// null.Time; this function never fails.
func ParseTimestamp(value interface{}) null.Time {
	var secs float64

	switch v := value.(type) {
	case nil:
		return null.Time{}
	case float64:
		secs = v
	case float32:
		secs = float64(v)
	case int:
		secs = float64(v)
	case int64:
		secs = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return null.Time{}
		}
		secs = f
	case string:
		s := strings.TrimSpace(v)
		switch s {
		case "", "0", "null", "undefined":
			return null.Time{}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return null.Time{}
		}
		secs = f
	default:
		return null.Time{}
	}

	if secs == 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return null.Time{}
	}

	sec, frac := math.Modf(secs)
	return null.TimeFrom(time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC())
}
