package report

import (
	"math"
	"strconv"
	"testing"
	"time"
)

func TestParseTimestamp_sentinels(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"nil", nil},
		{"empty string", ""},
		{"whitespace", "   "},
		{"zero string", "0"},
		{"null string", "null"},
		{"undefined string", "undefined"},
		{"zero number", float64(0)},
		{"zero int", 0},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"garbage string", "next tuesday"},
		{"bool", true},
		{"object", map[string]interface{}{"sec": 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTimestamp(tt.value); got.Valid {
				t.Errorf("ParseTimestamp(%v) = %v; want absent", tt.value, got.Time)
			}
		})
	}
}

func TestParseTimestamp_epochSeconds(t *testing.T) {
	secs := int64(1614556800) // 2021-03-01T00:00:00Z
	want := time.Unix(secs, 0).UTC()

	for _, value := range []interface{}{float64(secs), secs, strconv.FormatInt(secs, 10)} {
		got := ParseTimestamp(value)
		if !got.Valid {
			t.Fatalf("ParseTimestamp(%v) absent; want %v", value, want)
		}
		if !got.Time.Equal(want) {
			t.Errorf("ParseTimestamp(%v) = %v; want %v", value, got.Time, want)
		}
	}
}

// the string and numeric renditions of the same epoch value must agree
func TestParseTimestamp_roundTrip(t *testing.T) {
	for _, n := range []int64{1, 60, 86400, 1614556800, 4102444800} {
		fromNum := ParseTimestamp(float64(n))
		fromStr := ParseTimestamp(strconv.FormatInt(n, 10))
		if !fromNum.Valid || !fromStr.Valid {
			t.Fatalf("n=%d: expected both renditions present", n)
		}
		if !fromNum.Time.Equal(fromStr.Time) {
			t.Errorf("n=%d: numeric %v != string %v", n, fromNum.Time, fromStr.Time)
		}
		if want := time.Unix(n, 0).UTC(); !fromNum.Time.Equal(want) {
			t.Errorf("n=%d: got %v; want %v", n, fromNum.Time, want)
		}
	}
}

func TestParseTimestamp_fractionalSeconds(t *testing.T) {
	got := ParseTimestamp(1614556800.5)
	if !got.Valid {
		t.Fatal("expected present")
	}
	want := time.Unix(1614556800, int64(500*time.Millisecond))
	if !got.Time.Equal(want) {
		t.Errorf("got %v; want %v", got.Time, want)
	}
}
