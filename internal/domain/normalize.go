package domain

import (
	"strings"
	"time"

	"github.com/m04kA/glowbook-gateway/pkg/types"
)

// timestampLayouts encodings of appointment_date seen from the backend besides a bare date
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// NormalizeDate returns the canonical YYYY-MM-DD form of a bare date or a full timestamp.
// The calendar date is taken as written, without shifting time zones, so
// "2025-06-05T00:00:00Z" and "2025-06-05" normalize identically.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(DateFormat) {
		return "", false
	}

	if len(s) > len(DateFormat) {
		if sep := s[len(DateFormat)]; sep != 'T' && sep != ' ' {
			return "", false
		}
		if !parsesAsTimestamp(s) {
			return "", false
		}
	}

	date, err := time.Parse(DateFormat, s[:len(DateFormat)])
	if err != nil {
		return "", false
	}
	return date.Format(DateFormat), true
}

func parsesAsTimestamp(s string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// NormalizeTime returns the canonical HH:MM form of "HH:MM" or "HH:MM:SS"; seconds are dropped
func NormalizeTime(s string) (string, bool) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", false
	}
	return ts.String(), true
}

// FormatDisplayDate renders a backend date as mm/dd/yyyy; malformed input is returned unchanged
func FormatDisplayDate(raw string) string {
	canonical, ok := NormalizeDate(raw)
	if !ok {
		return raw
	}
	date, _ := time.Parse(DateFormat, canonical)
	return date.Format(DisplayDateFormat)
}

// FormatDisplayTime renders a backend time as a one-hour range, e.g. "9:00am-10:00am".
// Malformed input is returned unchanged.
func FormatDisplayTime(raw string) string {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return raw
	}
	return formatClock(ts.Hour(), ts.Minute()) + "-" + formatClock(ts.Hour()+1, ts.Minute())
}
