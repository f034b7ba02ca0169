package timeutil

import "time"

// ISO8601 is the second-precision UTC layout MWS expects for Timestamp and
// every date-valued parameter.
const ISO8601 = "2006-01-02T15:04:05Z"

// FormatISO8601 renders t in UTC truncated to whole seconds.
func FormatISO8601(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(ISO8601)
}

// ParseISO8601 parses MWS timestamps. Fractional seconds and numeric zone
// offsets, which the service emits in some responses, are accepted.
func ParseISO8601(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
