package time_parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var unixDigits = regexp.MustCompile(`^\d{9,13}$`)

// ParseQueryTimestamp converts a query-string timestamp to UTC.
// Supported formats:
//   - empty string: no timestamp was supplied, returns nil
//   - ISO strings: RFC3339, RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"
//   - date-only "2006-01-02" (midnight UTC)
//   - Unix timestamps: seconds (10 digits or fewer) or milliseconds (13 digits)
func ParseQueryTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if unixDigits.MatchString(value) {
		number, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", value, err)
		}

		var parsed time.Time
		if number > 1e12 { // milliseconds
			parsed = time.Unix(0, number*int64(time.Millisecond)).UTC()
		} else {
			parsed = time.Unix(number, 0).UTC()
		}

		return &parsed, nil
	}

	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if parsed, err := time.Parse(format, value); err == nil {
			utc := parsed.UTC()
			return &utc, nil
		}
	}

	return nil, fmt.Errorf("unsupported timestamp format %q", value)
}
