package site

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are the explicit formats tried before handing the string to
// the loose parser. The first entry is the convention the source documents
// actually use.
var dateLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	"02/01/2006",
}

// ruMonths maps the genitive Russian month names used in running dates
// ("12 августа 2024").
var ruMonths = map[string]time.Month{
	"января": time.January, "февраля": time.February, "марта": time.March,
	"апреля": time.April, "мая": time.May, "июня": time.June,
	"июля": time.July, "августа": time.August, "сентября": time.September,
	"октября": time.October, "ноября": time.November, "декабря": time.December,
}

// ParseDate interprets an entry's raw date string. The second return is
// false when the string is empty or matches no known form; callers then
// fall back to document-order sorting.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, ok := parseRussianDate(s); ok {
		return t, true
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseRussianDate handles "12 августа 2024" with an optional trailing
// "г." or "года".
func parseRussianDate(s string) (time.Time, bool) {
	fields := strings.Fields(strings.ToLower(s))
	if n := len(fields); n == 4 && (fields[3] == "г." || fields[3] == "г" || fields[3] == "года") {
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, ok := ruMonths[fields[1]]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 1 {
		return time.Time{}, false
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}
