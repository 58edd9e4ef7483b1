package format

import (
	"fmt"
	"strings"
)

// Count formats a whole number with thousand separators for display labels.
// Example: Count(1280) => "1,280"
func Count(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// Level renders a CEFR level badge label, tolerating missing data.
func Level(level string) string {
	level = strings.TrimSpace(level)
	if level == "" {
		return ""
	}
	return strings.ToUpper(level)
}
