// Package format renders entity fields for display.
package format

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TimeAgo renders a millisecond timestamp as relative time ("2 hours ago").
func TimeAgo(millis int64) string {
	return humanize.Time(time.UnixMilli(millis))
}

// Date renders a millisecond timestamp as a short date ("Nov 24, 2025").
func Date(millis int64) string {
	return time.UnixMilli(millis).Format("Jan 02, 2006")
}

// DateTime renders a millisecond timestamp with the time of day
// ("Nov 24, 2025 at 2:30 PM").
func DateTime(millis int64) string {
	return time.UnixMilli(millis).Format("Jan 02, 2006 at 3:04 PM")
}

// Bytes renders a byte count as a human-readable size ("2.5 MB").
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}

// Truncate shortens text to at most max runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
