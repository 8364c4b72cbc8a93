// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// RelativeDayLabel renders a past date as "Today", "Yesterday" or
// "N days ago" for dashboard activity feeds.
func RelativeDayLabel(t, now time.Time) string {
	switch days := DaysBetween(t, now); days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
