// Package quotes serves the quote of the day.
package quotes

import "time"

// ForDay returns the quote for now's local calendar day. It is stable for
// the whole day and advances at midnight.
func ForDay(now time.Time) string {
	return all[now.YearDay()%len(all)]
}

// Count returns the size of the rotation.
func Count() int {
	return len(all)
}
