// Package dateutil converts between the display date form (dd/MM/yyyy) shown
// to users and the sortable form (yyyy-MM-dd) stored in the database. The
// sortable form orders lexicographically the same as chronologically, which
// is what the upcoming/past appointment queries rely on.
package dateutil

import "time"

const (
	// DisplayLayout is the day/month/year form used at the API boundary.
	DisplayLayout = "02/01/2006"
	// SortableLayout is the year-month-day form used for storage and comparison.
	SortableLayout = "2006-01-02"
)

// DisplayToSortable converts "25/10/2025" to "2025-10-25". Input that does
// not parse is returned unchanged.
func DisplayToSortable(display string) string {
	t, err := time.Parse(DisplayLayout, display)
	if err != nil {
		return display
	}
	return t.Format(SortableLayout)
}

// SortableToDisplay converts "2025-10-25" to "25/10/2025". Input that does
// not parse is returned unchanged.
func SortableToDisplay(sortable string) string {
	t, err := time.Parse(SortableLayout, sortable)
	if err != nil {
		return sortable
	}
	return t.Format(DisplayLayout)
}

// Today returns the current date in the sortable form.
func Today() string {
	return time.Now().Format(SortableLayout)
}

// Times are HH:mm in both forms; the conversions exist so callers that
// normalize at the boundary treat dates and times uniformly.

func DisplayToTime24(t string) string { return t }

func Time24ToDisplay(t string) string { return t }
