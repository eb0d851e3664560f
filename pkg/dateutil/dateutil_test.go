package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayToSortable(t *testing.T) {
	assert.Equal(t, "2025-10-25", DisplayToSortable("25/10/2025"))
	assert.Equal(t, "1990-01-02", DisplayToSortable("02/01/1990"))
}

func TestSortableToDisplay(t *testing.T) {
	assert.Equal(t, "25/10/2025", SortableToDisplay("2025-10-25"))
}

func TestRoundTrip(t *testing.T) {
	display := "25/10/2025"
	assert.Equal(t, display, SortableToDisplay(DisplayToSortable(display)))

	sortable := "2024-02-29"
	assert.Equal(t, sortable, DisplayToSortable(SortableToDisplay(sortable)))
}

func TestUnparseableInputPassesThrough(t *testing.T) {
	assert.Equal(t, "not-a-date", DisplayToSortable("not-a-date"))
	assert.Equal(t, "", DisplayToSortable(""))
	assert.Equal(t, "31/02/2025", DisplayToSortable("31/02/2025"))
	assert.Equal(t, "not-a-date", SortableToDisplay("not-a-date"))
}

func TestSortableOrderMatchesChronology(t *testing.T) {
	earlier := DisplayToSortable("28/10/2025")
	later := DisplayToSortable("03/11/2025")
	assert.Less(t, earlier, later)
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().Format(SortableLayout), Today())
}

func TestTimeConversionIsIdentity(t *testing.T) {
	assert.Equal(t, "14:30", DisplayToTime24("14:30"))
	assert.Equal(t, "14:30", Time24ToDisplay("14:30"))
}
