package calendar

import "time"

// MonthGridSize is the fixed 6-row x 7-column month layout.
const (
	MonthGridSize = 42
	WeekDays      = 7
)

// Cell is one slot of the month grid.
type Cell struct {
	Date    time.Time
	InMonth bool // cell's month equals the anchor's month
	IsToday bool
	IsPast  bool // strictly before today at midnight
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekOf returns the 7 dates of the week containing anchor, starting on
// Sunday and ending on Saturday.
func WeekOf(anchor time.Time) []time.Time {
	start := StartOfDay(anchor).AddDate(0, 0, -int(anchor.Weekday()))
	week := make([]time.Time, WeekDays)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// MonthGrid returns the fixed 42-cell grid for anchor's month. The first
// cell is the Sunday on or before the 1st of the month. today determines
// the IsToday and IsPast flags; passing it in keeps the grid pure.
func MonthGrid(anchor, today time.Time) []Cell {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	midnight := StartOfDay(today)

	grid := make([]Cell, MonthGridSize)
	for i := range grid {
		d := start.AddDate(0, 0, i)
		grid[i] = Cell{
			Date:    d,
			InMonth: d.Month() == anchor.Month(),
			IsToday: SameDay(d, today),
			IsPast:  d.Before(midnight),
		}
	}
	return grid
}

// ShiftDay moves the anchor by delta days.
func ShiftDay(anchor time.Time, delta int) time.Time {
	return anchor.AddDate(0, 0, delta)
}

// ShiftWeek moves the anchor by delta weeks.
func ShiftWeek(anchor time.Time, delta int) time.Time {
	return anchor.AddDate(0, 0, WeekDays*delta)
}

// ShiftMonth moves the anchor by delta calendar months, inheriting the
// native AddDate normalization for short months (Jan 31 +1 month lands in
// early March).
func ShiftMonth(anchor time.Time, delta int) time.Time {
	return anchor.AddDate(0, delta, 0)
}
