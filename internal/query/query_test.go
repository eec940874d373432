package query

import (
	"testing"
	"time"

	"github.com/longtraan06/studyplanner/internal/calendar"
	"github.com/longtraan06/studyplanner/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func ev(id, title, day, start string, p models.Priority) models.Event {
	return models.Event{
		ID:        id,
		Title:     title,
		Date:      day,
		StartTime: start,
		Priority:  p,
		CreatedAt: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

func titles(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestForDay(t *testing.T) {
	tests := []struct {
		name   string
		events []models.Event
		day    time.Time
		want   []string
	}{
		{
			name: "timed events sort chronologically",
			events: []models.Event{
				ev("1", "Math HW", "2024-03-04", "09:00", models.PriorityHigh),
				ev("2", "Read", "2024-03-04", "14:00", models.PriorityLow),
			},
			day:  date(2024, time.March, 4),
			want: []string{"Math HW", "Read"},
		},
		{
			name: "other dates are excluded",
			events: []models.Event{
				ev("1", "Today", "2024-03-04", "09:00", models.PriorityMedium),
				ev("2", "Tomorrow", "2024-03-05", "08:00", models.PriorityHigh),
				ev("3", "Yesterday", "2024-03-03", "08:00", models.PriorityHigh),
			},
			day:  date(2024, time.March, 4),
			want: []string{"Today"},
		},
		{
			name: "untimed events sort after timed events",
			events: []models.Event{
				ev("1", "All day", "2024-03-04", "", models.PriorityHigh),
				ev("2", "Late", "2024-03-04", "22:00", models.PriorityLow),
			},
			day:  date(2024, time.March, 4),
			want: []string{"Late", "All day"},
		},
		{
			name: "untimed events order by priority",
			events: []models.Event{
				ev("1", "Chores", "2024-03-04", "", models.PriorityLow),
				ev("2", "Exam prep", "2024-03-04", "", models.PriorityHigh),
				ev("3", "Notes", "2024-03-04", "", models.PriorityMedium),
			},
			day:  date(2024, time.March, 4),
			want: []string{"Exam prep", "Notes", "Chores"},
		},
		{
			name: "equal start times break ties by priority",
			events: []models.Event{
				ev("1", "Low", "2024-03-04", "10:00", models.PriorityLow),
				ev("2", "High", "2024-03-04", "10:00", models.PriorityHigh),
			},
			day:  date(2024, time.March, 4),
			want: []string{"High", "Low"},
		},
		{
			name:   "empty input",
			events: nil,
			day:    date(2024, time.March, 4),
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(ForDay(tt.events, tt.day))
			if !equalStrings(got, tt.want) {
				t.Errorf("ForDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForDayEqualEventsUseCreationOrder(t *testing.T) {
	a := ev("a", "First", "2024-03-04", "10:00", models.PriorityMedium)
	b := ev("b", "Second", "2024-03-04", "10:00", models.PriorityMedium)
	b.CreatedAt = a.CreatedAt.Add(time.Minute)

	got := titles(ForDay([]models.Event{b, a}, date(2024, time.March, 4)))
	if !equalStrings(got, []string{"First", "Second"}) {
		t.Errorf("ForDay = %v, want creation order [First Second]", got)
	}
}

func TestLessIsTransitive(t *testing.T) {
	// A mixed bag of timed/untimed events across priorities; the order
	// must be total for stable "first N" truncation.
	events := []models.Event{
		ev("a", "a", "2024-03-04", "09:00", models.PriorityLow),
		ev("b", "b", "2024-03-04", "", models.PriorityHigh),
		ev("c", "c", "2024-03-04", "14:00", models.PriorityHigh),
		ev("d", "d", "2024-03-04", "", models.PriorityLow),
		ev("e", "e", "2024-03-05", "08:00", models.PriorityMedium),
		ev("f", "f", "2024-03-04", "09:00", models.PriorityLow),
	}

	for _, a := range events {
		for _, b := range events {
			for _, c := range events {
				if Less(a, b) && Less(b, c) && !Less(a, c) {
					t.Fatalf("order not transitive for %s, %s, %s", a.ID, b.ID, c.ID)
				}
			}
		}
	}
	for _, a := range events {
		if Less(a, a) {
			t.Fatalf("order not irreflexive for %s", a.ID)
		}
	}
}

func TestForWeek(t *testing.T) {
	week := calendar.WeekOf(date(2024, time.March, 6))
	events := []models.Event{
		ev("1", "Sun", "2024-03-03", "09:00", models.PriorityMedium),
		ev("2", "Sat", "2024-03-09", "09:00", models.PriorityMedium),
		ev("3", "Outside", "2024-03-10", "09:00", models.PriorityMedium),
	}

	byDay := ForWeek(events, week)
	if len(byDay) != 7 {
		t.Fatalf("ForWeek returned %d keys, want 7", len(byDay))
	}
	if got := titles(byDay["2024-03-03"]); !equalStrings(got, []string{"Sun"}) {
		t.Errorf("sunday = %v, want [Sun]", got)
	}
	if got := titles(byDay["2024-03-09"]); !equalStrings(got, []string{"Sat"}) {
		t.Errorf("saturday = %v, want [Sat]", got)
	}
	if _, ok := byDay["2024-03-10"]; ok {
		t.Error("ForWeek must not contain dates outside the window")
	}
}

func TestForMonthTruncationIsStable(t *testing.T) {
	grid := calendar.MonthGrid(date(2024, time.March, 1), date(2024, time.March, 1))
	events := []models.Event{
		ev("1", "Third", "2024-03-04", "11:00", models.PriorityLow),
		ev("2", "First", "2024-03-04", "09:00", models.PriorityHigh),
		ev("3", "Second", "2024-03-04", "10:00", models.PriorityMedium),
	}

	// The grouped order has to be identical on every call so "first 2
	// + 1 more" renders the same events each frame.
	for i := 0; i < 10; i++ {
		byDay := ForMonth(events, grid)
		got := titles(byDay["2024-03-04"])
		if !equalStrings(got, []string{"First", "Second", "Third"}) {
			t.Fatalf("ForMonth order = %v, want [First Second Third]", got)
		}
	}
}

func TestForRange(t *testing.T) {
	events := []models.Event{
		ev("1", "Before", "2024-03-01", "", models.PriorityHigh),
		ev("2", "StartEdge", "2024-03-04", "", models.PriorityLow),
		ev("3", "Mid high", "2024-03-05", "", models.PriorityHigh),
		ev("4", "Mid low", "2024-03-05", "", models.PriorityLow),
		ev("5", "EndEdge", "2024-03-08", "", models.PriorityMedium),
		ev("6", "After", "2024-03-09", "", models.PriorityHigh),
	}

	got := titles(ForRange(events, date(2024, time.March, 4), date(2024, time.March, 8)))
	want := []string{"StartEdge", "Mid high", "Mid low", "EndEdge"}
	if !equalStrings(got, want) {
		t.Errorf("ForRange = %v, want %v", got, want)
	}
}

func TestUpcoming(t *testing.T) {
	events := []models.Event{
		ev("1", "Past", "2024-03-01", "", models.PriorityHigh),
		ev("2", "Today", "2024-03-04", "", models.PriorityMedium),
		ev("3", "Soon", "2024-03-05", "", models.PriorityMedium),
		ev("4", "Later", "2024-03-20", "", models.PriorityMedium),
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"limit truncates", 2, []string{"Today", "Soon"}},
		{"no limit", 0, []string{"Today", "Soon", "Later"}},
		{"limit above length", 10, []string{"Today", "Soon", "Later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Upcoming(events, date(2024, time.March, 4), tt.limit))
			if !equalStrings(got, tt.want) {
				t.Errorf("Upcoming = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupByDateKey(t *testing.T) {
	events := []models.Event{
		ev("1", "A", "2024-03-04", "", models.PriorityLow),
		ev("2", "B", "2024-03-05", "", models.PriorityHigh),
		ev("3", "C", "2024-03-04", "", models.PriorityHigh),
	}

	groups := GroupByDateKey(events)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// Relative input order is preserved within a group; grouping does
	// not re-sort.
	if got := titles(groups["2024-03-04"]); !equalStrings(got, []string{"A", "C"}) {
		t.Errorf("group = %v, want input order [A C]", got)
	}

	keys := SortedDateKeys(groups)
	if !equalStrings(keys, []string{"2024-03-04", "2024-03-05"}) {
		t.Errorf("keys = %v, want ascending dates", keys)
	}
}
