package reminders

import (
	"testing"
	"time"

	"github.com/longtraan06/studyplanner/internal/models"
)

func intPtr(i int) *int { return &i }

func TestEffectiveLeadMin(t *testing.T) {
	tests := []struct {
		name  string
		event models.Event
		want  int
	}{
		{
			name:  "high priority default",
			event: models.Event{Priority: models.PriorityHigh},
			want:  60,
		},
		{
			name:  "medium priority default",
			event: models.Event{Priority: models.PriorityMedium},
			want:  30,
		},
		{
			name:  "low priority default",
			event: models.Event{Priority: models.PriorityLow},
			want:  10,
		},
		{
			name:  "unknown priority falls back to medium default",
			event: models.Event{Priority: "urgent"},
			want:  30,
		},
		{
			name:  "missing priority falls back to medium default",
			event: models.Event{},
			want:  30,
		},
		{
			name:  "custom override wins",
			event: models.Event{Priority: models.PriorityLow, CustomReminderMin: intPtr(5)},
			want:  5,
		},
		{
			name:  "custom zero is a valid override",
			event: models.Event{Priority: models.PriorityHigh, CustomReminderMin: intPtr(0)},
			want:  0,
		},
		{
			name:  "negative custom is ignored",
			event: models.Event{Priority: models.PriorityHigh, CustomReminderMin: intPtr(-1)},
			want:  60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveLeadMin(tt.event)
			if got != tt.want {
				t.Errorf("EffectiveLeadMin = %d, want %d", got, tt.want)
			}
			// Pure function: a second call on the unchanged event must
			// agree with the first.
			if again := EffectiveLeadMin(tt.event); again != got {
				t.Errorf("EffectiveLeadMin not stable: %d then %d", got, again)
			}
		})
	}
}

func TestUpcomingEntries(t *testing.T) {
	events := []models.Event{
		{ID: "1", Title: "Past", Date: "2024-03-01", Priority: models.PriorityHigh},
		{ID: "2", Title: "Exam", Date: "2024-03-05", Priority: models.PriorityHigh},
		{ID: "3", Title: "Reading", Date: "2024-03-06", Priority: models.PriorityLow, CustomReminderMin: intPtr(5)},
	}

	asOf := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local)
	entries := UpcomingEntries(events, asOf, 5)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Event.Title != "Exam" || entries[0].LeadMin != 60 {
		t.Errorf("first entry = %s/%d, want Exam/60", entries[0].Event.Title, entries[0].LeadMin)
	}
	if entries[1].Event.Title != "Reading" || entries[1].LeadMin != 5 {
		t.Errorf("second entry = %s/%d, want Reading/5", entries[1].Event.Title, entries[1].LeadMin)
	}
}
