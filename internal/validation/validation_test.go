package validation

import (
	"testing"

	"github.com/longtraan06/studyplanner/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   models.Event
		wantErr bool
	}{
		{
			name:  "minimal valid event",
			event: models.Event{Title: "Math HW", Date: "2024-03-04"},
		},
		{
			name: "fully populated event",
			event: models.Event{
				Title:             "Exam",
				Description:       "Final",
				Date:              "2024-03-04",
				StartTime:         "09:00",
				EndTime:           "11:00",
				Priority:          models.PriorityHigh,
				CustomReminderMin: intPtr(45),
			},
		},
		{
			name:    "empty title",
			event:   models.Event{Title: "", Date: "2024-03-04"},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			event:   models.Event{Title: "  \t ", Date: "2024-03-04"},
			wantErr: true,
		},
		{
			name:    "missing date",
			event:   models.Event{Title: "x"},
			wantErr: true,
		},
		{
			name:    "wrong date format",
			event:   models.Event{Title: "x", Date: "04.03.2024"},
			wantErr: true,
		},
		{
			name:    "hour out of range",
			event:   models.Event{Title: "x", Date: "2024-03-04", StartTime: "24:00"},
			wantErr: true,
		},
		{
			name:    "minute out of range",
			event:   models.Event{Title: "x", Date: "2024-03-04", StartTime: "09:60"},
			wantErr: true,
		},
		{
			name:    "end before start",
			event:   models.Event{Title: "x", Date: "2024-03-04", StartTime: "10:00", EndTime: "09:00"},
			wantErr: true,
		},
		{
			name:  "end equal to start is allowed",
			event: models.Event{Title: "x", Date: "2024-03-04", StartTime: "10:00", EndTime: "10:00"},
		},
		{
			name:  "end without start is allowed",
			event: models.Event{Title: "x", Date: "2024-03-04", EndTime: "10:00"},
		},
		{
			name:    "unknown priority",
			event:   models.Event{Title: "x", Date: "2024-03-04", Priority: "urgent"},
			wantErr: true,
		},
		{
			name:    "negative custom reminder",
			event:   models.Event{Title: "x", Date: "2024-03-04", CustomReminderMin: intPtr(-5)},
			wantErr: true,
		},
		{
			name:  "zero custom reminder is allowed",
			event: models.Event{Title: "x", Date: "2024-03-04", CustomReminderMin: intPtr(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEvent(tt.event)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePatch(t *testing.T) {
	badPriority := models.Priority("urgent")
	goodPriority := models.PriorityLow

	tests := []struct {
		name    string
		patch   models.EventPatch
		wantErr bool
	}{
		{
			name:  "empty patch",
			patch: models.EventPatch{},
		},
		{
			name:  "valid fields",
			patch: models.EventPatch{Title: strPtr("New"), Date: strPtr("2024-04-01"), Priority: &goodPriority},
		},
		{
			name:  "clearing a time is allowed",
			patch: models.EventPatch{StartTime: strPtr("")},
		},
		{
			name:    "empty title",
			patch:   models.EventPatch{Title: strPtr("  ")},
			wantErr: true,
		},
		{
			name:    "bad date",
			patch:   models.EventPatch{Date: strPtr("April 1st")},
			wantErr: true,
		},
		{
			name:    "bad start time",
			patch:   models.EventPatch{StartTime: strPtr("9am")},
			wantErr: true,
		},
		{
			name:    "bad priority",
			patch:   models.EventPatch{Priority: &badPriority},
			wantErr: true,
		},
		{
			name:    "negative reminder",
			patch:   models.EventPatch{CustomReminderMin: intPtr(-1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePatch(tt.patch)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePatch() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
