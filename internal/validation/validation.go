package validation

import (
	"fmt"
	"strings"

	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/utils"
)

// ValidateEvent checks the user-settable fields of an event before it is
// handed to the store. The store rejects invalid events before an id is
// assigned, so a failed add leaves no trace in the collection.
func ValidateEvent(e models.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if _, err := utils.ParseDate(e.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", e.Date, err)
	}
	if err := validateTimes(e.StartTime, e.EndTime); err != nil {
		return err
	}
	if e.Priority != "" && !e.Priority.IsValid() {
		return fmt.Errorf("invalid priority %q (expected low|medium|high)", e.Priority)
	}
	if e.CustomReminderMin != nil && *e.CustomReminderMin < 0 {
		return fmt.Errorf("custom reminder must be a non-negative number of minutes")
	}
	return nil
}

// ValidatePatch checks the fields present in a partial update.
func ValidatePatch(p models.EventPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if p.Date != nil {
		if _, err := utils.ParseDate(*p.Date); err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", *p.Date, err)
		}
	}
	if p.StartTime != nil && *p.StartTime != "" {
		if _, err := utils.ParseTime(*p.StartTime); err != nil {
			return fmt.Errorf("invalid start time %q (expected HH:MM): %w", *p.StartTime, err)
		}
	}
	if p.EndTime != nil && *p.EndTime != "" {
		if _, err := utils.ParseTime(*p.EndTime); err != nil {
			return fmt.Errorf("invalid end time %q (expected HH:MM): %w", *p.EndTime, err)
		}
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("invalid priority %q (expected low|medium|high)", *p.Priority)
	}
	if p.CustomReminderMin != nil && *p.CustomReminderMin < 0 {
		return fmt.Errorf("custom reminder must be a non-negative number of minutes")
	}
	return nil
}

func validateTimes(start, end string) error {
	if start != "" {
		if _, err := utils.ParseTime(start); err != nil {
			return fmt.Errorf("invalid start time %q (expected HH:MM): %w", start, err)
		}
	}
	if end != "" {
		if _, err := utils.ParseTime(end); err != nil {
			return fmt.Errorf("invalid end time %q (expected HH:MM): %w", end, err)
		}
	}
	if start != "" && end != "" {
		s, _ := utils.ParseTime(start) // validated above, won't fail
		e, _ := utils.ParseTime(end)   // validated above, won't fail
		if e.Before(s) {
			return fmt.Errorf("end time must not be before start time")
		}
	}
	return nil
}
