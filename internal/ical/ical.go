package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/longtraan06/studyplanner/internal/constants"
	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/utils"
)

// Build converts the event collection into an iCalendar object with one
// VEVENT per event. Timed events get DTSTART/DTEND from date plus times
// (a missing end time defaults to one hour after start); events without a
// start time become all-day entries.
func Build(events []models.Event) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//" + constants.AppName + "//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if !e.CreatedAt.IsZero() {
			ve.SetCreatedTime(e.CreatedAt)
			ve.SetDtStampTime(e.CreatedAt)
		}

		day, err := utils.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("event %s has invalid date %q: %w", e.ID, e.Date, err)
		}

		if e.StartTime == "" {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		start, err := utils.CombineDateAndTime(e.Date, e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("event %s has invalid start time %q: %w", e.ID, e.StartTime, err)
		}
		end := start.Add(time.Hour)
		if e.EndTime != "" {
			end, err = utils.CombineDateAndTime(e.Date, e.EndTime)
			if err != nil {
				return nil, fmt.Errorf("event %s has invalid end time %q: %w", e.ID, e.EndTime, err)
			}
		}
		ve.SetStartAt(start)
		ve.SetEndAt(end)
	}

	return cal, nil
}
