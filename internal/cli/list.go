package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/query"
)

type ListCmd struct {
	All bool `short:"a" help:"Include past events."`
}

func (c *ListCmd) Run(ctx *Context) error {
	events := ctx.Store.List()
	if !c.All {
		events = query.Upcoming(events, time.Now(), 0)
	}
	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}

	// Group in sorted order so each group inherits the canonical sort.
	groups := query.GroupByDateKey(query.Sorted(events))
	for _, key := range query.SortedDateKeys(groups) {
		fmt.Printf("%s\n", key)
		for _, e := range groups[key] {
			fmt.Printf("  %s\n", FormatEventLine(e))
		}
	}
	return nil
}

// FormatEventLine renders one event as a single list row.
func FormatEventLine(e models.Event) string {
	var b strings.Builder
	if e.StartTime != "" {
		b.WriteString(e.StartTime)
		if e.EndTime != "" {
			b.WriteString("-" + e.EndTime)
		}
	} else {
		b.WriteString("all-day")
	}
	fmt.Fprintf(&b, "  %-30s [%s] %s", e.Title, e.Priority, e.ID)
	return b.String()
}
