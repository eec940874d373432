package constants

const (
	AppName = "studyplanner"
	Version = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// StorageKey is the base name of the persisted event collection
	StorageKey = "studyplanner-events"

	DefaultConfigPath = "~/.config/studyplanner/studyplanner-events.json"
)
