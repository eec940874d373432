package cli

import (
	"github.com/longtraan06/studyplanner/internal/events"
	"github.com/longtraan06/studyplanner/internal/storage"
)

type Context struct {
	Store    *events.Store
	Provider storage.Provider
}
