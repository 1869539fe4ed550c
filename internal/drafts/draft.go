package drafts

import (
	"errors"
	"time"
)

// Draft is an autosaved, not-yet-submitted project form. It lives only in
// Redis; nothing is validated until the user actually submits.
type Draft struct {
	DraftID     string    `json:"draft_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SavedAt     time.Time `json:"saved_at"`
}

var ErrNotFound = errors.New("draft not found")
