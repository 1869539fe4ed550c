package projects

import (
	"errors"
	"time"

	"github.com/canvashq/canvas-backend/internal/messages"
)

// Project is a single canvas project owned by a user. Names are unique per
// owner and double as structural identifiers in the editor frontend.
type Project struct {
	PublicID    string    `json:"public_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrNotFound = errors.New("project not found")

	// ErrDuplicateName rejects a name already used by another project of the
	// same owner. Its text is the fixed user-facing catalog message.
	ErrDuplicateName = errors.New(messages.ProjectNameMustBeUnique)
)
