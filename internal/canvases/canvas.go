package canvases

import (
	"encoding/json"
	"errors"
	"time"
)

// Canvas is one drawing surface inside a project. Content is the editor's
// own JSON document; the backend stores it opaquely.
type Canvas struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

var ErrNotFound = errors.New("canvas not found")
