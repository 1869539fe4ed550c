package maintenance

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// PurgeCandidate is a soft-deleted project whose retention window has
// elapsed, together with the canvases that go with it.
type PurgeCandidate struct {
	ID          string          `json:"-"`
	PublicID    string          `json:"public_id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DeletedAt   time.Time       `json:"deleted_at"`
	Canvases    json.RawMessage `json:"canvases"`
}

// PurgeStore reads and hard-deletes expired projects over database/sql.
type PurgeStore struct {
	db *sql.DB
}

func NewPurgeStore(db *sql.DB) *PurgeStore {
	return &PurgeStore{db: db}
}

// ListExpired returns projects soft-deleted before cutoff, each with its
// canvases bundled as a JSON array for archival.
func (s *PurgeStore) ListExpired(ctx context.Context, cutoff time.Time) ([]PurgeCandidate, error) {
	const q = `
SELECT p.id::text, p.public_id, p.user_id::text, p.name, p.description, p.deleted_at,
       COALESCE(
         (SELECT json_agg(json_build_object('id', c.id, 'title', c.title, 'content', c.content))
          FROM canvases c WHERE c.project_id = p.id),
         '[]'::json
       )
FROM projects p
WHERE p.deleted_at IS NOT NULL AND p.deleted_at < $1
ORDER BY p.deleted_at ASC
`
	rows, err := s.db.QueryContext(ctx, q, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expired projects: %w", err)
	}
	defer rows.Close()

	var out []PurgeCandidate
	for rows.Next() {
		var p PurgeCandidate
		var canvases []byte
		if err := rows.Scan(&p.ID, &p.PublicID, &p.UserID, &p.Name, &p.Description, &p.DeletedAt, &canvases); err != nil {
			return nil, fmt.Errorf("scan expired project: %w", err)
		}
		p.Canvases = json.RawMessage(canvases)
		out = append(out, p)
	}
	return out, rows.Err()
}

// HardDelete removes the project and its canvases for good. Returns false
// when the row was already gone.
func (s *PurgeStore) HardDelete(ctx context.Context, projectID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin purge tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM canvases WHERE project_id = $1::uuid`, projectID); err != nil {
		return false, fmt.Errorf("delete canvases: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1::uuid AND deleted_at IS NOT NULL`, projectID)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit purge tx: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
