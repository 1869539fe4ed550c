package canvases

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canvashq/canvas-backend/internal/projects"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const canvasCols = "c.id::text, c.title, c.content, c.created_at, c.updated_at"

// ownedProject resolves a project public id to its database id, scoped to
// the owner so one user cannot touch canvases of another.
const ownedProject = `
select id from projects
where user_id = $1::uuid and public_id = $2 and deleted_at is null
`

func (r *Repo) Create(ctx context.Context, userDBID, projectPublicID, title string, content json.RawMessage) (*Canvas, error) {
	if len(content) == 0 {
		content = json.RawMessage(`{}`)
	}

	const q = `
insert into canvases (project_id, title, content)
select id, $3, $4::jsonb from (` + ownedProject + `) p(id)
returning id::text, title, content, created_at, updated_at;
`
	var cv Canvas
	err := r.db.QueryRow(ctx, q, userDBID, projectPublicID, title, content).
		Scan(&cv.ID, &cv.Title, &cv.Content, &cv.CreatedAt, &cv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, projects.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *Repo) ListByProject(ctx context.Context, userDBID, projectPublicID string) ([]Canvas, error) {
	const q = `
select ` + canvasCols + `
from canvases c
join (` + ownedProject + `) p(id) on c.project_id = p.id
order by c.created_at asc;
`
	rows, err := r.db.Query(ctx, q, userDBID, projectPublicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Canvas, 0, 8)
	for rows.Next() {
		var cv Canvas
		if err := rows.Scan(&cv.ID, &cv.Title, &cv.Content, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, userDBID, projectPublicID, canvasID string) (*Canvas, error) {
	const q = `
select ` + canvasCols + `
from canvases c
join (` + ownedProject + `) p(id) on c.project_id = p.id
where c.id = $3::uuid;
`
	var cv Canvas
	err := r.db.QueryRow(ctx, q, userDBID, projectPublicID, canvasID).
		Scan(&cv.ID, &cv.Title, &cv.Content, &cv.CreatedAt, &cv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *Repo) Update(ctx context.Context, userDBID, projectPublicID, canvasID, title string, content json.RawMessage) (*Canvas, error) {
	if len(content) == 0 {
		content = json.RawMessage(`{}`)
	}

	const q = `
update canvases c
set title = $4, content = $5::jsonb, updated_at = now()
from (` + ownedProject + `) p(id)
where c.project_id = p.id and c.id = $3::uuid
returning ` + canvasCols + `;
`
	var cv Canvas
	err := r.db.QueryRow(ctx, q, userDBID, projectPublicID, canvasID, title, content).
		Scan(&cv.ID, &cv.Title, &cv.Content, &cv.CreatedAt, &cv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *Repo) Delete(ctx context.Context, userDBID, projectPublicID, canvasID string) (bool, error) {
	const q = `
delete from canvases c
using (` + ownedProject + `) p(id)
where c.project_id = p.id and c.id = $3::uuid;
`
	ct, err := r.db.Exec(ctx, q, userDBID, projectPublicID, canvasID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
