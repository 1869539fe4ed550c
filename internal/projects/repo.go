package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueNameConstraint is the partial unique index on (user_id, name) for
// live rows. It backstops the validator against concurrent submissions.
const uniqueNameConstraint = "projects_user_id_name_live_key"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectCols = "public_id, name, description, created_at, updated_at"

func (r *Repo) Create(ctx context.Context, userDBID, name, description string) (*Project, error) {
	if name == "" {
		return nil, fmt.Errorf("name required")
	}

	for i := 0; i < 5; i++ {
		publicID, err := NewPublicID("canvas")
		if err != nil {
			return nil, err
		}

		const q = `
insert into projects (public_id, user_id, name, description)
values ($1, $2::uuid, $3, $4)
returning ` + projectCols + `;
`
		var p Project
		err = r.db.QueryRow(ctx, q, publicID, userDBID, name, description).
			Scan(&p.PublicID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)

		if err == nil {
			return &p, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == uniqueNameConstraint {
				return nil, ErrDuplicateName
			}
			// unique violation on public_id → retry with a fresh one
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique project id")
}

func (r *Repo) List(ctx context.Context, userDBID string) ([]Project, error) {
	const q = `
select ` + projectCols + `
from projects
where user_id = $1::uuid and deleted_at is null
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, userDBID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.PublicID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, userDBID, publicID string) (*Project, error) {
	const q = `
select ` + projectCols + `
from projects
where user_id = $1::uuid and public_id = $2 and deleted_at is null;
`
	var p Project
	err := r.db.QueryRow(ctx, q, userDBID, publicID).
		Scan(&p.PublicID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Update(ctx context.Context, userDBID, publicID, name, description string) (*Project, error) {
	const q = `
update projects
set name = $3, description = $4, updated_at = now()
where user_id = $1::uuid and public_id = $2 and deleted_at is null
returning ` + projectCols + `;
`
	var p Project
	err := r.db.QueryRow(ctx, q, userDBID, publicID, name, description).
		Scan(&p.PublicID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueNameConstraint {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) SoftDelete(ctx context.Context, userDBID, publicID string) (bool, error) {
	const q = `
update projects
set deleted_at = now(), updated_at = now()
where user_id = $1::uuid and public_id = $2 and deleted_at is null;
`
	ct, err := r.db.Exec(ctx, q, userDBID, publicID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// IsNameUnique reports whether no live project of the owner already uses
// name. It is the existence checker behind the NameValidator.
func (r *Repo) IsNameUnique(ctx context.Context, userDBID, name string) (bool, error) {
	const q = `
select not exists (
  select 1 from projects
  where user_id = $1::uuid and name = $2 and deleted_at is null
);
`
	var unique bool
	if err := r.db.QueryRow(ctx, q, userDBID, name).Scan(&unique); err != nil {
		return false, err
	}
	return unique, nil
}
