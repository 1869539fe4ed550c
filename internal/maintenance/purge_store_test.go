package maintenance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPurgeStore(t *testing.T) (*PurgeStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewPurgeStore(db), mock, db
}

func TestPurgeStore_ListExpired(t *testing.T) {
	store, mock, db := setupPurgeStore(t)
	defer db.Close()

	cutoff := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	deletedAt := cutoff.AddDate(0, 0, -10)

	rows := sqlmock.NewRows([]string{"id", "public_id", "user_id", "name", "description", "deleted_at", "canvases"}).
		AddRow("11111111-1111-1111-1111-111111111111", "canvas-10001-0001", "22222222-2222-2222-2222-222222222222",
			"Old_Project", "abandoned", deletedAt, []byte(`[{"id":"c1","title":"Sheet 1"}]`))

	mock.ExpectQuery(`SELECT p\.id::text, p\.public_id`).
		WithArgs(cutoff).
		WillReturnRows(rows)

	got, err := store.ListExpired(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "canvas-10001-0001", got[0].PublicID)
	assert.Equal(t, "Old_Project", got[0].Name)
	assert.JSONEq(t, `[{"id":"c1","title":"Sheet 1"}]`, string(got[0].Canvases))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeStore_ListExpiredEmpty(t *testing.T) {
	store, mock, db := setupPurgeStore(t)
	defer db.Close()

	cutoff := time.Now()
	mock.ExpectQuery(`SELECT p\.id::text, p\.public_id`).
		WithArgs(cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id", "public_id", "user_id", "name", "description", "deleted_at", "canvases"}))

	got, err := store.ListExpired(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeStore_HardDelete(t *testing.T) {
	store, mock, db := setupPurgeStore(t)
	defer db.Close()

	const id = "11111111-1111-1111-1111-111111111111"

	t.Run("deletes canvases then project in one tx", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM canvases`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM projects`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := store.HardDelete(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("reports false when project already gone", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM canvases`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM projects`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		deleted, err := store.HardDelete(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
