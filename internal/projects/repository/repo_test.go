package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projhub/projhub-backend/internal/projects/domain"
)

func setupRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewProjectRepository(db)
	return repo, mock, db
}

func projectRows(projects ...domain.Project) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "project_name", "description", "date_added"})
	for _, p := range projects {
		rows.AddRow(p.ID, p.Name, p.Description, p.CreatedAt)
	}
	return rows
}

func TestProjectRepository_Create(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("inserts and returns the stored row", func(t *testing.T) {
		added := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		mock.ExpectQuery("INSERT INTO projects").
			WithArgs("Chatbot", "A small support chatbot").
			WillReturnRows(projectRows(domain.Project{
				ID:          7,
				Name:        "Chatbot",
				Description: "A small support chatbot",
				CreatedAt:   added,
			}))

		p, err := repo.Create(context.Background(), "Chatbot", "A small support chatbot")
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.ID)
		assert.Equal(t, "Chatbot", p.Name)
		assert.Equal(t, added, p.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates insert failures", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO projects").
			WithArgs("X", "Y").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(context.Background(), "X", "Y")
		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Update(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("rewrites name and description, keeps id and date_added", func(t *testing.T) {
		added := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("UPDATE projects").
			WithArgs(int64(3), "Renamed", "New text").
			WillReturnRows(projectRows(domain.Project{
				ID:          3,
				Name:        "Renamed",
				Description: "New text",
				CreatedAt:   added,
			}))

		p, err := repo.Update(context.Background(), 3, "Renamed", "New text")
		require.NoError(t, err)
		assert.Equal(t, int64(3), p.ID)
		assert.Equal(t, added, p.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports ErrNotFound for an absent id", func(t *testing.T) {
		mock.ExpectQuery("UPDATE projects").
			WithArgs(int64(99), "Name", "Desc").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(context.Background(), 99, "Name", "Desc")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Delete(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("reports true when a row was removed", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM projects").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		removed, err := repo.Delete(context.Background(), 5)
		require.NoError(t, err)
		assert.True(t, removed)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports false for an absent id", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM projects").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := repo.Delete(context.Background(), 99)
		require.NoError(t, err)
		assert.False(t, removed)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_List(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("returns rows ordered by date_added descending", func(t *testing.T) {
		newer := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
		older := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery("ORDER BY date_added DESC, id DESC").
			WillReturnRows(projectRows(
				domain.Project{ID: 2, Name: "B", Description: "b", CreatedAt: newer},
				domain.Project{ID: 1, Name: "A", Description: "a", CreatedAt: older},
			))

		items, err := repo.List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[0].ID)
		assert.Equal(t, int64(1), items[1].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters name or description by keyword", func(t *testing.T) {
		mock.ExpectQuery("project_name ILIKE \\$1 OR description ILIKE \\$1").
			WithArgs("%chatbot%").
			WillReturnRows(projectRows(domain.Project{
				ID: 4, Name: "Chatbot", Description: "support bot",
				CreatedAt: time.Now(),
			}))

		items, err := repo.List(context.Background(), "chatbot")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Chatbot", items[0].Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("escapes pattern metacharacters in the keyword", func(t *testing.T) {
		mock.ExpectQuery("ILIKE").
			WithArgs(`%100\%\_done%`).
			WillReturnRows(projectRows())

		_, err := repo.List(context.Background(), "100%_done")
		require.NoError(t, err)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns an empty slice when nothing matches", func(t *testing.T) {
		mock.ExpectQuery("FROM projects").
			WithArgs("%nope%").
			WillReturnRows(projectRows())

		items, err := repo.List(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, items)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_EnsureSchema(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("creates the table when missing", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS projects").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.EnsureSchema(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("surfaces DDL failures to the caller", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS projects").
			WillReturnError(errors.New("permission denied"))

		assert.Error(t, repo.EnsureSchema(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
