package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/pkg/database"
)

func setupCommentRepo(t *testing.T) (*CommentRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewCommentRepository(mock)
	return repo, mock
}

func sampleComment() *domain.Comment {
	return &domain.Comment{
		ID:        "com-001",
		ReviewID:  "rev-001",
		UserID:    "user-002",
		Text:      "totalmente de acuerdo",
		CreatedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}
}

func commentColumns() []string {
	return []string{"id", "review_id", "user_id", "text", "created_at"}
}

func TestCommentRepository_Create_Success(t *testing.T) {
	repo, mock := setupCommentRepo(t)
	defer mock.Close()

	c := sampleComment()

	mock.ExpectExec("INSERT INTO comments").
		WithArgs(c.ID, c.ReviewID, c.UserID, c.Text, c.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Create_ExecError(t *testing.T) {
	repo, mock := setupCommentRepo(t)
	defer mock.Close()

	c := sampleComment()

	mock.ExpectExec("INSERT INTO comments").
		WithArgs(c.ID, c.ReviewID, c.UserID, c.Text, c.CreatedAt).
		WillReturnError(errors.New("foreign key violation"))

	err := repo.Create(context.Background(), c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert comment")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByReviewIDs_GroupsByReview(t *testing.T) {
	repo, mock := setupCommentRepo(t)
	defer mock.Close()

	c1 := sampleComment()
	c2 := sampleComment()
	c2.ID = "com-002"
	c2.Text = "yo prefiero la otra"
	c2.CreatedAt = c1.CreatedAt.Add(time.Hour)
	c3 := sampleComment()
	c3.ID = "com-003"
	c3.ReviewID = "rev-002"

	rows := pgxmock.NewRows(commentColumns()).
		AddRow(c1.ID, c1.ReviewID, c1.UserID, c1.Text, c1.CreatedAt).
		AddRow(c3.ID, c3.ReviewID, c3.UserID, c3.Text, c3.CreatedAt).
		AddRow(c2.ID, c2.ReviewID, c2.UserID, c2.Text, c2.CreatedAt)

	ids := []string{"rev-001", "rev-002"}
	mock.ExpectQuery("SELECT .+ FROM comments WHERE review_id").
		WithArgs(ids).
		WillReturnRows(rows)

	grouped, err := repo.ListByReviewIDs(context.Background(), ids)
	require.NoError(t, err)

	require.Len(t, grouped["rev-001"], 2)
	require.Len(t, grouped["rev-002"], 1)
	assert.Equal(t, "com-001", grouped["rev-001"][0].ID)
	assert.Equal(t, "com-002", grouped["rev-001"][1].ID)
	assert.Equal(t, "com-003", grouped["rev-002"][0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByReviewIDs_NoIDs(t *testing.T) {
	repo, mock := setupCommentRepo(t)
	defer mock.Close()

	// No query should be issued for an empty id list.
	grouped, err := repo.ListByReviewIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, grouped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByReviewIDs_QueryError(t *testing.T) {
	repo, mock := setupCommentRepo(t)
	defer mock.Close()

	ids := []string{"rev-001"}
	mock.ExpectQuery("SELECT .+ FROM comments WHERE review_id").
		WithArgs(ids).
		WillReturnError(errors.New("database timeout"))

	grouped, err := repo.ListByReviewIDs(context.Background(), ids)
	assert.Nil(t, grouped)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list comments")
	assert.NoError(t, mock.ExpectationsWereMet())
}
