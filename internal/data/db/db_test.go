package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(t.TempDir(), DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestOpen_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	database, err := Open(dir, DefaultOpenOptions())
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
}

func TestOpen_SchemaIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	for range 2 {
		database, err := Open(dir, DefaultOpenOptions())
		require.NoError(t, err)
		require.NoError(t, database.Close())
	}
}

func TestInsertComment_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	q := database.Queries()

	require.NoError(t, q.UpsertDish(ctx, Dish{ID: 0, Name: "Uthappizza"}))

	first, err := q.InsertComment(ctx, InsertCommentParams{DishID: 0, Rating: 5, Author: "John", Date: "2012-10-16T17:57:28.556094Z"})
	require.NoError(t, err)
	second, err := q.InsertComment(ctx, InsertCommentParams{DishID: 0, Rating: 4, Author: "Paul", Date: "2014-09-05T17:57:28.556094Z"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)

	comments, err := q.ListComments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "John", comments[0].Author)
	assert.Equal(t, "Paul", comments[1].Author)
}

func TestInsertComment_RejectsUnknownDish(t *testing.T) {
	database := openTestDB(t)
	_, err := database.Queries().InsertComment(context.Background(), InsertCommentParams{DishID: 42, Rating: 3, Author: "Nobody", Date: "2020-01-01"})
	assert.Error(t, err)
}

func TestWithTx_RollsBack(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)

	err := database.WithTx(ctx, func(q *Queries) error {
		if err := q.UpsertDish(ctx, Dish{ID: 7, Name: "Vadonut"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	dishes, err := database.Queries().ListDishes(ctx)
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestCommentStats(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	q := database.Queries()

	require.NoError(t, q.UpsertDish(ctx, Dish{ID: 1, Name: "Zucchipakoda"}))
	require.NoError(t, q.UpsertComment(ctx, Comment{ID: 0, DishID: 1, Rating: 2, Author: "Ann", Date: "2012-01-01T00:00:00Z"}))
	require.NoError(t, q.UpsertComment(ctx, Comment{ID: 1, DishID: 1, Rating: 4, Author: "Bob", Date: "2013-01-01T00:00:00Z"}))

	stats, err := q.CommentStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2), stats[0].Count)
	assert.InDelta(t, 3.0, stats[0].AvgRating, 0.001)
	assert.Equal(t, "2013-01-01T00:00:00Z", stats[0].LastDate.String)
}
