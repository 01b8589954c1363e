package stores

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/data/db"
)

func newTestMenuStore(t *testing.T) *MenuStore {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewMenuStore(database)
}

func seedFixture() SeedData {
	return SeedData{
		Dishes: []menu.Dish{
			{ID: 0, Name: "Uthappizza", Image: "images/uthappizza.png", Category: "mains", Label: "Hot", Price: "4.99", Featured: true, Description: "A unique combination"},
			{ID: 1, Name: "Zucchipakoda", Image: "images/zucchipakoda.png", Category: "appetizer", Price: "1.99", Description: "Deep fried Zucchini"},
		},
		Comments: []menu.Comment{
			{ID: 0, DishID: 0, Rating: 5, Comment: "Imagine all the eatables", Author: "John Lemon", Date: "2012-10-16T17:57:28.556094Z"},
			{ID: 1, DishID: 0, Rating: 4, Comment: "Sends anyone to heaven", Author: "Paul McVites", Date: "2014-09-05T17:57:28.556094Z"},
			{ID: 2, DishID: 1, Rating: 3, Comment: "Eat it, just eat it!", Author: "Michael Jaikishan", Date: "2015-02-13T17:57:28.556094Z"},
		},
	}
}

func TestMenuStore_Seed(t *testing.T) {
	ctx := context.Background()
	store := newTestMenuStore(t)

	res, err := store.Seed(ctx, seedFixture())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Dishes: 2, Comments: 3}, res)

	// Seeding twice upserts instead of duplicating.
	_, err = store.Seed(ctx, seedFixture())
	require.NoError(t, err)

	dishes, err := store.ListDishes(ctx)
	require.NoError(t, err)
	require.Len(t, dishes, 2)
	assert.Equal(t, "Uthappizza", dishes[0].Name)
	assert.True(t, dishes[0].Featured)
	assert.False(t, dishes[1].Featured)
}

func TestMenuStore_Seed_RollsBackOnBadComment(t *testing.T) {
	ctx := context.Background()
	store := newTestMenuStore(t)

	data := seedFixture()
	data.Comments = append(data.Comments, menu.Comment{ID: 9, DishID: 42, Rating: 1, Author: "nobody"})

	_, err := store.Seed(ctx, data)
	require.Error(t, err)

	dishes, err := store.ListDishes(ctx)
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestMenuStore_GetDish(t *testing.T) {
	ctx := context.Background()
	store := newTestMenuStore(t)
	_, err := store.Seed(ctx, seedFixture())
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		d, err := store.GetDish(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Zucchipakoda", d.Name)
		assert.Equal(t, "images/zucchipakoda.png", d.Image)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.GetDish(ctx, 99)
		assert.ErrorIs(t, err, menu.ErrDishNotFound)
	})
}

func TestMenuStore_ListComments(t *testing.T) {
	ctx := context.Background()
	store := newTestMenuStore(t)
	_, err := store.Seed(ctx, seedFixture())
	require.NoError(t, err)

	comments, err := store.ListComments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "John Lemon", comments[0].Author)
	assert.Equal(t, "Paul McVites", comments[1].Author)

	empty, err := store.ListComments(ctx, 77)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMenuStore_PostComment(t *testing.T) {
	ctx := context.Background()
	store := newTestMenuStore(t)
	_, err := store.Seed(ctx, seedFixture())
	require.NoError(t, err)

	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	c, err := store.PostComment(ctx, menu.NewComment{DishID: 1, Rating: 4, Author: "Alice", Comment: "Crispy"})
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
	assert.Equal(t, 1, c.DishID)
	assert.Equal(t, "2026-03-04T05:06:07Z", c.Date)

	comments, err := store.ListComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, c, comments[1])
}

func TestMenuStore_PostComment_KeepsDate(t *testing.T) {
	ctx := context.Background()
	store := newTestMenuStore(t)
	_, err := store.Seed(ctx, seedFixture())
	require.NoError(t, err)

	c, err := store.PostComment(ctx, menu.NewComment{DishID: 0, Rating: 2, Author: "Bob", Date: "2020-01-01T00:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01T00:00:00Z", c.Date)
}

func TestMenuStore_PostComment_UnknownDish(t *testing.T) {
	store := newTestMenuStore(t)

	_, err := store.PostComment(context.Background(), menu.NewComment{DishID: 5, Rating: 3, Author: "Carol"})
	assert.ErrorIs(t, err, menu.ErrDishNotFound)
}

func TestMenuStore_CommentStats(t *testing.T) {
	ctx := context.Background()
	store := newTestMenuStore(t)
	_, err := store.Seed(ctx, seedFixture())
	require.NoError(t, err)

	stats, err := store.CommentStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 4.5, stats[0].AvgRating, 0.001)
	assert.Equal(t, 2014, stats[0].LastComment.Year())
	assert.Equal(t, 1, stats[1].Count)
}

func TestSummarizeComments(t *testing.T) {
	assert.Equal(t, DishStats{}, SummarizeComments(nil))

	st := SummarizeComments([]menu.Comment{
		{Rating: 5, Date: "2012-10-16T17:57:28.556094Z"},
		{Rating: 2, Date: "2014-09-05T17:57:28.556094Z"},
		{Rating: 4, Date: "not a date"},
	})
	assert.Equal(t, 3, st.Count)
	assert.InDelta(t, 11.0/3, st.AvgRating, 0.001)
	assert.Equal(t, 2014, st.LastComment.Year())
}

func TestRecoverFromCorruption(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, db.FileName)
	require.NoError(t, os.WriteFile(dbPath, []byte("garbage"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("wal"), 0o644))

	backup, err := RecoverFromCorruption(dir)
	require.NoError(t, err)

	assert.NoFileExists(t, dbPath)
	assert.NoFileExists(t, dbPath+"-wal")
	assert.FileExists(t, backup)
	assert.FileExists(t, backup+"-wal")
}

func TestIsNotFoundError(t *testing.T) {
	store := newTestMenuStore(t)
	_, err := store.db.Queries().GetDish(context.Background(), 1)
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsBusyError(err))
}
