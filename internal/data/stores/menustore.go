// Package stores implements the menu repository on top of SQLite.
package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/data/db"
)

// MenuStore implements menu.Repository using SQLite.
type MenuStore struct {
	db  *db.DB
	now func() time.Time
}

var _ menu.Repository = (*MenuStore)(nil)

// NewMenuStore creates a new SQLite-backed menu store.
func NewMenuStore(database *db.DB) *MenuStore {
	return &MenuStore{db: database, now: time.Now}
}

// ListDishes returns all dishes ordered by id.
func (s *MenuStore) ListDishes(ctx context.Context) ([]menu.Dish, error) {
	rows, err := s.db.Queries().ListDishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	dishes := make([]menu.Dish, 0, len(rows))
	for _, r := range rows {
		dishes = append(dishes, dishFromRow(r))
	}
	return dishes, nil
}

// GetDish returns the dish with the given id, or menu.ErrDishNotFound.
func (s *MenuStore) GetDish(ctx context.Context, id int) (menu.Dish, error) {
	row, err := s.db.Queries().GetDish(ctx, int64(id))
	if err != nil {
		if IsNotFoundError(err) {
			return menu.Dish{}, fmt.Errorf("dish %d: %w", id, menu.ErrDishNotFound)
		}
		return menu.Dish{}, fmt.Errorf("failed to get dish %d: %w", id, err)
	}
	return dishFromRow(row), nil
}

// ListComments returns the comments for a dish in insertion order. The
// result is never nil.
func (s *MenuStore) ListComments(ctx context.Context, dishID int) ([]menu.Comment, error) {
	rows, err := s.db.Queries().ListComments(ctx, int64(dishID))
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for dish %d: %w", dishID, err)
	}

	comments := make([]menu.Comment, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, commentFromRow(r))
	}
	return comments, nil
}

// PostComment stores a new comment and returns it with its assigned id.
// An empty date is stamped with the current time.
func (s *MenuStore) PostComment(ctx context.Context, c menu.NewComment) (menu.Comment, error) {
	date := c.Date
	if date == "" {
		date = s.now().UTC().Format(time.RFC3339)
	}

	row, err := s.db.Queries().InsertComment(ctx, db.InsertCommentParams{
		DishID:  int64(c.DishID),
		Rating:  int64(c.Rating),
		Comment: c.Comment,
		Author:  c.Author,
		Date:    date,
	})
	if err != nil {
		if IsConstraintError(err) {
			return menu.Comment{}, fmt.Errorf("dish %d: %w", c.DishID, menu.ErrDishNotFound)
		}
		return menu.Comment{}, fmt.Errorf("failed to post comment for dish %d: %w", c.DishID, err)
	}
	return commentFromRow(row), nil
}

// DishStats summarises the comments of one dish.
type DishStats struct {
	Count       int
	AvgRating   float64
	LastComment time.Time
}

// CommentStats returns comment statistics keyed by dish id. Dishes without
// comments are absent from the map.
func (s *MenuStore) CommentStats(ctx context.Context) (map[int]DishStats, error) {
	rows, err := s.db.Queries().CommentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load comment stats: %w", err)
	}

	stats := make(map[int]DishStats, len(rows))
	for _, r := range rows {
		st := DishStats{Count: int(r.Count), AvgRating: r.AvgRating}
		if r.LastDate.Valid {
			if t, ok := menu.ParseDate(r.LastDate.String); ok {
				st.LastComment = t
			}
		}
		stats[int(r.DishID)] = st
	}
	return stats, nil
}

// SummarizeComments computes DishStats from an already loaded comment list.
func SummarizeComments(comments []menu.Comment) DishStats {
	var st DishStats
	if len(comments) == 0 {
		return st
	}

	total := 0
	for _, c := range comments {
		total += c.Rating
		if t, ok := menu.ParseDate(c.Date); ok && t.After(st.LastComment) {
			st.LastComment = t
		}
	}
	st.Count = len(comments)
	st.AvgRating = float64(total) / float64(st.Count)
	return st
}

func dishFromRow(r db.Dish) menu.Dish {
	return menu.Dish{
		ID:          int(r.ID),
		Name:        r.Name,
		Image:       r.Image,
		Category:    r.Category,
		Label:       r.Label,
		Price:       r.Price,
		Featured:    r.Featured,
		Description: r.Description,
	}
}

func commentFromRow(r db.Comment) menu.Comment {
	return menu.Comment{
		ID:      int(r.ID),
		DishID:  int(r.DishID),
		Rating:  int(r.Rating),
		Comment: r.Comment,
		Author:  r.Author,
		Date:    r.Date,
	}
}
