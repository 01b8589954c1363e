package stores

import (
	"context"
	"fmt"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/data/db"
)

// SeedData mirrors the layout of a json-server db.json file.
type SeedData struct {
	Dishes   []menu.Dish    `json:"dishes"`
	Comments []menu.Comment `json:"comments"`
}

// SeedResult counts the rows written by Seed.
type SeedResult struct {
	Dishes   int
	Comments int
}

// Seed upserts dishes and then comments in a single transaction.
func (s *MenuStore) Seed(ctx context.Context, data SeedData) (SeedResult, error) {
	var res SeedResult

	err := s.db.WithTx(ctx, func(q *db.Queries) error {
		for _, d := range data.Dishes {
			if err := q.UpsertDish(ctx, db.Dish{
				ID:          int64(d.ID),
				Name:        d.Name,
				Image:       d.Image,
				Category:    d.Category,
				Label:       d.Label,
				Price:       d.Price,
				Featured:    d.Featured,
				Description: d.Description,
			}); err != nil {
				return fmt.Errorf("dish %d: %w", d.ID, err)
			}
			res.Dishes++
		}

		for _, c := range data.Comments {
			if err := q.UpsertComment(ctx, db.Comment{
				ID:      int64(c.ID),
				DishID:  int64(c.DishID),
				Rating:  int64(c.Rating),
				Comment: c.Comment,
				Author:  c.Author,
				Date:    c.Date,
			}); err != nil {
				return fmt.Errorf("comment %d: %w", c.ID, err)
			}
			res.Comments++
		}

		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to seed menu: %w", err)
	}

	return res, nil
}
