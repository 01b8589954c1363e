// Package validate provides shared validation functions.
package validate

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/confusion/internal/core/menu"
)

// DishID validates a dish identifier supplied on the command line or in a
// request path.
func DishID(id int) error {
	if id < 0 {
		return fmt.Errorf("dish id must not be negative")
	}
	return nil
}

// CommentForm validates submitted comment values, returning a criterio
// field error per failing field.
func CommentForm(v menu.FormValues) error {
	return criterio.ValidateStruct(
		criterio.Run(menu.FieldRating, v.Rating, menu.ValidateRating),
		criterio.Run(menu.FieldAuthor, v.Author, menu.ValidateAuthor),
	)
}

// DishIDField returns a criterio validator for dish ids.
func DishIDField(field string, id int) error {
	return criterio.Run(field, id, DishID)
}
