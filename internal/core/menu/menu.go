// Package menu defines the dish and comment domain types shared by the
// store, the REST API, and the terminal views.
package menu

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrDishNotFound is returned by a Repository when no dish has the given id.
var ErrDishNotFound = errors.New("dish not found")

// Dish is a single menu item.
type Dish struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Category    string `json:"category,omitempty"`
	Label       string `json:"label,omitempty"`
	Price       string `json:"price,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
	Description string `json:"description"`
}

// Comment is a user review attached to a dish. Date holds an ISO-8601
// timestamp exactly as it was stored.
type Comment struct {
	ID      int    `json:"id"`
	DishID  int    `json:"dishId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// NewComment is the payload used to create a comment. Date is optional and
// defaults to the time of insertion.
type NewComment struct {
	DishID  int    `json:"dishId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
	Date    string `json:"date,omitempty"`
}

// Repository provides read access to dishes and comments and accepts new
// comments. Comments are returned in storage order.
type Repository interface {
	ListDishes(ctx context.Context) ([]Dish, error)
	GetDish(ctx context.Context, id int) (Dish, error)
	ListComments(ctx context.Context, dishID int) ([]Comment, error)
	PostComment(ctx context.Context, c NewComment) (Comment, error)
}

// commentDateLayout renders dates like "Oct 17, 2012".
const commentDateLayout = "Jan 02, 2006"

// FormatCommentDate parses an ISO-8601 timestamp and renders it in the
// short en-US form in the local time zone, the way a browser shows it.
// Unparseable input is returned unchanged.
func FormatCommentDate(date string) string {
	return FormatCommentDateIn(date, time.Local)
}

// FormatCommentDateIn is FormatCommentDate for an explicit location.
func FormatCommentDateIn(date string, loc *time.Location) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.In(loc).Format(commentDateLayout)
}

// ParseDate accepts RFC3339 timestamps (with or without fractional seconds)
// and bare dates.
func ParseDate(date string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ImageURL resolves a dish image reference against the configured base URL.
func ImageURL(baseURL, image string) string {
	return baseURL + image
}
