package db

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// New returns a query set bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds the typed statements for the menu schema.
type Queries struct {
	db DBTX
}

// WithTx returns a copy of q bound to tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Dish is a row of the dishes table.
type Dish struct {
	ID          int64
	Name        string
	Image       string
	Category    string
	Label       string
	Price       string
	Featured    bool
	Description string
}

// Comment is a row of the comments table.
type Comment struct {
	ID      int64
	DishID  int64
	Rating  int64
	Comment string
	Author  string
	Date    string
}

// CommentStat summarises the comments of one dish.
type CommentStat struct {
	DishID    int64
	Count     int64
	AvgRating float64
	LastDate  sql.NullString
}

const listDishes = `-- name: ListDishes :many
SELECT id, name, image, category, label, price, featured, description
FROM dishes
ORDER BY id`

func (q *Queries) ListDishes(ctx context.Context) ([]Dish, error) {
	rows, err := q.db.QueryContext(ctx, listDishes)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Dish
	for rows.Next() {
		var i Dish
		if err := rows.Scan(&i.ID, &i.Name, &i.Image, &i.Category, &i.Label, &i.Price, &i.Featured, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getDish = `-- name: GetDish :one
SELECT id, name, image, category, label, price, featured, description
FROM dishes
WHERE id = ?`

func (q *Queries) GetDish(ctx context.Context, id int64) (Dish, error) {
	row := q.db.QueryRowContext(ctx, getDish, id)
	var i Dish
	err := row.Scan(&i.ID, &i.Name, &i.Image, &i.Category, &i.Label, &i.Price, &i.Featured, &i.Description)
	return i, err
}

const upsertDish = `-- name: UpsertDish :exec
INSERT INTO dishes (id, name, image, category, label, price, featured, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    image = excluded.image,
    category = excluded.category,
    label = excluded.label,
    price = excluded.price,
    featured = excluded.featured,
    description = excluded.description`

func (q *Queries) UpsertDish(ctx context.Context, d Dish) error {
	_, err := q.db.ExecContext(ctx, upsertDish, d.ID, d.Name, d.Image, d.Category, d.Label, d.Price, d.Featured, d.Description)
	return err
}

const listComments = `-- name: ListComments :many
SELECT id, dish_id, rating, comment, author, date
FROM comments
WHERE dish_id = ?
ORDER BY id`

func (q *Queries) ListComments(ctx context.Context, dishID int64) ([]Comment, error) {
	rows, err := q.db.QueryContext(ctx, listComments, dishID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Comment
	for rows.Next() {
		var i Comment
		if err := rows.Scan(&i.ID, &i.DishID, &i.Rating, &i.Comment, &i.Author, &i.Date); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertComment = `-- name: InsertComment :one
INSERT INTO comments (id, dish_id, rating, comment, author, date)
VALUES ((SELECT COALESCE(MAX(id) + 1, 0) FROM comments), ?, ?, ?, ?, ?)
RETURNING id, dish_id, rating, comment, author, date`

type InsertCommentParams struct {
	DishID  int64
	Rating  int64
	Comment string
	Author  string
	Date    string
}

func (q *Queries) InsertComment(ctx context.Context, arg InsertCommentParams) (Comment, error) {
	row := q.db.QueryRowContext(ctx, insertComment, arg.DishID, arg.Rating, arg.Comment, arg.Author, arg.Date)
	var i Comment
	err := row.Scan(&i.ID, &i.DishID, &i.Rating, &i.Comment, &i.Author, &i.Date)
	return i, err
}

const upsertComment = `-- name: UpsertComment :exec
INSERT INTO comments (id, dish_id, rating, comment, author, date)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    dish_id = excluded.dish_id,
    rating = excluded.rating,
    comment = excluded.comment,
    author = excluded.author,
    date = excluded.date`

func (q *Queries) UpsertComment(ctx context.Context, c Comment) error {
	_, err := q.db.ExecContext(ctx, upsertComment, c.ID, c.DishID, c.Rating, c.Comment, c.Author, c.Date)
	return err
}

const commentStats = `-- name: CommentStats :many
SELECT dish_id, COUNT(*), AVG(rating), MAX(date)
FROM comments
GROUP BY dish_id`

func (q *Queries) CommentStats(ctx context.Context) ([]CommentStat, error) {
	rows, err := q.db.QueryContext(ctx, commentStats)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []CommentStat
	for rows.Next() {
		var i CommentStat
		if err := rows.Scan(&i.DishID, &i.Count, &i.AvgRating, &i.LastDate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
