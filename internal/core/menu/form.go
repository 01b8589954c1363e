package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Form field names, shared by the terminal form, the CLI, and the REST API.
const (
	FieldRating  = "rating"
	FieldAuthor  = "author"
	FieldComment = "comment"
)

// Author name length bounds, inclusive.
const (
	AuthorMinLength = 3
	AuthorMaxLength = 15
)

// Rating bounds, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// Validation messages shown next to the offending field.
var (
	ErrRequired       = errors.New("Required")
	ErrAuthorTooShort = fmt.Errorf("Must be greater than %d characters", AuthorMinLength-1)
	ErrAuthorTooLong  = fmt.Errorf("Must be %d characters or less", AuthorMaxLength)
	ErrRatingRange    = fmt.Errorf("Must be a number from %d to %d", RatingMin, RatingMax)
)

// FormValues is what the comment form produces on submission.
type FormValues struct {
	Rating  string `json:"rating"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Error implements error so FieldErrors can be returned directly.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range []string{FieldRating, FieldAuthor, FieldComment} {
		if msg, ok := fe[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

// ValidateRating checks that a rating was given and lies in range.
func ValidateRating(rating string) error {
	rating = strings.TrimSpace(rating)
	if rating == "" {
		return ErrRequired
	}
	n, err := strconv.Atoi(rating)
	if err != nil || n < RatingMin || n > RatingMax {
		return ErrRatingRange
	}
	return nil
}

// ValidateAuthor checks that an author name was given and that its length
// in characters lies within [AuthorMinLength, AuthorMaxLength].
func ValidateAuthor(author string) error {
	if author == "" {
		return ErrRequired
	}
	n := utf8.RuneCountInString(author)
	if n < AuthorMinLength {
		return ErrAuthorTooShort
	}
	if n > AuthorMaxLength {
		return ErrAuthorTooLong
	}
	return nil
}

// ValidateForm runs every field rule and returns the failures, or nil when
// the values may be submitted. The comment text has no rule.
func ValidateForm(v FormValues) FieldErrors {
	errs := FieldErrors{}
	if err := ValidateRating(v.Rating); err != nil {
		errs[FieldRating] = err.Error()
	}
	if err := ValidateAuthor(v.Author); err != nil {
		errs[FieldAuthor] = err.Error()
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToNewComment validates v and converts it into a NewComment for dishID.
func (v FormValues) ToNewComment(dishID int) (NewComment, error) {
	if errs := ValidateForm(v); errs != nil {
		return NewComment{}, errs
	}
	rating, _ := strconv.Atoi(strings.TrimSpace(v.Rating))
	return NewComment{
		DishID:  dishID,
		Rating:  rating,
		Author:  v.Author,
		Comment: v.Comment,
	}, nil
}
