package menu

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCommentDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"rfc3339 with millis", "2012-10-16T17:57:28.556094Z", "Oct 16, 2012"},
		{"rfc3339", "2014-09-05T17:57:28Z", "Sep 05, 2014"},
		{"offset is converted", "2016-01-01T01:00:00+02:00", "Dec 31, 2015"},
		{"bare date", "2017-03-09", "Mar 09, 2017"},
		{"garbage passes through", "yesterday", "yesterday"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCommentDateIn(tt.date, time.UTC))
		})
	}
}

func TestFormatCommentDateIn_UsesViewerZone(t *testing.T) {
	// Late evening in the western US is already the next day in UTC.
	const date = "2012-10-17T03:00:00Z"
	pacific := time.FixedZone("PDT", -7*60*60)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "Oct 17, 2012", FormatCommentDateIn(date, time.UTC))
	assert.Equal(t, "Oct 16, 2012", FormatCommentDateIn(date, pacific))
	assert.Equal(t, "Oct 17, 2012", FormatCommentDateIn(date, tokyo))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3001/images/uthappizza.png", ImageURL("http://localhost:3001/", "images/uthappizza.png"))
	assert.Equal(t, "images/zucchipakoda.png", ImageURL("", "images/zucchipakoda.png"))
}

func TestValidateAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   error
	}{
		{"empty", "", ErrRequired},
		{"one char", "a", ErrAuthorTooShort},
		{"two chars", "ab", ErrAuthorTooShort},
		{"min", "abc", nil},
		{"max", strings.Repeat("x", 15), nil},
		{"over max", strings.Repeat("x", 16), ErrAuthorTooLong},
		{"multibyte counted as runes", "Zoë", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAuthor(tt.author))
		})
	}
}

func TestValidateRating(t *testing.T) {
	assert.Equal(t, ErrRequired, ValidateRating(""))
	assert.Equal(t, ErrRequired, ValidateRating("  "))
	assert.Equal(t, ErrRatingRange, ValidateRating("0"))
	assert.Equal(t, ErrRatingRange, ValidateRating("6"))
	assert.Equal(t, ErrRatingRange, ValidateRating("five"))
	for _, r := range []string{"1", "2", "3", "4", "5"} {
		assert.NoError(t, ValidateRating(r))
	}
}

func TestValidateForm(t *testing.T) {
	t.Run("rating absent blocks regardless of other fields", func(t *testing.T) {
		errs := ValidateForm(FormValues{Author: "Alice", Comment: "great"})
		require.NotNil(t, errs)
		assert.Equal(t, "Required", errs[FieldRating])
		assert.NotContains(t, errs, FieldAuthor)
	})

	t.Run("short author", func(t *testing.T) {
		errs := ValidateForm(FormValues{Rating: "5", Author: "Al"})
		require.NotNil(t, errs)
		assert.Equal(t, "Must be greater than 2 characters", errs[FieldAuthor])
	})

	t.Run("long author", func(t *testing.T) {
		errs := ValidateForm(FormValues{Rating: "5", Author: "Bartholomew Jones"})
		require.NotNil(t, errs)
		assert.Equal(t, "Must be 15 characters or less", errs[FieldAuthor])
	})

	t.Run("valid without comment text", func(t *testing.T) {
		assert.Nil(t, ValidateForm(FormValues{Rating: "3", Author: "Alice"}))
	})

	t.Run("error string lists fields in form order", func(t *testing.T) {
		errs := ValidateForm(FormValues{})
		assert.Equal(t, "rating: Required; author: Required", errs.Error())
	})
}

func TestFormValues_ToNewComment(t *testing.T) {
	c, err := FormValues{Rating: " 4 ", Author: "Alice", Comment: "Tasty"}.ToNewComment(2)
	require.NoError(t, err)
	assert.Equal(t, NewComment{DishID: 2, Rating: 4, Author: "Alice", Comment: "Tasty"}, c)

	_, err = FormValues{Author: "Alice"}.ToNewComment(2)
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, FieldRating)
}
