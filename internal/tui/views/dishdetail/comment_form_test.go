package dishdetail

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/pkg/tuitest"
)

type submission struct {
	dishID  int
	rating  int
	author  string
	comment string
}

func newRecordingForm(dishID int) (*CommentForm, *[]submission) {
	calls := &[]submission{}
	f := NewCommentForm(dishID, func(dishID, rating int, author, comment string) tea.Cmd {
		*calls = append(*calls, submission{dishID, rating, author, comment})
		return nil
	})
	return f, calls
}

func TestCommentForm_StartsClosed(t *testing.T) {
	f, _ := newRecordingForm(1)
	assert.False(t, f.IsOpen())
	assert.Empty(t, f.ModalView())
	assert.Equal(t, "bg", f.Overlay("bg", 80, 24))
}

func TestCommentForm_OpenAndCancel(t *testing.T) {
	f, calls := newRecordingForm(1)

	f.Open()
	require.True(t, f.IsOpen())
	assert.Contains(t, tuitest.StripANSI(f.ModalView()), FormTitle)

	f.Update(tuitest.KeyEsc())
	assert.False(t, f.IsOpen())
	assert.Empty(t, *calls)
}

func TestCommentForm_SubmitValid(t *testing.T) {
	f, calls := newRecordingForm(7)
	f.Open()
	f.SetValues(menu.FormValues{Rating: "4", Author: "Alice", Comment: "Lovely"})

	f.Submit()

	assert.False(t, f.IsOpen(), "successful submit closes the modal")
	require.Len(t, *calls, 1)
	assert.Equal(t, submission{7, 4, "Alice", "Lovely"}, (*calls)[0])

	// A closed form cannot submit again.
	f.Submit()
	assert.Len(t, *calls, 1)
}

func TestCommentForm_SubmitViaKeys(t *testing.T) {
	f, calls := newRecordingForm(2)
	f.Open()
	f.SetValues(menu.FormValues{Rating: "5", Author: "Bob", Comment: ""})

	// rating -> author -> comment -> submit
	f.Update(tuitest.KeyTab())
	f.Update(tuitest.KeyTab())
	f.Update(tuitest.KeyTab())

	assert.False(t, f.IsOpen())
	require.Len(t, *calls, 1)
	assert.Equal(t, submission{2, 5, "Bob", ""}, (*calls)[0])
}

func TestCommentForm_SubmitWithCtrlS(t *testing.T) {
	f, calls := newRecordingForm(2)
	f.Open()
	f.SetValues(menu.FormValues{Rating: "1", Author: "Carol"})

	f.Update(tuitest.KeyCtrl('s'))
	assert.Len(t, *calls, 1)
}

func TestCommentForm_Validation(t *testing.T) {
	tests := []struct {
		name   string
		values menu.FormValues
		want   menu.FieldErrors
	}{
		{
			name:   "author too short",
			values: menu.FormValues{Rating: "3", Author: "Al"},
			want:   menu.FieldErrors{menu.FieldAuthor: "Must be greater than 2 characters"},
		},
		{
			name:   "author too long",
			values: menu.FormValues{Rating: "3", Author: strings.Repeat("a", 16)},
			want:   menu.FieldErrors{menu.FieldAuthor: "Must be 15 characters or less"},
		},
		{
			name:   "author missing",
			values: menu.FormValues{Rating: "3"},
			want:   menu.FieldErrors{menu.FieldAuthor: "Required"},
		},
		{
			name:   "rating missing",
			values: menu.FormValues{Author: "Alice", Comment: "text"},
			want:   menu.FieldErrors{menu.FieldRating: "Required"},
		},
		{
			name:   "everything missing",
			values: menu.FormValues{},
			want:   menu.FieldErrors{menu.FieldRating: "Required", menu.FieldAuthor: "Required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, calls := newRecordingForm(1)
			f.Open()
			f.SetValues(tt.values)

			f.Submit()

			assert.True(t, f.IsOpen(), "invalid submit keeps the modal open")
			assert.Empty(t, *calls)
			assert.Equal(t, tt.want, f.Errors())

			view := tuitest.StripANSI(f.ModalView())
			for _, msg := range tt.want {
				assert.Contains(t, view, msg)
			}
		})
	}
}

func TestCommentForm_BoundaryAuthors(t *testing.T) {
	for _, author := range []string{"Ann", strings.Repeat("z", 15), "Zoë"} {
		t.Run(author, func(t *testing.T) {
			f, calls := newRecordingForm(1)
			f.Open()
			f.SetValues(menu.FormValues{Rating: "2", Author: author})

			f.Submit()
			assert.Len(t, *calls, 1)
		})
	}
}

func TestCommentForm_ReopenStartsEmpty(t *testing.T) {
	f, _ := newRecordingForm(1)
	f.Open()
	f.SetValues(menu.FormValues{Rating: "2", Author: "Al"})
	f.Submit()
	f.Cancel()

	f.Open()
	assert.Equal(t, menu.FormValues{}, f.Values())
	assert.Nil(t, f.Errors())
}
