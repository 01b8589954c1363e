package dishdetail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/pkg/tuitest"
)

func TestRenderComments_Nil(t *testing.T) {
	out := RenderComments(nil, 0, Options{Form: NewCommentForm(0, nil)})
	assert.Empty(t, out)
}

func TestRenderComments_Empty(t *testing.T) {
	out := tuitest.StripANSI(RenderComments([]menu.Comment{}, 0, Options{Form: NewCommentForm(0, nil)}))

	assert.Contains(t, out, CommentsHeader)
	assert.Contains(t, out, ButtonLabel)
	assert.NotContains(t, out, "--")
}

func TestRenderComments_OrderAndCount(t *testing.T) {
	comments := fixtureComments()
	out := tuitest.StripANSI(RenderComments(comments, 0, Options{Width: 120}))

	assert.Equal(t, len(comments), strings.Count(out, "--"))

	var positions []int
	for _, c := range comments {
		idx := strings.Index(out, "--"+c.Author)
		require.GreaterOrEqual(t, idx, 0, c.Author)
		positions = append(positions, idx)
	}
	assert.IsIncreasing(t, positions)
}

func TestRenderComments_FormOfOtherDishIsIgnored(t *testing.T) {
	out := tuitest.StripANSI(RenderComments([]menu.Comment{}, 0, Options{Form: NewCommentForm(3, nil)}))
	assert.NotContains(t, out, ButtonLabel)
}

func TestRenderComment(t *testing.T) {
	c := menu.Comment{Comment: "Crispy", Author: "Alice", Rating: 4, Date: "2026-03-04T05:06:07Z"}
	out := tuitest.StripANSI(RenderComment(c, 60))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Crispy", lines[0])
	assert.Equal(t, "--Alice, Mar 04, 2026 ★★★★☆", lines[1])
}

func TestRenderComment_UnparseableDate(t *testing.T) {
	c := menu.Comment{Comment: "x", Author: "Bob", Date: "yesterday"}
	out := tuitest.StripANSI(RenderComment(c, 60))
	assert.Contains(t, out, "--Bob, yesterday")
}

func TestRenderComments_Staggered(t *testing.T) {
	comments := fixtureComments()
	anim := NewAnimation(2, 2)
	anim.Start(len(comments))

	visible := func() int {
		out := tuitest.StripANSI(RenderComments(comments, 0, Options{Animation: anim}))
		return strings.Count(out, "--")
	}

	assert.Equal(t, 0, visible())

	// The first entry settles after FadeTicks, as the second starts.
	anim.Tick()
	anim.Tick()
	assert.Equal(t, 1, visible())

	for anim.Tick() {
	}
	assert.Equal(t, len(comments), visible())
}
