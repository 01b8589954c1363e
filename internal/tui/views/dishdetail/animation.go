package dishdetail

import (
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/confusion/internal/core/styles"
)

// Animation counts ticks since a dish was shown and derives the entry
// transition of the card and the staggered reveal of comments from it.
// The zero value is fully settled: everything is visible and unstyled by
// the animation.
type Animation struct {
	Frame        int // ticks elapsed since Start
	FadeTicks    int // ticks one entry takes to fade in; 0 disables animation
	StaggerTicks int // ticks between consecutive comment reveals
	entries      int
	settled      int  // entries finished before an Extend
	extended     bool // the card finished before an Extend
}

// NewAnimation creates an animation with the given timings.
func NewAnimation(fadeTicks, staggerTicks int) Animation {
	return Animation{FadeTicks: fadeTicks, StaggerTicks: staggerTicks}
}

// Start rewinds the animation for a view showing n staggered entries.
func (a *Animation) Start(entries int) {
	a.Frame = 0
	a.entries = entries
	a.settled = 0
	a.extended = false
}

// Extend registers more staggered entries without rewinding, so a newly
// appended comment fades in after the ones already shown.
func (a *Animation) Extend(entries int) {
	if entries <= a.entries {
		return
	}
	if a.Done() {
		// Rewind to the first new entry's start; older ones stay settled.
		a.settled = a.entries
		a.extended = true
		a.Frame = a.offset(a.entries)
	}
	a.entries = entries
}

// Tick advances the animation by one frame. It returns true while frames
// remain, signalling that the view must be redrawn.
func (a *Animation) Tick() bool {
	if a.Done() {
		return false
	}
	a.Frame++
	return true
}

// Done reports whether every entry has finished its transition.
func (a Animation) Done() bool {
	if a.FadeTicks <= 0 {
		return true
	}
	return a.Frame >= a.offset(max(a.entries-1, 0))+a.FadeTicks
}

func (a Animation) offset(i int) int {
	return i * max(a.StaggerTicks, 0)
}

// progress returns how far entry i is through its transition, from 0
// (hidden) to 1 (settled). Entry -1 is the dish card, which starts at once.
func (a Animation) progress(i int) float64 {
	if a.FadeTicks <= 0 || (i < 0 && a.extended) || (i >= 0 && i < a.settled) {
		return 1
	}
	start := 0
	if i >= 0 {
		start = a.offset(i)
	}
	p := float64(a.Frame-start) / float64(a.FadeTicks)
	return min(max(p, 0), 1)
}

// Visible reports whether staggered entry i has started to appear.
func (a Animation) Visible(i int) bool {
	return a.FadeTicks <= 0 || a.Frame >= a.offset(i)
}

// Transition decorates the dish card: it fades in from the background
// color while growing line by line.
func (a Animation) Transition(content string) string {
	return fadeScale(content, a.progress(-1))
}

// Stagger decorates comment entry i. Entries that have not started yet
// render as an empty string.
func (a Animation) Stagger(i int, content string) string {
	if !a.Visible(i) {
		return ""
	}
	return fadeScale(content, a.progress(i))
}

// fadeScale renders the first ceil(p*lines) lines of content in a color
// blended between the background and foreground. At p == 1 the content is
// returned unchanged.
func fadeScale(content string, p float64) string {
	if p >= 1 {
		return content
	}
	if p <= 0 || content == "" {
		return ""
	}

	lines := strings.Split(ansi.Strip(content), "\n")
	shown := int(float64(len(lines))*p + 0.999)
	lines = lines[:min(max(shown, 1), len(lines))]

	style := lipgloss.NewStyle().Foreground(blend(styles.ColorBackground, styles.ColorForeground, p))
	return style.Render(strings.Join(lines, "\n"))
}

func blend(from, to color.Color, t float64) color.Color {
	a, ok1 := colorful.MakeColor(from)
	b, ok2 := colorful.MakeColor(to)
	if !ok1 || !ok2 {
		return to
	}
	return a.BlendLab(b, t).Clamped()
}
