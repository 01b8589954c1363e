package dishdetail

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/core/styles"
)

// Config configures a detail Model.
type Config struct {
	BaseURL      string
	Markdown     bool
	FadeTicks    int
	StaggerTicks int
	TickInterval time.Duration
	Keys         KeyMap
}

// BackMsg asks the parent to return to the menu.
type BackMsg struct{}

// ReloadMsg asks the parent to fetch the dish and its comments again.
type ReloadMsg struct {
	DishID int
}

// tickMsg advances the entry animation. gen discards ticks that belong to
// an animation that has since been restarted.
type tickMsg struct {
	gen int
}

// Model is the stateful detail page. It owns the State, the comment form,
// and the animation, and leaves fetching and persisting to its parent.
type Model struct {
	cfg     Config
	state   State
	dishID  int
	form    *CommentForm
	submit  SubmitFunc
	anim    Animation
	gen     int
	spinner spinner.Model
	help    help.Model
	width   int
	height  int
}

// New creates an empty detail model. submit is handed to every comment form.
func New(cfg Config, submit SubmitFunc) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 60 * time.Millisecond
	}
	if len(cfg.Keys.Comment.Keys()) == 0 {
		cfg.Keys = DefaultKeyMap()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TextPrimaryStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.ShortSeparator = " • "

	return Model{
		cfg:     cfg,
		state:   NewState(false, "", nil, nil),
		submit:  submit,
		anim:    NewAnimation(cfg.FadeTicks, cfg.StaggerTicks),
		spinner: s,
		help:    h,
		width:   defaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.state.Kind == KindLoading {
		return m.spinner.Tick
	}
	return nil
}

// State returns the current view state.
func (m Model) State() State { return m.state }

// DishID returns the id of the dish being shown or loaded.
func (m Model) DishID() int { return m.dishID }

// Form returns the comment form of the loaded dish, or nil.
func (m Model) Form() *CommentForm { return m.form }

// FormOpen reports whether the comment modal is showing.
func (m Model) FormOpen() bool { return m.form != nil && m.form.IsOpen() }

// SetSize sets the area the view may draw in.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetLoading switches to the loading branch for dishID.
func (m *Model) SetLoading(dishID int) tea.Cmd {
	m.dishID = dishID
	m.state = NewState(true, "", nil, nil)
	m.closeForm()
	return m.spinner.Tick
}

// SetError switches to the error branch.
func (m *Model) SetError(errMess string) {
	m.state = NewState(false, errMess, nil, nil)
	m.closeForm()
}

// SetDish switches to the loaded branch and starts the entry animation.
// A nil comments slice hides the comment section.
func (m *Model) SetDish(dish menu.Dish, comments []menu.Comment) tea.Cmd {
	m.dishID = dish.ID
	m.state = NewState(false, "", &dish, comments)
	if m.form == nil || m.form.DishID() != dish.ID {
		m.form = NewCommentForm(dish.ID, m.submit)
	}

	m.anim.Start(len(comments))
	return m.startTicking()
}

// AppendComment adds c to the displayed comments when it belongs to the
// shown dish, and fades it in.
func (m *Model) AppendComment(c menu.Comment) tea.Cmd {
	if m.state.Kind != KindLoaded || c.DishID != m.state.Dish.ID {
		return nil
	}

	m.state.Comments = append(m.state.Comments, c)
	m.anim.Extend(len(m.state.Comments))
	return m.startTicking()
}

func (m *Model) startTicking() tea.Cmd {
	m.gen++
	if m.anim.Done() {
		return nil
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.cfg.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *Model) closeForm() {
	if m.form != nil {
		m.form.Cancel()
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen || !m.anim.Tick() {
			return m, nil
		}
		return m, m.tick()

	case spinner.TickMsg:
		if m.state.Kind != KindLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		if m.FormOpen() {
			return m, m.form.Update(msg)
		}
		return m.handleKey(msg)
	}

	if m.FormOpen() {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.cfg.Keys.Comment):
		if m.state.Kind == KindLoaded && m.state.Comments != nil && m.form != nil {
			return m, m.form.Open()
		}
	case key.Matches(msg, m.cfg.Keys.Back):
		return m, func() tea.Msg { return BackMsg{} }
	case key.Matches(msg, m.cfg.Keys.Reload):
		id := m.dishID
		return m, func() tea.Msg { return ReloadMsg{DishID: id} }
	}
	return m, nil
}

// Options returns the render options for the current frame.
func (m Model) Options() Options {
	opts := Options{
		BaseURL:   m.cfg.BaseURL,
		Width:     m.width,
		Markdown:  m.cfg.Markdown,
		Animation: m.anim,
		Form:      m.form,
	}
	if m.state.Kind == KindLoading {
		opts.Spinner = m.spinner.View()
	}
	return opts
}

// View renders the page, the help line, and the modal when it is open.
func (m Model) View() string {
	body := Render(m.state, m.Options())
	helpLine := m.help.ShortHelpView(m.cfg.Keys.ShortHelp())
	page := lipgloss.JoinVertical(lipgloss.Left, body, "", helpLine)

	if m.FormOpen() {
		return m.form.Overlay(page, m.width, max(m.height, lipgloss.Height(page)))
	}
	return page
}
