// Package tui implements the interactive menu browser: a dish list, the
// dish detail page, and the comment form.
package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/confusion/internal/core/config"
	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/core/styles"
	"github.com/colonyops/confusion/internal/tui/views/dishdetail"
)

const keyCtrlC = "ctrl+c"

type screen int

const (
	screenMenu screen = iota
	screenDetail
)

// Options configures a Model.
type Options struct {
	Repo   menu.Repository
	Config *config.Config
	// DishID opens the detail page for this dish on start.
	DishID *int
}

// Model is the root bubbletea model.
type Model struct {
	repo   menu.Repository
	cfg    *config.Config
	keys   *KeybindingHandler
	screen screen

	menu        list.Model
	menuErr     string
	menuLoading bool
	openKey     key.Binding
	help        help.Model

	detail dishdetail.Model

	toasts    *ToastController
	toastView *ToastView

	width    int
	height   int
	quitting bool
}

// New creates the root model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		def.Keybindings = config.DefaultKeybindings()
		cfg = &def
	}

	keys := NewKeybindingHandler(cfg.Keybindings)
	repo := opts.Repo

	submit := func(dishID, rating int, author, comment string) tea.Cmd {
		return postComment(repo, menu.NewComment{
			DishID:  dishID,
			Rating:  rating,
			Author:  author,
			Comment: comment,
		})
	}

	detail := dishdetail.New(dishdetail.Config{
		BaseURL:      cfg.BaseURL,
		Markdown:     cfg.TUI.Markdown,
		FadeTicks:    cfg.TUI.FadeTicks,
		StaggerTicks: cfg.TUI.StaggerTicks,
		TickInterval: cfg.TUI.TickInterval,
		Keys:         keys.DetailKeyMap(),
	}, submit)

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.ShortSeparator = " • "

	toasts := NewToastController()

	m := Model{
		repo:        repo,
		cfg:         cfg,
		keys:        keys,
		screen:      screenMenu,
		menu:        newMenuList(),
		menuLoading: true,
		openKey:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		help:        h,
		detail:      detail,
		toasts:      toasts,
		toastView:   NewToastView(toasts),
	}

	if opts.DishID != nil {
		m.screen = screenDetail
		m.detail.SetLoading(*opts.DishID)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadDishes(m.repo)}
	if m.screen == screenDetail {
		cmds = append(cmds, m.detail.Init(), loadDish(m.repo, m.detail.DishID()))
	}
	return tea.Batch(cmds...)
}

// Detail returns the detail page model.
func (m Model) Detail() dishdetail.Model { return m.detail }

// Toasts returns the active toasts, oldest first.
func (m Model) Toasts() []Toast { return m.toasts.Toasts() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case dishesLoadedMsg:
		return m.handleDishesLoaded(msg)
	case dishLoadedMsg:
		return m.handleDishLoaded(msg)
	case commentPostedMsg:
		return m.handleCommentPosted(msg)
	case toastTickMsg:
		return m.handleToastTick()

	case dishdetail.BackMsg:
		m.screen = screenMenu
		return m, nil
	case dishdetail.ReloadMsg:
		cmd := m.openDish(msg.DishID)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	cmds = append(cmds, cmd)
	m.menu, cmd = m.menu.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := max(msg.Height-2, 1)
	m.menu.SetSize(msg.Width, contentHeight)
	m.detail.SetSize(msg.Width, contentHeight)
	m.help.SetWidth(msg.Width)
	return m, nil
}

func (m Model) handleDishesLoaded(msg dishesLoadedMsg) (tea.Model, tea.Cmd) {
	m.menuLoading = false
	if msg.err != nil {
		m.menuErr = errorMessage(msg.err)
		return m, nil
	}
	m.menuErr = ""
	cmd := m.menu.SetItems(dishItems(msg.dishes))
	return m, cmd
}

func (m Model) handleDishLoaded(msg dishLoadedMsg) (tea.Model, tea.Cmd) {
	// A reply for a dish the user has since navigated away from.
	if msg.dishID != m.detail.DishID() || m.detail.State().Kind != dishdetail.KindLoading {
		return m, nil
	}

	if msg.err != nil {
		m.detail.SetError(errorMessage(msg.err))
		return m, nil
	}
	cmd := m.detail.SetDish(msg.dish, msg.comments)
	return m, cmd
}

func (m Model) handleCommentPosted(msg commentPostedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.pushToast(ToastError, "Your comment could not be posted: "+errorMessage(msg.err))
	}

	cmd := m.detail.AppendComment(msg.comment)
	return m, tea.Batch(cmd, m.pushToast(ToastInfo, "Comment posted"))
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	m.toasts.Tick(toastTickInterval)
	if m.toasts.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toasts.SetTicking(false)
	return m, nil
}

// pushToast shows a toast and starts the expiry timer if it is not running.
func (m Model) pushToast(level ToastLevel, message string) tea.Cmd {
	m.toasts.Push(Toast{Level: level, Message: message})
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) openDish(dishID int) tea.Cmd {
	m.screen = screenDetail
	log.Debug().Int("dish_id", dishID).Msg("opening dish")
	return tea.Batch(m.detail.SetLoading(dishID), loadDish(m.repo, dishID))
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.screen == screenDetail && m.detail.FormOpen() {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if m.screen == screenMenu && m.menu.SettingFilter() {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	if action, ok := m.keys.Resolve(msg.String()); ok && action.Type == ActionTypeQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.screen == screenDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if action, ok := m.keys.Resolve(msg.String()); ok && action.Type == ActionTypeReload {
		m.menuLoading = true
		return m, loadDishes(m.repo)
	}

	if key.Matches(msg, m.openKey) {
		if item, ok := m.menu.SelectedItem().(DishItem); ok {
			cmd := m.openDish(item.Dish.ID)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) menuView() string {
	var body string
	switch {
	case m.menuErr != "":
		body = lipgloss.JoinVertical(lipgloss.Left,
			styles.CommandHeaderStyle.Render(menuTitle),
			"",
			styles.ErrorMessageStyle.Render(m.menuErr),
		)
	case m.menuLoading && len(m.menu.Items()) == 0:
		body = lipgloss.JoinVertical(lipgloss.Left,
			styles.CommandHeaderStyle.Render(menuTitle),
			"",
			styles.TextMutedStyle.Render(dishdetail.LoadingText),
		)
	default:
		body = m.menu.View()
	}

	helpLine := m.help.ShortHelpView([]key.Binding{
		m.openKey,
		m.keys.Binding(config.ActionReload),
		m.keys.Binding(config.ActionQuit),
	})
	return lipgloss.JoinVertical(lipgloss.Left, body, "", helpLine)
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the active screen with toasts composited on top.
func (m Model) render() string {
	var content string
	if m.screen == screenDetail {
		content = m.detail.View()
	} else {
		content = m.menuView()
	}

	return m.toastView.Overlay(content, m.width, max(m.height, lipgloss.Height(content)))
}
