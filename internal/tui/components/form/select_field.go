package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/confusion/internal/core/styles"
)

// SelectFormField is a single-select form field wrapping list.Model.
type SelectFormField struct {
	list    list.Model
	options []string
	label   string
	focused bool
	rules   []FieldValidation
	err     string
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextForegroundStyle
	if item.index < 0 {
		style = styles.TextMutedStyle
	}
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectFieldItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label))
}

// SelectOption configures a SelectFormField.
type SelectOption func(*selectConfig)

type selectConfig struct {
	placeholder string
	rules       []FieldValidation
}

// WithPlaceholder prepends an entry that yields an empty value, so that
// "nothing chosen yet" can be told apart from the first option.
func WithPlaceholder(label string) SelectOption {
	return func(c *selectConfig) { c.placeholder = label }
}

// WithValidation attaches validation rules to the field.
func WithValidation(rules ...FieldValidation) SelectOption {
	return func(c *selectConfig) { c.rules = append(c.rules, rules...) }
}

// NewSelectFormField creates a single-select field from static options.
// defaultVal pre-selects the matching option if found.
func NewSelectFormField(label string, options []string, defaultVal string, opts ...SelectOption) *SelectFormField {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	items := make([]list.Item, 0, len(options)+1)
	if cfg.placeholder != "" {
		items = append(items, selectItem{label: cfg.placeholder, index: -1})
	}
	selected := -1
	for i, opt := range options {
		if opt == defaultVal {
			selected = len(items)
		}
		items = append(items, selectItem{label: opt, index: i})
	}

	height := max(len(items), 1)

	l := list.New(items, selectDelegate{}, 40, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.TitleBar = lipgloss.NewStyle()

	if selected >= 0 {
		l.Select(selected)
	}

	return &SelectFormField{
		list:    l,
		options: options,
		label:   label,
		rules:   cfg.rules,
	}
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	if f.err != "" {
		f.Validate()
	}
	return f, cmd
}

func (f *SelectFormField) View() string {
	return renderField(f.label, f.list.View(), f.err, f.focused)
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Focused() bool { return f.focused }

func (f *SelectFormField) Value() string {
	item := f.list.SelectedItem()
	if item == nil {
		return ""
	}
	if si, ok := item.(selectItem); ok && si.index >= 0 && si.index < len(f.options) {
		return f.options[si.index]
	}
	return ""
}

// SetValue selects the option equal to v, or the placeholder when none match.
func (f *SelectFormField) SetValue(v string) {
	for i, it := range f.list.Items() {
		if si, ok := it.(selectItem); ok && si.index >= 0 && f.options[si.index] == v {
			f.list.Select(i)
			return
		}
	}
	f.list.Select(0)
}

func (f *SelectFormField) Validate() string {
	f.err = validateAll(f.rules, f.Value())
	return f.err
}

func (f *SelectFormField) Label() string { return f.label }
func (f *SelectFormField) Error() string { return f.err }
