package tui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/confusion/internal/core/menu"
	"github.com/colonyops/confusion/internal/core/styles"
)

const menuTitle = "Menu"

// DishItem wraps a dish for the list component.
type DishItem struct {
	Dish menu.Dish
}

// FilterValue returns the value used for filtering.
func (i DishItem) FilterValue() string {
	return i.Dish.Name + " " + i.Dish.Category
}

// DishDelegate renders dish items in the menu list.
type DishDelegate struct{}

// Height returns the height of each item.
func (d DishDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d DishDelegate) Spacing() int { return 1 }

// Update handles item updates.
func (d DishDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single dish.
// Line 1: Name [label] $price
// Line 2: description (truncated to fit)
func (d DishDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	dishItem, ok := item.(DishItem)
	if !ok {
		return
	}

	dish := dishItem.Dish
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	contentWidth := max(width-4, 8)

	titleStyle := styles.MenuItemTitleStyle
	if index == m.Index() {
		titleStyle = styles.MenuItemTitleSelectedStyle
	}

	line1 := dish.Name
	if dish.Label != "" {
		line1 += " " + styles.MenuBadgeStyle.Render(dish.Label)
	}
	if dish.Price != "" {
		line1 += " " + styles.TextMutedStyle.Render("$"+dish.Price)
	}

	desc := strings.ReplaceAll(dish.Description, "\n", " ")
	if runes := []rune(desc); len(runes) > contentWidth {
		desc = string(runes[:contentWidth-3]) + "..."
	}

	_, _ = fmt.Fprintf(w, "%s\n%s", titleStyle.Render(line1), styles.MenuItemDescStyle.Render(desc))
}

func newMenuList() list.Model {
	l := list.New(nil, DishDelegate{}, 0, 0)
	l.Title = menuTitle
	l.Styles.Title = styles.CommandHeaderStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}

func dishItems(dishes []menu.Dish) []list.Item {
	items := make([]list.Item, len(dishes))
	for i, d := range dishes {
		items[i] = DishItem{Dish: d}
	}
	return items
}
