package form

// selectItem is the list item used by the select field. A negative index
// marks the placeholder entry, whose value is empty.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }
