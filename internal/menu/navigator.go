package menu

// Direction defines the moves the keyboard can make through a menu.
type Direction int

const (
	First Direction = iota
	Last
	Up
	Down
)

// Navigator tracks which option currently holds focus within the enabled
// subset of an ordered option list. Moves wrap around at both ends and skip
// disabled options entirely.
type Navigator struct {
	options []Option
	focusID string
	focused bool
}

func NewNavigator(options []Option) *Navigator {
	return &Navigator{options: options}
}

// Options returns the full ordered option list, disabled entries included.
func (n *Navigator) Options() []Option {
	return n.options
}

// SetOptions replaces the option list. An existing focus is kept as-is and
// re-checked against the enabled subset on the next Move.
func (n *Navigator) SetOptions(options []Option) {
	n.options = options
}

// Focused returns the currently focused option, if any. Focus is resolved by
// ID against the current option list.
func (n *Navigator) Focused() (Option, bool) {
	if !n.focused {
		return Option{}, false
	}

	for _, option := range n.options {
		if option.ID == n.focusID {
			return option, true
		}
	}

	return Option{}, false
}

// SetFocus assigns focus unconditionally. This is the pointer-hover path, it
// performs no enabled check; callers must not pass disabled options.
func (n *Navigator) SetFocus(option Option) {
	n.focusID = option.ID
	n.focused = true
}

// ClearFocus drops the focus entirely.
func (n *Navigator) ClearFocus() {
	n.focusID = ""
	n.focused = false
}

// IsDisabled reports whether the option is disabled, resolved by ID against
// the current option list.
func (n *Navigator) IsDisabled(option Option) bool {
	for _, current := range n.options {
		if current.ID == option.ID {
			return current.Disabled
		}
	}

	return option.Disabled
}

// Move shifts focus within the enabled subset. With no enabled options it
// does nothing. Up from the first enabled option wraps to the last, Down from
// the last wraps to the first. Down with no prior focus lands on the first
// enabled option.
func (n *Navigator) Move(dir Direction) {
	enabled := n.enabled()
	if len(enabled) == 0 {
		return
	}

	index := -1
	if n.focused {
		for i, option := range enabled {
			if option.ID == n.focusID {
				index = i

				break
			}
		}
	}

	switch dir {
	case First:
		n.SetFocus(enabled[0])
	case Last:
		n.SetFocus(enabled[len(enabled)-1])
	case Up:
		if index > 0 {
			n.SetFocus(enabled[index-1])
		} else {
			n.SetFocus(enabled[len(enabled)-1])
		}
	case Down:
		n.SetFocus(enabled[(index+1)%len(enabled)])
	}
}

// enabled returns the ordered subsequence of options eligible for focus.
func (n *Navigator) enabled() []Option {
	var subset []Option
	for _, option := range n.options {
		if !option.Disabled {
			subset = append(subset, option)
		}
	}

	return subset
}
