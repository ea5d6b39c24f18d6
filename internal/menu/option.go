// Package menu implements the open/closed state machine and keyboard focus
// navigation backing flyout menus. It holds no rendering concerns, a renderer
// reads the controller state and draws whatever it wants with it.
package menu

// Option is a single selectable row in a menu. Options are compared by ID
// only, so two options sharing a label remain distinct.
type Option struct {
	ID       string
	Label    string
	Disabled bool
}
