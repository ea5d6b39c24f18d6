package menu_test

import (
	"testing"

	"github.com/leighmacdonald/flyout/internal/menu"
	"github.com/stretchr/testify/require"
)

// recorder collects callback invocations for assertions.
type recorder struct {
	opens    int
	closes   int
	selected []menu.Option
	hovered  []menu.Option
}

func (r *recorder) callbacks() menu.Callbacks {
	return menu.Callbacks{
		OnOpen:   func() { r.opens++ },
		OnClose:  func() { r.closes++ },
		OnSelect: func(option menu.Option) { r.selected = append(r.selected, option) },
		OnHover:  func(option menu.Option) { r.hovered = append(r.hovered, option) },
	}
}

func TestToggleIsLevelTriggered(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{}, rec.callbacks())

	ctrl.Toggle(true)
	ctrl.Toggle(true)
	require.True(t, ctrl.IsOpen())
	require.Equal(t, 2, rec.opens)

	ctrl.Toggle(false)
	ctrl.Toggle(false)
	require.False(t, ctrl.IsOpen())
	require.Equal(t, 2, rec.closes)
}

func TestSelectDefaultPolicyCloses(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{InitialOpen: true}, rec.callbacks())

	ctrl.Select(menu.Option{ID: "a"})
	require.Equal(t, []menu.Option{{ID: "a"}}, rec.selected)
	require.False(t, ctrl.IsOpen())
	require.Equal(t, 1, rec.closes)
}

func TestSelectNeverPolicyKeepsOpen(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{
		InitialOpen:   true,
		CloseOnSelect: menu.ClosePolicy{Mode: menu.CloseNever},
	}, rec.callbacks())

	ctrl.Select(menu.Option{ID: "a"})
	require.True(t, ctrl.IsOpen())
	require.Zero(t, rec.closes)
	require.Len(t, rec.selected, 1)
}

func TestSelectPredicatePolicy(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{
		InitialOpen: true,
		CloseOnSelect: menu.ClosePolicy{
			Mode:      menu.ClosePredicate,
			Predicate: func(option menu.Option) bool { return option.ID == "x" },
		},
	}, rec.callbacks())

	ctrl.Select(menu.Option{ID: "y"})
	require.True(t, ctrl.IsOpen())

	ctrl.Select(menu.Option{ID: "x"})
	require.False(t, ctrl.IsOpen())
	require.Len(t, rec.selected, 2)
}

func TestArrowKeysMoveRegardlessOfOpenState(t *testing.T) {
	ctrl := menu.NewController(testOptions(), menu.Config{}, menu.Callbacks{})
	require.False(t, ctrl.IsOpen())

	require.True(t, ctrl.HandleKey(menu.KeyArrowDown))
	focused, ok := ctrl.Navigator().Focused()
	require.True(t, ok)
	require.Equal(t, "a", focused.ID)

	require.True(t, ctrl.HandleKey(menu.KeyArrowUp))
	focused, _ = ctrl.Navigator().Focused()
	require.Equal(t, "c", focused.ID)

	require.True(t, ctrl.HandleKey(menu.KeyEnd))
	focused, _ = ctrl.Navigator().Focused()
	require.Equal(t, "c", focused.ID)

	require.True(t, ctrl.HandleKey(menu.KeyHome))
	focused, _ = ctrl.Navigator().Focused()
	require.Equal(t, "a", focused.ID)
}

func TestSpaceOpensOnlyWhenClosed(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{}, rec.callbacks())

	require.True(t, ctrl.HandleKey(menu.KeySpace))
	require.True(t, ctrl.IsOpen())
	require.Equal(t, 1, rec.opens)

	// Already open, nothing happens.
	require.False(t, ctrl.HandleKey(menu.KeySpace))
	require.Equal(t, 1, rec.opens)
}

func TestEnterSelectsFocusedOption(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{InitialOpen: true}, rec.callbacks())
	ctrl.HandleKey(menu.KeyArrowDown)

	require.True(t, ctrl.HandleKey(menu.KeyEnter))
	require.Len(t, rec.selected, 1)
	require.Equal(t, "a", rec.selected[0].ID)
	// Default policy closed the menu, no extra toggle fired.
	require.False(t, ctrl.IsOpen())
	require.Equal(t, 1, rec.closes)
}

func TestEnterOpensWhenClosed(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{}, rec.callbacks())

	require.True(t, ctrl.HandleKey(menu.KeyEnter))
	require.True(t, ctrl.IsOpen())
	require.Empty(t, rec.selected)
	require.Equal(t, 1, rec.opens)
}

func TestEnterWithNoFocusWhileOpenCloses(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{InitialOpen: true}, rec.callbacks())

	require.True(t, ctrl.HandleKey(menu.KeyEnter))
	require.Empty(t, rec.selected)
	require.False(t, ctrl.IsOpen())
	require.Equal(t, 1, rec.closes)
}

func TestEnterWhileClosedWithFocusSelectsAndOpens(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{}, rec.callbacks())
	ctrl.HandleKey(menu.KeyArrowDown)

	require.True(t, ctrl.HandleKey(menu.KeyEnter))
	require.Len(t, rec.selected, 1)
	// The close-on-select toggle fires first, then the closed-state toggle
	// reopens the menu.
	require.True(t, ctrl.IsOpen())
	require.Equal(t, 1, rec.closes)
	require.Equal(t, 1, rec.opens)
}

func TestEscapeReopensInsteadOfClosing(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{InitialOpen: true}, rec.callbacks())

	require.True(t, ctrl.HandleKey(menu.KeyEscape))
	require.True(t, ctrl.IsOpen())
	require.Equal(t, 1, rec.opens)
	require.Zero(t, rec.closes)
}

func TestEscapeAndTabIgnoredWhenClosed(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{}, rec.callbacks())

	require.False(t, ctrl.HandleKey(menu.KeyEscape))
	require.False(t, ctrl.HandleKey(menu.KeyTab))
	require.False(t, ctrl.IsOpen())
	require.Zero(t, rec.opens)
	require.Zero(t, rec.closes)
}

func TestTabReopensInsteadOfClosing(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{InitialOpen: true}, rec.callbacks())

	require.True(t, ctrl.HandleKey(menu.KeyTab))
	require.True(t, ctrl.IsOpen())
	require.Equal(t, 1, rec.opens)
}

func TestUnrecognizedKeyIgnored(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{}, rec.callbacks())

	require.False(t, ctrl.HandleKey(menu.Key("F13")))
	require.False(t, ctrl.IsOpen())
	require.Zero(t, rec.opens)
}

func TestHoverSetsFocusAndNotifies(t *testing.T) {
	rec := &recorder{}
	ctrl := menu.NewController(testOptions(), menu.Config{}, rec.callbacks())

	ctrl.Hover(menu.Option{ID: "b", Label: "Bravo"})
	require.Len(t, rec.hovered, 1)

	focused, ok := ctrl.Navigator().Focused()
	require.True(t, ok)
	require.Equal(t, "b", focused.ID)
}

func TestNilCallbacksAreSafe(t *testing.T) {
	ctrl := menu.NewController(testOptions(), menu.Config{}, menu.Callbacks{})

	ctrl.Toggle(true)
	ctrl.Hover(menu.Option{ID: "a"})
	ctrl.Select(menu.Option{ID: "a"})
	require.False(t, ctrl.IsOpen())
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	ctrl := menu.NewController(testOptions(), menu.Config{}, menu.Callbacks{})

	var states []menu.State
	ctrl.Subscribe(func(state menu.State) { states = append(states, state) })

	ctrl.Toggle(true)
	ctrl.HandleKey(menu.KeyArrowDown)

	require.Len(t, states, 2)
	require.True(t, states[0].Open)
	require.False(t, states[0].HasFocus)
	require.Equal(t, "a", states[1].FocusID)
	require.True(t, states[1].HasFocus)
}

func TestClosePolicyDefaults(t *testing.T) {
	// Zero value closes, as does a predicate mode left without a predicate.
	require.True(t, menu.ClosePolicy{}.ShouldClose(menu.Option{ID: "a"}))
	require.True(t, menu.ClosePolicy{Mode: menu.ClosePredicate}.ShouldClose(menu.Option{ID: "a"}))
	require.False(t, menu.ClosePolicy{Mode: menu.CloseNever}.ShouldClose(menu.Option{ID: "a"}))
}

func TestReentrantCloseCallback(t *testing.T) {
	// A close callback that reopens once must not recurse unbounded.
	var ctrl *menu.Controller

	reopened := false
	ctrl = menu.NewController(testOptions(), menu.Config{InitialOpen: true}, menu.Callbacks{
		OnClose: func() {
			if !reopened {
				reopened = true
				ctrl.Toggle(true)
			}
		},
	})

	ctrl.Toggle(false)
	require.True(t, ctrl.IsOpen())
}
