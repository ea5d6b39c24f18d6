package config_test

import (
	"testing"

	"github.com/leighmacdonald/flyout/internal/config"
	"github.com/leighmacdonald/flyout/internal/menu"
	"github.com/leighmacdonald/flyout/internal/overlay"
	"github.com/stretchr/testify/require"
)

func TestSide(t *testing.T) {
	require.Equal(t, overlay.Bottom, config.Config{PreferredSide: "bottom"}.Side())
	require.Equal(t, overlay.Top, config.Config{PreferredSide: ""}.Side())
	require.Equal(t, overlay.Top, config.Config{PreferredSide: "diagonal"}.Side())
}

func TestMenuOptions(t *testing.T) {
	conf := config.Config{Options: []config.MenuOption{
		{ID: "a", Label: "Alpha"},
		{ID: "b", Label: "Bravo", Disabled: true},
	}}

	options := conf.MenuOptions()
	require.Len(t, options, 2)
	require.Equal(t, menu.Option{ID: "a", Label: "Alpha"}, options[0])
	require.True(t, options[1].Disabled)
}

func TestPolicy(t *testing.T) {
	require.Equal(t, menu.CloseAlways, config.Config{CloseOnSelect: "always"}.Policy().Mode)
	require.Equal(t, menu.CloseAlways, config.Config{CloseOnSelect: "whatever"}.Policy().Mode)
	require.Equal(t, menu.CloseNever, config.Config{CloseOnSelect: "never"}.Policy().Mode)

	sticky := config.Config{
		CloseOnSelect: "sticky",
		StickyOptions: []string{"pin"},
	}.Policy()
	require.Equal(t, menu.ClosePredicate, sticky.Mode)
	require.False(t, sticky.ShouldClose(menu.Option{ID: "pin"}))
	require.True(t, sticky.ShouldClose(menu.Option{ID: "other"}))
}
