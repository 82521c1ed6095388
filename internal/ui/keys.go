package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer. The help text on the
// navigation bindings doubles as the legend in the bottom border.
type keyMap struct {
	PrevPage  key.Binding
	NextPage  key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("<Left>", "Previous Page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("<Right>", "Next Page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("<q>", "Close"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
