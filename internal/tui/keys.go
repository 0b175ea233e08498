package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextTab   key.Binding
	prevTab   key.Binding
	quit      key.Binding
	logout    key.Binding
	buildInfo key.Binding
	esc       key.Binding

	submit     key.Binding
	upload     key.Binding
	clear      key.Binding
	removeLast key.Binding
	copy       key.Binding

	up        key.Binding
	down      key.Binding
	refresh   key.Binding
	deleteOne key.Binding
	deleteAll key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	nextTab:   key.NewBinding(key.WithKeys("tab")),
	prevTab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+v")),
	esc:       key.NewBinding(key.WithKeys("esc")),

	submit:     key.NewBinding(key.WithKeys("enter")),
	upload:     key.NewBinding(key.WithKeys("ctrl+u")),
	clear:      key.NewBinding(key.WithKeys("ctrl+x")),
	removeLast: key.NewBinding(key.WithKeys("backspace")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),

	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	deleteOne: key.NewBinding(key.WithKeys("d")),
	deleteAll: key.NewBinding(key.WithKeys("D")),

	yes: key.NewBinding(key.WithKeys("y", "Y")),
	no:  key.NewBinding(key.WithKeys("n", "N", "esc")),
}
