package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Secondary key.Binding
	Toggle    key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buscar")),
	Secondary: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "buscar con google")),
	Toggle:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tema")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "salir")),
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Submit, k.Secondary, k.Toggle, k.Quit}
}
