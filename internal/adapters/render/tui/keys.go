package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Home       key.Binding
	Agenda     key.Binding
	Profile    key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Back       key.Binding
	Search     key.Binding
	Retry      key.Binding
	Logout     key.Binding
	DataSaver  key.Binding
	Install    key.Binding
	NextField  key.Binding
	SubmitForm key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "previous tab")),
		Home:       key.NewBinding(key.WithKeys("1", "f1"), key.WithHelp("1", "home")),
		Agenda:     key.NewBinding(key.WithKeys("2", "f2"), key.WithHelp("2", "agenda")),
		Profile:    key.NewBinding(key.WithKeys("3", "f3"), key.WithHelp("3", "profile")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Logout:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		DataSaver:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "data saver")),
		Install:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install")),
		NextField:  key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"), key.WithHelp("tab", "next field")),
		SubmitForm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
	}
}
