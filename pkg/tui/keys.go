package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	NextSection   key.Binding
	PrevSection   key.Binding
	Search        key.Binding
	Pick          key.Binding
	Drop          key.Binding
	Open          key.Binding
	Delete        key.Binding
	Confirm       key.Binding
	AddPhoto      key.Binding
	AddVideo      key.Binding
	AddSection    key.Binding
	DeleteSection key.Binding
	Cancel        key.Binding
	SlideNext     key.Binding
	SlidePrev     key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l/tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("h", "shift+tab"),
			key.WithHelp("h", "prev section"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Pick: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "pick up"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "drop here"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "slideshow"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		AddPhoto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add photo"),
		),
		AddVideo: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "add video"),
		),
		AddSection: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new section"),
		),
		DeleteSection: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete section"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		SlideNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next"),
		),
		SlidePrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.Pick, k.Delete, k.AddPhoto, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSection, k.PrevSection},
		{k.Open, k.Search, k.Pick, k.Drop},
		{k.AddPhoto, k.AddVideo, k.Delete, k.Confirm},
		{k.AddSection, k.DeleteSection, k.Help, k.Quit},
	}
}

type slideKeys keyMap

func (k slideKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.SlidePrev, k.SlideNext, k.Cancel}
}

func (k slideKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
