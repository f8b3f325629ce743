package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeyMap is active while the search field is blurred
type browseKeyMap struct {
	Search   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Category key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Next, k.Prev, k.Category, k.Refresh, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// searchKeyMap is active while typing a query
type searchKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Quit}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var browseKeys = browseKeyMap{
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab/→", "next category"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab/←", "prev category"),
	),
	Category: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
		key.WithHelp("1-7", "category"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var searchKeys = searchKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search (empty clears)"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
