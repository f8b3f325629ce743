package tui

import (
	"context"

	"davenews/feed"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchCmd runs req against the news source off the update loop
func fetchCmd(view *feed.View, req feed.Request) tea.Cmd {
	return func() tea.Msg {
		return FetchResultMsg{Result: view.Fetch(context.Background(), req)}
	}
}
