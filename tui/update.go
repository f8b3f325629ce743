package tui

import (
	"davenews/feed"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = max(msg.Width-len(m.search.Prompt)-2, 10)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.handleSearchKey(msg)
		}
		return m.handleKeyPress(msg)
	case FetchResultMsg:
		return m.handleFetchResult(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input while browsing
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, browseKeys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, browseKeys.Refresh):
		return m, fetchCmd(m.view, m.view.Refresh())
	case key.Matches(msg, browseKeys.Next):
		return m.selectCategoryAt(m.categoryIndex() + 1)
	case key.Matches(msg, browseKeys.Prev):
		return m.selectCategoryAt(m.categoryIndex() - 1)
	case key.Matches(msg, browseKeys.Category):
		return m.selectCategoryAt(int(msg.String()[0] - '1'))
	}
	return m, nil
}

// handleSearchKey processes keyboard input while the search field has focus
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, searchKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, searchKeys.Cancel):
		m.search.Blur()
		return m, nil
	case key.Matches(msg, searchKeys.Submit):
		m.search.Blur()
		return m, fetchCmd(m.view, m.view.SubmitSearch(m.search.Value()))
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// selectCategoryAt selects the category at idx, wrapping around both ends
func (m Model) selectCategoryAt(idx int) (tea.Model, tea.Cmd) {
	cats := feed.Categories()
	idx = ((idx % len(cats)) + len(cats)) % len(cats)

	req, err := m.view.SelectCategory(cats[idx])
	if err != nil {
		m.log.Warn("category selection rejected", zap.Error(err))
		return m, nil
	}
	return m, fetchCmd(m.view, req)
}

// handleFetchResult applies a finished fetch; stale results are dropped by the view
func (m Model) handleFetchResult(msg FetchResultMsg) (tea.Model, tea.Cmd) {
	if !m.view.Resolve(msg.Result) {
		m.log.Debug("ignored stale fetch result", zap.Uint64("seq", msg.Result.Request.Seq))
	}
	return m, nil
}
