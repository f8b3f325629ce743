// Package tui renders the news feed in a terminal with bubbletea.
package tui

import (
	"davenews/feed"
	"davenews/logger"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	minCardWidth  = 34
	maxColumns    = 4
	searchCharCap = 200
)

// Model is the terminal feed. Feed state lives in the shared view; the model
// only keeps UI widgets and the terminal size.
type Model struct {
	view *feed.View
	log  *zap.Logger

	search  textinput.Model
	spinner spinner.Model
	help    help.Model

	width  int
	height int
}

// NewModel creates a new TUI model over view
func NewModel(view *feed.View, log *zap.Logger) Model {
	log = logger.OrNop(log)

	ti := textinput.New()
	ti.Placeholder = TextSearchPlaceholder
	ti.CharLimit = searchCharCap
	ti.Prompt = "🔍 "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StatusStyle

	return Model{
		view:    view,
		log:     log,
		search:  ti,
		spinner: sp,
		help:    help.New(),
		width:   defaultWidth,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchCmd(m.view, m.view.Mount()),
		m.spinner.Tick,
	)
}

// categoryIndex returns the position of the selected category
func (m Model) categoryIndex() int {
	current := m.view.Snapshot().Category
	for i, c := range feed.Categories() {
		if c == current {
			return i
		}
	}
	return 0
}

// columns is how many cards fit side by side at the current width
func (m Model) columns() int {
	return gridColumns(m.width)
}

func gridColumns(width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	cols := width / minCardWidth
	if cols < 1 {
		return 1
	}
	if cols > maxColumns {
		return maxColumns
	}
	return cols
}
