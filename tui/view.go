package tui

import (
	"strings"

	"davenews/feed"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	descriptionLimit = 140
	cardGap          = 1
)

// View implements tea.Model interface
func (m Model) View() string {
	snap := m.view.Snapshot()

	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(m.search.View()))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs(snap.Category))
	b.WriteString("\n\n")

	switch snap.Phase {
	case feed.PhaseLoading:
		b.WriteString(m.spinner.View() + " " + StatusStyle.Render(TextLoading))
	case feed.PhaseError:
		b.WriteString(ErrorStyle.Render("❌ " + snap.Message))
	default:
		if len(snap.Cards) == 0 {
			b.WriteString(InfoStyle.Render(TextEmpty))
		} else {
			b.WriteString(m.renderGrid(snap.Cards))
		}
	}
	b.WriteString("\n\n")

	if m.search.Focused() {
		b.WriteString(m.help.View(searchKeys))
	} else {
		b.WriteString(m.help.View(browseKeys))
	}
	return b.String()
}

// renderTabs draws the category selector with the current one highlighted
func (m Model) renderTabs(current string) string {
	cats := feed.Categories()
	tabs := make([]string, 0, len(cats))
	for i, c := range cats {
		label := string(rune('1'+i)) + " " + feed.CategoryLabel(c)
		if c == current {
			tabs = append(tabs, HighlightStyle.Render(label))
			continue
		}
		tabs = append(tabs, TabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderGrid lays cards out in rows sized to the terminal width
func (m Model) renderGrid(cards []feed.Card) string {
	cols := m.columns()
	width := cardWidth(m.width, cols)

	rows := make([]string, 0, (len(cards)+cols-1)/cols)
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		cells := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			cells = append(cells, renderCard(c, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced(cells)...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardWidth is the width of each card without its border, after gaps are taken out
func cardWidth(total, cols int) int {
	if total <= 0 {
		total = defaultWidth
	}
	w := (total - cols*2 - (cols-1)*cardGap) / cols
	return max(w, 10)
}

func spaced(cells []string) []string {
	out := make([]string, 0, len(cells)*2)
	gap := strings.Repeat(" ", cardGap)
	for i, c := range cells {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, c)
	}
	return out
}

func renderCard(c feed.Card, width int) string {
	accent := accentStyle(c.Style)

	var b strings.Builder
	b.WriteString(accent.Render(c.Style.Icon + " " + c.Article.Source.Name))
	b.WriteString("\n")
	b.WriteString(CardTitleStyle.Render(c.Article.Title))
	b.WriteString("\n")
	if c.Article.Description != "" {
		b.WriteString(truncate(c.Article.Description, descriptionLimit))
		b.WriteString("\n")
	}
	if c.Article.Author != "" {
		b.WriteString(InfoStyle.Render(truncate("By "+c.Article.Author, width-2)))
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render(c.Article.PublishedDate()))
	b.WriteString("\n")
	b.WriteString(accent.Bold(true).Render(c.Style.CTA + " →"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(truncate(c.Article.URL, width-2)))

	return cardStyle(c.Style, width).Render(b.String())
}

// truncate shortens s to at most n terminal cells, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	return runewidth.Truncate(s, n, "…")
}
