package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/printers"
	"tableflip.dev/album/pkg/video"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pickedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	sectionStyle = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	slideStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

const defaultWidth = 80

func (m Model) View() string {
	if m.mode == modeSlideshow {
		return m.slideshowView()
	}

	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n")
	if m.mode == modeSearch {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	} else if m.query != "" {
		b.WriteString(statusStyle.Render("filter: " + m.query))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")

	if m.mode == modeInput {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, len(m.sections))
	for _, s := range m.sections {
		label := fmt.Sprintf("%s (%d)", s.Name, m.counts[s.Name])
		if s.Name == m.section {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) listView() string {
	if len(m.visible) == 0 {
		if m.query != "" {
			return sectionStyle.Render("  nothing matches " + fmt.Sprintf("%q", m.query))
		}
		return sectionStyle.Render("  no items yet: a adds a photo, v adds a video")
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	titleWidth := uint(width - 24)
	if titleWidth < 10 {
		titleWidth = 10
	}

	lines := make([]string, 0, len(m.visible))
	for i, it := range m.visible {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("→ ")
		}
		symbol := printers.Symbol(it.Kind)
		title := truncate.StringWithTail(it.DisplayTitle(), titleWidth, "…")
		if it.ID == m.picked {
			title = pickedStyle.Render("✥ " + title)
		} else if i == m.cursor {
			title = cursorStyle.Render(title)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %s", marker, symbol, title, sectionStyle.Render(it.SectionName)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) slideshowView() string {
	it, ok := m.show.Current(m.visible)
	if !ok {
		return statusStyle.Render("slideshow is empty")
	}
	idx, _ := m.show.Index()

	var body strings.Builder
	body.WriteString(titleStyle.Render(it.DisplayTitle()))
	body.WriteString("\n")
	body.WriteString(sectionStyle.Render(fmt.Sprintf("%s · %d of %d", it.SectionName, idx+1, len(m.visible))))
	body.WriteString("\n\n")
	if it.Kind == media.KindVideo && it.VideoID != "" {
		body.WriteString("▶ " + video.AutoplayURL(it.VideoID))
	} else {
		body.WriteString("▣ " + it.SourceURL)
	}

	var b strings.Builder
	b.WriteString(slideStyle.Render(body.String()))
	b.WriteString("\n")
	b.WriteString(m.help.View(slideKeys(m.keys)))
	return b.String()
}
