// Package tui is the interactive terminal album browser.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/slideshow"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeInput
	modeConfirm
	modeSlideshow
)

type inputAction int

const (
	inputNone inputAction = iota
	inputPhoto
	inputVideo
	inputSection
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmItem
	confirmSection
)

type (
	// reloadMsg reports that the stored document changed outside this process.
	reloadMsg struct{}
	// advanceMsg reports that the slideshow moved on its own.
	advanceMsg struct{}
)

// Model is the bubbletea model for the album browser.
type Model struct {
	ctx  context.Context
	svc  *app.Service
	show *slideshow.Controller

	keys keyMap
	help help.Model

	mode    mode
	action  inputAction
	confirm confirmAction
	input   textinput.Model
	search  textinput.Model

	sections []media.Section
	counts   map[string]int
	section  string
	query    string
	visible  []media.Item
	cursor   int
	picked   string
	pending  string

	status string
	width  int
	height int
}

// New builds a model over svc. A nil show gets a controller with the default
// interval.
func New(ctx context.Context, svc *app.Service, show *slideshow.Controller) Model {
	if show == nil {
		show = slideshow.New(slideshow.DefaultInterval)
	}

	input := textinput.New()
	input.CharLimit = 2048

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles and sections"

	m := Model{
		ctx:     ctx,
		svc:     svc,
		show:    show,
		keys:    defaultKeys(),
		help:    help.New(),
		input:   input,
		search:  search,
		section: media.AllSection,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case reloadMsg:
		// Our own saves come back through the watcher too; only report a
		// reload that brought something new.
		before, _ := media.Marshal(m.svc.Document())
		err := m.svc.Reload(m.ctx)
		after, _ := media.Marshal(m.svc.Document())
		if err != nil {
			m.report(err)
		} else if !bytes.Equal(before, after) {
			m.status = "reloaded"
		}
		m.refresh()
		return m, nil

	case advanceMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.show.Close()
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeInput:
			return m.updateInput(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeSlideshow:
			return m.updateSlideshow(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.show.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.picked != "" {
			m.picked = ""
			m.status = "move cancelled"
		} else if m.query != "" {
			m.query = ""
			m.search.SetValue("")
			m.refresh()
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextSection):
		m.cycleSection(1)

	case key.Matches(msg, m.keys.PrevSection):
		m.cycleSection(-1)

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Pick):
		if it, ok := m.current(); ok {
			m.picked = it.ID
			m.status = fmt.Sprintf("moving %q: enter or p drops it, esc cancels", it.DisplayTitle())
		}

	case m.picked != "" && key.Matches(msg, m.keys.Drop):
		m.drop()

	case key.Matches(msg, m.keys.Open):
		if it, ok := m.current(); ok && m.show.Open(m.visible, it.ID) {
			m.mode = modeSlideshow
			m.status = ""
		}

	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.current(); ok {
			m.mode = modeConfirm
			m.confirm = confirmItem
			m.pending = it.ID
			m.status = fmt.Sprintf("delete %q? y to confirm", it.DisplayTitle())
		}

	case key.Matches(msg, m.keys.DeleteSection):
		if m.section == media.AllSection {
			m.status = "the All section can not be deleted"
			break
		}
		m.mode = modeConfirm
		m.confirm = confirmSection
		m.pending = m.section
		m.status = fmt.Sprintf("delete section %q? its items move to All. y to confirm", m.section)

	case key.Matches(msg, m.keys.AddPhoto):
		return m.startInput(inputPhoto, "photo url [title]: ")

	case key.Matches(msg, m.keys.AddVideo):
		return m.startInput(inputVideo, "youtube url [title]: ")

	case key.Matches(msg, m.keys.AddSection):
		return m.startInput(inputSection, "section name: ")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.search.Blur()
		m.query = ""
		m.search.SetValue("")
		m.refresh()
		return m, nil
	case "enter":
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.query {
		m.query = q
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

func (m Model) startInput(action inputAction, prompt string) (tea.Model, tea.Cmd) {
	m.mode = modeInput
	m.action = action
	m.input.Prompt = prompt
	m.input.Reset()
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.action = inputNone
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		action := m.action
		m.mode = modeBrowse
		m.action = inputNone
		m.input.Blur()
		m.input.Reset()
		if value == "" {
			return m, nil
		}
		m.submit(action, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(action inputAction, value string) {
	switch action {
	case inputSection:
		sec, err := m.svc.AddSection(m.ctx, value)
		if m.report(err) {
			m.section = sec.Name
			m.cursor = 0
			m.status = fmt.Sprintf("added section %q", sec.Name)
		}
	case inputPhoto, inputVideo:
		kind := media.KindPhoto
		if action == inputVideo {
			kind = media.KindVideo
		}
		url, title, _ := strings.Cut(value, " ")
		section := m.section
		if section == media.AllSection {
			section = ""
		}
		it, err := m.svc.AddItem(m.ctx, kind, strings.TrimSpace(title), url, section)
		if m.report(err) {
			m.status = fmt.Sprintf("added %q", it.DisplayTitle())
		}
	}
	m.refresh()
	m.cursorTo(m.visible, "")
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, pending := m.confirm, m.pending
	m.mode = modeBrowse
	m.confirm = confirmNone
	m.pending = ""

	if !key.Matches(msg, m.keys.Confirm) {
		m.status = "cancelled"
		return m, nil
	}

	switch action {
	case confirmItem:
		removed, err := m.svc.DeleteItem(m.ctx, pending)
		if m.report(err) && removed {
			m.status = "deleted"
		}
		if m.picked == pending {
			m.picked = ""
		}
	case confirmSection:
		removed, err := m.svc.DeleteSection(m.ctx, pending)
		if m.report(err) && removed {
			m.status = fmt.Sprintf("deleted section %q", pending)
		}
	}
	m.refresh()
	return m, nil
}

func (m Model) updateSlideshow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.closeSlideshow()
	case key.Matches(msg, m.keys.SlideNext):
		m.show.Next(len(m.visible))
	case key.Matches(msg, m.keys.SlidePrev):
		m.show.Prev(len(m.visible))
	}
	return m, nil
}

func (m *Model) closeSlideshow() {
	if idx, ok := m.show.Index(); ok && idx < len(m.visible) {
		m.cursor = idx
	}
	m.show.Close()
	m.mode = modeBrowse
}

func (m *Model) drop() {
	target, ok := m.current()
	dragID := m.picked
	m.picked = ""
	if !ok {
		return
	}
	moved, err := m.svc.Move(m.ctx, m.section, m.query, dragID, target.ID)
	if m.report(err) {
		if moved {
			m.status = "moved"
		} else {
			m.status = "nothing to move"
		}
	}
	m.refresh()
	m.cursorTo(m.visible, dragID)
}

// report records err in the status line. It returns false only for errors
// that stopped the change from happening.
func (m *Model) report(err error) bool {
	if err == nil {
		return true
	}
	if app.IsPersistence(err) {
		m.status = "warning: " + err.Error()
		return true
	}
	m.status = err.Error()
	return false
}

func (m *Model) cycleSection(delta int) {
	if len(m.sections) == 0 {
		return
	}
	idx := 0
	for i, s := range m.sections {
		if s.Name == m.section {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(m.sections)) % len(m.sections)
	m.section = m.sections[idx].Name
	m.cursor = 0
	m.picked = ""
	m.refresh()
}

// refresh recomputes the derived view after any state change.
func (m *Model) refresh() {
	m.sections = m.svc.Sections()
	m.counts = m.svc.Counts()
	found := false
	for _, s := range m.sections {
		if s.Name == m.section {
			found = true
			break
		}
	}
	if !found {
		m.section = media.AllSection
	}
	m.visible = m.svc.Visible(m.section, m.query)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.show.Resize(len(m.visible))
	if m.mode == modeSlideshow && len(m.visible) == 0 {
		m.show.Close()
		m.mode = modeBrowse
	}
}

// cursorTo moves the cursor to id, or to the last item when id is empty.
func (m *Model) cursorTo(items []media.Item, id string) {
	if id == "" {
		if len(items) > 0 {
			m.cursor = len(items) - 1
		}
		return
	}
	for i, it := range items {
		if it.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) current() (media.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return media.Item{}, false
	}
	return m.visible[m.cursor], true
}
