package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/hay-kot/termlinks/internal/detect"
	"github.com/hay-kot/termlinks/internal/integration/terminal"
	"github.com/hay-kot/termlinks/internal/opener"
)

// LinkOpener launches a link. Satisfied by *opener.Opener.
type LinkOpener interface {
	Open(ctx context.Context, l link.Link) (opener.Command, error)
}

// Options configures the picker behavior.
type Options struct {
	// RefreshInterval rereads the source periodically. Zero reads it once.
	RefreshInterval time.Duration
	// Changes rereads the source each time it delivers a value.
	Changes <-chan struct{}
	// StayOpen keeps the picker running after a link opens.
	StayOpen bool
}

// Model is the Bubble Tea model for the link picker.
type Model struct {
	source   terminal.Source
	detector *detect.Detector
	tracker  *terminal.ChangeTracker
	opener   LinkOpener
	opts     Options

	list   list.Model
	keys   keyMap
	width  int
	height int

	loaded    bool
	status    string
	statusErr bool
	quitting  bool
	opened    *link.Link
}

// New creates a picker that reads rows from source and scans them with d.
func New(source terminal.Source, d *detect.Detector, o LinkOpener, opts Options) Model {
	keys := defaultKeyMap()

	l := list.New([]list.Item{}, NewLinkDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "Filter: "
	l.Styles.HelpStyle = lipgloss.NewStyle().PaddingLeft(1)
	l.Help.Styles.ShortKey = helpStyle
	l.Help.Styles.ShortDesc = helpStyle
	l.Help.Styles.ShortSeparator = helpStyle
	l.Help.ShortSeparator = " " + iconDot + " "
	l.AdditionalShortHelpKeys = keys.ShortHelp
	l.KeyMap.Quit = keys.Quit

	return Model{
		source:   source,
		detector: d,
		tracker:  terminal.NewChangeTracker(),
		opener:   o,
		opts:     opts,
		list:     l,
		keys:     keys,
	}
}

// Opened returns the last link opened successfully, if any.
func (m Model) Opened() (link.Link, bool) {
	if m.opened == nil {
		return link.Link{}, false
	}
	return *m.opened, true
}

// Init starts the first source read.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadRows(m.source, true), waitForChange(m.opts.Changes))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-headerHeight-statusHeight, 1))
		return m, nil

	case rowsLoadedMsg:
		return m.handleRows(msg)

	case refreshTickMsg:
		return m, loadRows(m.source, true)

	case sourceChangedMsg:
		return m, tea.Batch(loadRows(m.source, false), waitForChange(m.opts.Changes))

	case linkOpenedMsg:
		return m.handleOpened(msg)

	case tea.KeyMsg:
		// let the filter input consume keys while it is active
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.tracker.Reset()
			m.setStatus("rescanning "+m.source.Name(), false)
			return m, loadRows(m.source, false)
		case key.Matches(msg, m.keys.Open):
			item, ok := m.list.SelectedItem().(LinkItem)
			if !ok {
				return m, nil
			}
			return m, openLink(m.opener, item.Link)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleRows(msg rowsLoadedMsg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if msg.scheduled {
		next = scheduleRefresh(m.opts.RefreshInterval)
	}

	if msg.err != nil {
		m.setStatus(fmt.Sprintf("read %s: %v", m.source.Name(), msg.err), true)
		return m, next
	}

	m.loaded = true
	if !m.tracker.Changed(msg.rows) {
		return m, next
	}

	m.detector.Scan(msg.rows)

	links := m.detector.Links()
	items := make([]list.Item, len(links))
	for i, l := range links {
		items[i] = LinkItem{Link: l}
	}

	cmd := m.list.SetItems(items)
	return m, tea.Batch(cmd, next)
}

func (m Model) handleOpened(msg linkOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// failures are shown and the picker stays usable
		m.setStatus(msg.err.Error(), true)
		return m, nil
	}

	opened := msg.link
	m.opened = &opened
	m.setStatus("opened with "+msg.cmd.String(), false)

	if !m.opts.StayOpen {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
