package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/scout/internal/catalog"
	"github.com/five82/scout/internal/logtail"
	"github.com/five82/scout/internal/nav"
	"github.com/five82/scout/internal/prefs"
	"github.com/five82/scout/internal/session"
	"github.com/five82/scout/internal/theme"
)

// View represents the current active view.
type View int

const (
	ViewSearch View = iota
	ViewDetail
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   catalog.Catalog
	Theme     *theme.Context
	History   *nav.History
	PrefsPath string
	LogPath   string
	Logger    zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	keys      keyMap
	log       zerolog.Logger
	prefsPath string
	logPath   string

	// Sessions
	theme   *theme.Context
	history *nav.History
	search  *session.SearchController
	detail  *session.DetailController

	// Widgets
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	// UI state
	currentView View
	width       int
	height      int
	ready       bool
	cursor      int // selected card
	suggestion  int // highlighted suggestion, -1 for none
	notice      string

	// Overlays
	showHelp   bool
	showLogs   bool
	logEntries []logtail.Entry
	logErr     error

	startCmd tea.Cmd
}

// New creates a new Bubble Tea model positioned at the history's current
// location. The initial fetch, if any, is issued by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	history := opts.History
	if history == nil {
		history = nav.NewHistory(nav.SearchLocation(""))
	}
	th := opts.Theme
	if th == nil {
		th = theme.NewContext(theme.Dark)
	}
	log := opts.Logger

	m := Model{
		ctx:        ctx,
		keys:       DefaultKeyMap(),
		log:        log.With().Str("component", "ui").Logger(),
		prefsPath:  opts.PrefsPath,
		logPath:    opts.LogPath,
		theme:      th,
		history:    history,
		search: session.NewSearchController(opts.Catalog, session.NewQueryStore(history),
			session.WithLogger(log.With().Str("component", "search").Logger())),
		detail: session.NewDetailController(opts.Catalog,
			session.WithLogger(log.With().Str("component", "detail").Logger())),
		input:      newInput(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:   viewport.New(0, 0),
		suggestion: -1,
	}
	m.applyStyles()

	current := history.Current()
	if current.IsSearch() {
		m.currentView = ViewSearch
		req, ok := m.search.Start()
		m.input.SetValue(m.search.Queries().Pending())
		if ok {
			m.startCmd = m.searchCmd(req)
		}
		if m.search.Queries().Committed() == "" {
			m.startCmd = tea.Batch(m.startCmd, m.input.Focus())
		}
	} else {
		m.startCmd = m.applyLocation(current)
	}
	return m
}

func newInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "Search products"
	in.Prompt = "/ "
	in.CharLimit = 200
	return in
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCmd)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case searchResultMsg:
		if m.search.Resolve(msg.resp) {
			m.cursor = clamp(m.cursor, 0, len(m.search.State().Results)-1)
		}
		return m, nil

	case detailResultMsg:
		if m.detail.Resolve(msg.resp) {
			m.refreshDetail()
		}
		return m, nil

	case logTailMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Overlays take every key first, then the
// focused search input, then view bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	m.notice = ""

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}
	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, m.loadLogsCmd()
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	case key.Matches(msg, m.keys.Forward):
		return m.goForward()
	}

	switch m.currentView {
	case ViewSearch:
		return m.handleSearchKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

// navigate pushes loc onto the history and shows it.
func (m *Model) navigate(loc nav.Location) tea.Cmd {
	m.history.Push(loc)
	return m.applyLocation(loc)
}

// applyLocation switches views to match loc and starts whatever fetch the
// destination needs. Leaving a view ends its session.
func (m *Model) applyLocation(loc nav.Location) tea.Cmd {
	if loc.IsSearch() {
		if m.currentView == ViewDetail {
			m.detail.Close()
		}
		m.currentView = ViewSearch
		req, ok := m.search.LocationChanged(loc)
		m.input.SetValue(m.search.Queries().Pending())
		m.input.CursorEnd()
		m.suggestion = -1
		if !ok {
			return nil
		}
		m.cursor = 0
		return m.searchCmd(req)
	}

	id, _ := loc.ItemID()
	if m.currentView == ViewSearch {
		m.search.Discard()
	}
	m.currentView = ViewDetail
	m.input.Blur()
	m.viewport.GotoTop()
	req, ok := m.detail.Open(id)
	m.refreshDetail()
	if !ok {
		return nil
	}
	return m.detailCmd(req)
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	loc, ok := m.history.Back()
	if !ok {
		return m, nil
	}
	cmd := m.applyLocation(loc)
	return m, cmd
}

func (m Model) goForward() (tea.Model, tea.Cmd) {
	loc, ok := m.history.Forward()
	if !ok {
		return m, nil
	}
	cmd := m.applyLocation(loc)
	return m, cmd
}

func (m *Model) toggleTheme() {
	v := m.theme.Toggle()
	m.applyStyles()
	m.refreshDetail()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.For(v)); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
		m.notice = "Could not save theme preference"
	}
}

// applyStyles restyles widgets after a theme change.
func (m *Model) applyStyles() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.input.Cursor.Style = styles.AccentText
	m.spinner.Style = styles.AccentText
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
