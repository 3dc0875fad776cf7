package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/scout/internal/logtail"
	"github.com/five82/scout/internal/session"
)

// Messages

type searchResultMsg struct {
	resp session.SearchResponse
}

type detailResultMsg struct {
	resp session.DetailResponse
}

type logTailMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

// searchCmd runs req off the event loop. The response comes back as a message
// and is reconciled in Update.
func (m Model) searchCmd(req session.SearchRequest) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return searchResultMsg{resp: req.Run(ctx)}
	}
}

func (m Model) detailCmd(req session.DetailRequest) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return detailResultMsg{resp: req.Run(ctx)}
	}
}

func (m Model) loadLogsCmd() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.Tail(path, LogTailLines, LogOverlayLevel)
		return logTailMsg{entries: entries, err: err}
	}
}
