package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Logs        key.Binding
	Back        key.Binding
	Forward     key.Binding
	Escape      key.Binding

	// Search
	Focus      key.Binding
	Submit     key.Binding
	Accept     key.Binding
	PrevOption key.Binding
	NextOption key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle light/dark"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Recent log entries"),
		),
		Back: key.NewBinding(
			key.WithKeys("[", "alt+left"),
			key.WithHelp("[", "Back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]", "alt+right"),
			key.WithHelp("]", "Forward"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave input / go back"),
		),

		// Search
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Focus search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search / open product"),
		),
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Accept suggestion"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("up", "Previous suggestion"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("down", "Next suggestion"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Accept, k.PrevOption, k.NextOption, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Back, k.Forward, k.ToggleTheme, k.Logs, k.Help, k.Quit},
	}
}
