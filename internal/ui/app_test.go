package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/scout/internal/catalog"
	"github.com/five82/scout/internal/mock"
	"github.com/five82/scout/internal/nav"
	"github.com/five82/scout/internal/prefs"
	"github.com/five82/scout/internal/session"
	"github.com/five82/scout/internal/theme"
)

var (
	termLife = catalog.Item{
		ID:          "p1",
		Name:        "Term Life",
		Description: "# Cover\n\nTwenty years of level premiums.",
		Owner:       catalog.Owner{ID: "b1", Name: "Acme", Website: "https://acme.test"},
	}
	petCover = catalog.Item{ID: "p2", Name: "Pet Cover", Owner: catalog.Owner{ID: "b2", Name: "Bolt"}}
)

func newCatalog() *mock.Catalog {
	return &mock.Catalog{
		SearchFn: mock.Results(map[string][]catalog.Item{
			"life insurance": {termLife},
			"term life":      {termLife},
			"pets":           {petCover},
		}),
		GetItemFn: func(_ context.Context, id string) (catalog.Item, error) {
			switch id {
			case termLife.ID:
				return termLife, nil
			case petCover.ID:
				return petCover, nil
			}
			return catalog.Item{}, fmt.Errorf("product %q: %w", id, catalog.ErrNotFound)
		},
	}
}

func newModel(t *testing.T, start nav.Location, c *mock.Catalog) Model {
	t.Helper()
	m := New(Options{
		Catalog: c,
		History: nav.NewHistory(start),
		Theme:   theme.NewContext(theme.Dark),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends one key and returns the command it produced.
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// resolve runs a fetch command synchronously and feeds its result back.
func resolve(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd, "expected a fetch command")
	return update(t, m, cmd())
}

func TestModel_StartFromSharedLocationFetchesOnce(t *testing.T) {
	c := newCatalog()
	m := newModel(t, nav.SearchLocation("term life"), c)

	assert.Equal(t, "term life", m.input.Value())
	assert.False(t, m.input.Focused())
	m = resolve(t, m, m.startCmd)

	assert.Equal(t, []string{"term life"}, c.Searches())
	assert.Equal(t, session.Ready, m.search.State().Status)
	view := m.View()
	assert.Contains(t, view, "Term Life")
	assert.Contains(t, view, "/?q=term+life")
}

func TestModel_TypeAndCommitRendersOneCard(t *testing.T) {
	c := newCatalog()
	m := newModel(t, nav.SearchLocation(""), c)
	require.True(t, m.input.Focused(), "an empty start focuses the input")

	m, _ = press(t, m, "life insurance")
	assert.Empty(t, c.Searches(), "typing does not search")
	assert.Equal(t, "/", m.history.Current().String())

	m, cmd := press(t, m, "enter")
	assert.Equal(t, session.Loading, m.search.State().Status)
	assert.Contains(t, m.View(), "Searching for")
	m = resolve(t, m, cmd)

	view := m.View()
	assert.Equal(t, 1, strings.Count(view, "Term Life"))
	assert.Equal(t, 1, strings.Count(view, "Available"))
	assert.Contains(t, view, "/?q=life+insurance")
}

func TestModel_EmptyCommitDoesNotFetch(t *testing.T) {
	c := newCatalog()
	m := newModel(t, nav.SearchLocation(""), c)

	m, _ = press(t, m, "   ")
	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Empty(t, c.Searches())
	assert.Equal(t, session.Idle, m.search.State().Status)
}

func TestModel_LateResponseForOlderQueryIsIgnored(t *testing.T) {
	c := newCatalog()
	m := newModel(t, nav.SearchLocation(""), c)

	m, _ = press(t, m, "term life")
	m, first := press(t, m, "enter")

	m, _ = press(t, m, "/")
	m.input.SetValue("")
	m, _ = press(t, m, "pets")
	m, second := press(t, m, "enter")

	m = resolve(t, m, second)
	m = resolve(t, m, first)

	st := m.search.State()
	assert.Equal(t, "pets", st.Committed)
	require.Len(t, st.Results, 1)
	assert.Equal(t, "p2", st.Results[0].ID)
	assert.NotContains(t, m.View(), "Term Life")
}

func TestModel_OpenProductAndGoBack(t *testing.T) {
	c := newCatalog()
	m := newModel(t, nav.SearchLocation("term life"), c)
	m = resolve(t, m, m.startCmd)

	m, cmd := press(t, m, "enter")
	assert.Equal(t, ViewDetail, m.currentView)
	assert.Equal(t, "/product/p1", m.history.Current().String())
	m = resolve(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "Term Life")
	assert.Contains(t, view, "Twenty years of level premiums.")
	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "https://acme.test")

	m, cmd = press(t, m, "esc")
	assert.Equal(t, ViewSearch, m.currentView)
	assert.Equal(t, "/?q=term+life", m.history.Current().String())
	m = resolve(t, m, cmd)
	assert.Equal(t, []string{"term life", "term life"}, c.Searches(), "returning to search refetches")

	m, cmd = press(t, m, "]")
	assert.Equal(t, ViewDetail, m.currentView)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"p1"}, c.Lookups(), "forward issues a fresh lookup when run")
}

func TestModel_ProductNotFound(t *testing.T) {
	c := newCatalog()
	m := newModel(t, nav.DetailLocation("missing"), c)
	assert.Equal(t, ViewDetail, m.currentView)

	m = resolve(t, m, m.startCmd)
	assert.Equal(t, session.Failed, m.detail.State().Status)
	assert.Contains(t, m.View(), "Product not found.")
}

func TestModel_SuggestionSelectCommits(t *testing.T) {
	c := newCatalog()
	h := nav.NewHistory(nav.SearchLocation("pets"))
	h.Push(nav.SearchLocation("term life"))
	m := update(t, New(Options{Catalog: c, History: h}), tea.WindowSizeMsg{Width: 100, Height: 40})
	m = resolve(t, m, m.startCmd)

	m, _ = press(t, m, "/")
	m.input.SetValue("")
	m, _ = press(t, m, "p")
	assert.Equal(t, []string{"pets"}, m.search.Suggestions(maxSuggestions))

	m, _ = press(t, m, "down")
	assert.Equal(t, 0, m.suggestion)
	m, cmd := press(t, m, "enter")
	m = resolve(t, m, cmd)
	assert.Equal(t, "pets", m.search.State().Committed)
	assert.Equal(t, "/?q=pets", m.history.Current().String())
}

func TestModel_ToggleThemeSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	th := theme.NewContext(theme.Dark)
	m := New(Options{Catalog: newCatalog(), Theme: th, PrefsPath: path, History: nav.NewHistory(nav.SearchLocation("pets"))})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = press(t, m, "T")
	assert.Equal(t, theme.Light, th.Variant())
	p, err := prefs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", p.Theme)

	_, _ = press(t, m, "T")
	assert.Equal(t, theme.Dark, th.Variant())
}

func TestModel_HelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newModel(t, nav.SearchLocation("pets"), newCatalog())
	m, _ = press(t, m, "?")
	assert.Contains(t, m.View(), "Keyboard Shortcuts")
	m, _ = press(t, m, "x")
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")
}

func TestModel_LeaveProductOpenedDirectly(t *testing.T) {
	c := newCatalog()
	m := newModel(t, nav.DetailLocation("p1"), c)
	m = resolve(t, m, m.startCmd)
	require.Equal(t, ViewDetail, m.currentView)

	m, cmd := press(t, m, "esc")
	assert.Equal(t, ViewSearch, m.currentView)
	assert.Equal(t, "/", m.history.Current().String())
	assert.Nil(t, cmd, "the bare search view has nothing to fetch")
	assert.Equal(t, []string{"p1"}, c.Lookups())
	assert.Contains(t, m.View(), "Press / to search the catalog")

	m, cmd = press(t, m, "[")
	assert.Equal(t, ViewDetail, m.currentView)
	m = resolve(t, m, cmd)
	assert.Equal(t, []string{"p1", "p1"}, c.Lookups())
}

func TestModel_SlashOnProductFocusesSearch(t *testing.T) {
	c := newCatalog()
	h := nav.NewHistory(nav.SearchLocation("term life"))
	h.Push(nav.DetailLocation("p1"))
	m := update(t, New(Options{Catalog: c, History: h}), tea.WindowSizeMsg{Width: 100, Height: 40})
	m = resolve(t, m, m.startCmd)
	require.Equal(t, ViewDetail, m.currentView)

	m, _ = press(t, m, "/")
	assert.Equal(t, ViewSearch, m.currentView)
	assert.True(t, m.input.Focused())
	assert.Equal(t, "/", m.history.Current().String(), "no query has been committed in this session")
	assert.Equal(t, []string{"p1"}, c.Lookups())

	m, _ = press(t, m, "pets")
	m, cmd := press(t, m, "enter")
	m = resolve(t, m, cmd)
	assert.Equal(t, "/?q=pets", m.history.Current().String())
	assert.Equal(t, []string{"pets"}, c.Searches())
}
