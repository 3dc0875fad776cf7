package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/five82/scout/internal/theme"
)

func newRenderer(width int) *Renderer {
	return New(theme.NewContext(theme.Dark).Styles(), width)
}

func TestRender_HeadingsAndParagraphs(t *testing.T) {
	out := newRenderer(60).Render("# Cover\n\nTwenty years of *level* premiums.\n\n## Exclusions\n\nSee `terms`.")
	assert.Contains(t, out, "Cover")
	assert.Contains(t, out, "Twenty years of level premiums.")
	assert.Contains(t, out, "Exclusions")
	assert.Contains(t, out, "terms")
	assert.NotContains(t, out, "#")
	assert.NotContains(t, out, "*level*")
}

func TestRender_DropsScriptBlocks(t *testing.T) {
	out := newRenderer(60).Render("<script>alert('pwned')</script>\n\nSafe text")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "Safe text")
}

func TestRender_DropsInlineScript(t *testing.T) {
	out := newRenderer(60).Render("Hello <script>alert(1)</script>world <b>bold</b>")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "world")
	assert.Contains(t, out, "bold")
}

func TestRender_HTMLBlockKeepsTextOnly(t *testing.T) {
	src := "<div>\n<p>Visible</p>\n<style>.x { color: red }</style>\n<iframe src=\"https://evil.test\">frame</iframe>\n</div>"
	out := newRenderer(60).Render(src)
	assert.Contains(t, out, "Visible")
	assert.NotContains(t, out, "color")
	assert.NotContains(t, out, "frame")
	assert.NotContains(t, out, "<")
}

func TestRender_Lists(t *testing.T) {
	out := newRenderer(60).Render("- one\n- two\n\n3. third\n4. fourth")
	assert.Contains(t, out, "• one")
	assert.Contains(t, out, "• two")
	assert.Contains(t, out, "3. third")
	assert.Contains(t, out, "4. fourth")
}

func TestRender_LinksShowDestination(t *testing.T) {
	out := newRenderer(80).Render("Buy from [Acme](https://acme.test/buy).")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "(https://acme.test/buy)")
}

func TestRender_WrapsToWidth(t *testing.T) {
	src := strings.Repeat("cover plan ", 30)
	out := newRenderer(24).Render(src)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 24, "line %q", line)
	}
}

func TestRender_EmptyAndDefaults(t *testing.T) {
	r := newRenderer(0)
	assert.Equal(t, DefaultWidth, r.Width())
	assert.Empty(t, r.Render(""))
	assert.Empty(t, r.Render("   \n\n"))
}

func TestSanitizeHTML(t *testing.T) {
	got := sanitizeHTML("<p>a <em>b</em></p><object>x</object><embed src=\"y.swf\"><script>z()</script>")
	assert.Equal(t, "a b", got)
}

func TestRender_StripsTerminalEscapes(t *testing.T) {
	out := newRenderer(80).Render("hello \x1b]52;c;cHduZWQ=\x07 world\n\n# Title\x1b]0;pwned\x07\n\n`\x1b[2J`")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
	assert.Contains(t, out, "Title")
	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "\x1b[2J")
	assert.NotContains(t, out, "cHduZWQ=")
	assert.NotContains(t, out, "pwned")
	assert.NotContains(t, out, "\x07")
}
