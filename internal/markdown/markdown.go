package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/five82/scout/internal/termtext"
	"github.com/five82/scout/internal/theme"
)

// DefaultWidth is used when the caller passes a non-positive width.
const DefaultWidth = 80

// Elements whose content is dropped, never shown as text.
const unsafeSelector = "script, style, iframe, object, embed"

var rawTagPattern = regexp.MustCompile(`(?i)^<\s*(/?)\s*(script|style|iframe|object|embed)\b`)

// Renderer turns product descriptions into styled terminal text.
type Renderer struct {
	md     goldmark.Markdown
	styles theme.Styles
	width  int
}

// New returns a Renderer that wraps paragraphs at width cells.
func New(styles theme.Styles, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{md: goldmark.New(), styles: styles, width: width}
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render parses src and returns its styled rendering. Raw HTML is reduced to
// text; active content and terminal escape sequences are removed.
func (r *Renderer) Render(src string) string {
	source := []byte(termtext.Clean(src))
	doc := r.md.Parser().Parse(text.NewReader(source))
	w := &walker{r: r, src: source}
	return strings.TrimRight(strings.Join(w.blocks(doc, r.width), "\n\n"), "\n")
}

type walker struct {
	r    *Renderer
	src  []byte
	skip string // unsafe inline element currently being dropped
}

func (w *walker) blocks(parent ast.Node, width int) []string {
	var out []string
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if s := w.block(n, width); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (w *walker) block(n ast.Node, width int) string {
	st := w.r.styles
	switch node := n.(type) {
	case *ast.Heading:
		return st.Heading(node.Level).Render(wordwrap.String(w.inline(node), width))
	case *ast.Paragraph, *ast.TextBlock:
		return wordwrap.String(w.inline(node), width)
	case *ast.List:
		return w.list(node, width)
	case *ast.Blockquote:
		inner := strings.Join(w.blocks(node, max(1, width-2)), "\n\n")
		return st.Quote.Render(inner)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return st.CodeBlock.Render(strings.TrimRight(w.lines(node), "\n"))
	case *ast.ThematicBreak:
		return st.Rule.Render(strings.Repeat("─", width))
	case *ast.HTMLBlock:
		raw := w.lines(node)
		if node.HasClosure() {
			raw += string(node.ClosureLine.Value(w.src))
		}
		return wordwrap.String(sanitizeHTML(raw), width)
	default:
		if n.Type() == ast.TypeBlock {
			return strings.Join(w.blocks(n, width), "\n\n")
		}
		return wordwrap.String(w.inline(n), width)
	}
}

func (w *walker) list(l *ast.List, width int) string {
	var items []string
	num := l.Start
	if num == 0 {
		num = 1
	}
	for li := l.FirstChild(); li != nil; li = li.NextSibling() {
		marker := "•"
		if l.IsOrdered() {
			marker = fmt.Sprintf("%d.", num)
			num++
		}
		pad := strings.Repeat(" ", len([]rune(marker))+1)
		sep := "\n"
		if !l.IsTight {
			sep = "\n\n"
		}
		body := strings.Join(w.blocks(li, max(1, width-len(pad))), sep)
		lines := strings.Split(body, "\n")
		for i := range lines {
			if i == 0 {
				lines[i] = w.r.styles.ListMarker.Render(marker) + " " + lines[i]
			} else if lines[i] != "" {
				lines[i] = pad + lines[i]
			}
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return strings.Join(items, "\n")
}

func (w *walker) inline(parent ast.Node) string {
	var b strings.Builder
	st := w.r.styles
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if raw, ok := n.(*ast.RawHTML); ok {
			w.trackRaw(raw)
			continue
		}
		if w.skip != "" {
			continue
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(w.src))
			switch {
			case node.HardLineBreak():
				b.WriteString("\n")
			case node.SoftLineBreak():
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.CodeSpan:
			b.WriteString(st.Code.Render(w.plain(node)))
		case *ast.Emphasis:
			if node.Level >= 2 {
				b.WriteString(st.Strong.Render(w.inline(node)))
			} else {
				b.WriteString(st.Emphasis.Render(w.inline(node)))
			}
		case *ast.Link:
			label := w.inline(node)
			dest := string(node.Destination)
			b.WriteString(st.Link.Render(label))
			if dest != "" && dest != label {
				b.WriteString(st.MutedText.Render(" (" + dest + ")"))
			}
		case *ast.AutoLink:
			b.WriteString(st.Link.Render(string(node.URL(w.src))))
		case *ast.Image:
			alt := w.plain(node)
			if alt == "" {
				alt = "image"
			}
			b.WriteString(st.MutedText.Render("[" + alt + "]"))
		default:
			b.WriteString(w.inline(node))
		}
	}
	return b.String()
}

// trackRaw drops inline tags and remembers when an unsafe element opens so its
// content is skipped until the matching close tag.
func (w *walker) trackRaw(raw *ast.RawHTML) {
	var tag strings.Builder
	for i := 0; i < raw.Segments.Len(); i++ {
		seg := raw.Segments.At(i)
		tag.Write(seg.Value(w.src))
	}
	m := rawTagPattern.FindStringSubmatch(tag.String())
	if m == nil {
		return
	}
	name := strings.ToLower(m[2])
	switch {
	case m[1] == "" && w.skip == "":
		w.skip = name
	case m[1] == "/" && w.skip == name:
		w.skip = ""
	}
}

func (w *walker) plain(parent ast.Node) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(w.src))
		case *ast.String:
			b.Write(node.Value)
		default:
			b.WriteString(w.plain(node))
		}
	}
	return b.String()
}

func (w *walker) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.src))
	}
	return b.String()
}

// sanitizeHTML reduces an HTML fragment to its visible text with unsafe
// elements removed. Unparseable input yields nothing.
func sanitizeHTML(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	doc.Find(unsafeSelector).Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
