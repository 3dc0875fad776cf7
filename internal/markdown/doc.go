// Package markdown renders product descriptions for the terminal.
//
// Source is parsed with goldmark and the resulting AST is walked block by
// block. Headings, emphasis, code, quotes and links map to theme styles;
// paragraphs are word-wrapped to the panel width. Raw HTML never reaches the
// terminal as markup: blocks are reduced to text with goquery after script,
// style and embedded-object elements are removed, and inline tags are dropped.
package markdown
