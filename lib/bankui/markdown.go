// Copyright 2026 The Oakline Authors
// SPDX-License-Identifier: Apache-2.0

package bankui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/oakline-app/oakline/lib/tui"
)

// noticeParserInstance is initialized once and reused. The parser
// configuration never changes and a goldmark Markdown is safe to
// share across calls.
var (
	noticeParserInstance goldmark.Markdown
	noticeParserOnce     sync.Once
)

func getNoticeParser() goldmark.Markdown {
	noticeParserOnce.Do(func() {
		noticeParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return noticeParserInstance
}

// renderNoticeMarkdown parses markdown text and renders it as styled
// terminal output. Soft line breaks within paragraphs become spaces so
// hard-wrapped source reflows at any terminal width; headings, lists,
// blockquotes, and code blocks keep their structure.
func renderNoticeMarkdown(input string, theme tui.Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := getNoticeParser().Parser().Parse(text.NewReader(source))

	// Force ANSI256: this output is always for terminal display, so
	// bypass auto-detection which would produce uncolored output in
	// environments with no TTY.
	renderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)

	if width < 20 {
		width = 20
	}

	walker := &noticeRenderer{
		source:   source,
		theme:    theme,
		width:    width,
		renderer: renderer,
	}
	walker.walk(document)
	walker.flushInline()
	return strings.TrimRight(walker.output.String(), "\n")
}

// noticeRenderer walks the goldmark AST and accumulates styled output.
// Inline content is buffered in `inline` and flushed with word-wrap at
// block boundaries; linePrefix carries list markers and blockquote
// bars onto wrapped continuation lines.
type noticeRenderer struct {
	source   []byte
	theme    tui.Theme
	width    int
	renderer *lipgloss.Renderer

	output strings.Builder
	inline strings.Builder

	linePrefix string
	listDepth  int
	orderedNum []int // per-depth counter, 0 for bulleted lists

	boldCount   int
	italicCount int
}

func (r *noticeRenderer) newStyle() lipgloss.Style {
	return r.renderer.NewStyle()
}

func (r *noticeRenderer) currentWidth() int {
	w := r.width - lipgloss.Width(r.linePrefix)
	if w < 10 {
		w = 10
	}
	return w
}

// walk dispatches block nodes. Inline nodes are handled by
// collectInline from within their enclosing block.
func (r *noticeRenderer) walk(node ast.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch block := child.(type) {
		case *ast.Heading:
			r.renderHeading(block)
		case *ast.Paragraph, *ast.TextBlock:
			r.collectInline(child)
			r.flushInline()
			r.blankLine()
		case *ast.List:
			r.renderList(block)
		case *ast.Blockquote:
			r.renderBlockquote(block)
		case *ast.FencedCodeBlock:
			r.renderCodeBlock(child, string(block.Language(r.source)))
		case *ast.CodeBlock:
			r.renderCodeBlock(child, "")
		case *ast.ThematicBreak:
			r.renderThematicBreak()
		default:
			// Unknown blocks (HTML, tables) degrade to their inline
			// text content rather than disappearing.
			r.collectInline(child)
			r.flushInline()
		}
	}
}

func (r *noticeRenderer) renderHeading(node *ast.Heading) {
	r.collectInline(node)
	heading := strings.TrimSpace(r.inline.String())
	r.inline.Reset()

	style := r.newStyle().Bold(true).Foreground(r.theme.HeaderForeground)
	if node.Level >= 3 {
		style = r.newStyle().Bold(true).Foreground(r.theme.NormalText)
	}
	r.output.WriteString(r.linePrefix + style.Render(heading) + "\n")
	r.blankLine()
}

func (r *noticeRenderer) renderList(node *ast.List) {
	r.listDepth++
	start := 0
	if node.IsOrdered() {
		start = node.Start
		if start == 0 {
			start = 1
		}
	}
	r.orderedNum = append(r.orderedNum, start)

	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", r.orderedNum[len(r.orderedNum)-1])
			r.orderedNum[len(r.orderedNum)-1]++
		}
		indent := strings.Repeat("  ", r.listDepth-1)

		savedPrefix := r.linePrefix
		r.linePrefix = savedPrefix + indent + strings.Repeat(" ", lipgloss.Width(marker))

		// First line of the item carries the marker; wrapped
		// continuation lines get the space prefix set above.
		bullet := r.newStyle().Foreground(r.theme.FaintText).Render(marker)
		for sub := item.FirstChild(); sub != nil; sub = sub.NextSibling() {
			if _, ok := sub.(*ast.List); !ok {
				r.collectInline(sub)
			}
		}
		content := strings.TrimSpace(r.inline.String())
		r.inline.Reset()
		wrapped := ansi.Wrap(content, r.currentWidth(), " ,.;-+|")
		lines := strings.Split(wrapped, "\n")
		r.output.WriteString(savedPrefix + indent + bullet + lines[0] + "\n")
		for _, line := range lines[1:] {
			r.output.WriteString(r.linePrefix + line + "\n")
		}

		// Nested lists inside this item.
		for sub := item.FirstChild(); sub != nil; sub = sub.NextSibling() {
			if subList, ok := sub.(*ast.List); ok {
				r.renderList(subList)
			}
		}
		r.linePrefix = savedPrefix
	}

	r.orderedNum = r.orderedNum[:len(r.orderedNum)-1]
	r.listDepth--
	if r.listDepth == 0 {
		r.blankLine()
	}
}

func (r *noticeRenderer) renderBlockquote(node *ast.Blockquote) {
	bar := r.newStyle().Foreground(r.theme.BorderColor).Render("│ ")
	saved := r.linePrefix
	r.linePrefix = saved + bar
	r.walk(node)
	r.linePrefix = saved
	r.blankLine()
}

func (r *noticeRenderer) renderCodeBlock(node ast.Node, language string) {
	var code strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(r.source))
	}

	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, code.String(), language, "terminal256", "monokai"); err != nil {
		highlighted.Reset()
		highlighted.WriteString(code.String())
	}

	for _, line := range strings.Split(strings.TrimRight(highlighted.String(), "\n"), "\n") {
		r.output.WriteString(r.linePrefix + "  " + line + "\n")
	}
	r.blankLine()
}

func (r *noticeRenderer) renderThematicBreak() {
	rule := r.newStyle().Foreground(r.theme.BorderColor).
		Render(strings.Repeat("─", r.currentWidth()))
	r.output.WriteString(r.linePrefix + rule + "\n")
	r.blankLine()
}

// collectInline accumulates the styled inline text of a block node
// into r.inline without writing output.
func (r *noticeRenderer) collectInline(node ast.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch inline := child.(type) {
		case *ast.Text:
			value := string(inline.Segment.Value(r.source))
			r.inline.WriteString(r.styledText(value))
			if inline.SoftLineBreak() {
				// Soft breaks become spaces so hard-wrapped source
				// reflows at the terminal's width.
				r.inline.WriteString(" ")
			}
			if inline.HardLineBreak() {
				r.inline.WriteString("\n")
			}
		case *ast.String:
			r.inline.WriteString(r.styledText(string(inline.Value)))
		case *ast.Emphasis:
			if inline.Level >= 2 {
				r.boldCount++
				r.collectInline(child)
				r.boldCount--
			} else {
				r.italicCount++
				r.collectInline(child)
				r.italicCount--
			}
		case *ast.CodeSpan:
			r.renderCodeSpan(child)
		case *ast.Link:
			r.collectInline(child)
			if url := string(inline.Destination); url != "" {
				faint := r.newStyle().Foreground(r.theme.FaintText)
				r.inline.WriteString(" " + faint.Render("("+url+")"))
			}
		case *ast.AutoLink:
			faint := r.newStyle().Foreground(r.theme.FaintText)
			r.inline.WriteString(faint.Render(string(inline.URL(r.source))))
		default:
			if child.HasChildren() {
				r.collectInline(child)
			}
		}
	}
}

func (r *noticeRenderer) renderCodeSpan(node ast.Node) {
	var code strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			code.Write(textNode.Segment.Value(r.source))
		}
	}
	style := r.newStyle().Foreground(r.theme.FaintText)
	r.inline.WriteString(style.Render(code.String()))
}

func (r *noticeRenderer) styledText(value string) string {
	if r.boldCount == 0 && r.italicCount == 0 {
		return value
	}
	style := r.newStyle().Foreground(r.theme.NormalText)
	if r.boldCount > 0 {
		style = style.Bold(true)
	}
	if r.italicCount > 0 {
		style = style.Italic(true)
	}
	return style.Render(value)
}

// flushInline word-wraps accumulated inline content to the current
// width and writes it, prefixing every line.
func (r *noticeRenderer) flushInline() {
	content := strings.TrimSpace(r.inline.String())
	r.inline.Reset()
	if content == "" {
		return
	}
	wrapped := ansi.Wrap(content, r.currentWidth(), " ,.;-+|")
	for _, line := range strings.Split(wrapped, "\n") {
		r.output.WriteString(r.linePrefix + line + "\n")
	}
}

// blankLine ensures exactly one blank line separates blocks.
func (r *noticeRenderer) blankLine() {
	out := r.output.String()
	if out == "" || strings.HasSuffix(out, "\n\n") {
		return
	}
	r.output.WriteString(strings.TrimRight(r.linePrefix, " "))
	r.output.WriteString("\n")
}
