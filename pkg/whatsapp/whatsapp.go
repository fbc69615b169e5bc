// Package whatsapp builds the order handoff: a human-readable summary of a
// placed order and the wa.me deep link that carries it. Opening the link is
// the caller's concern and is best-effort; by the time a link exists the
// order is already committed.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Link builds a https://wa.me deep link for the given phone number and
// message body. Everything except digits is stripped from the number.
func Link(number, message string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}

// Table renders rows under a header as fixed-width monospace columns. Each
// column is as wide as the longest of its header and cells; columns are
// separated by two spaces and the header is underlined with dashes of
// matching width.
type Table struct {
	Header []string
	Rows   [][]string
}

// Render returns the table as monospace text, without code fences.
func (t Table) Render() string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len([]rune(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		// Cells beyond the header have no column width; drop them.
		if len(cells) > len(widths) {
			cells = cells[:len(widths)]
		}
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(cell, widths[i])
		}
		// Trailing spaces add nothing in a fenced block.
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}

	writeRow(t.Header)
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	writeRow(dashes)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Fenced wraps the rendered table in literal triple-backtick fences so it
// stays monospace inside a WhatsApp message.
func (t Table) Fenced() string {
	return "```\n" + t.Render() + "\n```"
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
