package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Markdown renders assistant answers. When glamour cannot be set up or fails
// on a given text, the plain text is word-wrapped instead.
type Markdown struct {
	style string
	width int
	r     *glamour.TermRenderer
}

// NewMarkdown uses a glamour standard style such as "dark" or "notty".
func NewMarkdown(style string, width int) *Markdown {
	m := &Markdown{style: style}
	m.SetWidth(width)
	return m
}

func (m *Markdown) SetWidth(width int) {
	if width <= 0 {
		width = 80
	}
	if m.r != nil && width == m.width {
		return
	}
	m.width = width
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.r = nil
		return
	}
	m.r = r
}

func (m *Markdown) Render(text string) string {
	if m.r != nil {
		if out, err := m.r.Render(text); err == nil {
			return strings.TrimRight(strings.TrimLeft(out, "\n"), " \n")
		}
	}
	return wrapText(text, m.width)
}

func wrapText(text string, width int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	return strings.ReplaceAll(wordwrap.String(trimmed, width), "\r", "")
}
