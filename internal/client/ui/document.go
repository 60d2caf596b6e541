package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/client/pages"
	"github.com/shopspring/decimal"
)

const (
	chartWidth = 30
	msgEmpty   = "Sin registros."
	msgNoChart = "Sin gastos registrados."
)

// RenderDocument draws doc for a terminal width columns wide (0 means no limit).
func RenderDocument(doc *pages.Document, width int, th Theme) string {
	if doc == nil {
		return ""
	}

	parts := []string{th.Header.Render(doc.Title)}
	if doc.Subtitle != "" {
		parts = append(parts, th.Subtitle.Render(doc.Subtitle))
	}
	if doc.Error != "" {
		parts = append(parts, th.Danger.Render(doc.Error))
	}
	if doc.Notice != "" {
		parts = append(parts, th.Success.Render(doc.Notice))
	}

	var fields []string
	flush := func() {
		if len(fields) > 0 {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, fields...))
			fields = nil
		}
	}

	for _, b := range doc.Blocks {
		switch b.Kind {
		case pages.BlockField:
			fields = append(fields, th.Panel.Render(th.Muted.Render(b.Label)+"\n"+th.Accent.Render(b.Value)))
			continue
		case pages.BlockTable:
			flush()
			parts = append(parts, renderTable(b, width, th))
		case pages.BlockChart:
			flush()
			parts = append(parts, renderChart(b, th))
		}
	}
	flush()

	return strings.Join(parts, "\n\n")
}

func renderTable(b pages.Block, width int, th Theme) string {
	if len(b.Rows) == 0 {
		return th.Muted.Render(msgEmpty)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.Border).
		Headers(b.Headers...).
		Rows(b.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.TableHead
			}
			return th.Cell
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}

// renderChart draws one horizontal bar per slice, scaled to the largest.
func renderChart(b pages.Block, th Theme) string {
	lines := []string{th.Header.Render(b.Label)}

	top := decimal.Zero
	labelWidth := 0
	for _, s := range b.Slices {
		if s.Value.GreaterThan(top) {
			top = s.Value
		}
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}
	if !top.IsPositive() {
		return strings.Join(append(lines, th.Muted.Render(msgNoChart)), "\n")
	}

	for i, s := range b.Slices {
		n := 0
		if s.Value.IsPositive() {
			n = int(s.Value.Mul(decimal.NewFromInt(chartWidth)).Div(top).Ceil().IntPart())
		}
		bar := th.Bar[i%len(th.Bar)].Render(strings.Repeat("█", n))
		label := s.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(s.Label))
		lines = append(lines, label+"  "+bar+" "+models.FormatMoney(s.Value))
	}
	return strings.Join(lines, "\n")
}
