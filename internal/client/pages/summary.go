package pages

import (
	"context"

	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/client/router"
	"github.com/dmitrijs2005/findash/internal/client/services"
)

// Block ids of the summary page. The assistant reads these.
const (
	FieldIncomeTotal      = "income-total"
	FieldExpensesServices = "expenses-services"
	FieldExpensesLoans    = "expenses-loans"
	ChartExpenses         = "expenses-chart"
)

type SummaryPage struct {
	summary *services.Summary
}

func NewSummaryPage(summary *services.Summary) *SummaryPage {
	return &SummaryPage{summary: summary}
}

func (p *SummaryPage) View() router.View { return router.ViewSummary }

// Load shows the three totals and the expense split. When any source fails
// the figures are left out and only the error is shown.
func (p *SummaryPage) Load(ctx context.Context) *Document {
	doc := &Document{
		View:     router.ViewSummary,
		Title:    "Resumen Financiero",
		Subtitle: "Vista general de tus finanzas personales",
	}

	t, err := p.summary.Totals(ctx)
	if err != nil {
		doc.Error = services.MsgSummaryError
		return doc
	}

	doc.Blocks = []Block{
		{Kind: BlockField, ID: FieldIncomeTotal, Label: "Ingresos Totales", Value: models.FormatMoney(t.Income)},
		{Kind: BlockField, ID: FieldExpensesServices, Label: "Gastos (Servicios)", Value: models.FormatMoney(t.ServiceExpenses)},
		{Kind: BlockField, ID: FieldExpensesLoans, Label: "Gastos (Préstamos)", Value: models.FormatMoney(t.LoanPayments)},
		{Kind: BlockChart, ID: ChartExpenses, Label: "Distribución de Gastos", Slices: []Slice{
			{Label: "Gastos (Servicios)", Value: t.ServiceExpenses},
			{Label: "Pagos de Préstamos", Value: t.LoanPayments},
		}},
	}
	return doc
}
