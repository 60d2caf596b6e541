package assistant

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/findash/internal/client/pages"
	"github.com/dmitrijs2005/findash/internal/client/router"
)

// ContextSource describes what the user is looking at.
type ContextSource interface {
	Capture() string
}

const (
	cellSeparator   = "\t|\t"
	defaultContext  = "El usuario está viendo la aplicación de finanzas."
	summaryContext  = "El usuario está viendo su página de Resumen Financiero. Aquí están los datos en pantalla:\n- Ingresos totales: %s\n- Gastos en servicios: %s\n- Pagos de préstamos: %s"
	tableContext    = "El usuario está viendo la página de %s. La tabla en pantalla contiene los siguientes datos de %s:\n\n%s\n%s"
	noTableContext  = "El usuario está en la página de %s, pero no se encontraron datos para leer."
	fieldNotPresent = "No disponible"
)

type tableSource struct {
	tableID  string
	dataType string
}

var tableSources = map[router.View]tableSource{
	router.ViewAccounts:         {"cuentas-table", "cuentas"},
	router.ViewIncomes:          {"ingresos-table", "ingresos"},
	router.ViewScheduledIncomes: {"ingresos-programados-table", "ingresos programados"},
	router.ViewServices:         {"servicios-table", "servicios"},
	router.ViewServicePayments:  {"pagos-servicios-table", "pagos de servicios"},
	router.ViewLoans:            {"prestamos-table", "préstamos"},
	router.ViewLoanPayments:     {"pagos-prestamos-table", "pagos de préstamos"},
}

// DescribeDocument renders the grounding context for view from the
// document on screen. doc may be nil or belong to another view; in that
// case the expected blocks are missing and the text says so.
func DescribeDocument(view router.View, doc *pages.Document) string {
	if view == router.ViewSummary {
		field := func(id string) string {
			if v, ok := doc.Field(id); ok {
				return v
			}
			return fieldNotPresent
		}
		return fmt.Sprintf(summaryContext,
			field(pages.FieldIncomeTotal),
			field(pages.FieldExpensesServices),
			field(pages.FieldExpensesLoans))
	}

	src, ok := tableSources[view]
	if !ok {
		return defaultContext
	}
	tbl, ok := doc.Table(src.tableID)
	if !ok {
		return fmt.Sprintf(noTableContext, view.Title())
	}

	rows := make([]string, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		rows = append(rows, strings.Join(r, cellSeparator))
	}
	return fmt.Sprintf(tableContext, view.Title(), src.dataType,
		strings.Join(tbl.Headers, cellSeparator), strings.Join(rows, "\n"))
}

// ScreenContext reads the active view from the router and the rendered
// document from the screen.
type ScreenContext struct {
	Router *router.Router
	Screen *pages.Screen
}

func (s ScreenContext) Capture() string {
	return DescribeDocument(s.Router.Current(), s.Screen.Current())
}
