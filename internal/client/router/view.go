// Package router derives the active view of the client from its location
// fragment and broadcasts changes to subscribers.
package router

import (
	"net/url"
	"strings"
)

// View identifies one screen of the application by its canonical fragment.
type View string

const (
	ViewSummary          View = "#/resumen"
	ViewAccounts         View = "#/cuentas"
	ViewIncomes          View = "#/ingresos"
	ViewScheduledIncomes View = "#/ingresos-programados"
	ViewServices         View = "#/servicios"
	ViewServicePayments  View = "#/pagos-servicios"
	ViewLoans            View = "#/prestamos"
	ViewLoanPayments     View = "#/pagos-prestamos"
)

// DefaultView is shown for an empty or unrecognized fragment.
const DefaultView = ViewSummary

// Views lists every view in navigation order.
var Views = []View{
	ViewSummary,
	ViewAccounts,
	ViewIncomes,
	ViewScheduledIncomes,
	ViewServices,
	ViewServicePayments,
	ViewLoans,
	ViewLoanPayments,
}

var titles = map[View]string{
	ViewSummary:          "Resumen",
	ViewAccounts:         "Cuentas",
	ViewIncomes:          "Ingresos",
	ViewScheduledIncomes: "Ingresos Programados",
	ViewServices:         "Servicios",
	ViewServicePayments:  "Pagos de Servicios",
	ViewLoans:            "Préstamos",
	ViewLoanPayments:     "Pagos de Préstamos",
}

// Title is the navigation label of v.
func (v View) Title() string {
	if t, ok := titles[v]; ok {
		return t
	}
	return titles[DefaultView]
}

func (v View) String() string { return string(v) }

// Parse maps a fragment to its view. The leading "#" is optional; anything
// unknown, including "", yields DefaultView.
func Parse(fragment string) View {
	f := normalize(fragment)
	if _, ok := titles[View(f)]; ok {
		return View(f)
	}
	return DefaultView
}

// Known reports whether fragment names a view exactly.
func Known(fragment string) bool {
	_, ok := titles[View(normalize(fragment))]
	return ok
}

func normalize(fragment string) string {
	f := strings.TrimSpace(fragment)
	if f == "" {
		return ""
	}
	if !strings.HasPrefix(f, "#") {
		f = "#" + f
	}
	return f
}

const tokenPrefix = "#token="

// ExternalToken recognizes the "#token=<value>" deep link issued by an
// external identity provider. The value is taken verbatim; an empty value
// does not count.
func ExternalToken(fragment string) (string, bool) {
	f := normalize(fragment)
	if !strings.HasPrefix(f, tokenPrefix) {
		return "", false
	}
	tok := strings.TrimPrefix(f, tokenPrefix)
	if tok == "" {
		return "", false
	}
	return tok, true
}

// FragmentOf accepts either a bare fragment ("#/cuentas", "token=abc") or a
// full URL ("https://app.example/#token=abc") and returns the fragment part
// including its "#". Inputs with no fragment yield "".
func FragmentOf(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "#") {
		return link
	}
	if u, err := url.Parse(link); err == nil && u.Scheme != "" {
		if u.Fragment == "" {
			return ""
		}
		if u.RawFragment != "" {
			return "#" + u.RawFragment
		}
		return "#" + u.Fragment
	}
	return normalize(link)
}
