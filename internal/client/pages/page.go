// Package pages turns backend data into on-screen documents and decides,
// from the session state and the active view, what the client shows.
//
// Every view except the summary is a CRUD page over one backend collection:
// it lists records as a table with a stable id (e.g. "cuentas-table"),
// describes its entry form, and performs create/update/delete followed by a
// fresh load. Failures are reported inside the document, never upward.
package pages

import (
	"context"

	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/router"
	"github.com/dmitrijs2005/findash/internal/client/services"
)

// Page renders one view.
type Page interface {
	View() router.View
	// Load fetches data and returns the document. Errors end up in
	// Document.Error.
	Load(ctx context.Context) *Document
}

// Editor is a page whose records the user can create, edit and delete.
// Mutations return the reloaded document carrying the backend's message as
// a notice.
type Editor interface {
	Page
	Form() []Field
	// Values returns the current form values of record id, for editing.
	Values(ctx context.Context, id int64) (map[string]string, error)
	Create(ctx context.Context, values map[string]string) (*Document, error)
	Update(ctx context.Context, id int64, values map[string]string) (*Document, error)
	Delete(ctx context.Context, id int64) (*Document, error)
}

// Registry maps views to pages.
type Registry struct {
	pages map[router.View]Page
}

// NewRegistry builds every page of the application over api.
func NewRegistry(api client.API) *Registry {
	r := &Registry{pages: make(map[router.View]Page)}
	for _, p := range []Page{
		NewSummaryPage(services.NewSummary(api)),
		accountsPage(api.Accounts()),
		incomesPage(api.Incomes()),
		scheduledIncomesPage(api.ScheduledIncomes()),
		servicesPage(api.Services()),
		servicePaymentsPage(api.ServicePayments()),
		loansPage(api.Loans()),
		loanPaymentsPage(api.LoanPayments()),
	} {
		r.pages[p.View()] = p
	}
	return r
}

// Page returns the page for v, falling back to the summary.
func (r *Registry) Page(v router.View) Page {
	if p, ok := r.pages[v]; ok {
		return p
	}
	return r.pages[router.DefaultView]
}
