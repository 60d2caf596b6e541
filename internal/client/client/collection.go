package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// restCollection maps Collection onto the backend's REST layout:
// GET/POST on the collection path, PUT/DELETE on path+id.
type restCollection[T any, P any] struct {
	c    *HTTPClient
	path string
}

func (r restCollection[T, P]) item(id int64) string {
	return fmt.Sprintf("%s%d", r.path, id)
}

func (r restCollection[T, P]) List(ctx context.Context) ([]T, error) {
	items, err := call[[]T](ctx, r.c, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r restCollection[T, P]) Create(ctx context.Context, payload P) (models.Created, error) {
	return call[models.Created](ctx, r.c, http.MethodPost, r.path, payload)
}

func (r restCollection[T, P]) Update(ctx context.Context, id int64, payload P) (models.Ack, error) {
	return call[models.Ack](ctx, r.c, http.MethodPut, r.item(id), payload)
}

func (r restCollection[T, P]) Delete(ctx context.Context, id int64) (models.Ack, error) {
	return call[models.Ack](ctx, r.c, http.MethodDelete, r.item(id), nil)
}

func (c *HTTPClient) Accounts() Collection[models.Account, models.AccountPayload] {
	return restCollection[models.Account, models.AccountPayload]{c: c, path: PathAccounts}
}

func (c *HTTPClient) Incomes() Collection[models.Income, models.IncomePayload] {
	return restCollection[models.Income, models.IncomePayload]{c: c, path: PathIncomes}
}

func (c *HTTPClient) ScheduledIncomes() Collection[models.ScheduledIncome, models.ScheduledIncomePayload] {
	return restCollection[models.ScheduledIncome, models.ScheduledIncomePayload]{c: c, path: PathScheduledIncomes}
}

func (c *HTTPClient) Services() Collection[models.Service, models.ServicePayload] {
	return restCollection[models.Service, models.ServicePayload]{c: c, path: PathServices}
}

func (c *HTTPClient) Loans() Collection[models.Loan, models.LoanPayload] {
	return restCollection[models.Loan, models.LoanPayload]{c: c, path: PathLoans}
}

func (c *HTTPClient) LoanPayments() Collection[models.LoanPayment, models.LoanPaymentPayload] {
	return restCollection[models.LoanPayment, models.LoanPaymentPayload]{c: c, path: PathLoanPayments}
}

func (c *HTTPClient) ServicePayments() Collection[models.ServicePayment, models.ServicePaymentPayload] {
	return restCollection[models.ServicePayment, models.ServicePaymentPayload]{c: c, path: PathServicePayments}
}
