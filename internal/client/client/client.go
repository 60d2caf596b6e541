package client

import (
	"context"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// Collection is the list/create/update/delete surface shared by every
// finance resource. T is the record shape, P the payload sent on writes.
type Collection[T any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload P) (models.Created, error)
	Update(ctx context.Context, id int64, payload P) (models.Ack, error)
	Delete(ctx context.Context, id int64) (models.Ack, error)
}

// API is the typed contract with the backend.
type API interface {
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
	Register(ctx context.Context, username, email, password string) (models.Ack, error)
	Me(ctx context.Context) (models.User, error)

	Accounts() Collection[models.Account, models.AccountPayload]
	Incomes() Collection[models.Income, models.IncomePayload]
	ScheduledIncomes() Collection[models.ScheduledIncome, models.ScheduledIncomePayload]
	Services() Collection[models.Service, models.ServicePayload]
	Loans() Collection[models.Loan, models.LoanPayload]
	LoanPayments() Collection[models.LoanPayment, models.LoanPaymentPayload]
	ServicePayments() Collection[models.ServicePayment, models.ServicePaymentPayload]
}

// TokenSource yields the credential to attach to a request.
// tokenstore.Store satisfies it.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Resource paths, relative to the API base URL.
const (
	PathLogin            = "/auth/login"
	PathRegister         = "/auth/register"
	PathMe               = "/auth/me"
	PathAccounts         = "/accounts/"
	PathIncomes          = "/incomes/"
	PathScheduledIncomes = "/scheduled_incomes/"
	PathServices         = "/services/"
	PathLoans            = "/loans/"
	PathLoanPayments     = "/loan_payments/"
	PathServicePayments  = "/service_payments/"
)
