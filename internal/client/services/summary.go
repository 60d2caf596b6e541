package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// MsgSummaryError is shown in place of the totals when any fetch fails.
const MsgSummaryError = "Error al cargar los datos del resumen."

// Totals are the three figures of the financial summary.
type Totals struct {
	Income          decimal.Decimal
	ServiceExpenses decimal.Decimal
	LoanPayments    decimal.Decimal
}

// Expenses is services plus loan payments.
func (t Totals) Expenses() decimal.Decimal {
	return t.ServiceExpenses.Add(t.LoanPayments)
}

// SummaryAPI is the part of the backend the summary reads.
type SummaryAPI interface {
	Incomes() client.Collection[models.Income, models.IncomePayload]
	Services() client.Collection[models.Service, models.ServicePayload]
	LoanPayments() client.Collection[models.LoanPayment, models.LoanPaymentPayload]
}

type Summary struct {
	api SummaryAPI
}

func NewSummary(api SummaryAPI) *Summary {
	return &Summary{api: api}
}

// Totals fetches incomes, services and loan payments concurrently and adds
// them up. Any single failure fails the whole summary.
func (s *Summary) Totals(ctx context.Context) (Totals, error) {
	var (
		incomes  []models.Income
		services []models.Service
		payments []models.LoanPayment
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		incomes, err = s.api.Incomes().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		services, err = s.api.Services().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.api.LoanPayments().List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Totals{}, fmt.Errorf("load summary: %w", err)
	}

	return Totals{
		Income:          models.Sum(incomes, func(i models.Income) decimal.Decimal { return i.Amount }),
		ServiceExpenses: models.Sum(services, func(s models.Service) decimal.Decimal { return s.Price }),
		LoanPayments:    models.Sum(payments, func(p models.LoanPayment) decimal.Decimal { return p.Amount }),
	}, nil
}
