package models

import "github.com/shopspring/decimal"

type AccountPayload struct {
	AccountName string          `json:"account_name"`
	Card        string          `json:"card"`
	Balance     decimal.Decimal `json:"balance"`
}

type Account struct {
	ID int64 `json:"id"`
	AccountPayload
}

type IncomePayload struct {
	IncomeName  string          `json:"income_name"`
	IncomeDate  Date            `json:"income_date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	AccountID   int64           `json:"account_id"`
}

type Income struct {
	ID int64 `json:"id"`
	IncomePayload
}

type ScheduledIncomePayload struct {
	IncomeName     string          `json:"income_name"`
	IncomeDate     Date            `json:"income_date"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	NextIncome     Date            `json:"next_income"`
	Amount         decimal.Decimal `json:"amount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	AccountID      int64           `json:"account_id"`
}

type ScheduledIncome struct {
	ID int64 `json:"id"`
	ScheduledIncomePayload
}

type ServicePayload struct {
	ServiceName    string          `json:"service_name"`
	Description    string          `json:"description"`
	Date           Date            `json:"date"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	RemainingPrice decimal.Decimal `json:"reamining_price"`
	AccountID      int64           `json:"account_id"`
	ExpirationDate Date            `json:"expiration_date"`
}

type Service struct {
	ID int64 `json:"id"`
	ServicePayload
}

type LoanPayload struct {
	LoanName       string              `json:"loan_name"`
	Holder         string              `json:"holder"`
	Price          decimal.Decimal     `json:"price"`
	Description    string              `json:"description,omitempty"`
	Date           Date                `json:"date"`
	Quota          decimal.NullDecimal `json:"quota"`
	TEA            decimal.NullDecimal `json:"tea"`
	RemainingPrice decimal.Decimal     `json:"remaining_price"`
	AccountID      int64               `json:"account_id"`
	ExpirationDate Date                `json:"expiration_date"`
}

type Loan struct {
	ID int64 `json:"id"`
	LoanPayload
}

type LoanPaymentPayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
	LoanID      int64           `json:"loan_id"`
}

type LoanPayment struct {
	ID int64 `json:"id"`
	LoanPaymentPayload
}

type ServicePaymentPayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
	ServiceID   int64           `json:"service_id"`
}

type ServicePayment struct {
	ID int64 `json:"id"`
	ServicePaymentPayload
}
