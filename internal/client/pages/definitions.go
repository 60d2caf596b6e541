package pages

import (
	"github.com/dmitrijs2005/findash/internal/client/client"
	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/client/router"
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func accountsPage(c client.Collection[models.Account, models.AccountPayload]) *crudPage[models.Account, models.AccountPayload] {
	return &crudPage[models.Account, models.AccountPayload]{
		view:     router.ViewAccounts,
		subtitle: "Administra tus cuentas",
		tableID:  "cuentas-table",
		coll:     c,
		id:       func(a models.Account) int64 { return a.ID },
		columns: []column[models.Account]{
			{"Nombre", func(a models.Account) string { return a.AccountName }},
			{"Número", func(a models.Account) string { return a.Card }},
			{"Saldo", func(a models.Account) string { return models.FormatMoney(a.Balance) }},
		},
		fields: []Field{
			{Name: "account_name", Label: "Nombre de la cuenta"},
			{Name: "card", Label: "Número de tarjeta/cuenta"},
			{Name: "balance", Label: "Saldo inicial", Kind: FieldMoney},
		},
		parse: func(r *formReader) models.AccountPayload {
			return models.AccountPayload{
				AccountName: r.text("account_name"),
				Card:        r.text("card"),
				Balance:     r.money("balance"),
			}
		},
		values: func(a models.Account) map[string]string {
			return map[string]string{
				"account_name": a.AccountName,
				"card":         a.Card,
				"balance":      moneyValue(a.Balance),
			}
		},
	}
}

func incomesPage(c client.Collection[models.Income, models.IncomePayload]) *crudPage[models.Income, models.IncomePayload] {
	return &crudPage[models.Income, models.IncomePayload]{
		view:     router.ViewIncomes,
		subtitle: "Registra tus ingresos",
		tableID:  "ingresos-table",
		coll:     c,
		id:       func(i models.Income) int64 { return i.ID },
		columns: []column[models.Income]{
			{"Nombre", func(i models.Income) string { return i.IncomeName }},
			{"Fecha", func(i models.Income) string { return i.IncomeDate.Display() }},
			{"Categoría", func(i models.Income) string { return i.Category }},
			{"Monto", func(i models.Income) string { return models.FormatMoney(i.Amount) }},
			{"Descripción", func(i models.Income) string { return orNA(i.Description) }},
			{"Cuenta", func(i models.Income) string { return idValue(i.AccountID) }},
		},
		fields: []Field{
			{Name: "income_name", Label: "Nombre del ingreso"},
			{Name: "income_date", Label: "Fecha (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "category", Label: "Categoría"},
			{Name: "amount", Label: "Monto", Kind: FieldMoney},
			{Name: "description", Label: "Descripción", Optional: true},
			{Name: "account_id", Label: "ID de cuenta", Kind: FieldID},
		},
		parse: func(r *formReader) models.IncomePayload {
			return models.IncomePayload{
				IncomeName:  r.text("income_name"),
				IncomeDate:  r.date("income_date"),
				Description: r.text("description"),
				Category:    r.text("category"),
				Amount:      r.money("amount"),
				AccountID:   r.id("account_id"),
			}
		},
		values: func(i models.Income) map[string]string {
			return map[string]string{
				"income_name": i.IncomeName,
				"income_date": dateValue(i.IncomeDate),
				"category":    i.Category,
				"amount":      moneyValue(i.Amount),
				"description": i.Description,
				"account_id":  idValue(i.AccountID),
			}
		},
	}
}

func scheduledIncomesPage(c client.Collection[models.ScheduledIncome, models.ScheduledIncomePayload]) *crudPage[models.ScheduledIncome, models.ScheduledIncomePayload] {
	type si = models.ScheduledIncome
	return &crudPage[si, models.ScheduledIncomePayload]{
		view:     router.ViewScheduledIncomes,
		subtitle: "Ingresos recurrentes y pendientes",
		tableID:  "ingresos-programados-table",
		coll:     c,
		id:       func(i si) int64 { return i.ID },
		columns: []column[si]{
			{"Nombre", func(i si) string { return i.IncomeName }},
			{"Fecha", func(i si) string { return i.IncomeDate.Display() }},
			{"Próximo ingreso", func(i si) string { return i.NextIncome.Display() }},
			{"Categoría", func(i si) string { return i.Category }},
			{"Monto", func(i si) string { return models.FormatMoney(i.Amount) }},
			{"Recibido", func(i si) string { return models.FormatMoney(i.ReceivedAmount) }},
			{"Pendiente", func(i si) string { return models.FormatMoney(i.PendingAmount) }},
			{"Cuenta", func(i si) string { return idValue(i.AccountID) }},
		},
		fields: []Field{
			{Name: "income_name", Label: "Nombre del ingreso"},
			{Name: "income_date", Label: "Fecha (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "next_income", Label: "Próximo ingreso (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "category", Label: "Categoría"},
			{Name: "description", Label: "Descripción"},
			{Name: "amount", Label: "Monto", Kind: FieldMoney},
			{Name: "received_amount", Label: "Monto recibido", Kind: FieldMoney},
			{Name: "pending_amount", Label: "Monto pendiente", Kind: FieldMoney},
			{Name: "account_id", Label: "ID de cuenta", Kind: FieldID},
		},
		parse: func(r *formReader) models.ScheduledIncomePayload {
			return models.ScheduledIncomePayload{
				IncomeName:     r.text("income_name"),
				IncomeDate:     r.date("income_date"),
				NextIncome:     r.date("next_income"),
				Category:       r.text("category"),
				Description:    r.text("description"),
				Amount:         r.money("amount"),
				ReceivedAmount: r.money("received_amount"),
				PendingAmount:  r.money("pending_amount"),
				AccountID:      r.id("account_id"),
			}
		},
		values: func(i si) map[string]string {
			return map[string]string{
				"income_name":     i.IncomeName,
				"income_date":     dateValue(i.IncomeDate),
				"next_income":     dateValue(i.NextIncome),
				"category":        i.Category,
				"description":     i.Description,
				"amount":          moneyValue(i.Amount),
				"received_amount": moneyValue(i.ReceivedAmount),
				"pending_amount":  moneyValue(i.PendingAmount),
				"account_id":      idValue(i.AccountID),
			}
		},
	}
}

func servicesPage(c client.Collection[models.Service, models.ServicePayload]) *crudPage[models.Service, models.ServicePayload] {
	type sv = models.Service
	return &crudPage[sv, models.ServicePayload]{
		view:     router.ViewServices,
		subtitle: "Servicios y cuentas por pagar",
		tableID:  "servicios-table",
		coll:     c,
		id:       func(s sv) int64 { return s.ID },
		columns: []column[sv]{
			{"Nombre", func(s sv) string { return s.ServiceName }},
			{"Monto", func(s sv) string { return models.FormatMoney(s.Price) }},
			{"Saldo pendiente", func(s sv) string { return models.FormatMoney(s.RemainingPrice) }},
			{"Categoría", func(s sv) string { return s.Category }},
			{"Cuenta", func(s sv) string { return idValue(s.AccountID) }},
			{"Vencimiento", func(s sv) string { return s.ExpirationDate.Display() }},
		},
		fields: []Field{
			{Name: "service_name", Label: "Nombre del servicio"},
			{Name: "description", Label: "Descripción", Optional: true},
			{Name: "date", Label: "Fecha (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "category", Label: "Categoría"},
			{Name: "price", Label: "Monto", Kind: FieldMoney},
			{Name: "reamining_price", Label: "Saldo pendiente", Kind: FieldMoney},
			{Name: "account_id", Label: "ID de cuenta", Kind: FieldID},
			{Name: "expiration_date", Label: "Vencimiento (YYYY-MM-DD)", Kind: FieldDate},
		},
		parse: func(r *formReader) models.ServicePayload {
			return models.ServicePayload{
				ServiceName:    r.text("service_name"),
				Description:    r.text("description"),
				Date:           r.date("date"),
				Category:       r.text("category"),
				Price:          r.money("price"),
				RemainingPrice: r.money("reamining_price"),
				AccountID:      r.id("account_id"),
				ExpirationDate: r.date("expiration_date"),
			}
		},
		values: func(s sv) map[string]string {
			return map[string]string{
				"service_name":    s.ServiceName,
				"description":     s.Description,
				"date":            dateValue(s.Date),
				"category":        s.Category,
				"price":           moneyValue(s.Price),
				"reamining_price": moneyValue(s.RemainingPrice),
				"account_id":      idValue(s.AccountID),
				"expiration_date": dateValue(s.ExpirationDate),
			}
		},
	}
}

func servicePaymentsPage(c client.Collection[models.ServicePayment, models.ServicePaymentPayload]) *crudPage[models.ServicePayment, models.ServicePaymentPayload] {
	type sp = models.ServicePayment
	return &crudPage[sp, models.ServicePaymentPayload]{
		view:     router.ViewServicePayments,
		subtitle: "Historial de pagos de servicios",
		tableID:  "pagos-servicios-table",
		coll:     c,
		id:       func(p sp) int64 { return p.ID },
		columns: []column[sp]{
			{"Descripción", func(p sp) string { return orNA(p.Description) }},
			{"Monto", func(p sp) string { return models.FormatMoney(p.Amount) }},
			{"Fecha", func(p sp) string { return p.Date.Display() }},
			{"ID Servicio", func(p sp) string { return idValue(p.ServiceID) }},
		},
		fields: []Field{
			{Name: "amount", Label: "Monto del pago", Kind: FieldMoney},
			{Name: "service_id", Label: "ID del servicio", Kind: FieldID},
			{Name: "date", Label: "Fecha de pago (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "description", Label: "Descripción", Optional: true},
		},
		parse: func(r *formReader) models.ServicePaymentPayload {
			return models.ServicePaymentPayload{
				Amount:      r.money("amount"),
				ServiceID:   r.id("service_id"),
				Date:        r.date("date"),
				Description: r.text("description"),
			}
		},
		values: func(p sp) map[string]string {
			return map[string]string{
				"amount":      moneyValue(p.Amount),
				"service_id":  idValue(p.ServiceID),
				"date":        dateValue(p.Date),
				"description": p.Description,
			}
		},
	}
}

func loansPage(c client.Collection[models.Loan, models.LoanPayload]) *crudPage[models.Loan, models.LoanPayload] {
	type ln = models.Loan
	return &crudPage[ln, models.LoanPayload]{
		view:     router.ViewLoans,
		subtitle: "Préstamos y créditos vigentes",
		tableID:  "prestamos-table",
		coll:     c,
		id:       func(l ln) int64 { return l.ID },
		columns: []column[ln]{
			{"Préstamo", func(l ln) string { return l.LoanName }},
			{"Titular", func(l ln) string { return l.Holder }},
			{"Monto Total", func(l ln) string { return models.FormatMoney(l.Price) }},
			{"Saldo Pendiente", func(l ln) string { return models.FormatMoney(l.RemainingPrice) }},
			{"Vencimiento", func(l ln) string { return l.ExpirationDate.Display() }},
		},
		fields: []Field{
			{Name: "loan_name", Label: "Nombre del préstamo"},
			{Name: "holder", Label: "Titular (Ej: Banco)"},
			{Name: "price", Label: "Monto total", Kind: FieldMoney},
			{Name: "remaining_price", Label: "Saldo pendiente", Kind: FieldMoney},
			{Name: "account_id", Label: "ID de cuenta asociada", Kind: FieldID},
			{Name: "date", Label: "Fecha del préstamo (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "expiration_date", Label: "Fecha de vencimiento (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "description", Label: "Descripción", Optional: true},
			{Name: "quota", Label: "Cuota", Kind: FieldMoney, Optional: true},
			{Name: "tea", Label: "TEA (%)", Kind: FieldNumber, Optional: true},
		},
		parse: func(r *formReader) models.LoanPayload {
			return models.LoanPayload{
				LoanName:       r.text("loan_name"),
				Holder:         r.text("holder"),
				Price:          r.money("price"),
				RemainingPrice: r.money("remaining_price"),
				AccountID:      r.id("account_id"),
				Date:           r.date("date"),
				ExpirationDate: r.date("expiration_date"),
				Description:    r.text("description"),
				Quota:          r.optMoney("quota"),
				TEA:            r.optMoney("tea"),
			}
		},
		values: func(l ln) map[string]string {
			return map[string]string{
				"loan_name":       l.LoanName,
				"holder":          l.Holder,
				"price":           moneyValue(l.Price),
				"remaining_price": moneyValue(l.RemainingPrice),
				"account_id":      idValue(l.AccountID),
				"date":            dateValue(l.Date),
				"expiration_date": dateValue(l.ExpirationDate),
				"description":     l.Description,
				"quota":           optMoneyValue(l.Quota),
				"tea":             optMoneyValue(l.TEA),
			}
		},
	}
}

func loanPaymentsPage(c client.Collection[models.LoanPayment, models.LoanPaymentPayload]) *crudPage[models.LoanPayment, models.LoanPaymentPayload] {
	type lp = models.LoanPayment
	return &crudPage[lp, models.LoanPaymentPayload]{
		view:     router.ViewLoanPayments,
		subtitle: "Historial de pagos de préstamos",
		tableID:  "pagos-prestamos-table",
		coll:     c,
		id:       func(p lp) int64 { return p.ID },
		columns: []column[lp]{
			{"Descripción", func(p lp) string { return orNA(p.Description) }},
			{"Monto", func(p lp) string { return models.FormatMoney(p.Amount) }},
			{"Fecha", func(p lp) string { return p.Date.Display() }},
			{"ID Préstamo", func(p lp) string { return idValue(p.LoanID) }},
		},
		fields: []Field{
			{Name: "amount", Label: "Monto del pago", Kind: FieldMoney},
			{Name: "loan_id", Label: "ID del préstamo", Kind: FieldID},
			{Name: "date", Label: "Fecha del pago (YYYY-MM-DD)", Kind: FieldDate},
			{Name: "description", Label: "Descripción", Optional: true},
		},
		parse: func(r *formReader) models.LoanPaymentPayload {
			return models.LoanPaymentPayload{
				Amount:      r.money("amount"),
				LoanID:      r.id("loan_id"),
				Date:        r.date("date"),
				Description: r.text("description"),
			}
		},
		values: func(p lp) map[string]string {
			return map[string]string{
				"amount":      moneyValue(p.Amount),
				"loan_id":     idValue(p.LoanID),
				"date":        dateValue(p.Date),
				"description": p.Description,
			}
		},
	}
}
