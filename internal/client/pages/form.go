package pages

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/common"
	"github.com/shopspring/decimal"
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldMoney
	FieldDate
	FieldID
	FieldNumber
)

// Field describes one input of an entry form. Name is the wire name of the
// value, Label the placeholder shown to the user.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Optional bool
}

// FormError lists every problem found in a submitted form.
type FormError struct {
	Problems []string
}

func (e *FormError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *FormError) Unwrap() error {
	return common.ErrorValidation
}

// formReader converts raw form values into typed ones, collecting problems
// instead of stopping at the first.
type formReader struct {
	values   map[string]string
	labels   map[string]Field
	problems []string
}

func newFormReader(fields []Field, values map[string]string) *formReader {
	r := &formReader{values: values, labels: make(map[string]Field, len(fields))}
	for _, f := range fields {
		r.labels[f.Name] = f
		if !f.Optional && strings.TrimSpace(values[f.Name]) == "" {
			r.problems = append(r.problems, "Campo obligatorio: "+f.Label)
		}
	}
	return r
}

func (r *formReader) raw(name string) (string, bool) {
	v := strings.TrimSpace(r.values[name])
	return v, v != ""
}

func (r *formReader) invalid(name string) {
	r.problems = append(r.problems, "Valor inválido: "+r.labels[name].Label)
}

func (r *formReader) text(name string) string {
	v, _ := r.raw(name)
	return v
}

func (r *formReader) money(name string) decimal.Decimal {
	v, ok := r.raw(name)
	if !ok {
		return decimal.Zero
	}
	d, err := models.ParseMoney(v)
	if err != nil {
		r.invalid(name)
	}
	return d
}

func (r *formReader) optMoney(name string) decimal.NullDecimal {
	if _, ok := r.raw(name); !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(r.money(name))
}

func (r *formReader) date(name string) models.Date {
	v, ok := r.raw(name)
	if !ok {
		return models.Date{}
	}
	d, err := models.ParseDate(v)
	if err != nil {
		r.invalid(name)
	}
	return d
}

func (r *formReader) id(name string) int64 {
	v, ok := r.raw(name)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		r.invalid(name)
	}
	return n
}

func (r *formReader) err() error {
	if len(r.problems) == 0 {
		return nil
	}
	return &FormError{Problems: r.problems}
}

// Form value renderings, the inverse of formReader.

func moneyValue(d decimal.Decimal) string { return d.String() }

func optMoneyValue(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func dateValue(d models.Date) string { return d.String() }

func idValue(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
