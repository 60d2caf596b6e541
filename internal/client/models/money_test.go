package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"1000", "$1.000"},
		{"999", "$999"},
		{"1234567", "$1.234.567"},
		{"1234.5", "$1.234,5"},
		{"0.1234", "$0,123"},
		{"-2500", "$-2.500"},
		{"-0.0001", "$0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestParseMoney(t *testing.T) {
	d, err := ParseMoney(" $ 1000 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(1000)))

	d, err = ParseMoney("12.75")
	require.NoError(t, err)
	assert.Equal(t, "12.75", d.String())

	_, err = ParseMoney("")
	require.Error(t, err)
	_, err = ParseMoney("mil")
	require.Error(t, err)
}

func TestSum(t *testing.T) {
	incomes := []Income{
		{IncomePayload: IncomePayload{Amount: decimal.NewFromInt(100)}},
		{IncomePayload: IncomePayload{Amount: decimal.NewFromInt(250)}},
	}
	got := Sum(incomes, func(i Income) decimal.Decimal { return i.Amount })
	assert.True(t, got.Equal(decimal.NewFromInt(350)))

	assert.True(t, Sum([]Income(nil), func(i Income) decimal.Decimal { return i.Amount }).IsZero())
}

func TestDecimal_EncodesAsNumber(t *testing.T) {
	b, err := json.Marshal(AccountPayload{AccountName: "Checking", Card: "12345", Balance: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"account_name":"Checking","card":"12345","balance":1000}`, string(b))
}
