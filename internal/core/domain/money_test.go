package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Money
		wantErr error
	}{
		{name: "whole amount", input: "10", want: 1000},
		{name: "one decimal", input: "10.5", want: 1050},
		{name: "two decimals", input: "10.55", want: 1055},
		{name: "trailing zero beyond scale", input: "10.500", want: 1050},
		{name: "one cent", input: "0.01", want: 1},
		{name: "negative amount parses", input: "-5.25", want: -525},
		{name: "three significant decimals", input: "10.005", wantErr: apperrors.ErrInvalidAmount},
		{name: "sub cent", input: "0.001", wantErr: apperrors.ErrInvalidAmount},
		{name: "out of range", input: "1000000000000000", wantErr: apperrors.ErrValidation},
		{name: "not a number", input: "ten", wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewMoneyFromString(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMoneyFromString_InvalidAmountIsBusinessRule(t *testing.T) {
	_, err := domain.NewMoneyFromString("10.005")
	assert.ErrorIs(t, err, apperrors.ErrBusinessRule)
}

func TestMoney_JSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Balance domain.Money `json:"balance"`
	}{Balance: 1050})
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance": 10.50}`, string(out))
	assert.Contains(t, string(out), "10.50")

	var in struct {
		Amount domain.Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.34}`), &in))
	assert.Equal(t, domain.Money(1234), in.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "7.1"}`), &in))
	assert.Equal(t, domain.Money(710), in.Amount)

	err = json.Unmarshal([]byte(`{"amount": 10.005}`), &in)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "0.00", domain.Money(0).String())
	assert.Equal(t, "-5.25", domain.Money(-525).String())
	assert.Equal(t, "1234567.89", domain.Money(123456789).String())
}

func TestReconcileReport_Healthy(t *testing.T) {
	assert.True(t, domain.ReconcileReport{}.Healthy())
	assert.False(t, domain.ReconcileReport{NegativeAccounts: []int64{3}}.Healthy())
	assert.False(t, domain.ReconcileReport{Mismatches: []domain.BalanceMismatch{{AccountID: 1}}}.Healthy())
}
