package kernel_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func TestNewMoney_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "10.004", want: "10.00"},
		{input: "10.005", want: "10.01"},
		{input: "10.006", want: "10.01"},
		{input: "0", want: "0.00"},
		{input: "1520.3", want: "1520.30"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := kernel.NewMoney(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a, err := kernel.MoneyFromString("100.10")
	require.NoError(t, err)
	b, err := kernel.MoneyFromString("50.255")
	require.NoError(t, err)

	sum := a.Add(b).Add(kernel.ZeroMoney())

	assert.Equal(t, "150.36", sum.String())
	assert.True(t, sum.IsEqual(kernel.MoneyFromFloat(150.36)))
	assert.False(t, sum.IsNegative())
}

func TestMoneyFromString_Invalid(t *testing.T) {
	_, err := kernel.MoneyFromString("ten")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_JSON(t *testing.T) {
	type cost struct {
		Total kernel.Money `json:"total"`
	}

	data, err := json.Marshal(cost{Total: kernel.MoneyFromFloat(1234.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":1234.50}`, string(data))

	var decoded cost
	require.NoError(t, json.Unmarshal([]byte(`{"total":99.999}`), &decoded))
	assert.Equal(t, "100.00", decoded.Total.String())

	require.NoError(t, json.Unmarshal([]byte(`{"total":"12.345"}`), &decoded))
	assert.Equal(t, "12.35", decoded.Total.String())
}
