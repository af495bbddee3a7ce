package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentInput struct {
	Method     string `json:"method" validate:"required,payment_method"`
	CryptoType string `json:"crypto_type" validate:"required_if=Method crypto,omitempty,crypto_type"`
	Email      string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      paymentInput
		wantFields []string
	}{
		{name: "card", input: paymentInput{Method: "card"}},
		{name: "crypto with symbol", input: paymentInput{Method: "crypto", CryptoType: "ETH"}},
		{name: "missing method", input: paymentInput{}, wantFields: []string{"method"}},
		{name: "unknown method", input: paymentInput{Method: "cash"}, wantFields: []string{"method"}},
		{name: "crypto without symbol", input: paymentInput{Method: "crypto"}, wantFields: []string{"crypto_type"}},
		{name: "unknown symbol", input: paymentInput{Method: "crypto", CryptoType: "DOGE"}, wantFields: []string{"crypto_type"}},
		{name: "bad email", input: paymentInput{Method: "bank", Email: "nope"}, wantFields: []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.NotEmpty(t, verr.Error())
		})
	}
}

func TestPositiveAmount(t *testing.T) {
	assert.NoError(t, PositiveAmount("amount", decimal.RequireFromString("0.01")))
	assert.Error(t, PositiveAmount("amount", decimal.Zero))
	assert.EqualError(t, PositiveAmount("amount", decimal.NewFromInt(-1)), "amount must be greater than 0")
}

func TestMustRegisterPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		mustRegister("", func(validator.FieldLevel) bool { return true })
	})
	assert.Panics(t, func() {
		mustRegister("never_registered", nil)
	})
}

func TestCustomTagMessages(t *testing.T) {
	err := ValidateStruct(paymentInput{Method: "cash"})
	assert.EqualError(t, err, "method must be one of crypto, card, bank")

	err = ValidateStruct(paymentInput{Method: "crypto", CryptoType: "DOGE"})
	assert.EqualError(t, err, "crypto_type must be one of ETH, USDT, USDC, MATIC, BNB")
}
