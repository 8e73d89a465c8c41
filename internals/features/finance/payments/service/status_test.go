package service

import (
	"errors"
	"testing"

	model "academyku_backend/internals/features/finance/payments/model"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		deposit float64
		method  string
		want    string
	}{
		{"no deposit", 1000, 0, model.PaymentMethodCash, model.PaymentStatusPending},
		{"partial deposit", 1000, 400, model.PaymentMethodCash, model.PaymentStatusPartial},
		{"full deposit", 1000, 1000, model.PaymentMethodCard, model.PaymentStatusCompleted},
		{"over deposit", 1000, 1200, model.PaymentMethodUPI, model.PaymentStatusCompleted},
		{"online overrides full deposit", 1000, 1000, model.PaymentMethodOnline, model.PaymentStatusPending},
		{"online overrides partial deposit", 1000, 400, model.PaymentMethodOnline, model.PaymentStatusPending},
		{"bank transfer partial", 2500, 0.01, model.PaymentMethodBankTransfer, model.PaymentStatusPartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.total, tt.deposit, tt.method)
			if got != tt.want {
				t.Errorf("DeriveStatus(%v, %v, %q) = %q, want %q",
					tt.total, tt.deposit, tt.method, got, tt.want)
			}
		})
	}
}

func TestNeedsGatewayCheckout(t *testing.T) {
	online := func(total, deposit float64) *model.Payment {
		return &model.Payment{
			PaymentTotalAmount:   total,
			PaymentDepositAmount: deposit,
			PaymentMethod:        model.PaymentMethodOnline,
		}
	}

	t.Run("remaining balance goes to gateway", func(t *testing.T) {
		need, err := NeedsGatewayCheckout(online(1000, 400))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !need {
			t.Error("need = false, want true")
		}
	})

	t.Run("zero remaining rejects with canonical error", func(t *testing.T) {
		need, err := NeedsGatewayCheckout(online(1000, 1000))
		if need {
			t.Error("need = true, want false")
		}
		if !errors.Is(err, ErrZeroChargeAmount) {
			t.Fatalf("err = %v, want ErrZeroChargeAmount", err)
		}
		// the dashboard's complete-directly fallback matches this string
		if err.Error() != "amount must be greater than 0" {
			t.Errorf("error text = %q", err.Error())
		}
	})

	t.Run("manual methods never need the gateway", func(t *testing.T) {
		p := &model.Payment{
			PaymentTotalAmount: 1000,
			PaymentMethod:      model.PaymentMethodCash,
		}
		need, err := NeedsGatewayCheckout(p)
		if need || err != nil {
			t.Errorf("got (%v, %v), want (false, nil)", need, err)
		}
	})
}
