package service

import (
	"errors"

	model "academyku_backend/internals/features/finance/payments/model"
)

// ErrZeroChargeAmount is the canonical gateway rejection the dashboard's
// fallback path keys on. The wording must not change.
var ErrZeroChargeAmount = errors.New("amount must be greater than 0")

// DeriveStatus derives the creation-time payment status from the deposit
// against the total. Online payments are always created pending: only the
// gateway callback may complete them.
func DeriveStatus(totalAmount, depositAmount float64, method string) string {
	if method == model.PaymentMethodOnline {
		return model.PaymentStatusPending
	}
	switch {
	case depositAmount >= totalAmount:
		return model.PaymentStatusCompleted
	case depositAmount > 0:
		return model.PaymentStatusPartial
	default:
		return model.PaymentStatusPending
	}
}

// NeedsGatewayCheckout decides whether an online payment goes to the
// hosted checkout. A deposit that already covers the total leaves nothing
// to charge; the caller completes the payment directly instead
// (zero-remaining-balance fallback).
func NeedsGatewayCheckout(p *model.Payment) (bool, error) {
	if !p.IsOnline() {
		return false, nil
	}
	if p.GatewayChargeAmount() <= 0 {
		return false, ErrZeroChargeAmount
	}
	return true, nil
}
