package service

import (
	"strings"
	"time"
)

/* =======================================================================
   Webhook status mapping (authoritative reconciliation)
======================================================================= */

// Outcome of a gateway notification for the referenced charge.
type Outcome string

const (
	OutcomePaid     Outcome = "paid"
	OutcomePending  Outcome = "pending"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
	OutcomeExpired  Outcome = "expired"
	OutcomeUnknown  Outcome = "unknown"
)

// MapGatewayStatus maps a Midtrans transaction_status (+ fraud_status for
// card captures) to an internal outcome.
func MapGatewayStatus(transactionStatus, fraudStatus string) Outcome {
	ts := strings.ToLower(transactionStatus)
	fraud := strings.ToLower(fraudStatus)
	switch ts {
	case "capture":
		// cards: capture + fraud=accept -> paid, challenge stays pending
		if fraud == "accept" {
			return OutcomePaid
		}
		if fraud == "challenge" {
			return OutcomePending
		}
		return OutcomeFailed

	case "settlement":
		return OutcomePaid

	case "pending":
		return OutcomePending

	case "deny", "failure":
		return OutcomeFailed

	case "cancel":
		return OutcomeCanceled

	case "expire":
		return OutcomeExpired
	}
	return OutcomeUnknown
}

/* =======================================================================
   Manual-update decision table (client-reported reconciliation)

   The dashboard reports the payment-intent status it observed after the
   checkout redirect. The server stays the source of truth: "succeeded"
   marks paid at most once, everything else never mutates a paid record.
======================================================================= */

type ManualAction int

const (
	// ActionMarkPaid: mark the charge paid (idempotent).
	ActionMarkPaid ManualAction = iota
	// ActionAcknowledge: gateway still processing, nothing to change.
	ActionAcknowledge
	// ActionMarkFailed: attempt failed, the payer must resubmit.
	ActionMarkFailed
	// ActionReject: unexpected status value.
	ActionReject
)

type ManualDecision struct {
	Action  ManualAction
	Message string // user-facing message mirrored back to the dashboard
}

// DecideManualUpdate implements the reconciliation decision table for the
// statuses the dashboard observes from the gateway's client library.
func DecideManualUpdate(intentStatus string) ManualDecision {
	switch strings.ToLower(strings.TrimSpace(intentStatus)) {
	case "succeeded":
		return ManualDecision{Action: ActionMarkPaid, Message: "Payment confirmed"}
	case "processing":
		return ManualDecision{Action: ActionAcknowledge, Message: "Payment is processing"}
	case "requires_payment_method":
		return ManualDecision{Action: ActionMarkFailed, Message: "Payment failed, please try another payment method"}
	default:
		return ManualDecision{Action: ActionReject, Message: "Unexpected payment status"}
	}
}

// ParseGatewayTime parses Midtrans timestamps ("2006-01-02 15:04:05",
// Asia/Jakarta implied); zero time on failure.
func ParseGatewayTime(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
