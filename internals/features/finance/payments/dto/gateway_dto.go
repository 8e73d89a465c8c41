package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
   Hosted checkout ("payment intent") DTOs
========================================================= */

type CreateIntentRequest struct {
	PaymentID uuid.UUID      `json:"payment_id" validate:"required"`
	Customer  *CustomerInput `json:"customer,omitempty"`
}

type CreateEMIIntentRequest struct {
	InstallmentID uuid.UUID      `json:"emi_id" validate:"required"`
	Customer      *CustomerInput `json:"customer,omitempty"`
}

// IntentResponse carries what the dashboard needs to open the hosted
// checkout: the snap token (client-secret analog) and the redirect URL.
type IntentResponse struct {
	OrderID     string  `json:"order_id"`
	Token       string  `json:"client_secret"`
	RedirectURL string  `json:"redirect_url"`
	Amount      float64 `json:"amount"`
}

// ManualUpdateRequest is the dashboard's client-reported reconciliation
// call after the checkout redirect. Exactly one of payment_id / emi_id.
type ManualUpdateRequest struct {
	PaymentID     *uuid.UUID `json:"payment_id,omitempty"`
	InstallmentID *uuid.UUID `json:"emi_id,omitempty"`
	Status        string     `json:"status" validate:"required"`
	TransactionID *string    `json:"transaction_id,omitempty"`
}

/* =========================================================
   Midtrans webhook payload (the fields we act on)
========================================================= */

type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	TransactionTime   string `json:"transaction_time"`
	SettlementTime    string `json:"settlement_time"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}
