package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called at bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Customer input for the hosted checkout
========================================================= */

type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

/* =========================================================
   Create checkout (Snap token + redirect URL)
========================================================= */

// CreateCheckout opens a hosted-checkout transaction for the given order.
// The returned token is the "client secret" the dashboard appends to its
// redirect URL; the redirect URL is the hosted checkout page.
func CreateCheckout(orderID string, amount float64, description string, cust CustomerInput) (string, string, error) {
	if amount <= 0 {
		return "", "", ErrZeroChargeAmount
	}
	if orderID == "" {
		return "", "", errMissingOrderID
	}

	// Midtrans takes whole currency units only, so the two-decimal
	// balance is rounded half-up to the nearest unit before charging.
	// Reconciliation keys on order_id, never on the gross amount.
	gross := int64(math.Round(amount))

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			LName: cust.LastName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
	}

	if description != "" {
		req.CreditCard = &snap.CreditCardDetails{Secure: true}
		req.CustomField1 = truncate(description, 40)
	}

	req.Items = &[]midtrans.ItemDetails{
		{
			ID:       orderID,
			Price:    gross,
			Qty:      1,
			Name:     firstNonEmpty(description, "Academy fee"),
			Category: "Fees",
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifyWebhookSignature checks the Midtrans notification signature:
// SHA512(order_id + status_code + gross_amount + serverKey).
func VerifyWebhookSignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	if signature == "" {
		return false
	}
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == signature
}

/* =========================================================
   Utils
========================================================= */

var errMissingOrderID = errors.New("order id is required for the gateway checkout")

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
