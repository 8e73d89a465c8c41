package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
	"time"
)

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		want              Outcome
	}{
		{"settlement", "", OutcomePaid},
		{"capture", "accept", OutcomePaid},
		{"capture", "challenge", OutcomePending},
		{"capture", "deny", OutcomeFailed},
		{"pending", "", OutcomePending},
		{"deny", "", OutcomeFailed},
		{"failure", "", OutcomeFailed},
		{"cancel", "", OutcomeCanceled},
		{"expire", "", OutcomeExpired},
		{"SETTLEMENT", "", OutcomePaid}, // case-insensitive
		{"refund", "", OutcomeUnknown},
		{"", "", OutcomeUnknown},
	}
	for _, tt := range tests {
		got := MapGatewayStatus(tt.transactionStatus, tt.fraudStatus)
		if got != tt.want {
			t.Errorf("MapGatewayStatus(%q, %q) = %q, want %q",
				tt.transactionStatus, tt.fraudStatus, got, tt.want)
		}
	}
}

func TestDecideManualUpdate(t *testing.T) {
	tests := []struct {
		status      string
		wantAction  ManualAction
		wantMessage string
	}{
		{"succeeded", ActionMarkPaid, "Payment confirmed"},
		{"processing", ActionAcknowledge, "Payment is processing"},
		{"requires_payment_method", ActionMarkFailed, "Payment failed, please try another payment method"},
		{"canceled", ActionReject, "Unexpected payment status"},
		{"", ActionReject, "Unexpected payment status"},
		{"SUCCEEDED", ActionMarkPaid, "Payment confirmed"},
		{"  succeeded  ", ActionMarkPaid, "Payment confirmed"},
	}
	for _, tt := range tests {
		got := DecideManualUpdate(tt.status)
		if got.Action != tt.wantAction {
			t.Errorf("DecideManualUpdate(%q).Action = %v, want %v", tt.status, got.Action, tt.wantAction)
		}
		if got.Message != tt.wantMessage {
			t.Errorf("DecideManualUpdate(%q).Message = %q, want %q", tt.status, got.Message, tt.wantMessage)
		}
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	orderID := "PAY-7f3c2a"
	statusCode := "200"
	grossAmount := "800.00"
	serverKey := "SB-Mid-server-testkey"

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	valid := hex.EncodeToString(sum[:])

	if !VerifyWebhookSignature(orderID, statusCode, grossAmount, serverKey, valid) {
		t.Error("valid signature rejected")
	}
	if VerifyWebhookSignature(orderID, statusCode, grossAmount, serverKey, "deadbeef") {
		t.Error("tampered signature accepted")
	}
	if VerifyWebhookSignature(orderID, statusCode, grossAmount, serverKey, "") {
		t.Error("empty signature accepted")
	}
	if VerifyWebhookSignature(orderID, statusCode, "999.00", serverKey, valid) {
		t.Error("signature accepted for altered gross amount")
	}
}

func TestParseGatewayTime(t *testing.T) {
	got := ParseGatewayTime("2026-08-30 14:05:09")
	want := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseGatewayTime = %v, want %v", got, want)
	}
	if !ParseGatewayTime("not-a-time").IsZero() {
		t.Error("expected zero time for garbage input")
	}
}
