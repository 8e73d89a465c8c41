package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	helper "academyku_backend/internals/helpers"
)

/* =========================================================
   WhatsApp sender

   Thin client over the external WhatsApp business API. The API is a
   black box: one POST per message, bearer token auth. When the URL is
   not configured the sender degrades to a logged no-op so the rest of
   the flow (reminder counters, toasts) still works in dev.
========================================================= */

type Sender struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewSender(baseURL, token string) *Sender {
	return &Sender{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Sender) Enabled() bool {
	return s != nil && s.BaseURL != ""
}

type outboundMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// Send posts one text message. Errors are returned, not retried; callers
// treat delivery as fire-and-forget and only log failures.
func (s *Sender) Send(ctx context.Context, phone, body string) error {
	if !s.Enabled() {
		log.Printf("[WA] sender disabled, would send to %s: %s", phone, body)
		return nil
	}

	payload, err := json.Marshal(outboundMessage{To: phone, Body: body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp api returned %d", resp.StatusCode)
	}
	return nil
}

/* ========== Message templates ========== */

// PaymentReminderMessage is the EMI due reminder.
func PaymentReminderMessage(studentName string, amount float64, dueDate time.Time, installmentNumber int) string {
	return fmt.Sprintf(
		"Dear %s, this is a reminder that installment #%d of %s is due on %s. Please complete the payment to keep your enrollment active.",
		studentName, installmentNumber, helper.FormatAmount(amount), dueDate.Format("02 Jan 2006"),
	)
}

// PaymentReceivedMessage confirms a received payment.
func PaymentReceivedMessage(studentName string, amount float64) string {
	return fmt.Sprintf(
		"Dear %s, we have received your payment of %s. Thank you!",
		studentName, helper.FormatAmount(amount),
	)
}
