package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academyku_backend/internals/configs"
	emimodel "academyku_backend/internals/features/finance/emi/model"
	dto "academyku_backend/internals/features/finance/payments/dto"
	model "academyku_backend/internals/features/finance/payments/model"
	svc "academyku_backend/internals/features/finance/payments/service"
	helper "academyku_backend/internals/helpers"
)

// WebhookController receives gateway notifications. This is the
// authoritative reconciliation path: whatever the dashboard reported,
// the record ends up matching what the gateway says here.
type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

// POST /gateway/webhook
//
// Flow: verify signature, log the event idempotently, map the provider
// status, update the charged record, settle the parent payment. The
// gateway retries anything that is not a 200, so handled-but-ignored
// notifications still answer 200.
func (h *WebhookController) HandleMidtrans(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if notif.OrderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "order_id is required")
	}

	if !svc.VerifyWebhookSignature(
		notif.OrderID, notif.StatusCode, notif.GrossAmount,
		configs.MidtransServerKey, notif.SignatureKey,
	) {
		log.Printf("[WARN] webhook signature mismatch order_id=%s", notif.OrderID)
		return helper.Error(c, fiber.StatusUnauthorized, "invalid signature")
	}

	// idempotent event log: the same notification lands at most once
	event := h.buildEvent(c, &notif)
	res := h.DB.WithContext(c.Context()).Clauses(clause.OnConflict{DoNothing: true}).Create(event)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Success(c, "Notification already processed", nil)
	}

	outcome := svc.MapGatewayStatus(notif.TransactionStatus, notif.FraudStatus)

	var handleErr error
	if strings.HasPrefix(notif.OrderID, "EMI-") {
		handleErr = h.applyToInstallment(c, event, &notif, outcome)
	} else {
		handleErr = h.applyToPayment(c, event, &notif, outcome)
	}
	if handleErr != nil {
		h.finishEvent(c, event, model.GatewayEventStatusFailed, handleErr)
		if errors.Is(handleErr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "no record matches order_id")
		}
		return helper.Error(c, fiber.StatusInternalServerError, handleErr.Error())
	}

	status := model.GatewayEventStatusProcessed
	if outcome == svc.OutcomeUnknown {
		status = model.GatewayEventStatusIgnored
	}
	h.finishEvent(c, event, status, nil)

	return helper.Success(c, "OK", fiber.Map{
		"order_id": notif.OrderID,
		"outcome":  outcome,
	})
}

func (h *WebhookController) applyToPayment(c *fiber.Ctx, event *model.PaymentGatewayEvent, notif *dto.MidtransNotification, outcome svc.Outcome) error {
	now := time.Now()
	return h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var m model.Payment
		if err := tx.First(&m, "payment_order_id = ?", notif.OrderID).Error; err != nil {
			return err
		}
		event.GatewayEventPaymentID = &m.PaymentID

		switch outcome {
		case svc.OutcomePaid:
			if m.IsCompleted() {
				return nil // re-delivery after settlement
			}
			txnID := notif.TransactionID
			return markPaymentPaid(tx, &m, &txnID, gatewayPaidAt(notif, now))

		case svc.OutcomeFailed, svc.OutcomeCanceled, svc.OutcomeExpired:
			// the checkout is dead, drop it so a new one can be opened
			m.PaymentSnapToken = nil
			m.PaymentCheckoutURL = nil
			return tx.Save(&m).Error

		default:
			return nil
		}
	})
}

func (h *WebhookController) applyToInstallment(c *fiber.Ctx, event *model.PaymentGatewayEvent, notif *dto.MidtransNotification, outcome svc.Outcome) error {
	now := time.Now()
	return h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var m emimodel.InstallmentModel
		if err := tx.First(&m, "installment_order_id = ?", notif.OrderID).Error; err != nil {
			return err
		}
		event.GatewayEventInstallmentID = &m.InstallmentID
		event.GatewayEventPaymentID = &m.InstallmentPaymentID

		switch outcome {
		case svc.OutcomePaid:
			if m.InstallmentStatus == emimodel.InstallmentStatusPaid {
				return nil
			}
			method := model.PaymentMethodOnline
			paidAt := gatewayPaidAt(notif, now)
			m.InstallmentStatus = emimodel.InstallmentStatusPaid
			m.InstallmentPaidDate = &paidAt
			m.InstallmentPaymentMethod = &method
			m.InstallmentTransactionID = &notif.TransactionID
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
			_, err := svc.SettlePaymentIfClear(tx, m.InstallmentPaymentID, now)
			return err

		case svc.OutcomePending:
			if m.InstallmentStatus == emimodel.InstallmentStatusPending ||
				m.InstallmentStatus == emimodel.InstallmentStatusOverdue {
				m.InstallmentStatus = emimodel.InstallmentStatusProcessing
				return tx.Save(&m).Error
			}
			return nil

		case svc.OutcomeFailed, svc.OutcomeCanceled, svc.OutcomeExpired:
			if m.InstallmentStatus == emimodel.InstallmentStatusProcessing {
				m.InstallmentStatus = emimodel.InstallmentStatusPending
				return tx.Save(&m).Error
			}
			return nil

		default:
			return nil
		}
	})
}

/* ===================== Event log helpers ===================== */

func (h *WebhookController) buildEvent(c *fiber.Ctx, notif *dto.MidtransNotification) *model.PaymentGatewayEvent {
	eventType := notif.TransactionStatus
	externalID := notif.OrderID
	headers, _ := json.Marshal(c.GetReqHeaders())
	payload := make([]byte, len(c.Body()))
	copy(payload, c.Body())

	event := &model.PaymentGatewayEvent{
		GatewayEventProvider:   model.GatewayProviderMidtrans,
		GatewayEventType:       &eventType,
		GatewayEventExternalID: &externalID,
		GatewayEventHeaders:    datatypes.JSON(headers),
		GatewayEventPayload:    datatypes.JSON(payload),
		GatewayEventStatus:     model.GatewayEventStatusReceived,
		GatewayEventTryCount:   1,
	}
	if notif.TransactionID != "" {
		ref := notif.TransactionID
		event.GatewayEventExternalRef = &ref
	}
	if notif.SignatureKey != "" {
		sig := notif.SignatureKey
		event.GatewayEventSignature = &sig
	}
	if q := string(c.Request().URI().QueryString()); q != "" {
		event.GatewayEventRawQuery = &q
	}
	return event
}

func (h *WebhookController) finishEvent(c *fiber.Ctx, event *model.PaymentGatewayEvent, status string, cause error) {
	now := time.Now()
	updates := map[string]any{
		"gateway_event_status":         status,
		"gateway_event_processed_at":   now,
		"gateway_event_payment_id":     event.GatewayEventPaymentID,
		"gateway_event_installment_id": event.GatewayEventInstallmentID,
	}
	if cause != nil {
		msg := cause.Error()
		updates["gateway_event_error"] = msg
	}
	if err := h.DB.WithContext(c.Context()).Model(&model.PaymentGatewayEvent{}).
		Where("gateway_event_id = ?", event.GatewayEventID).
		Updates(updates).Error; err != nil {
		log.Printf("[WARN] gateway event update failed id=%s: %v", event.GatewayEventID, err)
	}
}

func gatewayPaidAt(notif *dto.MidtransNotification, fallback time.Time) time.Time {
	if t := svc.ParseGatewayTime(notif.SettlementTime); !t.IsZero() {
		return t
	}
	if t := svc.ParseGatewayTime(notif.TransactionTime); !t.IsZero() {
		return t
	}
	return fallback
}
