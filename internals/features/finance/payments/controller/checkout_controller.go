package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	emidto "academyku_backend/internals/features/finance/emi/dto"
	emimodel "academyku_backend/internals/features/finance/emi/model"
	dto "academyku_backend/internals/features/finance/payments/dto"
	model "academyku_backend/internals/features/finance/payments/model"
	svc "academyku_backend/internals/features/finance/payments/service"
	helper "academyku_backend/internals/helpers"
)

// CheckoutController owns the hosted-checkout surface: opening gateway
// transactions for payments and single installments, and the dashboard's
// client-reported reconciliation call.
type CheckoutController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db, Validator: validator.New()}
}

// POST /gateway/create-payment-intent
//
// Opens a checkout for the payment's remaining balance (total minus
// deposit). A zero remaining balance is rejected with the exact error
// string the dashboard's complete-directly fallback keys on.
func (h *CheckoutController) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Payment
	if err := h.DB.WithContext(c.Context()).First(&m, "payment_id = ?", req.PaymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.IsCompleted() {
		return helper.Error(c, fiber.StatusConflict, "payment is already completed")
	}

	amount := m.GatewayChargeAmount()
	if amount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, svc.ErrZeroChargeAmount.Error())
	}

	if m.PaymentOrderID == nil {
		orderID := fmt.Sprintf("PAY-%s", uuid.NewString())
		m.PaymentOrderID = &orderID
	}
	if m.PaymentGatewayProvider == nil {
		prov := model.GatewayProviderMidtrans
		m.PaymentGatewayProvider = &prov
	}

	token, redirectURL, err := svc.CreateCheckout(*m.PaymentOrderID, amount, checkoutDescription(&m), req.Customer.ToService())
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "gateway error: "+err.Error())
	}

	m.PaymentSnapToken = &token
	m.PaymentCheckoutURL = &redirectURL
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Checkout created", dto.IntentResponse{
		OrderID:     *m.PaymentOrderID,
		Token:       token,
		RedirectURL: redirectURL,
		Amount:      helper.Round2(amount),
	})
}

// POST /gateway/create-emi-payment-intent
//
// Same, scoped to one installment's amount. The row moves to processing
// while the checkout is open so it cannot be hand-collected twice.
func (h *CheckoutController) CreateEMIIntent(c *fiber.Ctx) error {
	var req dto.CreateEMIIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m emimodel.InstallmentModel
	if err := h.DB.WithContext(c.Context()).First(&m, "installment_id = ?", req.InstallmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "installment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.InstallmentStatus == emimodel.InstallmentStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "installment is already paid")
	}
	if m.InstallmentStatus == emimodel.InstallmentStatusCancelled {
		return helper.Error(c, fiber.StatusConflict, "installment is cancelled")
	}
	if m.InstallmentAmount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, svc.ErrZeroChargeAmount.Error())
	}

	if m.InstallmentOrderID == nil {
		orderID := fmt.Sprintf("EMI-%s", uuid.NewString())
		m.InstallmentOrderID = &orderID
	}

	desc := fmt.Sprintf("EMI installment #%d", m.InstallmentNumber)
	token, redirectURL, err := svc.CreateCheckout(*m.InstallmentOrderID, m.InstallmentAmount, desc, req.Customer.ToService())
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "gateway error: "+err.Error())
	}

	m.InstallmentStatus = emimodel.InstallmentStatusProcessing
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Checkout created", dto.IntentResponse{
		OrderID:     *m.InstallmentOrderID,
		Token:       token,
		RedirectURL: redirectURL,
		Amount:      m.InstallmentAmount,
	})
}

// POST /gateway/manual-update
//
// Client-reported reconciliation after the checkout redirect. Kept for
// contract compatibility; the webhook remains authoritative. "succeeded"
// marks paid at most once, repeats return the already-reconciled record.
func (h *CheckoutController) ManualUpdate(c *fiber.Ctx) error {
	var req dto.ManualUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if (req.PaymentID == nil) == (req.InstallmentID == nil) {
		return helper.Error(c, fiber.StatusBadRequest, "exactly one of payment_id or emi_id is required")
	}

	decision := svc.DecideManualUpdate(req.Status)
	if decision.Action == svc.ActionReject {
		return helper.Error(c, fiber.StatusUnprocessableEntity, decision.Message)
	}

	if req.PaymentID != nil {
		return h.manualUpdatePayment(c, *req.PaymentID, decision, req.TransactionID)
	}
	return h.manualUpdateInstallment(c, *req.InstallmentID, decision, req.TransactionID)
}

func (h *CheckoutController) manualUpdatePayment(c *fiber.Ctx, id uuid.UUID, decision svc.ManualDecision, txnID *string) error {
	now := time.Now()
	var m model.Payment

	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "payment_id = ?", id).Error; err != nil {
			return err
		}
		switch decision.Action {
		case svc.ActionMarkPaid:
			if m.IsCompleted() {
				return nil // already reconciled, report the record as is
			}
			return markPaymentPaid(tx, &m, txnID, now)
		case svc.ActionMarkFailed:
			// the attempt is dead: drop the checkout so a fresh one can be opened
			m.PaymentSnapToken = nil
			m.PaymentCheckoutURL = nil
			return tx.Save(&m).Error
		default:
			return nil
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, decision.Message, dto.FromModel(&m))
}

func (h *CheckoutController) manualUpdateInstallment(c *fiber.Ctx, id uuid.UUID, decision svc.ManualDecision, txnID *string) error {
	now := time.Now()
	var m emimodel.InstallmentModel

	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "installment_id = ?", id).Error; err != nil {
			return err
		}
		switch decision.Action {
		case svc.ActionMarkPaid:
			if m.InstallmentStatus == emimodel.InstallmentStatusPaid {
				return nil
			}
			method := model.PaymentMethodOnline
			m.InstallmentStatus = emimodel.InstallmentStatusPaid
			m.InstallmentPaidDate = &now
			m.InstallmentPaymentMethod = &method
			m.InstallmentTransactionID = txnID
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
			_, err := svc.SettlePaymentIfClear(tx, m.InstallmentPaymentID, now)
			return err
		case svc.ActionMarkFailed:
			if m.InstallmentStatus == emimodel.InstallmentStatusProcessing {
				m.InstallmentStatus = emimodel.InstallmentStatusPending
				return tx.Save(&m).Error
			}
			return nil
		default:
			return nil
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "installment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, decision.Message, emidto.FromModel(&m, now))
}

// markPaymentPaid completes a payment whose gateway charge covered the
// whole remaining balance: all open installments close with it.
func markPaymentPaid(tx *gorm.DB, m *model.Payment, txnID *string, now time.Time) error {
	method := model.PaymentMethodOnline
	if err := tx.Model(&emimodel.InstallmentModel{}).
		Where("installment_payment_id = ? AND installment_status IN ?",
			m.PaymentID,
			[]string{
				emimodel.InstallmentStatusPending,
				emimodel.InstallmentStatusOverdue,
				emimodel.InstallmentStatusProcessing,
			}).
		Updates(map[string]any{
			"installment_status":         emimodel.InstallmentStatusPaid,
			"installment_paid_date":      now,
			"installment_payment_method": method,
		}).Error; err != nil {
		return err
	}

	m.PaymentStatus = model.PaymentStatusCompleted
	m.PaymentPaidAt = &now
	if txnID != nil {
		m.PaymentTransactionID = txnID
	}
	return tx.Save(m).Error
}
