package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	discountModel "academyku_backend/internals/features/finance/discounts/model"
	discountService "academyku_backend/internals/features/finance/discounts/service"
	emimodel "academyku_backend/internals/features/finance/emi/model"
	dto "academyku_backend/internals/features/finance/payments/dto"
	model "academyku_backend/internals/features/finance/payments/model"
	svc "academyku_backend/internals/features/finance/payments/service"
	helper "academyku_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validator: validator.New()}
}

/* =======================================================================
   Handlers
======================================================================= */

// POST /payments/plan-preview
//
// The installment preview the form shows while the admin edits amounts.
// Purely computed; nothing is stored.
func (h *PaymentController) PlanPreview(c *fiber.Ctx) error {
	var req dto.PlanPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	plan := svc.ComputePlan(req.TotalAmount, req.DepositAmount, req.InstallmentMonths, time.Now())
	return c.JSON(fiber.Map{"installment_plan": plan, "count": len(plan)})
}

// POST /payments
//
// Creates the payment and its installment rows in one transaction, so a
// half-created schedule can never be observed. Online payments get a
// hosted checkout unless the deposit already covers the total, in which
// case the payment completes directly (zero-remaining fallback).
func (h *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.PaymentDepositAmount > req.PaymentTotalAmount {
		return helper.Error(c, fiber.StatusBadRequest, "deposit cannot exceed the total amount")
	}

	m := req.ToModel()
	now := time.Now()

	// discount: validate + rewrite total, keeping the original for removal
	if m.PaymentDiscountCode != nil && strings.TrimSpace(*m.PaymentDiscountCode) != "" {
		code := strings.ToUpper(strings.TrimSpace(*m.PaymentDiscountCode))
		var d discountModel.DiscountModel
		if err := h.DB.WithContext(c.Context()).First(&d, "discount_code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusBadRequest, "discount code not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if err := discountService.Check(&d, nil, m.PaymentFeeStructureID, now); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		discountAmount, finalAmount, err := discountService.Apply(m.PaymentTotalAmount, d.DiscountType, d.DiscountValue)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		original := m.PaymentTotalAmount
		m.PaymentOriginalAmount = &original
		m.PaymentDiscountCode = &code
		m.PaymentDiscountAmount = &discountAmount
		m.PaymentTotalAmount = finalAmount
	}

	m.PaymentStatus = svc.DeriveStatus(m.PaymentTotalAmount, m.PaymentDepositAmount, m.PaymentMethod)

	needsGateway := false
	if m.IsOnline() {
		prov := model.GatewayProviderMidtrans
		m.PaymentGatewayProvider = &prov
		orderID := fmt.Sprintf("PAY-%s", uuid.NewString())
		m.PaymentOrderID = &orderID

		var err error
		needsGateway, err = svc.NeedsGatewayCheckout(m)
		if errors.Is(err, svc.ErrZeroChargeAmount) {
			// deposit covers everything: complete directly, skip the gateway
			m.PaymentStatus = model.PaymentStatusCompleted
			m.PaymentPaidAt = &now
		} else if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	plan := svc.ComputePlan(m.PaymentTotalAmount, m.PaymentDepositAmount, m.PaymentInstallmentMonths, now)

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if m.PaymentDiscountCode != nil {
			if err := tx.Model(&discountModel.DiscountModel{}).
				Where("discount_code = ?", *m.PaymentDiscountCode).
				Update("discount_used_count", gorm.Expr("discount_used_count + 1")).Error; err != nil {
				return err
			}
		}
		if len(plan) > 0 {
			rows := svc.PlanToInstallments(plan, m.PaymentID, m.PaymentStudentID)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create payment failed: "+err.Error())
	}

	// hosted checkout for the remaining balance
	if needsGateway {
		token, redirectURL, err := svc.CreateCheckout(
			*m.PaymentOrderID, m.GatewayChargeAmount(), checkoutDescription(m), req.Customer.ToService(),
		)
		if err != nil {
			return helper.Error(c, fiber.StatusBadGateway, "gateway error: "+err.Error())
		}
		m.PaymentSnapToken = &token
		m.PaymentCheckoutURL = &redirectURL
		if err := h.DB.WithContext(c.Context()).Save(m).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "update payment after checkout failed: "+err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModelWithPlan(m, plan))
}

// GET /payments
func (h *PaymentController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var query dto.ListPaymentsQuery
	if err := c.QueryParser(&query); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid query: "+err.Error())
	}
	if err := h.Validator.Struct(&query); err != nil {
		return helper.ValidationError(c, err)
	}

	q := h.DB.WithContext(c.Context()).Model(&model.Payment{})
	if query.PaymentStudentID != nil {
		q = q.Where("payment_student_id = ?", *query.PaymentStudentID)
	}
	if query.PaymentStatus != nil {
		q = q.Where("payment_status = ?", *query.PaymentStatus)
	}
	if query.PaymentMethod != nil {
		q = q.Where("payment_method = ?", *query.PaymentMethod)
	}
	if query.From != nil {
		q = q.Where("payment_created_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("payment_created_at <= ?", *query.To)
	}
	if query.Search != nil && strings.TrimSpace(*query.Search) != "" {
		like := "%" + strings.TrimSpace(*query.Search) + "%"
		q = q.Where("payment_order_id ILIKE ? OR payment_transaction_id ILIKE ? OR payment_notes ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Payment
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i]))
	}
	return c.JSON(fiber.Map{
		"payments":   out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

// GET /payments/:id
func (h *PaymentController) GetPaymentByID(c *fiber.Ctx) error {
	m, err := h.loadPayment(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModel(m))
}

// PUT /payments/:id
func (h *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	m, err := h.loadPayment(c)
	if err != nil {
		return err
	}
	if m.IsCompleted() {
		return helper.Error(c, fiber.StatusConflict, "completed payments cannot be edited")
	}

	var patch dto.UpdatePaymentRequest
	if err := c.BodyParser(&patch); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&patch); err != nil {
		return helper.ValidationError(c, err)
	}
	patch.Apply(m)
	m.PaymentStatus = svc.DeriveStatus(m.PaymentTotalAmount, m.PaymentDepositAmount, m.PaymentMethod)

	if err := h.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return c.JSON(dto.FromModel(m))
}

// PATCH /payments/:id/status
//
// Manual status override (admin). The dashboard also calls this as the
// zero-remaining fallback after an online payment needs no charge.
func (h *PaymentController) UpdatePaymentStatus(c *fiber.Ctx) error {
	m, err := h.loadPayment(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m.PaymentStatus = req.PaymentStatus
	if req.PaymentStatus == model.PaymentStatusCompleted {
		paidAt := time.Now()
		if req.PaymentPaidAt != nil {
			paidAt = *req.PaymentPaidAt
		}
		m.PaymentPaidAt = &paidAt
	}
	if req.PaymentNotes != nil {
		m.PaymentNotes = req.PaymentNotes
	}

	if err := h.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return c.JSON(dto.FromModel(m))
}

// DELETE /payments/:id
//
// Soft-deletes the payment AND its installments, so no EMI rows are
// orphaned by an administrative delete.
func (h *PaymentController) DeletePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&emimodel.InstallmentModel{}, "installment_payment_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Payment{}, "payment_id = ?", id).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "delete failed: "+err.Error())
	}
	return helper.Success(c, "Payment deleted", nil)
}

/* =======================================================================
   Discount on an existing payment

   The form session semantics, server-side: applying is blocked while a
   discount is active; removing restores the recorded original amount
   exactly and replans the schedule identically.
======================================================================= */

// POST /payments/:id/discount {code}
func (h *PaymentController) ApplyDiscount(c *fiber.Ctx) error {
	m, err := h.loadPayment(c)
	if err != nil {
		return err
	}
	if m.PaymentDiscountCode != nil {
		return helper.Error(c, fiber.StatusConflict, "a discount is already applied; remove it first")
	}
	if m.IsCompleted() {
		return helper.Error(c, fiber.StatusConflict, "completed payments cannot be discounted")
	}

	var body struct {
		Code string `json:"code" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	code := strings.ToUpper(strings.TrimSpace(body.Code))

	var d discountModel.DiscountModel
	if err := h.DB.WithContext(c.Context()).First(&d, "discount_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "discount code not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	now := time.Now()
	if err := discountService.Check(&d, nil, m.PaymentFeeStructureID, now); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	discountAmount, finalAmount, err := discountService.Apply(m.PaymentTotalAmount, d.DiscountType, d.DiscountValue)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	original := m.PaymentTotalAmount
	m.PaymentOriginalAmount = &original
	m.PaymentDiscountCode = &code
	m.PaymentDiscountAmount = &discountAmount
	m.PaymentTotalAmount = finalAmount
	m.PaymentStatus = svc.DeriveStatus(m.PaymentTotalAmount, m.PaymentDepositAmount, m.PaymentMethod)

	// same usage bookkeeping as the create path
	plan, err := h.saveAndReplan(c, m, now, func(tx *gorm.DB) error {
		return tx.Model(&discountModel.DiscountModel{}).
			Where("discount_id = ?", d.DiscountID).
			Update("discount_used_count", gorm.Expr("discount_used_count + 1")).Error
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModelWithPlan(m, plan))
}

// DELETE /payments/:id/discount
func (h *PaymentController) RemoveDiscount(c *fiber.Ctx) error {
	m, err := h.loadPayment(c)
	if err != nil {
		return err
	}
	if m.PaymentDiscountCode == nil || m.PaymentOriginalAmount == nil {
		return helper.Error(c, fiber.StatusConflict, "no discount applied")
	}

	m.PaymentTotalAmount = *m.PaymentOriginalAmount
	m.PaymentOriginalAmount = nil
	m.PaymentDiscountCode = nil
	m.PaymentDiscountAmount = nil
	m.PaymentStatus = svc.DeriveStatus(m.PaymentTotalAmount, m.PaymentDepositAmount, m.PaymentMethod)

	plan, err := h.saveAndReplan(c, m, time.Now(), nil)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModelWithPlan(m, plan))
}

/* =======================================================================
   Helpers
======================================================================= */

// loadPayment resolves the :id payment. Failures come back as
// *fiber.Error so the caller returns them as-is and the app error
// handler renders the response exactly once.
func (h *PaymentController) loadPayment(c *fiber.Ctx) (*model.Payment, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var m model.Payment
	if err := h.DB.WithContext(c.Context()).First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "payment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

// saveAndReplan persists the payment and rebuilds its open schedule.
// Blocked once any installment is already paid: the ledger cannot be
// rewritten under collected money. extra, when non-nil, runs inside the
// same transaction. Failures come back as *fiber.Error, same contract
// as loadPayment.
func (h *PaymentController) saveAndReplan(c *fiber.Ctx, m *model.Payment, now time.Time, extra func(tx *gorm.DB) error) ([]svc.PlanEntry, error) {
	plan := svc.ComputePlan(m.PaymentTotalAmount, m.PaymentDepositAmount, m.PaymentInstallmentMonths, now)

	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var paid int64
		if err := tx.Model(&emimodel.InstallmentModel{}).
			Where("installment_payment_id = ? AND installment_status = ?", m.PaymentID, emimodel.InstallmentStatusPaid).
			Count(&paid).Error; err != nil {
			return err
		}
		if paid > 0 {
			return errScheduleLocked
		}
		if err := tx.Delete(&emimodel.InstallmentModel{}, "installment_payment_id = ?", m.PaymentID).Error; err != nil {
			return err
		}
		if len(plan) > 0 {
			rows := svc.PlanToInstallments(plan, m.PaymentID, m.PaymentStudentID)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if extra != nil {
			return extra(tx)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errScheduleLocked) {
			return nil, fiber.NewError(fiber.StatusConflict, "installments already collected; schedule cannot be rewritten")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return plan, nil
}

func checkoutDescription(m *model.Payment) string {
	if m.PaymentNotes != nil && *m.PaymentNotes != "" {
		return *m.PaymentNotes
	}
	return "Academy fee payment"
}

var errScheduleLocked = errors.New("schedule locked")
