package dto

import (
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/finance/payments/model"
	service "academyku_backend/internals/features/finance/payments/service"
)

/* =========================================================
   REQUEST DTOs (field names = model.Payment, JSON = DB columns)
========================================================= */

type CreatePaymentRequest struct {
	PaymentStudentID      uuid.UUID  `json:"payment_student_id" validate:"required"`
	PaymentFeeStructureID *uuid.UUID `json:"payment_fee_structure_id,omitempty"`

	PaymentTotalAmount   float64 `json:"payment_total_amount" validate:"required,gt=0"`
	PaymentDepositAmount float64 `json:"payment_deposit_amount" validate:"gte=0"`

	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card bank_transfer upi online"`

	PaymentInstallmentMonths int        `json:"payment_installment_months" validate:"gte=0,lte=60"`
	PaymentDueDate           *time.Time `json:"payment_due_date,omitempty"`

	PaymentDiscountCode *string `json:"payment_discount_code,omitempty"`

	PaymentNotes *string        `json:"payment_notes,omitempty"`
	PaymentMeta  map[string]any `json:"payment_meta,omitempty"`

	// Customer contact for the hosted checkout (method=online)
	Customer *CustomerInput `json:"customer,omitempty"`
}

type CustomerInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

func (c *CustomerInput) ToService() service.CustomerInput {
	if c == nil {
		return service.CustomerInput{}
	}
	return service.CustomerInput{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func (r *CreatePaymentRequest) ToModel() *model.Payment {
	m := &model.Payment{
		PaymentStudentID:         r.PaymentStudentID,
		PaymentFeeStructureID:    r.PaymentFeeStructureID,
		PaymentTotalAmount:       r.PaymentTotalAmount,
		PaymentDepositAmount:     r.PaymentDepositAmount,
		PaymentMethod:            r.PaymentMethod,
		PaymentInstallmentMonths: r.PaymentInstallmentMonths,
		PaymentDueDate:           r.PaymentDueDate,
		PaymentDiscountCode:      r.PaymentDiscountCode,
		PaymentNotes:             r.PaymentNotes,
	}
	if len(r.PaymentMeta) > 0 {
		m.PaymentMeta = r.PaymentMeta
	}
	return m
}

// PlanPreviewRequest mirrors the dashboard's installment preview: the form
// recomputes the schedule on every amount/months change.
type PlanPreviewRequest struct {
	TotalAmount       float64 `json:"total_amount" validate:"required,gt=0"`
	DepositAmount     float64 `json:"deposit_amount" validate:"gte=0"`
	InstallmentMonths int     `json:"installment_months" validate:"required,gt=0,lte=60"`
}

// UpdatePaymentRequest patches editable fields; nil means "leave as is".
type UpdatePaymentRequest struct {
	PaymentTotalAmount   *float64   `json:"payment_total_amount,omitempty" validate:"omitempty,gt=0"`
	PaymentDepositAmount *float64   `json:"payment_deposit_amount,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod        *string    `json:"payment_method,omitempty" validate:"omitempty,oneof=cash card bank_transfer upi online"`
	PaymentDueDate       *time.Time `json:"payment_due_date,omitempty"`
	PaymentNotes         *string    `json:"payment_notes,omitempty"`
}

func (r *UpdatePaymentRequest) Apply(m *model.Payment) {
	if r.PaymentTotalAmount != nil {
		m.PaymentTotalAmount = *r.PaymentTotalAmount
	}
	if r.PaymentDepositAmount != nil {
		m.PaymentDepositAmount = *r.PaymentDepositAmount
	}
	if r.PaymentMethod != nil {
		m.PaymentMethod = *r.PaymentMethod
	}
	if r.PaymentDueDate != nil {
		m.PaymentDueDate = r.PaymentDueDate
	}
	if r.PaymentNotes != nil {
		m.PaymentNotes = r.PaymentNotes
	}
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string     `json:"payment_status" validate:"required,oneof=pending partial completed"`
	PaymentPaidAt *time.Time `json:"payment_paid_at,omitempty"`
	PaymentNotes  *string    `json:"payment_notes,omitempty"`
}

type ListPaymentsQuery struct {
	PaymentStudentID *uuid.UUID `query:"student_id"`
	PaymentStatus    *string    `query:"status" validate:"omitempty,oneof=pending partial completed"`
	PaymentMethod    *string    `query:"method" validate:"omitempty,oneof=cash card bank_transfer upi online"`
	From             *time.Time `query:"from"`
	To               *time.Time `query:"to"`
	Search           *string    `query:"search"` // order id / transaction id / notes
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type PaymentResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`

	PaymentStudentID      uuid.UUID  `json:"payment_student_id"`
	PaymentFeeStructureID *uuid.UUID `json:"payment_fee_structure_id,omitempty"`

	PaymentTotalAmount   float64 `json:"payment_total_amount"`
	PaymentDepositAmount float64 `json:"payment_deposit_amount"`

	PaymentOriginalAmount *float64 `json:"payment_original_amount,omitempty"`
	PaymentDiscountCode   *string  `json:"payment_discount_code,omitempty"`
	PaymentDiscountAmount *float64 `json:"payment_discount_amount,omitempty"`

	PaymentStatus string `json:"payment_status"`
	PaymentMethod string `json:"payment_method"`

	PaymentInstallmentMonths int        `json:"payment_installment_months"`
	PaymentDueDate           *time.Time `json:"payment_due_date,omitempty"`

	PaymentGatewayProvider *string    `json:"payment_gateway_provider,omitempty"`
	PaymentOrderID         *string    `json:"payment_order_id,omitempty"`
	PaymentSnapToken       *string    `json:"payment_snap_token,omitempty"`
	PaymentCheckoutURL     *string    `json:"payment_checkout_url,omitempty"`
	PaymentTransactionID   *string    `json:"payment_transaction_id,omitempty"`
	PaymentPaidAt          *time.Time `json:"payment_paid_at,omitempty"`

	PaymentNotes *string        `json:"payment_notes,omitempty"`
	PaymentMeta  map[string]any `json:"payment_meta,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
	PaymentUpdatedAt time.Time `json:"payment_updated_at"`

	InstallmentPlan []service.PlanEntry `json:"installment_plan,omitempty"`
}

func FromModel(m *model.Payment) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:                m.PaymentID,
		PaymentStudentID:         m.PaymentStudentID,
		PaymentFeeStructureID:    m.PaymentFeeStructureID,
		PaymentTotalAmount:       m.PaymentTotalAmount,
		PaymentDepositAmount:     m.PaymentDepositAmount,
		PaymentOriginalAmount:    m.PaymentOriginalAmount,
		PaymentDiscountCode:      m.PaymentDiscountCode,
		PaymentDiscountAmount:    m.PaymentDiscountAmount,
		PaymentStatus:            m.PaymentStatus,
		PaymentMethod:            m.PaymentMethod,
		PaymentInstallmentMonths: m.PaymentInstallmentMonths,
		PaymentDueDate:           m.PaymentDueDate,
		PaymentGatewayProvider:   m.PaymentGatewayProvider,
		PaymentOrderID:           m.PaymentOrderID,
		PaymentSnapToken:         m.PaymentSnapToken,
		PaymentCheckoutURL:       m.PaymentCheckoutURL,
		PaymentTransactionID:     m.PaymentTransactionID,
		PaymentPaidAt:            m.PaymentPaidAt,
		PaymentNotes:             m.PaymentNotes,
		PaymentMeta:              m.PaymentMeta,
		PaymentCreatedAt:         m.CreatedAt,
		PaymentUpdatedAt:         m.UpdatedAt,
	}
}

func FromModelWithPlan(m *model.Payment, plan []service.PlanEntry) *PaymentResponse {
	resp := FromModel(m)
	resp.InstallmentPlan = plan
	return resp
}
