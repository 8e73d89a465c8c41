package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Mirrors the PostgreSQL ENUMs:
   payment_status, payment_method, payment_gateway_provider
*/

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPartial   = "partial"
	PaymentStatusCompleted = "completed"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodUPI          = "upi"
	PaymentMethodOnline       = "online"
)

const (
	GatewayProviderMidtrans = "midtrans"
	GatewayProviderStripe   = "stripe"
	GatewayProviderRazorpay = "razorpay"
	GatewayProviderOther    = "other"
)

/* ===================== Model ===================== */

type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentStudentID      uuid.UUID  `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentFeeStructureID *uuid.UUID `gorm:"column:payment_fee_structure_id;type:uuid" json:"payment_fee_structure_id,omitempty"`

	// Amounts (two-decimal money)
	PaymentTotalAmount   float64 `gorm:"column:payment_total_amount;type:numeric(12,2);not null;check:payment_total_amount >= 0" json:"payment_total_amount"`
	PaymentDepositAmount float64 `gorm:"column:payment_deposit_amount;type:numeric(12,2);not null;default:0" json:"payment_deposit_amount"`

	// Discount bookkeeping (original amount is kept so removal restores it exactly)
	PaymentOriginalAmount *float64 `gorm:"column:payment_original_amount;type:numeric(12,2)" json:"payment_original_amount,omitempty"`
	PaymentDiscountCode   *string  `gorm:"column:payment_discount_code" json:"payment_discount_code,omitempty"`
	PaymentDiscountAmount *float64 `gorm:"column:payment_discount_amount;type:numeric(12,2)" json:"payment_discount_amount,omitempty"`

	// Status & method
	PaymentStatus string `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentMethod string `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`

	PaymentInstallmentMonths int        `gorm:"column:payment_installment_months;not null;default:0" json:"payment_installment_months"`
	PaymentDueDate           *time.Time `gorm:"column:payment_due_date;type:date" json:"payment_due_date,omitempty"`

	// Gateway info (only for method=online)
	PaymentGatewayProvider *string    `gorm:"column:payment_gateway_provider;type:varchar(20)" json:"payment_gateway_provider,omitempty"`
	PaymentOrderID         *string    `gorm:"column:payment_order_id;uniqueIndex" json:"payment_order_id,omitempty"` // order_id at the PSP
	PaymentSnapToken       *string    `gorm:"column:payment_snap_token" json:"payment_snap_token,omitempty"`
	PaymentCheckoutURL     *string    `gorm:"column:payment_checkout_url" json:"payment_checkout_url,omitempty"`
	PaymentTransactionID   *string    `gorm:"column:payment_transaction_id" json:"payment_transaction_id,omitempty"`
	PaymentPaidAt          *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	// Notes & metadata
	PaymentNotes *string           `gorm:"column:payment_notes;type:text" json:"payment_notes,omitempty"`
	PaymentMeta  datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	// Base timestamps
	CreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (Payment) TableName() string { return "payments" }

/* ===================== Helpers ===================== */

func (p *Payment) IsOnline() bool {
	return p.PaymentMethod == PaymentMethodOnline
}

func (p *Payment) IsCompleted() bool {
	return p.PaymentStatus == PaymentStatusCompleted
}

// GatewayChargeAmount is the balance the hosted checkout collects:
// whatever the deposit did not cover.
func (p *Payment) GatewayChargeAmount() float64 {
	return p.PaymentTotalAmount - p.PaymentDepositAmount
}
