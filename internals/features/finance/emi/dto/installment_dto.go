package dto

import (
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/finance/emi/model"
)

/* ========== Requests ========== */

// UpdateInstallmentRequest patches editable fields on one EMI row.
type UpdateInstallmentRequest struct {
	InstallmentAmount  *float64   `json:"installment_amount,omitempty" validate:"omitempty,gt=0"`
	InstallmentDueDate *time.Time `json:"installment_due_date,omitempty"`
	InstallmentStatus  *string    `json:"installment_status,omitempty" validate:"omitempty,oneof=pending paid overdue processing cancelled"`
}

func (r *UpdateInstallmentRequest) Apply(m *model.InstallmentModel) {
	if r.InstallmentAmount != nil {
		m.InstallmentAmount = *r.InstallmentAmount
	}
	if r.InstallmentDueDate != nil {
		m.InstallmentDueDate = *r.InstallmentDueDate
	}
	if r.InstallmentStatus != nil {
		m.InstallmentStatus = *r.InstallmentStatus
	}
}

// PayInstallmentRequest marks one installment paid (manual methods; the
// online path goes through the gateway checkout instead).
type PayInstallmentRequest struct {
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=cash card bank_transfer upi online"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	TransactionID *string    `json:"transaction_id,omitempty"`
}

/* ========== Responses ========== */

type InstallmentResponse struct {
	InstallmentID            uuid.UUID  `json:"installment_id"`
	InstallmentPaymentID     uuid.UUID  `json:"installment_payment_id"`
	InstallmentStudentID     uuid.UUID  `json:"installment_student_id"`
	InstallmentNumber        int        `json:"installment_number"`
	InstallmentAmount        float64    `json:"installment_amount"`
	InstallmentDueDate       time.Time  `json:"installment_due_date"`
	InstallmentStatus        string     `json:"installment_status"`
	InstallmentPaidDate      *time.Time `json:"installment_paid_date,omitempty"`
	InstallmentPaymentMethod *string    `json:"installment_payment_method,omitempty"`
	InstallmentTransactionID *string    `json:"installment_transaction_id,omitempty"`
	InstallmentReminderCount int        `json:"installment_reminder_count"`
}

func FromModel(m *model.InstallmentModel, now time.Time) InstallmentResponse {
	return InstallmentResponse{
		InstallmentID:            m.InstallmentID,
		InstallmentPaymentID:     m.InstallmentPaymentID,
		InstallmentStudentID:     m.InstallmentStudentID,
		InstallmentNumber:        m.InstallmentNumber,
		InstallmentAmount:        m.InstallmentAmount,
		InstallmentDueDate:       m.InstallmentDueDate,
		InstallmentStatus:        m.EffectiveStatus(now),
		InstallmentPaidDate:      m.InstallmentPaidDate,
		InstallmentPaymentMethod: m.InstallmentPaymentMethod,
		InstallmentTransactionID: m.InstallmentTransactionID,
		InstallmentReminderCount: m.InstallmentReminderCount,
	}
}

// StudentInstallmentGroup is the per-student block the EMI screen renders.
type StudentInstallmentGroup struct {
	StudentID    uuid.UUID             `json:"student_id"`
	StudentName  string                `json:"student_name"`
	StudentPhone string                `json:"student_phone"`
	TotalAmount  float64               `json:"total_amount"`
	PaidAmount   float64               `json:"paid_amount"`
	OpenCount    int                   `json:"open_count"`
	Installments []InstallmentResponse `json:"installments"`
}
