package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	InstallmentStatusPending    = "pending"
	InstallmentStatusPaid       = "paid"
	InstallmentStatusOverdue    = "overdue"
	InstallmentStatusProcessing = "processing"
	InstallmentStatusCancelled  = "cancelled"
)

/* ===================== Model ===================== */

// InstallmentModel is one EMI row: a scheduled fraction of a payment's
// remaining balance. Rows are created together with the parent payment
// and mutated by pay/remind actions.
type InstallmentModel struct {
	InstallmentID uuid.UUID `gorm:"column:installment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"installment_id"`

	InstallmentPaymentID uuid.UUID `gorm:"column:installment_payment_id;type:uuid;not null;index:idx_installments_payment" json:"installment_payment_id"`
	InstallmentStudentID uuid.UUID `gorm:"column:installment_student_id;type:uuid;not null;index:idx_installments_student" json:"installment_student_id"`

	InstallmentNumber  int       `gorm:"column:installment_number;not null" json:"installment_number"`
	InstallmentAmount  float64   `gorm:"column:installment_amount;type:numeric(12,2);not null;check:installment_amount >= 0" json:"installment_amount"`
	InstallmentDueDate time.Time `gorm:"column:installment_due_date;type:date;not null" json:"installment_due_date"`

	InstallmentStatus        string     `gorm:"column:installment_status;type:varchar(20);not null;default:'pending'" json:"installment_status"`
	InstallmentPaidDate      *time.Time `gorm:"column:installment_paid_date" json:"installment_paid_date,omitempty"`
	InstallmentPaymentMethod *string    `gorm:"column:installment_payment_method;type:varchar(20)" json:"installment_payment_method,omitempty"`
	InstallmentTransactionID *string    `gorm:"column:installment_transaction_id" json:"installment_transaction_id,omitempty"`

	// Gateway checkout for a single installment
	InstallmentOrderID *string `gorm:"column:installment_order_id;uniqueIndex" json:"installment_order_id,omitempty"`

	// Reminder tracking
	InstallmentReminderCount  int        `gorm:"column:installment_reminder_count;not null;default:0" json:"installment_reminder_count"`
	InstallmentLastReminderAt *time.Time `gorm:"column:installment_last_reminder_at" json:"installment_last_reminder_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:installment_created_at;autoCreateTime" json:"installment_created_at"`
	UpdatedAt time.Time      `gorm:"column:installment_updated_at;autoUpdateTime" json:"installment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:installment_deleted_at;index" json:"installment_deleted_at,omitempty"`
}

func (InstallmentModel) TableName() string { return "emi_installments" }

/* ===================== Helpers ===================== */

func (m *InstallmentModel) IsOpen() bool {
	switch m.InstallmentStatus {
	case InstallmentStatusPending, InstallmentStatusOverdue, InstallmentStatusProcessing:
		return true
	default:
		return false
	}
}

// EffectiveStatus reports overdue for pending rows past their due date
// without waiting for the persistence sweep.
func (m *InstallmentModel) EffectiveStatus(now time.Time) string {
	if m.InstallmentStatus == InstallmentStatusPending && m.InstallmentDueDate.Before(now.Truncate(24*time.Hour)) {
		return InstallmentStatusOverdue
	}
	return m.InstallmentStatus
}
