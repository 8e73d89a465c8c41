package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	emimodel "academyku_backend/internals/features/finance/emi/model"
	model "academyku_backend/internals/features/finance/payments/model"
)

// SettlePaymentIfClear completes a payment once nothing remains open on
// it: no pending/overdue/processing installment rows. Both the webhook
// and the manual EMI pay path call this after closing an installment.
// Returns whether the payment transitioned to completed.
func SettlePaymentIfClear(db *gorm.DB, paymentID uuid.UUID, now time.Time) (bool, error) {
	var open int64
	if err := db.Model(&emimodel.InstallmentModel{}).
		Where("installment_payment_id = ? AND installment_status IN ?",
			paymentID,
			[]string{
				emimodel.InstallmentStatusPending,
				emimodel.InstallmentStatusOverdue,
				emimodel.InstallmentStatusProcessing,
			}).
		Count(&open).Error; err != nil {
		return false, err
	}
	if open > 0 {
		return false, nil
	}

	res := db.Model(&model.Payment{}).
		Where("payment_id = ? AND payment_status <> ?", paymentID, model.PaymentStatusCompleted).
		Updates(map[string]any{
			"payment_status":  model.PaymentStatusCompleted,
			"payment_paid_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkOverdueInstallments persists the overdue derivation: pending rows
// past their due date become overdue. Run opportunistically before list
// reads; EffectiveStatus covers anything the sweep has not seen yet.
func MarkOverdueInstallments(db *gorm.DB, now time.Time) error {
	return db.Model(&emimodel.InstallmentModel{}).
		Where("installment_status = ? AND installment_due_date < ?",
			emimodel.InstallmentStatusPending, now.Truncate(24*time.Hour)).
		Update("installment_status", emimodel.InstallmentStatusOverdue).Error
}
