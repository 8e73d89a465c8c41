package service

import (
	"time"

	"github.com/google/uuid"

	emimodel "academyku_backend/internals/features/finance/emi/model"
	helper "academyku_backend/internals/helpers"
)

// PlanEntry is one previewed installment before persistence.
type PlanEntry struct {
	InstallmentNumber int       `json:"installment_number"`
	Amount            float64   `json:"amount"`
	AmountDisplay     string    `json:"amount_display"` // "200.00", what the form preview shows
	DueDate           time.Time `json:"due_date"`
	Status            string    `json:"status"`
}

// ComputePlan builds an even amortization schedule over the remaining
// balance (total - deposit): one entry per month, due on the same day of
// the following months, each amount rounded to two decimals.
//
// The per-entry rounding is NOT redistributed; the last installment does
// not absorb the drift. The dashboard preview has always worked this way
// and the stored schedule must match it to the paisa.
func ComputePlan(totalAmount, depositAmount float64, months int, from time.Time) []PlanEntry {
	remaining := totalAmount - depositAmount
	if remaining <= 0 || months <= 0 {
		return []PlanEntry{}
	}

	amount := helper.Round2(remaining / float64(months))

	plan := make([]PlanEntry, 0, months)
	for i := 0; i < months; i++ {
		plan = append(plan, PlanEntry{
			InstallmentNumber: i + 1,
			Amount:            amount,
			AmountDisplay:     helper.FormatAmount(amount),
			DueDate:           from.AddDate(0, i+1, 0),
			Status:            emimodel.InstallmentStatusPending,
		})
	}
	return plan
}

// PlanToInstallments materializes a plan into EMI rows for a payment.
func PlanToInstallments(plan []PlanEntry, paymentID, studentID uuid.UUID) []emimodel.InstallmentModel {
	rows := make([]emimodel.InstallmentModel, 0, len(plan))
	for _, e := range plan {
		rows = append(rows, emimodel.InstallmentModel{
			InstallmentPaymentID: paymentID,
			InstallmentStudentID: studentID,
			InstallmentNumber:    e.InstallmentNumber,
			InstallmentAmount:    e.Amount,
			InstallmentDueDate:   e.DueDate,
			InstallmentStatus:    e.Status,
		})
	}
	return rows
}
