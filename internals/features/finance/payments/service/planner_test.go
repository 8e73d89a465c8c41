package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	emimodel "academyku_backend/internals/features/finance/emi/model"
)

func TestComputePlanEvenSplit(t *testing.T) {
	from := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	plan := ComputePlan(1000, 200, 4, from)
	if len(plan) != 4 {
		t.Fatalf("len(plan) = %d, want 4", len(plan))
	}
	for i, e := range plan {
		if e.InstallmentNumber != i+1 {
			t.Errorf("entry %d: number = %d, want %d", i, e.InstallmentNumber, i+1)
		}
		if e.Amount != 200 {
			t.Errorf("entry %d: amount = %v, want 200", i, e.Amount)
		}
		if e.AmountDisplay != "200.00" {
			t.Errorf("entry %d: display = %q, want %q", i, e.AmountDisplay, "200.00")
		}
		wantDue := from.AddDate(0, i+1, 0)
		if !e.DueDate.Equal(wantDue) {
			t.Errorf("entry %d: due = %v, want %v", i, e.DueDate, wantDue)
		}
		if e.Status != emimodel.InstallmentStatusPending {
			t.Errorf("entry %d: status = %q, want pending", i, e.Status)
		}
	}
}

func TestComputePlanEmpty(t *testing.T) {
	from := time.Now()
	tests := []struct {
		name    string
		total   float64
		deposit float64
		months  int
	}{
		{"deposit equals total", 500, 500, 6},
		{"deposit exceeds total", 500, 700, 6},
		{"zero months", 1000, 200, 0},
		{"zero total zero deposit", 0, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePlan(tt.total, tt.deposit, tt.months, from); len(got) != 0 {
				t.Errorf("ComputePlan(%v, %v, %d) = %d entries, want 0",
					tt.total, tt.deposit, tt.months, len(got))
			}
		})
	}
}

// The per-entry rounding is deliberately not redistributed: 1000 over 3
// months yields three 333.33 entries that sum to 999.99, matching the
// form preview to the paisa.
func TestComputePlanRoundingDrift(t *testing.T) {
	plan := ComputePlan(1000, 0, 3, time.Now())
	if len(plan) != 3 {
		t.Fatalf("len(plan) = %d, want 3", len(plan))
	}
	sum := 0.0
	for _, e := range plan {
		if e.Amount != 333.33 {
			t.Errorf("amount = %v, want 333.33", e.Amount)
		}
		sum += e.Amount
	}
	if sum >= 1000 {
		t.Errorf("sum = %v, expected drift below the remaining balance", sum)
	}
}

func TestPlanToInstallments(t *testing.T) {
	from := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	plan := ComputePlan(600, 0, 2, from)

	paymentID, studentID := uuid.New(), uuid.New()
	rows := PlanToInstallments(plan, paymentID, studentID)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for i, r := range rows {
		if r.InstallmentPaymentID != paymentID || r.InstallmentStudentID != studentID {
			t.Errorf("row %d: wrong payment/student refs", i)
		}
		if r.InstallmentNumber != plan[i].InstallmentNumber {
			t.Errorf("row %d: number = %d, want %d", i, r.InstallmentNumber, plan[i].InstallmentNumber)
		}
		if r.InstallmentAmount != plan[i].Amount {
			t.Errorf("row %d: amount = %v, want %v", i, r.InstallmentAmount, plan[i].Amount)
		}
		if r.InstallmentStatus != emimodel.InstallmentStatusPending {
			t.Errorf("row %d: status = %q, want pending", i, r.InstallmentStatus)
		}
	}
}
