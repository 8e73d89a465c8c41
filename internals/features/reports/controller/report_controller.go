package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	emimodel "academyku_backend/internals/features/finance/emi/model"
	paymentModel "academyku_backend/internals/features/finance/payments/model"
	helper "academyku_backend/internals/helpers"
)

// ReportController serves the dashboard aggregates. Everything is read
// from the live tables; no materialized state to drift.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type statusBucket struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type monthBucket struct {
	Month     string  `json:"month"` // "2026-08"
	Collected float64 `json:"collected"`
}

// GET /reports/fees-summary
func (ctl *ReportController) FeesSummary(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.Context())

	// per-status payment buckets
	var byStatus []statusBucket
	if err := db.Model(&paymentModel.Payment{}).
		Select("payment_status AS status, COUNT(*) AS count, COALESCE(SUM(payment_total_amount), 0) AS amount").
		Group("payment_status").
		Scan(&byStatus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalBilled, totalDeposits float64
	if err := db.Model(&paymentModel.Payment{}).
		Select("COALESCE(SUM(payment_total_amount), 0)").
		Scan(&totalBilled).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&paymentModel.Payment{}).
		Select("COALESCE(SUM(payment_deposit_amount), 0)").
		Scan(&totalDeposits).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// installments actually collected
	var installmentsCollected float64
	if err := db.Model(&emimodel.InstallmentModel{}).
		Where("installment_status = ?", emimodel.InstallmentStatusPaid).
		Select("COALESCE(SUM(installment_amount), 0)").
		Scan(&installmentsCollected).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// overdue exposure
	now := time.Now()
	var overdueCount int64
	var overdueAmount float64
	overdueWhere := "(installment_status = ? OR (installment_status = ? AND installment_due_date < ?))"
	overdueArgs := []any{emimodel.InstallmentStatusOverdue, emimodel.InstallmentStatusPending, now.Truncate(24 * time.Hour)}
	if err := db.Model(&emimodel.InstallmentModel{}).
		Where(overdueWhere, overdueArgs...).
		Count(&overdueCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := db.Model(&emimodel.InstallmentModel{}).
		Where(overdueWhere, overdueArgs...).
		Select("COALESCE(SUM(installment_amount), 0)").
		Scan(&overdueAmount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// monthly collection series, last 6 months of paid installments
	var monthly []monthBucket
	if err := db.Model(&emimodel.InstallmentModel{}).
		Where("installment_status = ? AND installment_paid_date >= ?",
			emimodel.InstallmentStatusPaid, now.AddDate(0, -6, 0)).
		Select("to_char(installment_paid_date, 'YYYY-MM') AS month, COALESCE(SUM(installment_amount), 0) AS collected").
		Group("month").
		Order("month ASC").
		Scan(&monthly).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	collected := helper.Round2(totalDeposits + installmentsCollected)
	outstanding := helper.Round2(totalBilled - collected)
	if outstanding < 0 {
		outstanding = 0
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_billed":      helper.Round2(totalBilled),
		"total_collected":   collected,
		"total_outstanding": outstanding,
		"by_status":         byStatus,
		"overdue": fiber.Map{
			"count":  overdueCount,
			"amount": helper.Round2(overdueAmount),
		},
		"monthly_collections": monthly,
	})
}
