package controller

import (
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "academyku_backend/internals/features/academic/students/model"
	dto "academyku_backend/internals/features/finance/emi/dto"
	model "academyku_backend/internals/features/finance/emi/model"
	paymentService "academyku_backend/internals/features/finance/payments/service"
	waService "academyku_backend/internals/features/notifications/whatsapp/service"
	helper "academyku_backend/internals/helpers"
)

type InstallmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	WhatsApp  *waService.Sender
}

func NewInstallmentController(db *gorm.DB, wa *waService.Sender) *InstallmentController {
	return &InstallmentController{DB: db, Validator: validator.New(), WhatsApp: wa}
}

// GET /payments/emi
//
// Returns installments grouped by student, the shape the EMI screen
// renders directly. Optional filters: student_id, payment_id, search
// (student name).
func (ctl *InstallmentController) List(c *fiber.Ctx) error {
	now := time.Now()

	// opportunistic sweep so persisted statuses match what we report
	if err := paymentService.MarkOverdueInstallments(ctl.DB.WithContext(c.Context()), now); err != nil {
		log.Printf("[WARN] overdue sweep failed: %v", err)
	}

	q := ctl.DB.WithContext(c.Context()).Model(&model.InstallmentModel{})

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("installment_student_id = ?", id)
	}
	if pid := strings.TrimSpace(c.Query("payment_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid payment_id")
		}
		q = q.Where("installment_payment_id = ?", id)
	}

	var rows []model.InstallmentModel
	if err := q.Order("installment_due_date ASC, installment_number ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// one students fetch for all groups
	studentIDs := make([]uuid.UUID, 0, len(rows))
	seen := map[uuid.UUID]bool{}
	for _, r := range rows {
		if !seen[r.InstallmentStudentID] {
			seen[r.InstallmentStudentID] = true
			studentIDs = append(studentIDs, r.InstallmentStudentID)
		}
	}

	students := map[uuid.UUID]studentModel.StudentModel{}
	if len(studentIDs) > 0 {
		var srows []studentModel.StudentModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("student_id IN ?", studentIDs).
			Find(&srows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, s := range srows {
			students[s.StudentID] = s
		}
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	groups := map[uuid.UUID]*dto.StudentInstallmentGroup{}
	for _, r := range rows {
		s, ok := students[r.InstallmentStudentID]
		if search != "" && (!ok || !strings.Contains(strings.ToLower(s.StudentName), search)) {
			continue
		}
		g, ok2 := groups[r.InstallmentStudentID]
		if !ok2 {
			g = &dto.StudentInstallmentGroup{
				StudentID:    r.InstallmentStudentID,
				StudentName:  s.StudentName,
				StudentPhone: s.StudentPhone,
			}
			groups[r.InstallmentStudentID] = g
		}
		resp := dto.FromModel(&r, now)
		g.Installments = append(g.Installments, resp)
		g.TotalAmount = helper.Round2(g.TotalAmount + r.InstallmentAmount)
		if r.InstallmentStatus == model.InstallmentStatusPaid {
			g.PaidAmount = helper.Round2(g.PaidAmount + r.InstallmentAmount)
		} else if r.IsOpen() {
			g.OpenCount++
		}
	}

	out := make([]dto.StudentInstallmentGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentName < out[j].StudentName })

	return helper.Success(c, "OK", fiber.Map{"groups": out, "count": len(out)})
}

// PUT /payments/emi/:id
func (ctl *InstallmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.InstallmentModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "installment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "installment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&m)

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Installment updated", dto.FromModel(&m, time.Now()))
}

// POST /payments/emi/:id/update
//
// Marks one installment paid (manual collection at the counter). Settles
// the parent payment when this was the last open row. Already-paid rows
// are a no-op so a double click cannot double-pay.
func (ctl *InstallmentController) Pay(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.PayInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	paidDate := now
	if req.PaidDate != nil {
		paidDate = *req.PaidDate
	}

	var m model.InstallmentModel
	transitioned := false
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "installment_id = ?", id).Error; err != nil {
			return err
		}
		if m.InstallmentStatus == model.InstallmentStatusPaid {
			return nil // idempotent
		}
		if m.InstallmentStatus == model.InstallmentStatusCancelled {
			return errInstallmentCancelled
		}

		transitioned = true
		m.InstallmentStatus = model.InstallmentStatusPaid
		m.InstallmentPaidDate = &paidDate
		m.InstallmentPaymentMethod = &req.PaymentMethod
		m.InstallmentTransactionID = req.TransactionID
		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		_, err := paymentService.SettlePaymentIfClear(tx, m.InstallmentPaymentID, now)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "installment not found")
		}
		if errors.Is(err, errInstallmentCancelled) {
			return helper.Error(c, fiber.StatusConflict, "installment is cancelled")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// best-effort receipt; delivery failure never fails the collection
	if transitioned && ctl.WhatsApp.Enabled() {
		var s studentModel.StudentModel
		if err := ctl.DB.WithContext(c.Context()).First(&s, "student_id = ?", m.InstallmentStudentID).Error; err == nil {
			body := waService.PaymentReceivedMessage(s.StudentName, m.InstallmentAmount)
			if err := ctl.WhatsApp.Send(c.UserContext(), s.StudentPhone, body); err != nil {
				log.Printf("[WARN] whatsapp receipt failed installment=%s: %v", m.InstallmentID, err)
			}
		}
	}

	return helper.Success(c, "Installment paid", dto.FromModel(&m, now))
}

// POST /emi-payments/:id/remind
//
// Fire-and-forget WhatsApp reminder: delivery failures are logged and
// reported, never retried.
func (ctl *InstallmentController) Remind(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.InstallmentModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "installment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "installment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.InstallmentStatus == model.InstallmentStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "installment is already paid")
	}

	var s studentModel.StudentModel
	if err := ctl.DB.WithContext(c.Context()).First(&s, "student_id = ?", m.InstallmentStudentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "student lookup failed: "+err.Error())
	}

	body := waService.PaymentReminderMessage(s.StudentName, m.InstallmentAmount, m.InstallmentDueDate, m.InstallmentNumber)
	if err := ctl.WhatsApp.Send(c.UserContext(), s.StudentPhone, body); err != nil {
		log.Printf("[WARN] whatsapp reminder failed installment=%s: %v", m.InstallmentID, err)
		return helper.Error(c, fiber.StatusBadGateway, "reminder could not be delivered")
	}

	now := time.Now()
	m.InstallmentReminderCount++
	m.InstallmentLastReminderAt = &now
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Reminder sent", fiber.Map{
		"installment_id": m.InstallmentID,
		"reminder_count": m.InstallmentReminderCount,
	})
}

var errInstallmentCancelled = errors.New("installment is cancelled")
