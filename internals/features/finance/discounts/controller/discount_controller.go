package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academyku_backend/internals/features/finance/discounts/dto"
	model "academyku_backend/internals/features/finance/discounts/model"
	svc "academyku_backend/internals/features/finance/discounts/service"
	helper "academyku_backend/internals/helpers"
)

type DiscountController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDiscountController(db *gorm.DB) *DiscountController {
	return &DiscountController{DB: db, Validator: validator.New()}
}

// POST /discounts
func (ctl *DiscountController) Create(c *fiber.Ctx) error {
	var req dto.CreateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	m.DiscountCode = strings.ToUpper(strings.TrimSpace(m.DiscountCode))

	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.Error(c, fiber.StatusConflict, "discount code already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Discount created", m)
}

// GET /discounts
func (ctl *DiscountController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.DiscountModel{})
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("discount_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("discount_code ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.DiscountModel
	if err := q.Order("discount_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"discounts":  rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

// PUT /discounts/:id
func (ctl *DiscountController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.DiscountModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "discount_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "discount not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateDiscountRequest
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
	return helper.Success(c, "Discount updated", m)
}

// DELETE /discounts/:id
func (ctl *DiscountController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&model.DiscountModel{}, "discount_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Discount deleted", nil)
}

// POST /discounts/validate
//
// The payment form calls this before applying a code; an invalid code is
// a 200 with valid=false so the form can show the reason inline.
func (ctl *DiscountController) Validate(c *fiber.Ctx) error {
	var req dto.ValidateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var m model.DiscountModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "discount_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "OK", dto.ValidateDiscountResponse{
				Valid: false, Code: code, FinalAmount: req.Amount, Reason: "discount code not found",
			})
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := svc.Check(&m, req.CourseID, req.FeeStructureID, time.Now()); err != nil {
		return helper.Success(c, "OK", dto.ValidateDiscountResponse{
			Valid: false, Code: code, FinalAmount: req.Amount, Reason: err.Error(),
		})
	}

	discountAmount, finalAmount, err := svc.Apply(req.Amount, m.DiscountType, m.DiscountValue)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ValidateDiscountResponse{
		Valid:          true,
		Code:           m.DiscountCode,
		DiscountType:   m.DiscountType,
		DiscountValue:  m.DiscountValue,
		DiscountAmount: discountAmount,
		FinalAmount:    finalAmount,
	})
}
