package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academyku_backend/internals/features/finance/feestructures/dto"
	model "academyku_backend/internals/features/finance/feestructures/model"
	helper "academyku_backend/internals/helpers"
)

type FeeStructureController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db, Validator: validator.New()}
}

// POST /fee-structures
func (ctl *FeeStructureController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fee structure created", m)
}

// GET /fee-structures
func (ctl *FeeStructureController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.FeeStructureModel{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("fee_structure_category = ?", category)
	}
	if course := strings.TrimSpace(c.Query("course_id")); course != "" {
		id, err := uuid.Parse(course)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid course_id")
		}
		q = q.Where("fee_structure_course_id = ?", id)
	}
	if strings.TrimSpace(c.Query("all")) == "" {
		q = q.Where("fee_structure_active = ?", true)
	}

	var rows []model.FeeStructureModel
	if err := q.Order("fee_structure_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"fee_structures": rows})
}

// GET /fee-structures/:id
func (ctl *FeeStructureController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.FeeStructureModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// PUT /fee-structures/:id
func (ctl *FeeStructureController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.FeeStructureModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateFeeStructureRequest
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
	return helper.Success(c, "Fee structure updated", m)
}

// DELETE /fee-structures/:id
func (ctl *FeeStructureController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&model.FeeStructureModel{}, "fee_structure_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Fee structure deleted", nil)
}
