package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academyku_backend/internals/features/academic/batches/dto"
	model "academyku_backend/internals/features/academic/batches/model"
	helper "academyku_backend/internals/helpers"
)

type BatchController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db, Validator: validator.New()}
}

// POST /batches
func (ctl *BatchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.BatchEndTime <= req.BatchStartTime {
		return helper.Error(c, fiber.StatusBadRequest, "end time must be after start time")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Batch created", m)
}

// GET /batches
func (ctl *BatchController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.BatchModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("batch_name ILIKE ?", "%"+search+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("batch_status = ?", status)
	}
	if course := strings.TrimSpace(c.Query("course_id")); course != "" {
		id, err := uuid.Parse(course)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid course_id")
		}
		q = q.Where("batch_course_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.BatchModel
	if err := q.Order("batch_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"batches":    rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

// GET /batches/:id
func (ctl *BatchController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.BatchModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "batch not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

// PUT /batches/:id
func (ctl *BatchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.BatchModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "batch not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&m)
	if m.BatchEndTime <= m.BatchStartTime {
		return helper.Error(c, fiber.StatusBadRequest, "end time must be after start time")
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Batch updated", m)
}

// DELETE /batches/:id
func (ctl *BatchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Delete(&model.BatchModel{}, "batch_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Batch deleted", nil)
}
