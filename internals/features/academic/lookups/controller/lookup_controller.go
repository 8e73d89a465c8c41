package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "academyku_backend/internals/features/academic/lookups/model"
	helper "academyku_backend/internals/helpers"
)

// LookupController serves the small reference lists. Reads are public
// within the dashboard; creates are admin-only (guarded at the route).
type LookupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db, Validator: validator.New()}
}

/* ===================== Courses ===================== */

// GET /courses
func (ctl *LookupController) ListCourses(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.CourseModel{})
	if strings.TrimSpace(c.Query("all")) == "" {
		q = q.Where("course_active = ?", true)
	}

	var rows []model.CourseModel
	if err := q.Order("course_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"courses": rows})
}

// POST /courses
func (ctl *LookupController) CreateCourse(c *fiber.Ctx) error {
	var req struct {
		CourseName     string  `json:"course_name" validate:"required,max=120"`
		CourseDuration *string `json:"course_duration,omitempty" validate:"omitempty,max=40"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.CourseModel{
		CourseName:     strings.TrimSpace(req.CourseName),
		CourseDuration: req.CourseDuration,
		CourseActive:   true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.Error(c, fiber.StatusConflict, "course already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", m)
}

/* ===================== Universities ===================== */

// GET /universities
func (ctl *LookupController) ListUniversities(c *fiber.Ctx) error {
	var rows []model.UniversityModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("university_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"universities": rows})
}

// POST /universities
func (ctl *LookupController) CreateUniversity(c *fiber.Ctx) error {
	var req struct {
		UniversityName string `json:"university_name" validate:"required,max=160"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.UniversityModel{UniversityName: strings.TrimSpace(req.UniversityName)}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.Error(c, fiber.StatusConflict, "university already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "University created", m)
}

/* ===================== Nationalities ===================== */

// GET /nationalities
func (ctl *LookupController) ListNationalities(c *fiber.Ctx) error {
	var rows []model.NationalityModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("nationality_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"nationalities": rows})
}

// POST /nationalities
func (ctl *LookupController) CreateNationality(c *fiber.Ctx) error {
	var req struct {
		NationalityName string `json:"nationality_name" validate:"required,max=80"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.NationalityModel{NationalityName: strings.TrimSpace(req.NationalityName)}
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.Error(c, fiber.StatusConflict, "nationality already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Nationality created", m)
}
