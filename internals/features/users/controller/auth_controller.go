package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/configs"
	model "academyku_backend/internals/features/users/model"
	svc "academyku_backend/internals/features/users/service"
	helper "academyku_backend/internals/helpers"
	authmw "academyku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /auth/login
//
// Wrong email and wrong password answer identically so the endpoint
// cannot be used to probe which admin accounts exist.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var u model.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&u, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if !u.UserActive {
		return helper.Error(c, fiber.StatusForbidden, "account is disabled")
	}
	if !u.CheckPassword(req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	now := time.Now()
	access, refresh, err := svc.GenerateTokenPair(&u, configs.JWTSecret, configs.JWTRefreshSecret, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "token generation failed")
	}

	u.UserLastLoginAt = &now
	if err := ctl.DB.WithContext(c.Context()).Save(&u).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  now.Add(svc.AccessTokenTTL),
	})

	return helper.Success(c, "Login successful", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          u,
	})
}

// POST /auth/refresh
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sub, err := svc.ParseRefreshToken(req.RefreshToken, configs.JWTRefreshSecret)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	var u model.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&u, "user_id = ?", sub).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "invalid refresh token")
	}
	if !u.UserActive {
		return helper.Error(c, fiber.StatusForbidden, "account is disabled")
	}

	access, refresh, err := svc.GenerateTokenPair(&u, configs.JWTSecret, configs.JWTRefreshSecret, time.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "token generation failed")
	}
	return helper.Success(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// GET /auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	id, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	var u model.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "user not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", u)
}
