package dto

import (
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/finance/discounts/model"
)

/* ========== Requests ========== */

type CreateDiscountRequest struct {
	DiscountCode  string  `json:"discount_code" validate:"required,max=40"`
	DiscountType  string  `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discount_value" validate:"required,gt=0"`

	DiscountCourseID       *uuid.UUID `json:"discount_course_id,omitempty"`
	DiscountFeeStructureID *uuid.UUID `json:"discount_fee_structure_id,omitempty"`

	DiscountActive    *bool      `json:"discount_active,omitempty"`
	DiscountExpiresAt *time.Time `json:"discount_expires_at,omitempty"`
	DiscountMaxUses   *int       `json:"discount_max_uses,omitempty" validate:"omitempty,gt=0"`
}

func (r *CreateDiscountRequest) ToModel() *model.DiscountModel {
	m := &model.DiscountModel{
		DiscountCode:           r.DiscountCode,
		DiscountType:           r.DiscountType,
		DiscountValue:          r.DiscountValue,
		DiscountCourseID:       r.DiscountCourseID,
		DiscountFeeStructureID: r.DiscountFeeStructureID,
		DiscountActive:         true,
		DiscountExpiresAt:      r.DiscountExpiresAt,
		DiscountMaxUses:        r.DiscountMaxUses,
	}
	if r.DiscountActive != nil {
		m.DiscountActive = *r.DiscountActive
	}
	return m
}

type UpdateDiscountRequest struct {
	DiscountValue     *float64   `json:"discount_value,omitempty" validate:"omitempty,gt=0"`
	DiscountActive    *bool      `json:"discount_active,omitempty"`
	DiscountExpiresAt *time.Time `json:"discount_expires_at,omitempty"`
	DiscountMaxUses   *int       `json:"discount_max_uses,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateDiscountRequest) Apply(m *model.DiscountModel) {
	if r.DiscountValue != nil {
		m.DiscountValue = *r.DiscountValue
	}
	if r.DiscountActive != nil {
		m.DiscountActive = *r.DiscountActive
	}
	if r.DiscountExpiresAt != nil {
		m.DiscountExpiresAt = r.DiscountExpiresAt
	}
	if r.DiscountMaxUses != nil {
		m.DiscountMaxUses = r.DiscountMaxUses
	}
}

// ValidateDiscountRequest is what the payment form posts before applying
// a code: the amount comes back rewritten as final_amount.
type ValidateDiscountRequest struct {
	Code           string     `json:"code" validate:"required"`
	Amount         float64    `json:"amount" validate:"required,gt=0"`
	CourseID       *uuid.UUID `json:"course_id,omitempty"`
	FeeStructureID *uuid.UUID `json:"fee_structure_id,omitempty"`
}

/* ========== Responses ========== */

type ValidateDiscountResponse struct {
	Valid          bool    `json:"valid"`
	Code           string  `json:"code"`
	DiscountType   string  `json:"discount_type,omitempty"`
	DiscountValue  float64 `json:"discount_value,omitempty"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	Reason         string  `json:"reason,omitempty"` // set when invalid
}
