package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/finance/discounts/model"
	helper "academyku_backend/internals/helpers"
)

var (
	ErrInactive    = errors.New("discount code is not active")
	ErrExpired     = errors.New("discount code has expired")
	ErrExhausted   = errors.New("discount code has reached its usage limit")
	ErrWrongScope  = errors.New("discount code does not apply to this course or fee")
	ErrInvalidType = errors.New("unknown discount type")
)

// Apply computes the discount against an amount. The final amount never
// goes below zero; both results are two-decimal rounded.
func Apply(amount float64, discountType string, value float64) (discountAmount, finalAmount float64, err error) {
	switch discountType {
	case model.DiscountTypePercentage:
		discountAmount = helper.Round2(amount * value / 100)
	case model.DiscountTypeFixed:
		discountAmount = helper.Round2(value)
	default:
		return 0, 0, ErrInvalidType
	}
	if discountAmount > amount {
		discountAmount = amount
	}
	finalAmount = helper.Round2(amount - discountAmount)
	return discountAmount, finalAmount, nil
}

// Check validates a code's usability for the given course/fee scope.
func Check(d *model.DiscountModel, courseID, feeStructureID *uuid.UUID, now time.Time) error {
	if !d.DiscountActive {
		return ErrInactive
	}
	if d.DiscountExpiresAt != nil && d.DiscountExpiresAt.Before(now) {
		return ErrExpired
	}
	if d.DiscountMaxUses != nil && d.DiscountUsedCount >= *d.DiscountMaxUses {
		return ErrExhausted
	}
	if d.DiscountCourseID != nil && (courseID == nil || *courseID != *d.DiscountCourseID) {
		return ErrWrongScope
	}
	if d.DiscountFeeStructureID != nil && (feeStructureID == nil || *feeStructureID != *d.DiscountFeeStructureID) {
		return ErrWrongScope
	}
	return nil
}
