package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type DiscountModel struct {
	DiscountID uuid.UUID `gorm:"column:discount_id;type:uuid;default:gen_random_uuid();primaryKey" json:"discount_id"`

	DiscountCode  string  `gorm:"column:discount_code;type:varchar(40);not null;uniqueIndex" json:"discount_code"`
	DiscountType  string  `gorm:"column:discount_type;type:varchar(20);not null" json:"discount_type"`
	DiscountValue float64 `gorm:"column:discount_value;type:numeric(12,2);not null;check:discount_value >= 0" json:"discount_value"`

	// Optional scoping: nil = applies everywhere
	DiscountCourseID       *uuid.UUID `gorm:"column:discount_course_id;type:uuid" json:"discount_course_id,omitempty"`
	DiscountFeeStructureID *uuid.UUID `gorm:"column:discount_fee_structure_id;type:uuid" json:"discount_fee_structure_id,omitempty"`

	DiscountActive    bool       `gorm:"column:discount_active;not null;default:true" json:"discount_active"`
	DiscountExpiresAt *time.Time `gorm:"column:discount_expires_at" json:"discount_expires_at,omitempty"`
	DiscountMaxUses   *int       `gorm:"column:discount_max_uses" json:"discount_max_uses,omitempty"`
	DiscountUsedCount int        `gorm:"column:discount_used_count;not null;default:0" json:"discount_used_count"`

	CreatedAt time.Time      `gorm:"column:discount_created_at;autoCreateTime" json:"discount_created_at"`
	UpdatedAt time.Time      `gorm:"column:discount_updated_at;autoUpdateTime" json:"discount_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:discount_deleted_at;index" json:"discount_deleted_at,omitempty"`
}

func (DiscountModel) TableName() string { return "discounts" }
