package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeCategoryTuition   = "tuition"
	FeeCategoryAdmission = "admission"
	FeeCategoryExam      = "exam"
	FeeCategoryOther     = "other"
)

// FeeStructureModel is a chargeable fee template; payments reference one
// to carry the default amount into the form.
type FeeStructureModel struct {
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`

	FeeStructureName     string     `gorm:"column:fee_structure_name;type:varchar(120);not null" json:"fee_structure_name"`
	FeeStructureCategory string     `gorm:"column:fee_structure_category;type:varchar(20);not null;default:'tuition'" json:"fee_structure_category"`
	FeeStructureCourseID *uuid.UUID `gorm:"column:fee_structure_course_id;type:uuid;index" json:"fee_structure_course_id,omitempty"`

	FeeStructureAmount float64 `gorm:"column:fee_structure_amount;type:numeric(12,2);not null;check:fee_structure_amount >= 0" json:"fee_structure_amount"`
	FeeStructureActive bool    `gorm:"column:fee_structure_active;not null;default:true" json:"fee_structure_active"`

	CreatedAt time.Time      `gorm:"column:fee_structure_created_at;autoCreateTime" json:"fee_structure_created_at"`
	UpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"fee_structure_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"fee_structure_deleted_at,omitempty"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }
