package dto

import (
	"github.com/google/uuid"

	model "academyku_backend/internals/features/finance/feestructures/model"
)

type CreateFeeStructureRequest struct {
	FeeStructureName     string     `json:"fee_structure_name" validate:"required,max=120"`
	FeeStructureCategory string     `json:"fee_structure_category" validate:"required,oneof=tuition admission exam other"`
	FeeStructureCourseID *uuid.UUID `json:"fee_structure_course_id,omitempty"`
	FeeStructureAmount   float64    `json:"fee_structure_amount" validate:"required,gt=0"`
}

func (r *CreateFeeStructureRequest) ToModel() *model.FeeStructureModel {
	return &model.FeeStructureModel{
		FeeStructureName:     r.FeeStructureName,
		FeeStructureCategory: r.FeeStructureCategory,
		FeeStructureCourseID: r.FeeStructureCourseID,
		FeeStructureAmount:   r.FeeStructureAmount,
		FeeStructureActive:   true,
	}
}

type UpdateFeeStructureRequest struct {
	FeeStructureName     *string    `json:"fee_structure_name,omitempty" validate:"omitempty,max=120"`
	FeeStructureCategory *string    `json:"fee_structure_category,omitempty" validate:"omitempty,oneof=tuition admission exam other"`
	FeeStructureCourseID *uuid.UUID `json:"fee_structure_course_id,omitempty"`
	FeeStructureAmount   *float64   `json:"fee_structure_amount,omitempty" validate:"omitempty,gt=0"`
	FeeStructureActive   *bool      `json:"fee_structure_active,omitempty"`
}

func (r *UpdateFeeStructureRequest) Apply(m *model.FeeStructureModel) {
	if r.FeeStructureName != nil {
		m.FeeStructureName = *r.FeeStructureName
	}
	if r.FeeStructureCategory != nil {
		m.FeeStructureCategory = *r.FeeStructureCategory
	}
	if r.FeeStructureCourseID != nil {
		m.FeeStructureCourseID = r.FeeStructureCourseID
	}
	if r.FeeStructureAmount != nil {
		m.FeeStructureAmount = *r.FeeStructureAmount
	}
	if r.FeeStructureActive != nil {
		m.FeeStructureActive = *r.FeeStructureActive
	}
}
