package dto

import (
	"github.com/google/uuid"

	model "academyku_backend/internals/features/academic/students/model"
)

type CreateStudentRequest struct {
	StudentName  string `json:"student_name" validate:"required,max=120"`
	StudentEmail string `json:"student_email" validate:"required,email"`
	StudentPhone string `json:"student_phone" validate:"required,max=20"`

	StudentNationality *string `json:"student_nationality,omitempty"`
	StudentUniversity  *string `json:"student_university,omitempty"`

	StudentCourseID *uuid.UUID `json:"student_course_id,omitempty"`
	StudentBatchID  *uuid.UUID `json:"student_batch_id,omitempty"`

	StudentNotes *string `json:"student_notes,omitempty"`
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentName:        r.StudentName,
		StudentEmail:       r.StudentEmail,
		StudentPhone:       r.StudentPhone,
		StudentNationality: r.StudentNationality,
		StudentUniversity:  r.StudentUniversity,
		StudentCourseID:    r.StudentCourseID,
		StudentBatchID:     r.StudentBatchID,
		StudentStatus:      model.StudentStatusActive,
		StudentNotes:       r.StudentNotes,
	}
}

type UpdateStudentRequest struct {
	StudentName  *string `json:"student_name,omitempty" validate:"omitempty,max=120"`
	StudentEmail *string `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone *string `json:"student_phone,omitempty" validate:"omitempty,max=20"`

	StudentNationality *string `json:"student_nationality,omitempty"`
	StudentUniversity  *string `json:"student_university,omitempty"`

	StudentCourseID *uuid.UUID `json:"student_course_id,omitempty"`
	StudentBatchID  *uuid.UUID `json:"student_batch_id,omitempty"`

	StudentStatus *string `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive"`
	StudentNotes  *string `json:"student_notes,omitempty"`
}

func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentEmail != nil {
		m.StudentEmail = *r.StudentEmail
	}
	if r.StudentPhone != nil {
		m.StudentPhone = *r.StudentPhone
	}
	if r.StudentNationality != nil {
		m.StudentNationality = r.StudentNationality
	}
	if r.StudentUniversity != nil {
		m.StudentUniversity = r.StudentUniversity
	}
	if r.StudentCourseID != nil {
		m.StudentCourseID = r.StudentCourseID
	}
	if r.StudentBatchID != nil {
		m.StudentBatchID = r.StudentBatchID
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	if r.StudentNotes != nil {
		m.StudentNotes = r.StudentNotes
	}
}
