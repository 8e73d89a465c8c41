package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentName  string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentEmail string `gorm:"column:student_email;type:varchar(160);not null;uniqueIndex" json:"student_email"`
	StudentPhone string `gorm:"column:student_phone;type:varchar(20);not null" json:"student_phone"` // WhatsApp number

	StudentNationality *string `gorm:"column:student_nationality;type:varchar(80)" json:"student_nationality,omitempty"`
	StudentUniversity  *string `gorm:"column:student_university;type:varchar(160)" json:"student_university,omitempty"`

	StudentCourseID *uuid.UUID `gorm:"column:student_course_id;type:uuid;index" json:"student_course_id,omitempty"`
	StudentBatchID  *uuid.UUID `gorm:"column:student_batch_id;type:uuid;index" json:"student_batch_id,omitempty"`

	StudentStatus string `gorm:"column:student_status;type:varchar(20);not null;default:'active'" json:"student_status"`

	StudentNotes *string `gorm:"column:student_notes;type:text" json:"student_notes,omitempty"`

	CreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	UpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
