package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
  Lookup lists the registration form consumes. Server-defined so the
  dashboard never ships hardcoded option arrays.
*/

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseName     string  `gorm:"column:course_name;type:varchar(120);not null;uniqueIndex" json:"course_name"`
	CourseDuration *string `gorm:"column:course_duration;type:varchar(40)" json:"course_duration,omitempty"`
	CourseActive   bool    `gorm:"column:course_active;not null;default:true" json:"course_active"`

	CreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	UpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

type UniversityModel struct {
	UniversityID uuid.UUID `gorm:"column:university_id;type:uuid;default:gen_random_uuid();primaryKey" json:"university_id"`

	UniversityName string `gorm:"column:university_name;type:varchar(160);not null;uniqueIndex" json:"university_name"`

	CreatedAt time.Time      `gorm:"column:university_created_at;autoCreateTime" json:"university_created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:university_deleted_at;index" json:"university_deleted_at,omitempty"`
}

func (UniversityModel) TableName() string { return "universities" }

type NationalityModel struct {
	NationalityID uuid.UUID `gorm:"column:nationality_id;type:uuid;default:gen_random_uuid();primaryKey" json:"nationality_id"`

	NationalityName string `gorm:"column:nationality_name;type:varchar(80);not null;uniqueIndex" json:"nationality_name"`

	CreatedAt time.Time      `gorm:"column:nationality_created_at;autoCreateTime" json:"nationality_created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:nationality_deleted_at;index" json:"nationality_deleted_at,omitempty"`
}

func (NationalityModel) TableName() string { return "nationalities" }
