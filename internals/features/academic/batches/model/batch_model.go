package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	BatchStatusActive    = "active"
	BatchStatusInactive  = "inactive"
	BatchStatusCompleted = "completed"
)

// BatchModel is one scheduled class group. Weekdays are stored as a
// postgres text[] ("monday".."sunday"); times are "HH:MM" strings, the
// format the scheduling screen submits.
type BatchModel struct {
	BatchID uuid.UUID `gorm:"column:batch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_id"`

	BatchName     string     `gorm:"column:batch_name;type:varchar(120);not null" json:"batch_name"`
	BatchCourseID *uuid.UUID `gorm:"column:batch_course_id;type:uuid;index" json:"batch_course_id,omitempty"`

	BatchWeekdays  pq.StringArray `gorm:"column:batch_weekdays;type:text[]" json:"batch_weekdays"`
	BatchStartTime string         `gorm:"column:batch_start_time;type:varchar(5);not null" json:"batch_start_time"`
	BatchEndTime   string         `gorm:"column:batch_end_time;type:varchar(5);not null" json:"batch_end_time"`
	BatchStartDate *time.Time     `gorm:"column:batch_start_date;type:date" json:"batch_start_date,omitempty"`

	BatchCapacity int    `gorm:"column:batch_capacity;not null;default:0" json:"batch_capacity"`
	BatchStatus   string `gorm:"column:batch_status;type:varchar(20);not null;default:'active'" json:"batch_status"`

	CreatedAt time.Time      `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	UpdatedAt time.Time      `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:batch_deleted_at;index" json:"batch_deleted_at,omitempty"`
}

func (BatchModel) TableName() string { return "batches" }
