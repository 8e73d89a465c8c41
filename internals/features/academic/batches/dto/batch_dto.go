package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "academyku_backend/internals/features/academic/batches/model"
)

type CreateBatchRequest struct {
	BatchName     string     `json:"batch_name" validate:"required,max=120"`
	BatchCourseID *uuid.UUID `json:"batch_course_id,omitempty"`

	BatchWeekdays  []string   `json:"batch_weekdays" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	BatchStartTime string     `json:"batch_start_time" validate:"required,len=5"`
	BatchEndTime   string     `json:"batch_end_time" validate:"required,len=5"`
	BatchStartDate *time.Time `json:"batch_start_date,omitempty"`

	BatchCapacity int `json:"batch_capacity" validate:"gte=0,lte=1000"`
}

func (r *CreateBatchRequest) ToModel() *model.BatchModel {
	return &model.BatchModel{
		BatchName:      r.BatchName,
		BatchCourseID:  r.BatchCourseID,
		BatchWeekdays:  pq.StringArray(r.BatchWeekdays),
		BatchStartTime: r.BatchStartTime,
		BatchEndTime:   r.BatchEndTime,
		BatchStartDate: r.BatchStartDate,
		BatchCapacity:  r.BatchCapacity,
		BatchStatus:    model.BatchStatusActive,
	}
}

type UpdateBatchRequest struct {
	BatchName     *string    `json:"batch_name,omitempty" validate:"omitempty,max=120"`
	BatchCourseID *uuid.UUID `json:"batch_course_id,omitempty"`

	BatchWeekdays  []string   `json:"batch_weekdays,omitempty" validate:"omitempty,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	BatchStartTime *string    `json:"batch_start_time,omitempty" validate:"omitempty,len=5"`
	BatchEndTime   *string    `json:"batch_end_time,omitempty" validate:"omitempty,len=5"`
	BatchStartDate *time.Time `json:"batch_start_date,omitempty"`

	BatchCapacity *int    `json:"batch_capacity,omitempty" validate:"omitempty,gte=0,lte=1000"`
	BatchStatus   *string `json:"batch_status,omitempty" validate:"omitempty,oneof=active inactive completed"`
}

func (r *UpdateBatchRequest) Apply(m *model.BatchModel) {
	if r.BatchName != nil {
		m.BatchName = *r.BatchName
	}
	if r.BatchCourseID != nil {
		m.BatchCourseID = r.BatchCourseID
	}
	if len(r.BatchWeekdays) > 0 {
		m.BatchWeekdays = pq.StringArray(r.BatchWeekdays)
	}
	if r.BatchStartTime != nil {
		m.BatchStartTime = *r.BatchStartTime
	}
	if r.BatchEndTime != nil {
		m.BatchEndTime = *r.BatchEndTime
	}
	if r.BatchStartDate != nil {
		m.BatchStartDate = r.BatchStartDate
	}
	if r.BatchCapacity != nil {
		m.BatchCapacity = *r.BatchCapacity
	}
	if r.BatchStatus != nil {
		m.BatchStatus = *r.BatchStatus
	}
}
