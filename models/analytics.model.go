package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsEvent is an append-only audit record. Never updated or
// deleted.
type AnalyticsEvent struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	EventType string         `json:"event_type" gorm:"index"`
	CourseID  string         `json:"course_id" gorm:"index"`
	StudentID string         `json:"student_id"`
	Data      datatypes.JSON `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

func (a *AnalyticsEvent) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
