package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is created lazily on first enrollment.
// TotalCourses/CompletedCourses are advisory counters, not maintained
// by any mutation path.
type Student struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone            string    `json:"phone"`
	TotalCourses     int       `json:"total_courses" gorm:"default:0"`
	CompletedCourses int       `json:"completed_courses" gorm:"default:0"`
	CreatedAt        time.Time `json:"created_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
