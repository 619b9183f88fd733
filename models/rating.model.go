package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseRating holds one student's rating of a course. (course_id,
// student_id) is the natural key; a repeat rating replaces the row.
type CourseRating struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"uniqueIndex:idx_course_student"`
	StudentID string    `json:"student_id" gorm:"uniqueIndex:idx_course_student"`
	Rating    int       `json:"rating"` // 1..5
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *CourseRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
