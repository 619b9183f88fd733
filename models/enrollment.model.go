package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment links a student to a course. Deleted only as a cascade of
// course deletion.
type Enrollment struct {
	ID                string     `json:"id" gorm:"primaryKey"`
	StudentID         string     `json:"student_id" gorm:"index"`
	CourseID          string     `json:"course_id" gorm:"index"`
	EnrollmentDate    time.Time  `json:"enrollment_date"`
	CompletionDate    *time.Time `json:"completion_date"`
	Progress          float64    `json:"progress" gorm:"default:0"` // fraction in [0,1]
	Grade             string     `json:"grade"`
	CertificateIssued bool       `json:"certificate_issued" gorm:"default:false"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
