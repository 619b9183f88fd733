package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub/models"
)

// EnrollmentService enrolls students into courses.
type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// EnrollmentResult reports the identities minted or reused by Enroll.
type EnrollmentResult struct {
	EnrollmentID string `json:"enrollment_id"`
	StudentID    string `json:"student_id"`
}

// Enroll registers a student for a course. The student record is
// looked up by email and created when absent, so a returning student
// keeps their identity. The capacity check and the enrolled increment
// run in one transaction; the increment is conditional on
// enrolled < capacity so concurrent attempts cannot overbook.
func (s *EnrollmentService) Enroll(courseID, studentName, studentEmail string) (*EnrollmentResult, error) {
	if studentName == "" {
		studentName = "Anonymous Student"
	}
	if studentEmail == "" {
		studentEmail = fmt.Sprintf("student_%s@example.com", uuid.NewString()[:8])
	}

	var result EnrollmentResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Course"}
			}
			return err
		}
		if course.Enrolled >= course.Capacity {
			return &CapacityExceededError{CourseID: courseID}
		}

		var student models.Student
		err := tx.Where("email = ?", studentEmail).First(&student).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			student = models.Student{Name: studentName, Email: studentEmail}
			if err := tx.Create(&student).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		enrollment := models.Enrollment{
			StudentID:      student.ID,
			CourseID:       courseID,
			EnrollmentDate: time.Now(),
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		// Conditional increment; zero rows means a concurrent enroll
		// took the last seat after our pre-check.
		res := tx.Model(&models.Course{}).
			Where("id = ? AND enrolled < capacity", courseID).
			UpdateColumn("enrolled", gorm.Expr("enrolled + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &CapacityExceededError{CourseID: courseID}
		}

		result = EnrollmentResult{EnrollmentID: enrollment.ID, StudentID: student.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	LogEvent(s.DB, "student_enrolled", courseID, map[string]interface{}{
		"student_id": result.StudentID,
	})
	return &result, nil
}
