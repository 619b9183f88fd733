package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course lifecycle statuses
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// CourseStatuses lists every status a course may hold.
var CourseStatuses = []string{StatusDraft, StatusActive, StatusCompleted, StatusArchived}

// IsValidStatus reports whether status belongs to the enumerated set.
func IsValidStatus(status string) bool {
	for _, s := range CourseStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Course represents a training course
type Course struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"not null"`
	Description      string    `json:"description"`
	Duration         string    `json:"duration"` // human label, e.g. "6 months"
	Instructor       string    `json:"instructor"`
	Category         string    `json:"category" gorm:"default:'General'"`
	Price            float64   `json:"price" gorm:"default:0"`
	Capacity         int       `json:"capacity" gorm:"default:30"`
	Enrolled         int       `json:"enrolled" gorm:"default:0"`
	Status           string    `json:"status" gorm:"default:'draft'"` // draft, active, completed, archived
	Rating           float64   `json:"rating" gorm:"default:0"`       // mean of ratings, 1 decimal
	TotalRatings     int       `json:"total_ratings" gorm:"default:0"`
	Prerequisites    string    `json:"prerequisites"`
	LearningOutcomes string    `json:"learning_outcomes"`
	CourseImage      string    `json:"course_image"`
	DifficultyLevel  string    `json:"difficulty_level" gorm:"default:'intermediate'"` // beginner, intermediate, advanced
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
