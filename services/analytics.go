package services

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"coursehub/models"
)

// LogEvent appends an analytics event. Best-effort: failures are
// logged and never surfaced to the caller.
func LogEvent(db *gorm.DB, eventType, courseID string, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("Failed to encode analytics payload")
		return
	}
	event := models.AnalyticsEvent{
		EventType: eventType,
		CourseID:  courseID,
		Data:      data,
		Timestamp: time.Now(),
	}
	if err := db.Create(&event).Error; err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("Failed to log analytics event")
	}
}

// AnalyticsService computes dashboard aggregates freshly per request.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type DashboardStats struct {
	TotalCourses     int64   `json:"total_courses"`
	TotalStudents    int64   `json:"total_students"`
	TotalInstructors int64   `json:"total_instructors"`
	AvgRating        float64 `json:"avg_rating"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type TrendPoint struct {
	Date        string `json:"date"`
	Enrollments int64  `json:"enrollments"`
}

type TopCourse struct {
	Title    string  `json:"title"`
	Enrolled int     `json:"enrolled"`
	Capacity int     `json:"capacity"`
	Rating   float64 `json:"rating"`
	FillRate float64 `json:"fill_rate"`
}

type Dashboard struct {
	Stats                DashboardStats  `json:"stats"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
	EnrollmentTrends     []TrendPoint    `json:"enrollment_trends"`
	TopCourses           []TopCourse     `json:"top_courses"`
}

// Dashboard aggregates totals, category distribution, the trailing
// 30-day enrollment trend and the top five active courses.
func (s *AnalyticsService) Dashboard() (*Dashboard, error) {
	var stats DashboardStats

	if err := s.DB.Model(&models.Course{}).Count(&stats.TotalCourses).Error; err != nil {
		return nil, err
	}
	err := s.DB.Model(&models.Course{}).
		Select("COALESCE(SUM(enrolled), 0)").
		Scan(&stats.TotalStudents).Error
	if err != nil {
		return nil, err
	}
	err = s.DB.Model(&models.Course{}).
		Distinct("instructor").
		Count(&stats.TotalInstructors).Error
	if err != nil {
		return nil, err
	}
	var avgRating float64
	err = s.DB.Model(&models.Course{}).
		Where("rating > 0").
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avgRating).Error
	if err != nil {
		return nil, err
	}
	stats.AvgRating = math.Round(avgRating*10) / 10

	categories := []CategoryCount{}
	err = s.DB.Model(&models.Course{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	// Trailing 30-day window, bucketed by calendar day.
	cutoff := now.BeginningOfDay().AddDate(0, 0, -30)
	trends := []TrendPoint{}
	err = s.DB.Model(&models.Enrollment{}).
		Select("DATE(enrollment_date) AS date, COUNT(*) AS enrollments").
		Where("enrollment_date >= ?", cutoff).
		Group("DATE(enrollment_date)").
		Order("date").
		Scan(&trends).Error
	if err != nil {
		return nil, err
	}

	top, err := s.topCourses(5)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:                stats,
		CategoryDistribution: categories,
		EnrollmentTrends:     trends,
		TopCourses:           top,
	}, nil
}

// topCourses ranks active courses by rating, then fill rate.
func (s *AnalyticsService) topCourses(limit int) ([]TopCourse, error) {
	var courses []models.Course
	err := s.DB.Where("status = ?", models.StatusActive).Find(&courses).Error
	if err != nil {
		return nil, err
	}

	top := make([]TopCourse, 0, len(courses))
	for _, c := range courses {
		top = append(top, TopCourse{
			Title:    c.Title,
			Enrolled: c.Enrolled,
			Capacity: c.Capacity,
			Rating:   c.Rating,
			FillRate: FillRate(c.Enrolled, c.Capacity),
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Rating != top[j].Rating {
			return top[i].Rating > top[j].Rating
		}
		return top[i].FillRate > top[j].FillRate
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

// FillRate is enrolled/capacity x 100 rounded to one decimal, 0 when
// capacity is 0.
func FillRate(enrolled, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return math.Round(float64(enrolled)/float64(capacity)*1000) / 10
}
