package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/models"
)

func TestEnrollNeverExceedsCapacity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	course := createCourse(t, db, models.Course{
		Title:      "Limited Seats",
		Instructor: "X",
		Capacity:   3,
		Status:     models.StatusActive,
	})

	succeeded := 0
	capacityFailures := 0
	for i := 0; i < 7; i++ {
		_, err := svc.Enroll(course.ID, fmt.Sprintf("Student %d", i), fmt.Sprintf("s%d@example.com", i))
		if err == nil {
			succeeded++
			continue
		}
		var capErr *CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		capacityFailures++
	}
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 4, capacityFailures)

	var updated models.Course
	require.NoError(t, db.First(&updated, "id = ?", course.ID).Error)
	assert.Equal(t, 3, updated.Enrolled)
	assert.LessOrEqual(t, updated.Enrolled, updated.Capacity)
}

func TestConcurrentEnrollNeverOverbooks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	course := createCourse(t, db, models.Course{
		Title:      "Limited Seats",
		Instructor: "X",
		Capacity:   3,
		Status:     models.StatusActive,
	})

	const attempts = 10
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.Enroll(course.ID, fmt.Sprintf("Student %d", n), fmt.Sprintf("c%d@example.com", n))
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	capacityFailures := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var capErr *CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		capacityFailures++
	}
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, attempts-3, capacityFailures)

	var updated models.Course
	require.NoError(t, db.First(&updated, "id = ?", course.ID).Error)
	assert.Equal(t, 3, updated.Enrolled)

	// Failed attempts roll back their enrollment row.
	var rows int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("course_id = ?", course.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(3), rows)
}

func TestEnrollReusesStudentByEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	first := createCourse(t, db, models.Course{Title: "A", Instructor: "X", Capacity: 10})
	second := createCourse(t, db, models.Course{Title: "B", Instructor: "X", Capacity: 10})

	res1, err := svc.Enroll(first.ID, "Ada", "ada@example.com")
	require.NoError(t, err)
	res2, err := svc.Enroll(second.ID, "Ada Again", "ada@example.com")
	require.NoError(t, err)

	// A returning student keeps their identity.
	assert.Equal(t, res1.StudentID, res2.StudentID)

	var students int64
	require.NoError(t, db.Model(&models.Student{}).Where("email = ?", "ada@example.com").Count(&students).Error)
	assert.Equal(t, int64(1), students)
}

func TestEnrollDefaultsAnonymousStudent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	course := createCourse(t, db, models.Course{Title: "A", Instructor: "X", Capacity: 10})

	result, err := svc.Enroll(course.ID, "", "")
	require.NoError(t, err)

	var student models.Student
	require.NoError(t, db.First(&student, "id = ?", result.StudentID).Error)
	assert.Equal(t, "Anonymous Student", student.Name)
	assert.Contains(t, student.Email, "@example.com")
}

func TestEnrollCourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	_, err := svc.Enroll("missing", "Ada", "ada@example.com")
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestEnrollLogsEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	course := createCourse(t, db, models.Course{Title: "A", Instructor: "X", Capacity: 5})
	_, err := svc.Enroll(course.ID, "Ada", "ada@example.com")
	require.NoError(t, err)

	var events int64
	require.NoError(t, db.Model(&models.AnalyticsEvent{}).
		Where("event_type = ? AND course_id = ?", "student_enrolled", course.ID).
		Count(&events).Error)
	assert.Equal(t, int64(1), events)
}
