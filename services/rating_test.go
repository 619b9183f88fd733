package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/models"
)

func TestRateRecomputesAverage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRatingService(db)

	course := createCourse(t, db, models.Course{Title: "Rated", Instructor: "X"})

	for i, r := range []int{5, 3, 4} {
		_, err := svc.Rate(course.ID, r, "", "student-"+string(rune('a'+i)))
		require.NoError(t, err)
	}

	var updated models.Course
	require.NoError(t, db.First(&updated, "id = ?", course.ID).Error)
	assert.Equal(t, 4.0, updated.Rating)
	assert.Equal(t, 3, updated.TotalRatings)
}

func TestRateRoundsToOneDecimal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRatingService(db)

	course := createCourse(t, db, models.Course{Title: "Rated", Instructor: "X"})

	_, err := svc.Rate(course.ID, 5, "", "s1")
	require.NoError(t, err)
	result, err := svc.Rate(course.ID, 4, "", "s2")
	require.NoError(t, err)

	// mean of 5 and 4 is 4.5
	assert.Equal(t, 4.5, result.AverageRating)

	result, err = svc.Rate(course.ID, 4, "", "s3")
	require.NoError(t, err)
	// 13/3 = 4.333... rounds to 4.3
	assert.Equal(t, 4.3, result.AverageRating)
}

func TestRateUpsertsOnStudentCourseKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRatingService(db)

	course := createCourse(t, db, models.Course{Title: "Rated", Instructor: "X"})

	_, err := svc.Rate(course.ID, 2, "meh", "student-1")
	require.NoError(t, err)
	result, err := svc.Rate(course.ID, 5, "much better", "student-1")
	require.NoError(t, err)

	// The second rating replaces the first rather than duplicating it.
	assert.Equal(t, 1, result.TotalRatings)
	assert.Equal(t, 5.0, result.AverageRating)

	var entry models.CourseRating
	require.NoError(t, db.First(&entry, "course_id = ? AND student_id = ?", course.ID, "student-1").Error)
	assert.Equal(t, 5, entry.Rating)
	assert.Equal(t, "much better", entry.Review)
}

func TestRateAnonymousCallsNeverCollide(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRatingService(db)

	course := createCourse(t, db, models.Course{Title: "Rated", Instructor: "X"})

	_, err := svc.Rate(course.ID, 4, "", "")
	require.NoError(t, err)
	result, err := svc.Rate(course.ID, 2, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRatings)
}

func TestRateValidatesRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRatingService(db)

	course := createCourse(t, db, models.Course{Title: "Rated", Instructor: "X"})

	var validationErr *ValidationError
	_, err := svc.Rate(course.ID, 0, "", "s")
	assert.ErrorAs(t, err, &validationErr)
	_, err = svc.Rate(course.ID, 6, "", "s")
	assert.ErrorAs(t, err, &validationErr)
}

func TestRateCourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRatingService(db)

	_, err := svc.Rate("missing", 4, "", "s")
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
