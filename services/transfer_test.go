package services

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := setupTestDB(t)
	createCourse(t, source, models.Course{
		Title:       "Executive Leadership Mastery",
		Description: "Lead at scale",
		Duration:    "12 weeks",
		Instructor:  "Dr. Sarah Johnson",
		Category:    "Leadership",
		Price:       299.99,
		Capacity:    25,
		Status:      models.StatusActive,
	})

	data, err := NewTransferService(source).ExportCSV()
	require.NoError(t, err)

	target := setupTestDB(t)
	result, err := NewTransferService(target).ImportCSV(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ImportedCount)
	assert.Empty(t, result.Errors)

	var imported models.Course
	require.NoError(t, target.First(&imported, "title = ?", "Executive Leadership Mastery").Error)
	assert.Equal(t, "Lead at scale", imported.Description)
	assert.Equal(t, "12 weeks", imported.Duration)
	assert.Equal(t, "Dr. Sarah Johnson", imported.Instructor)
	assert.Equal(t, "Leadership", imported.Category)
	assert.Equal(t, 299.99, imported.Price)
	assert.Equal(t, 25, imported.Capacity)
	assert.Equal(t, models.StatusActive, imported.Status)
}

func TestExportCSVHeader(t *testing.T) {
	db := setupTestDB(t)
	data, err := NewTransferService(db).ExportCSV()
	require.NoError(t, err)

	header := strings.SplitN(string(data), "\n", 2)[0]
	assert.Equal(t, strings.Join(exportColumns, ","), strings.TrimRight(header, "\r"))
}

func TestExportJSONDocument(t *testing.T) {
	db := setupTestDB(t)
	createCourse(t, db, models.Course{Title: "A", Instructor: "X"})
	createCourse(t, db, models.Course{Title: "B", Instructor: "Y"})

	doc, err := NewTransferService(db).ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, 2, doc.TotalCourses)
	assert.Len(t, doc.Courses, 2)
	assert.False(t, doc.ExportDate.IsZero())
}

func TestImportSkipsRowsMissingRequiredFields(t *testing.T) {
	db := setupTestDB(t)

	csvData := "title,instructor,category\n" +
		"Good Course,Jane Doe,Leadership\n" +
		"Broken Course,,Technical\n" +
		"Another Good One,John Roe,\n"

	result, err := NewTransferService(db).ImportCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, result.ImportedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 2: Missing required fields", result.Errors[0])

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)

	// Empty price/capacity cells take the defaults rather than erroring.
	csvData := "title,instructor,price,capacity\nMinimal,Jane Doe,,\n"
	result, err := NewTransferService(db).ImportCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ImportedCount)
	assert.Empty(t, result.Errors)

	var course models.Course
	require.NoError(t, db.First(&course, "title = ?", "Minimal").Error)
	assert.Equal(t, "General", course.Category)
	assert.Equal(t, models.StatusDraft, course.Status)
	assert.Equal(t, 0.0, course.Price)
	assert.Equal(t, 30, course.Capacity)
}

func TestImportReportsMalformedNumbers(t *testing.T) {
	db := setupTestDB(t)

	csvData := "title,instructor,price,capacity\n" +
		"Bad Price,Jane Doe,abc,10\n" +
		"Bad Capacity,Jane Doe,9.99,many\n"

	result, err := NewTransferService(db).ImportCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Zero(t, result.ImportedCount)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Row 1:")
	assert.Contains(t, result.Errors[1], "Row 2:")
}

func TestImportCapsErrorsAtTen(t *testing.T) {
	db := setupTestDB(t)

	var sb strings.Builder
	sb.WriteString("title,instructor\n")
	for i := 0; i < 15; i++ {
		sb.WriteString(fmt.Sprintf("Course %d,\n", i))
	}

	result, err := NewTransferService(db).ImportCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Zero(t, result.ImportedCount)
	assert.Len(t, result.Errors, 10)
}

func TestImportHeaderOnlyFile(t *testing.T) {
	db := setupTestDB(t)

	result, err := NewTransferService(db).ImportCSV(strings.NewReader("title,instructor\n"))
	require.NoError(t, err)
	assert.Zero(t, result.ImportedCount)
	assert.Empty(t, result.Errors)
}

func TestImportRejectsMalformedCSV(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewTransferService(db).ImportCSV(strings.NewReader("a,\"b\nno closing quote"))
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
