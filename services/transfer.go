package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"coursehub/models"
)

// exportColumns is the fixed projection and column order of an export.
var exportColumns = []string{
	"id", "title", "description", "duration", "instructor", "category",
	"price", "capacity", "enrolled", "status", "rating", "created_at", "updated_at",
}

// TransferService handles bulk export and import of course records.
type TransferService struct {
	DB *gorm.DB
}

func NewTransferService(db *gorm.DB) *TransferService {
	return &TransferService{DB: db}
}

// ExportRow is one course in the export projection.
type ExportRow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Instructor  string    `json:"instructor"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Enrolled    int       `json:"enrolled"`
	Status      string    `json:"status"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseExport is the structured export document.
type CourseExport struct {
	ExportDate   time.Time   `json:"export_date"`
	TotalCourses int         `json:"total_courses"`
	Courses      []ExportRow `json:"courses"`
}

func (s *TransferService) exportRows() ([]ExportRow, error) {
	var courses []models.Course
	err := s.DB.Order("created_at DESC").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	rows := make([]ExportRow, len(courses))
	for i, c := range courses {
		rows[i] = ExportRow{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Duration:    c.Duration,
			Instructor:  c.Instructor,
			Category:    c.Category,
			Price:       c.Price,
			Capacity:    c.Capacity,
			Enrolled:    c.Enrolled,
			Status:      c.Status,
			Rating:      c.Rating,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
	}
	return rows, nil
}

// ExportJSON builds the structured export document.
func (s *TransferService) ExportJSON() (*CourseExport, error) {
	rows, err := s.exportRows()
	if err != nil {
		return nil, err
	}
	return &CourseExport{
		ExportDate:   time.Now(),
		TotalCourses: len(rows),
		Courses:      rows,
	}, nil
}

// ExportCSV serializes the export projection as header + rows.
func (s *TransferService) ExportCSV() ([]byte, error) {
	rows, err := s.exportRows()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.ID,
			r.Title,
			r.Description,
			r.Duration,
			r.Instructor,
			r.Category,
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			strconv.Itoa(r.Capacity),
			strconv.Itoa(r.Enrolled),
			r.Status,
			strconv.FormatFloat(r.Rating, 'f', -1, 64),
			r.CreatedAt.Format(time.RFC3339),
			r.UpdatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportResult reports a partial-success import.
type ImportResult struct {
	ImportedCount int      `json:"imported_count"`
	Errors        []string `json:"errors"`
}

// ImportCSV inserts one course per CSV record. Rows missing title or
// instructor, or with malformed numbers, are reported and skipped
// without aborting the batch. At most the first 10 errors are
// returned.
func (s *TransferService) ImportCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ValidationError{Message: "Invalid CSV file: " + err.Error()}
	}
	if len(records) < 2 {
		return &ImportResult{ImportedCount: 0, Errors: []string{}}, nil
	}

	// Map header names to indices so column order is irrelevant.
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(strings.ToLower(h))] = i
	}

	imported := 0
	errs := []string{}
	for rowNum, row := range records[1:] {
		title := getField(row, headerIndex, "title")
		instructor := getField(row, headerIndex, "instructor")
		if title == "" || instructor == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Missing required fields", rowNum+1))
			continue
		}

		price := 0.0
		if raw := getField(row, headerIndex, "price"); raw != "" {
			price, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				errs = append(errs, fmt.Sprintf("Row %d: %v", rowNum+1, err))
				continue
			}
		}
		capacity := 30
		if raw := getField(row, headerIndex, "capacity"); raw != "" {
			capacity, err = strconv.Atoi(raw)
			if err != nil {
				errs = append(errs, fmt.Sprintf("Row %d: %v", rowNum+1, err))
				continue
			}
		}

		course := models.Course{
			Title:       title,
			Description: getField(row, headerIndex, "description"),
			Duration:    getField(row, headerIndex, "duration"),
			Instructor:  instructor,
			Category:    getField(row, headerIndex, "category"),
			Price:       price,
			Capacity:    capacity,
			Status:      getField(row, headerIndex, "status"),
		}
		if course.Category == "" {
			course.Category = "General"
		}
		if course.Status == "" {
			course.Status = models.StatusDraft
		}

		if err := s.DB.Create(&course).Error; err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: %v", rowNum+1, err))
			continue
		}
		imported++
	}

	if len(errs) > 10 {
		errs = errs[:10]
	}
	return &ImportResult{ImportedCount: imported, Errors: errs}, nil
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
