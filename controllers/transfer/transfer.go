package transferController

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub/middleware"
	"coursehub/services"
)

// TransferController exposes bulk export and import.
type TransferController struct {
	transfer *services.TransferService
}

func NewTransferController(db *gorm.DB) *TransferController {
	return &TransferController{transfer: services.NewTransferService(db)}
}

// ExportCourses serializes the catalog as CSV or JSON.
func (ctrl *TransferController) ExportCourses(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", "json"))

	if format == "csv" {
		data, err := ctrl.transfer.ExportCSV()
		if err != nil {
			return middleware.ServiceError(c, err)
		}
		filename := "courses_" + time.Now().Format("20060102") + ".csv"
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(data)
	}

	export, err := ctrl.transfer.ExportJSON()
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(export)
}

// ImportCourses accepts a multipart CSV upload and imports it with
// partial-success semantics.
func (ctrl *TransferController) ImportCourses(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "No file provided")
	}
	if fileHeader.Filename == "" {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "No file selected")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Only CSV files are supported")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	defer file.Close()

	result, err := ctrl.transfer.ImportCSV(file)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":        "Import completed",
		"imported_count": result.ImportedCount,
		"errors":         result.Errors,
	})
}
