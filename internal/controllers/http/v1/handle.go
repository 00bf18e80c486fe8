package http

import (
	"bytes"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-report/internal/repositories"
	"weather-report/internal/services/weather"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsResponse carries both reports for the configured source
type ReportsResponse struct {
	Overview string `json:"overview" example:"2 Day Overview\n..."`
	Daily    string `json:"daily" example:"---- Monday 05 July 2021 ----\n..."`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Unknown report: weekly"`
}

// GetReports godoc
// @Summary Get both reports
// @Description Loads the configured source once and renders the period overview and the daily breakdown
// @Tags Reports
// @Produce json
// @Success 200 {object} ReportsResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports [get]
func (r *routes) handleReports(c *fiber.Ctx) error {
	overview, daily, err := r.service.Reports(c.UserContext())
	if err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to generate reports",
		})
	}

	return c.JSON(ReportsResponse{
		Overview: overview,
		Daily:    daily,
	})
}

// GetReport godoc
// @Summary Get a report
// @Description Renders one report from the configured source
// @Tags Reports
// @Produce plain
// @Param kind path string true "Report kind" Enums(overview, daily)
// @Success 200 {string} string "Rendered report"
// @Failure 404 {object} ErrorResponse "Unknown report kind"
// @Failure 500 {object} ErrorResponse
// @Router /reports/{kind} [get]
func (r *routes) handleReport(c *fiber.Ctx) error {
	kind := weather.ReportKind(c.Params("kind"))

	report, err := r.service.Report(c.UserContext(), kind)
	if err != nil {
		return r.reportError(c, kind, err, fiber.StatusInternalServerError)
	}

	return c.SendString(report)
}

// PostReport godoc
// @Summary Render a report from an uploaded file
// @Description Renders one report from a CSV or XLSX body with a header row and date, min and max (Fahrenheit) columns
// @Tags Reports
// @Accept plain
// @Accept application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce plain
// @Param kind path string true "Report kind" Enums(overview, daily)
// @Param body body string true "CSV text or XLSX workbook"
// @Success 200 {string} string "Rendered report"
// @Failure 400 {object} ErrorResponse "Malformed upload"
// @Failure 404 {object} ErrorResponse "Unknown report kind"
// @Router /reports/{kind} [post]
//
//	curl -X POST --data-binary @weather.csv -H "Content-Type: text/csv" http://localhost:8080/reports/overview
func (r *routes) handleUploadReport(c *fiber.Ctx) error {
	kind := weather.ReportKind(c.Params("kind"))
	body := bytes.NewReader(c.Body())

	var repo repositories.RecordRepository
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), xlsxContentType) {
		repo = repositories.NewXLSXRepository(body, c.Query("sheet"), r.l)
	} else {
		repo = repositories.NewCSVRepository(body, r.l)
	}

	report, err := r.service.ReportFrom(c.UserContext(), repo, kind)
	if err != nil {
		return r.reportError(c, kind, err, fiber.StatusBadRequest)
	}

	return c.SendString(report)
}

func (r *routes) reportError(c *fiber.Ctx, kind weather.ReportKind, err error, status int) error {
	if errors.Is(err, weather.ErrUnknownReport) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Unknown report: " + string(kind),
		})
	}

	r.l.Warning("report request failed", map[string]any{
		"report": string(kind),
		"err":    err.Error(),
	})

	return c.Status(status).JSON(ErrorResponse{
		Error: err.Error(),
	})
}
