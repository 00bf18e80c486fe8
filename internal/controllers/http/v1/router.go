package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-report/docs"
	"weather-report/internal/services/weather"
	"weather-report/pkg/logger"
)

type routes struct {
	service *weather.ReportService
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	reportService *weather.ReportService,
	l *logger.Logger,
) {
	r := &routes{
		service: reportService,
		l:       l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	reports := app.Group("/reports")
	reports.Get("/", r.handleReports)
	reports.Get("/:kind", r.handleReport)
	reports.Post("/:kind", r.handleUploadReport)
}
