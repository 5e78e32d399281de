package routers

import (
	"hra-service/internal/app/delivery/http/middlewares"
	"hra-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.Authenticate).Get("/{assessment_id}/report", reportController.GetReport)
	router.With(middlewares.Authenticate).Post("/{assessment_id}/report/render", reportController.RenderReport)
}
