package routers

import (
	"hra-service/internal/app/delivery/http/middlewares"
	"hra-service/internal/app/services/core/assessments"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	router.With(middlewares.Authenticate).Post("/", assessmentController.BeginAssessment)
	router.With(middlewares.Authenticate).Get("/", assessmentController.ListAssessments)
	router.With(middlewares.Authenticate, middlewares.AdvanceRateLimit).Post("/{assessment_id}/advance", assessmentController.AdvanceAssessment)
	router.With(middlewares.Authenticate).Post("/{assessment_id}/retreat", assessmentController.RetreatAssessment)
	router.With(middlewares.Authenticate).Post("/{assessment_id}/resume", assessmentController.ResumeAssessment)
}
