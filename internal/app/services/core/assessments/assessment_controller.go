package assessments

import (
	"context"
	"encoding/json"
	"hra-service/internal/app/contracts"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/dto/requests"
	"hra-service/internal/pkg/exceptions"
	"hra-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	ResumeUsecase     contracts.ResumeUsecase
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, resumeUsecase contracts.ResumeUsecase) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		ResumeUsecase:     resumeUsecase,
	}
}

func (ctrl *AssessmentController) BeginAssessment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BeginAssessment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	employeeID := utils.GetSubjectID(r.Context())
	if employeeID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.Begin(ctx, employeeID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BeginAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) AdvanceAssessment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AdvanceStep)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.Advance(ctx, assessmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.AdvanceStepSuccessMessage
	if response.Complete {
		message = constvars.CompleteAssessmentSuccessMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *AssessmentController) RetreatAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.Retreat(ctx, assessmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RetreatStepSuccessMessage, response)
}

func (ctrl *AssessmentController) ListAssessments(w http.ResponseWriter, r *http.Request) {
	employeeID := utils.GetSubjectID(r.Context())
	if employeeID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	action := r.URL.Query().Get(constvars.URLQueryParamAction)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.ListRecords(ctx, employeeID, action)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAssessmentsSuccessMessage, response)
}

func (ctrl *AssessmentController) ResumeAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	// Resume fans out to every section endpoint, so it gets a wider timeout
	// than the single-section operations.
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.ResumeUsecase.Resolve(ctx, assessmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResumeAssessmentSuccessMessage, response)
}
