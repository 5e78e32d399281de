package reports

import (
	"context"
	"encoding/json"
	"fmt"
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

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase contracts.ReportUsecase
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase) *ReportController {
	return &ReportController{
		Log:           logger,
		ReportUsecase: reportUsecase,
	}
}

func (ctrl *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.ReportUsecase.Compile(ctx, assessmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, response)
}

func (ctrl *ReportController) RenderReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RenderReport)
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

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	rendered, err := ctrl.ReportUsecase.Render(ctx, assessmentID, request.Target)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// The download target streams the artifact itself; the store target
	// answers with the object location.
	if request.Target == renderTargetDownload {
		w.Header().Set(constvars.HeaderContentType, rendered.ContentType)
		w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", rendered.FileName))
		w.Header().Set(constvars.HeaderContentLength, fmt.Sprintf("%d", rendered.SizeBytes))
		w.WriteHeader(constvars.StatusOK)
		w.Write(rendered.Content)
		return
	}

	rendered.Content = nil
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RenderReportSuccessMessage, rendered)
}
