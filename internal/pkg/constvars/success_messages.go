package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Assessment flow messages
	BeginAssessmentSuccessMessage    = "assessment started successfully"
	AdvanceStepSuccessMessage        = "section saved successfully"
	RetreatStepSuccessMessage        = "moved to previous section"
	CompleteAssessmentSuccessMessage = "assessment completed successfully"
	ListAssessmentsSuccessMessage    = "assessments fetched successfully"
	ResumeAssessmentSuccessMessage   = "assessment resumed successfully"

	// Report messages
	GetReportSuccessMessage    = "report compiled successfully"
	RenderReportSuccessMessage = "report rendered successfully"
)
