package constvars

const (
	URLParamAssessmentID = "assessment_id"
)

const (
	URLQueryParamAction = "action"
)
