package responses

import "hra-service/internal/app/models"

// AssessmentProgress is returned by every sequencer transition: where the
// user is now and what the server-authoritative marker says.
type AssessmentProgress struct {
	AssessmentID         string `json:"assessment_id"`
	CurrentStep          int    `json:"current_step"`
	StepName             string `json:"step_name"`
	LastAnsweredQuestion int    `json:"last_answered_question"`
	Complete             bool   `json:"complete"`
}

type AssessmentRecord struct {
	AssessmentID         string `json:"assessment_id"`
	SubjectName          string `json:"subject_name"`
	RelationType         string `json:"relation_type"`
	LastAnsweredQuestion int    `json:"last_answered_question"`
	Action               string `json:"action"`
	CreatedAt            string `json:"created_at"`
}

// ResumeResult carries the re-entry step plus the fully rehydrated draft so
// the portal can repopulate every section form in one round trip.
type ResumeResult struct {
	ResumeStep int                     `json:"resume_step"`
	StepName   string                  `json:"step_name"`
	Draft      *models.AssessmentDraft `json:"draft"`
}
