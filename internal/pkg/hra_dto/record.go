package hra_dto

import "hra-service/internal/app/models"

var relationType = newEnumMapping(map[string]string{
	"self":   "Self",
	"spouse": "Spouse",
	"child":  "Child",
	"parent": "Parent",
})

// AssessmentRecord is the upstream record shape: authoritative progress
// marker plus subject metadata.
type AssessmentRecord struct {
	AssessmentID         string `json:"assessmentId"`
	EmployeeID           string `json:"employeeId"`
	SubjectID            string `json:"subjectId"`
	Name                 string `json:"name"`
	Gender               string `json:"gender"`
	DateOfBirth          string `json:"dateOfBirth"`
	RelationType         string `json:"relationType"`
	LastAnsweredQuestion int    `json:"lastAnsweredQuestion"`
	Action               string `json:"action"`
	CreatedAt            string `json:"createdAt"`
}

type AssessmentRecordList struct {
	Records []AssessmentRecord `json:"records"`
}

// ProgressMarkerRequest advances the last-answered-question marker; it is
// sent once per successfully committed section, immediately after the
// section's own commit call.
type ProgressMarkerRequest struct {
	AssessmentID string `json:"assessmentId"`
	Question     int    `json:"question"`
}

type ProgressMarkerResponse struct {
	LastAnsweredQuestion int    `json:"lastAnsweredQuestion"`
	Message              string `json:"message"`
}

func RecordFromWire(wire *AssessmentRecord) *models.AssessmentRecord {
	return &models.AssessmentRecord{
		AssessmentID: wire.AssessmentID,
		Subject: models.Subject{
			SubjectID:    wire.SubjectID,
			EmployeeID:   wire.EmployeeID,
			Name:         wire.Name,
			Gender:       wire.Gender,
			DateOfBirth:  wire.DateOfBirth,
			RelationType: relationType.Local(wire.RelationType, "self"),
		},
		LastAnsweredQuestion: wire.LastAnsweredQuestion,
		Action:               wire.Action,
		CreatedAt:            wire.CreatedAt,
	}
}
