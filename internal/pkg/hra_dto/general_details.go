package hra_dto

import "hra-service/internal/app/models"

var mood = newEnumMapping(map[string]string{
	"happy":    "Happy",
	"good":     "Good",
	"okay":     "Okay",
	"low":      "Low",
	"stressed": "Stressed",
})

// GeneralDetailsRecord is the wire shape of section 1. Committing it is what
// creates the assessment upstream; the returned GeneralDetailsID becomes the
// identifier every subsequent section call carries.
type GeneralDetailsRecord struct {
	EmployeeID   string `json:"employeeId"`
	SubjectID    string `json:"subjectId"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	RelationType string `json:"relationType"`
	Mood         string `json:"mood"`
}

type GeneralDetailsCommitResponse struct {
	GeneralDetailsID string `json:"generalDetailsId"`
	Message          string `json:"message"`
}

func GeneralDetailsToWire(subject *models.Subject, payload *models.GeneralDetails) *GeneralDetailsRecord {
	return &GeneralDetailsRecord{
		EmployeeID:   subject.EmployeeID,
		SubjectID:    subject.SubjectID,
		Name:         subject.Name,
		Gender:       subject.Gender,
		DateOfBirth:  subject.DateOfBirth,
		RelationType: relationType.Wire(subject.RelationType),
		Mood:         mood.Wire(payload.Mood),
	}
}

func GeneralDetailsFromWire(wire *GeneralDetailsRecord) models.GeneralDetails {
	return models.GeneralDetails{
		Mood: mood.Local(wire.Mood, ""),
	}
}
