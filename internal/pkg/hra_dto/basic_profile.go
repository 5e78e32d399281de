package hra_dto

import "hra-service/internal/app/models"

var maritalStatus = newEnumMapping(map[string]string{
	"single":   "Single",
	"married":  "Married",
	"widowed":  "Widowed",
	"divorced": "Divorced",
})

type BasicProfileRecord struct {
	AssessmentID  string  `json:"assessmentId"`
	ActorID       string  `json:"actorId"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	BloodGroup    string  `json:"bloodGroup"`
	MaritalStatus string  `json:"maritalStatus"`
}

type BasicProfileCommitResponse struct {
	BasicProfileID string `json:"basicProfileId"`
	Message        string `json:"message"`
}

func BasicProfileToWire(assessmentID, actorID string, payload *models.BasicProfile) *BasicProfileRecord {
	return &BasicProfileRecord{
		AssessmentID:  assessmentID,
		ActorID:       actorID,
		Height:        payload.HeightCM,
		Weight:        payload.WeightKG,
		BloodGroup:    payload.BloodGroup,
		MaritalStatus: maritalStatus.Wire(payload.MaritalStatus),
	}
}

func BasicProfileFromWire(wire *BasicProfileRecord) models.BasicProfile {
	return models.BasicProfile{
		HeightCM:      wire.Height,
		WeightKG:      wire.Weight,
		BloodGroup:    wire.BloodGroup,
		MaritalStatus: maritalStatus.Local(wire.MaritalStatus, ""),
	}
}
