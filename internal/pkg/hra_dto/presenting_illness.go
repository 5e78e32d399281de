package hra_dto

import "hra-service/internal/app/models"

var illnessDuration = newEnumMapping(map[string]string{
	"lessThanMonth":     "Less than a month",
	"oneToSixMonths":    "1 to 6 months",
	"moreThanSixMonths": "More than 6 months",
})

type PresentingIllnessRecord struct {
	AssessmentID    string   `json:"assessmentId"`
	ActorID         string   `json:"actorId"`
	Illnesses       []string `json:"illnesses"`
	Duration        string   `json:"duration"`
	UnderMedication string   `json:"underMedication"`
}

type PresentingIllnessCommitResponse struct {
	PresentingIllnessID string `json:"presentingIllnessId"`
	Message             string `json:"message"`
}

func PresentingIllnessToWire(assessmentID, actorID string, payload *models.PresentingIllness) *PresentingIllnessRecord {
	return &PresentingIllnessRecord{
		AssessmentID:    assessmentID,
		ActorID:         actorID,
		Illnesses:       illnessConditions.WireList(payload.Illnesses),
		Duration:        illnessDuration.Wire(payload.Duration),
		UnderMedication: yesNo.Wire(payload.UnderMedication),
	}
}

func PresentingIllnessFromWire(wire *PresentingIllnessRecord) models.PresentingIllness {
	return models.PresentingIllness{
		Illnesses:       illnessConditions.LocalList(wire.Illnesses),
		Duration:        illnessDuration.Local(wire.Duration, ""),
		UnderMedication: yesNo.Local(wire.UnderMedication, ""),
	}
}
