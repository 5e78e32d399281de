package hra_dto

import "hra-service/internal/app/models"

var feelingFrequency = newEnumMapping(map[string]string{
	"never":     "Never",
	"sometimes": "Sometimes",
	"often":     "Often",
	"always":    "Always",
})

type MentalWellnessRecord struct {
	AssessmentID        string `json:"assessmentId"`
	ActorID             string `json:"actorId"`
	AnxietyFrequency    string `json:"anxietyFrequency"`
	DepressionFrequency string `json:"depressionFrequency"`
	InterestLoss        string `json:"interestLoss"`
}

type MentalWellnessCommitResponse struct {
	MentalWellnessID string `json:"mentalWellnessId"`
	Message          string `json:"message"`
}

func MentalWellnessToWire(assessmentID, actorID string, payload *models.MentalWellness) *MentalWellnessRecord {
	return &MentalWellnessRecord{
		AssessmentID:        assessmentID,
		ActorID:             actorID,
		AnxietyFrequency:    feelingFrequency.Wire(payload.AnxietyFrequency),
		DepressionFrequency: feelingFrequency.Wire(payload.DepressionFrequency),
		InterestLoss:        yesNo.Wire(payload.InterestLoss),
	}
}

func MentalWellnessFromWire(wire *MentalWellnessRecord) models.MentalWellness {
	return models.MentalWellness{
		AnxietyFrequency:    feelingFrequency.Local(wire.AnxietyFrequency, ""),
		DepressionFrequency: feelingFrequency.Local(wire.DepressionFrequency, ""),
		InterestLoss:        yesNo.Local(wire.InterestLoss, ""),
	}
}
