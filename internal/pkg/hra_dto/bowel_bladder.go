package hra_dto

import "hra-service/internal/app/models"

var bowelRegularity = newEnumMapping(map[string]string{
	"regular":   "Regular",
	"irregular": "Irregular",
})

type BowelBladderRecord struct {
	AssessmentID    string `json:"assessmentId"`
	ActorID         string `json:"actorId"`
	BowelRegularity string `json:"bowelRegularity"`
	Constipation    string `json:"constipation"`
	UrinaryTrouble  string `json:"urinaryTrouble"`
	BloodInStool    string `json:"bloodInStool"`
}

type BowelBladderCommitResponse struct {
	BowelBladderID string `json:"bowelBladderId"`
	Message        string `json:"message"`
}

func BowelBladderToWire(assessmentID, actorID string, payload *models.BowelBladder) *BowelBladderRecord {
	return &BowelBladderRecord{
		AssessmentID:    assessmentID,
		ActorID:         actorID,
		BowelRegularity: bowelRegularity.Wire(payload.BowelRegularity),
		Constipation:    yesNo.Wire(payload.Constipation),
		UrinaryTrouble:  yesNo.Wire(payload.UrinaryTrouble),
		BloodInStool:    yesNo.Wire(payload.BloodInStool),
	}
}

func BowelBladderFromWire(wire *BowelBladderRecord) models.BowelBladder {
	return models.BowelBladder{
		BowelRegularity: bowelRegularity.Local(wire.BowelRegularity, ""),
		Constipation:    yesNo.Local(wire.Constipation, ""),
		UrinaryTrouble:  yesNo.Local(wire.UrinaryTrouble, ""),
		BloodInStool:    yesNo.Local(wire.BloodInStool, ""),
	}
}
