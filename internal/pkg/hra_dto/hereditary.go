package hra_dto

import "hra-service/internal/app/models"

var familyRelation = newEnumMapping(map[string]string{
	"father":      "Father",
	"mother":      "Mother",
	"sibling":     "Sibling",
	"grandparent": "Grandparent",
})

type HereditaryRecord struct {
	AssessmentID     string   `json:"assessmentId"`
	ActorID          string   `json:"actorId"`
	FamilyConditions []string `json:"familyConditions"`
	Relation         string   `json:"relation"`
}

type HereditaryCommitResponse struct {
	HereditaryID string `json:"hereditaryId"`
	Message      string `json:"message"`
}

func HereditaryToWire(assessmentID, actorID string, payload *models.Hereditary) *HereditaryRecord {
	return &HereditaryRecord{
		AssessmentID:     assessmentID,
		ActorID:          actorID,
		FamilyConditions: illnessConditions.WireList(payload.FamilyConditions),
		Relation:         familyRelation.Wire(payload.Relation),
	}
}

func HereditaryFromWire(wire *HereditaryRecord) models.Hereditary {
	return models.Hereditary{
		FamilyConditions: illnessConditions.LocalList(wire.FamilyConditions),
		Relation:         familyRelation.Local(wire.Relation, ""),
	}
}
