package hra_dto

import "hra-service/internal/app/models"

type PastHistoryRecord struct {
	AssessmentID      string   `json:"assessmentId"`
	ActorID           string   `json:"actorId"`
	Hospitalized      string   `json:"hospitalized"`
	Surgeries         []string `json:"surgeries"`
	Allergies         string   `json:"allergies"`
	ChronicConditions []string `json:"chronicConditions"`
}

type PastHistoryCommitResponse struct {
	PastHistoryID string `json:"pastHistoryId"`
	Message       string `json:"message"`
}

func PastHistoryToWire(assessmentID, actorID string, payload *models.PastHistory) *PastHistoryRecord {
	return &PastHistoryRecord{
		AssessmentID:      assessmentID,
		ActorID:           actorID,
		Hospitalized:      yesNo.Wire(payload.Hospitalized),
		Surgeries:         payload.Surgeries,
		Allergies:         payload.Allergies,
		ChronicConditions: illnessConditions.WireList(payload.ChronicConditions),
	}
}

func PastHistoryFromWire(wire *PastHistoryRecord) models.PastHistory {
	return models.PastHistory{
		Hospitalized:      yesNo.Local(wire.Hospitalized, ""),
		Surgeries:         wire.Surgeries,
		Allergies:         wire.Allergies,
		ChronicConditions: illnessConditions.LocalList(wire.ChronicConditions),
	}
}
