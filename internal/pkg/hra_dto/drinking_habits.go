package hra_dto

import "hra-service/internal/app/models"

var drinkQuantity = newEnumMapping(map[string]string{
	"oneToTwo":     "1 to 2 drinks",
	"threeToFive":  "3 to 5 drinks",
	"moreThanFive": "More than 5 drinks",
})

type DrinkingHabitsRecord struct {
	AssessmentID string `json:"assessmentId"`
	ActorID      string `json:"actorId"`
	Drinks       string `json:"drinks"`
	Frequency    string `json:"frequency"`
	Quantity     string `json:"quantity"`
}

type DrinkingHabitsCommitResponse struct {
	DrinkingHabitsID string `json:"drinkingHabitsId"`
	Message          string `json:"message"`
}

func DrinkingHabitsToWire(assessmentID, actorID string, payload *models.DrinkingHabits) *DrinkingHabitsRecord {
	return &DrinkingHabitsRecord{
		AssessmentID: assessmentID,
		ActorID:      actorID,
		Drinks:       yesNo.Wire(payload.Drinks),
		Frequency:    habitFrequency.Wire(payload.Frequency),
		Quantity:     drinkQuantity.Wire(payload.Quantity),
	}
}

func DrinkingHabitsFromWire(wire *DrinkingHabitsRecord) models.DrinkingHabits {
	return models.DrinkingHabits{
		Drinks:    yesNo.Local(wire.Drinks, ""),
		Frequency: habitFrequency.Local(wire.Frequency, ""),
		Quantity:  drinkQuantity.Local(wire.Quantity, ""),
	}
}
