package hra_dto

import "hra-service/internal/app/models"

var dietType = newEnumMapping(map[string]string{
	"veg":    "Vegetarian",
	"nonVeg": "Non-Vegetarian",
	"vegan":  "Vegan",
	"mixed":  "Mixed",
})

var mealsPerDay = newEnumMapping(map[string]string{
	"two":           "2",
	"three":         "3",
	"moreThanThree": "More than 3",
})

var waterIntake = newEnumMapping(map[string]string{
	"lessThan1L": "Less than 1 litre",
	"oneToTwoL":  "1 to 2 litres",
	"moreThan2L": "More than 2 litres",
})

type EatingHabitsRecord struct {
	AssessmentID  string `json:"assessmentId"`
	ActorID       string `json:"actorId"`
	DietType      string `json:"dietType"`
	MealsPerDay   string `json:"mealsPerDay"`
	WaterIntake   string `json:"waterIntake"`
	JunkFrequency string `json:"junkFrequency"`
}

type EatingHabitsCommitResponse struct {
	EatingHabitsID string `json:"eatingHabitsId"`
	Message        string `json:"message"`
}

func EatingHabitsToWire(assessmentID, actorID string, payload *models.EatingHabits) *EatingHabitsRecord {
	return &EatingHabitsRecord{
		AssessmentID:  assessmentID,
		ActorID:       actorID,
		DietType:      dietType.Wire(payload.DietType),
		MealsPerDay:   mealsPerDay.Wire(payload.MealsPerDay),
		WaterIntake:   waterIntake.Wire(payload.WaterIntake),
		JunkFrequency: habitFrequency.Wire(payload.JunkFrequency),
	}
}

func EatingHabitsFromWire(wire *EatingHabitsRecord) models.EatingHabits {
	return models.EatingHabits{
		DietType:      dietType.Local(wire.DietType, ""),
		MealsPerDay:   mealsPerDay.Local(wire.MealsPerDay, ""),
		WaterIntake:   waterIntake.Local(wire.WaterIntake, ""),
		JunkFrequency: habitFrequency.Local(wire.JunkFrequency, ""),
	}
}
