package hra_dto

import "hra-service/internal/app/models"

var exerciseFrequency = newEnumMapping(map[string]string{
	"never":     "Never",
	"onceAWeek": "Once a week",
	"twoToFour": "2 to 4 times a week",
	"daily":     "Daily",
})

var exerciseType = newEnumMapping(map[string]string{
	"walking": "Walking",
	"running": "Running",
	"gym":     "Gym",
	"yoga":    "Yoga",
	"sports":  "Sports",
})

var sittingHours = newEnumMapping(map[string]string{
	"lessThan4":   "Less than 4 hours",
	"fourToEight": "4 to 8 hours",
	"moreThan8":   "More than 8 hours",
})

type FitnessRecord struct {
	AssessmentID      string   `json:"assessmentId"`
	ActorID           string   `json:"actorId"`
	ExerciseFrequency string   `json:"exerciseFrequency"`
	ExerciseTypes     []string `json:"exerciseTypes"`
	SittingHours      string   `json:"sittingHours"`
}

type FitnessCommitResponse struct {
	FitnessID string `json:"fitnessId"`
	Message   string `json:"message"`
}

func FitnessToWire(assessmentID, actorID string, payload *models.Fitness) *FitnessRecord {
	return &FitnessRecord{
		AssessmentID:      assessmentID,
		ActorID:           actorID,
		ExerciseFrequency: exerciseFrequency.Wire(payload.ExerciseFrequency),
		ExerciseTypes:     exerciseType.WireList(payload.ExerciseTypes),
		SittingHours:      sittingHours.Wire(payload.SittingHours),
	}
}

func FitnessFromWire(wire *FitnessRecord) models.Fitness {
	return models.Fitness{
		ExerciseFrequency: exerciseFrequency.Local(wire.ExerciseFrequency, ""),
		ExerciseTypes:     exerciseType.LocalList(wire.ExerciseTypes),
		SittingHours:      sittingHours.Local(wire.SittingHours, ""),
	}
}
