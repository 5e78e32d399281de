package hra_dto

import "hra-service/internal/app/models"

var sleepHours = newEnumMapping(map[string]string{
	"lessThan7":    "Less than 7 hours",
	"sevenToEight": "7 to 8 hours",
	"moreThan8":    "More than 8 hours",
})

type SleepHabitsRecord struct {
	AssessmentID         string `json:"assessmentId"`
	ActorID              string `json:"actorId"`
	HoursOfSleep         string `json:"hoursOfSleep"`
	TroubleFallingAsleep string `json:"troubleFallingAsleep"`
	Snoring              string `json:"snoring"`
	WakeRested           string `json:"wakeRested"`
}

type SleepHabitsCommitResponse struct {
	SleepHabitsID string `json:"sleepHabitsId"`
	Message       string `json:"message"`
}

func SleepHabitsToWire(assessmentID, actorID string, payload *models.SleepHabits) *SleepHabitsRecord {
	return &SleepHabitsRecord{
		AssessmentID:         assessmentID,
		ActorID:              actorID,
		HoursOfSleep:         sleepHours.Wire(payload.HoursOfSleep),
		TroubleFallingAsleep: yesNo.Wire(payload.TroubleFallingAsleep),
		Snoring:              yesNo.Wire(payload.Snoring),
		WakeRested:           yesNo.Wire(payload.WakeRested),
	}
}

func SleepHabitsFromWire(wire *SleepHabitsRecord) models.SleepHabits {
	return models.SleepHabits{
		HoursOfSleep:         sleepHours.Local(wire.HoursOfSleep, ""),
		TroubleFallingAsleep: yesNo.Local(wire.TroubleFallingAsleep, ""),
		Snoring:              yesNo.Local(wire.Snoring, ""),
		WakeRested:           yesNo.Local(wire.WakeRested, ""),
	}
}
