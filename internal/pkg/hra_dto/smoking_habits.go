package hra_dto

import "hra-service/internal/app/models"

var cigarettesPerDay = newEnumMapping(map[string]string{
	"lessThan5":   "Less than 5",
	"fiveToTen":   "5 to 10",
	"moreThanTen": "More than 10",
})

var yearsSmoking = newEnumMapping(map[string]string{
	"lessThan5":   "Less than 5 years",
	"fiveToTen":   "5 to 10 years",
	"moreThanTen": "More than 10 years",
})

type SmokingHabitsRecord struct {
	AssessmentID     string `json:"assessmentId"`
	ActorID          string `json:"actorId"`
	Smokes           string `json:"smokes"`
	CigarettesPerDay string `json:"cigarettesPerDay"`
	YearsSmoking     string `json:"yearsSmoking"`
	TriedQuitting    string `json:"triedQuitting"`
}

type SmokingHabitsCommitResponse struct {
	SmokingHabitsID string `json:"smokingHabitsId"`
	Message         string `json:"message"`
}

func SmokingHabitsToWire(assessmentID, actorID string, payload *models.SmokingHabits) *SmokingHabitsRecord {
	return &SmokingHabitsRecord{
		AssessmentID:     assessmentID,
		ActorID:          actorID,
		Smokes:           yesNo.Wire(payload.Smokes),
		CigarettesPerDay: cigarettesPerDay.Wire(payload.CigarettesPerDay),
		YearsSmoking:     yearsSmoking.Wire(payload.YearsSmoking),
		TriedQuitting:    yesNo.Wire(payload.TriedQuitting),
	}
}

func SmokingHabitsFromWire(wire *SmokingHabitsRecord) models.SmokingHabits {
	return models.SmokingHabits{
		Smokes:           yesNo.Local(wire.Smokes, ""),
		CigarettesPerDay: cigarettesPerDay.Local(wire.CigarettesPerDay, ""),
		YearsSmoking:     yearsSmoking.Local(wire.YearsSmoking, ""),
		TriedQuitting:    yesNo.Local(wire.TriedQuitting, ""),
	}
}
