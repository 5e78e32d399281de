package hra_dto

import "hra-service/internal/app/models"

var workStressLevel = newEnumMapping(map[string]string{
	"low":      "Low",
	"moderate": "Moderate",
	"high":     "High",
})

var stressReason = newEnumMapping(map[string]string{
	"workload":        "Workload",
	"deadlines":       "Tight deadlines",
	"workEnvironment": "Work environment",
	"management":      "Management",
	"commute":         "Commute",
})

var workHoursPerDay = newEnumMapping(map[string]string{
	"lessThan8":  "Less than 8 hours",
	"eightToTen": "8 to 10 hours",
	"moreThan10": "More than 10 hours",
})

type EmployeeWellnessRecord struct {
	AssessmentID    string   `json:"assessmentId"`
	ActorID         string   `json:"actorId"`
	WorkStressLevel string   `json:"workStressLevel"`
	StressReasons   []string `json:"stressReasons"`
	WorkLifeBalance string   `json:"workLifeBalance"`
	WorkHoursPerDay string   `json:"workHoursPerDay"`
}

type EmployeeWellnessCommitResponse struct {
	EmployeeWellnessID string `json:"employeeWellnessId"`
	Message            string `json:"message"`
}

func EmployeeWellnessToWire(assessmentID, actorID string, payload *models.EmployeeWellness) *EmployeeWellnessRecord {
	return &EmployeeWellnessRecord{
		AssessmentID:    assessmentID,
		ActorID:         actorID,
		WorkStressLevel: workStressLevel.Wire(payload.WorkStressLevel),
		StressReasons:   stressReason.WireList(payload.StressReasons),
		WorkLifeBalance: yesNo.Wire(payload.WorkLifeBalance),
		WorkHoursPerDay: workHoursPerDay.Wire(payload.WorkHoursPerDay),
	}
}

func EmployeeWellnessFromWire(wire *EmployeeWellnessRecord) models.EmployeeWellness {
	return models.EmployeeWellness{
		WorkStressLevel: workStressLevel.Local(wire.WorkStressLevel, ""),
		StressReasons:   stressReason.LocalList(wire.StressReasons),
		WorkLifeBalance: yesNo.Local(wire.WorkLifeBalance, ""),
		WorkHoursPerDay: workHoursPerDay.Local(wire.WorkHoursPerDay, ""),
	}
}
