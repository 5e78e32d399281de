package hra_dto

import (
	"testing"

	"hra-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestEnumMapping(t *testing.T) {
	t.Run("Wire Passes Through Unmapped Values", func(t *testing.T) {
		assert.Equal(t, "Yes", yesNo.Wire("yes"))
		assert.Equal(t, "free text answer", yesNo.Wire("free text answer"))
	})

	t.Run("Local Falls Back On Unknown Wire Values", func(t *testing.T) {
		assert.Equal(t, "no", yesNo.Local("No", ""))
		assert.Equal(t, "", yesNo.Local("Legacy Value", ""))
		assert.Equal(t, "self", relationType.Local("Unknown", "self"))
	})

	t.Run("LocalList Drops Unknown Wire Values", func(t *testing.T) {
		locals := illnessConditions.LocalList([]string{"Diabetes", "Retired Condition", "Asthma"})
		assert.Equal(t, []string{"diabetes", "asthma"}, locals)
	})
}

func TestSectionRoundTrips(t *testing.T) {
	t.Run("Presenting Illness", func(t *testing.T) {
		local := models.PresentingIllness{
			Illnesses:       []string{"diabetes", "hypertension"},
			Duration:        "oneToSixMonths",
			UnderMedication: "yes",
		}

		wire := PresentingIllnessToWire("assessment-1", "subject-1", &local)
		assert.Equal(t, "assessment-1", wire.AssessmentID)
		assert.Equal(t, []string{"Diabetes", "Hypertension"}, wire.Illnesses)

		back := PresentingIllnessFromWire(wire)
		assert.Equal(t, local, back)
	})

	t.Run("Drinking Habits", func(t *testing.T) {
		local := models.DrinkingHabits{
			Drinks:    "yes",
			Frequency: "weekly",
			Quantity:  "oneToTwo",
		}

		wire := DrinkingHabitsToWire("assessment-1", "subject-1", &local)
		assert.Equal(t, "Yes", wire.Drinks)
		assert.Equal(t, "Weekly", wire.Frequency)

		back := DrinkingHabitsFromWire(wire)
		assert.Equal(t, local, back)
	})

	t.Run("General Details Carries Subject", func(t *testing.T) {
		subject := models.Subject{
			SubjectID:    "subject-1",
			EmployeeID:   "employee-1",
			Name:         "Asha Rao",
			Gender:       "female",
			DateOfBirth:  "1990-04-12",
			RelationType: "spouse",
		}

		wire := GeneralDetailsToWire(&subject, &models.GeneralDetails{Mood: "good"})
		assert.Equal(t, "employee-1", wire.EmployeeID)
		assert.Equal(t, "Spouse", wire.RelationType)
		assert.Equal(t, "Good", wire.Mood)

		back := GeneralDetailsFromWire(wire)
		assert.Equal(t, "good", back.Mood)
	})
}

func TestRecordFromWire(t *testing.T) {
	record := RecordFromWire(&AssessmentRecord{
		AssessmentID:         "assessment-1",
		EmployeeID:           "employee-1",
		SubjectID:            "subject-1",
		Name:                 "Asha Rao",
		RelationType:         "Spouse",
		LastAnsweredQuestion: 7,
		Action:               "Resume",
	})

	assert.Equal(t, "assessment-1", record.AssessmentID)
	assert.Equal(t, "spouse", record.Subject.RelationType)
	assert.Equal(t, 7, record.LastAnsweredQuestion)
	assert.Equal(t, "Resume", record.Action)
}
