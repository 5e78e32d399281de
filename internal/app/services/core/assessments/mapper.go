package assessments

import (
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/dto/requests"
)

func toModelBasicProfile(request *requests.BasicProfile) *models.BasicProfile {
	return &models.BasicProfile{
		HeightCM:      request.HeightCM,
		WeightKG:      request.WeightKG,
		BloodGroup:    request.BloodGroup,
		MaritalStatus: request.MaritalStatus,
	}
}

func toModelPresentingIllness(request *requests.PresentingIllness) *models.PresentingIllness {
	return &models.PresentingIllness{
		Illnesses:       request.Illnesses,
		Duration:        request.Duration,
		UnderMedication: request.UnderMedication,
	}
}

func toModelPastHistory(request *requests.PastHistory) *models.PastHistory {
	return &models.PastHistory{
		Hospitalized:      request.Hospitalized,
		Surgeries:         request.Surgeries,
		Allergies:         request.Allergies,
		ChronicConditions: request.ChronicConditions,
	}
}

func toModelSleepHabits(request *requests.SleepHabits) *models.SleepHabits {
	return &models.SleepHabits{
		HoursOfSleep:         request.HoursOfSleep,
		TroubleFallingAsleep: request.TroubleFallingAsleep,
		Snoring:              request.Snoring,
		WakeRested:           request.WakeRested,
	}
}

func toModelEatingHabits(request *requests.EatingHabits) *models.EatingHabits {
	return &models.EatingHabits{
		DietType:      request.DietType,
		MealsPerDay:   request.MealsPerDay,
		WaterIntake:   request.WaterIntake,
		JunkFrequency: request.JunkFrequency,
	}
}

func toModelDrinkingHabits(request *requests.DrinkingHabits) *models.DrinkingHabits {
	return &models.DrinkingHabits{
		Drinks:    request.Drinks,
		Frequency: request.Frequency,
		Quantity:  request.Quantity,
	}
}

func toModelSmokingHabits(request *requests.SmokingHabits) *models.SmokingHabits {
	return &models.SmokingHabits{
		Smokes:           request.Smokes,
		CigarettesPerDay: request.CigarettesPerDay,
		YearsSmoking:     request.YearsSmoking,
		TriedQuitting:    request.TriedQuitting,
	}
}

func toModelHereditary(request *requests.Hereditary) *models.Hereditary {
	return &models.Hereditary{
		FamilyConditions: request.FamilyConditions,
		Relation:         request.Relation,
	}
}

func toModelBowelBladder(request *requests.BowelBladder) *models.BowelBladder {
	return &models.BowelBladder{
		BowelRegularity: request.BowelRegularity,
		Constipation:    request.Constipation,
		UrinaryTrouble:  request.UrinaryTrouble,
		BloodInStool:    request.BloodInStool,
	}
}

func toModelFitness(request *requests.Fitness) *models.Fitness {
	return &models.Fitness{
		ExerciseFrequency: request.ExerciseFrequency,
		ExerciseTypes:     request.ExerciseTypes,
		SittingHours:      request.SittingHours,
	}
}

func toModelMentalWellness(request *requests.MentalWellness) *models.MentalWellness {
	return &models.MentalWellness{
		AnxietyFrequency:    request.AnxietyFrequency,
		DepressionFrequency: request.DepressionFrequency,
		InterestLoss:        request.InterestLoss,
	}
}

func toModelEmployeeWellness(request *requests.EmployeeWellness) *models.EmployeeWellness {
	return &models.EmployeeWellness{
		WorkStressLevel: request.WorkStressLevel,
		StressReasons:   request.StressReasons,
		WorkLifeBalance: request.WorkLifeBalance,
		WorkHoursPerDay: request.WorkHoursPerDay,
	}
}
