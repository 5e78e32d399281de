package sections

import (
	"context"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/hra_dto"
)

func (c *sectionClient) CommitBasicProfile(ctx context.Context, assessmentID, actorID string, payload *models.BasicProfile) (string, error) {
	result := new(hra_dto.BasicProfileCommitResponse)
	err := c.commit(ctx, constvars.PathBasicProfile, constvars.SectionBasicProfile, hra_dto.BasicProfileToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.BasicProfileID, nil
}

func (c *sectionClient) CommitPresentingIllness(ctx context.Context, assessmentID, actorID string, payload *models.PresentingIllness) (string, error) {
	result := new(hra_dto.PresentingIllnessCommitResponse)
	err := c.commit(ctx, constvars.PathPresentingIllness, constvars.SectionPresentingIllness, hra_dto.PresentingIllnessToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.PresentingIllnessID, nil
}

func (c *sectionClient) CommitPastHistory(ctx context.Context, assessmentID, actorID string, payload *models.PastHistory) (string, error) {
	result := new(hra_dto.PastHistoryCommitResponse)
	err := c.commit(ctx, constvars.PathPastHistory, constvars.SectionPastHistory, hra_dto.PastHistoryToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.PastHistoryID, nil
}

func (c *sectionClient) CommitSleepHabits(ctx context.Context, assessmentID, actorID string, payload *models.SleepHabits) (string, error) {
	result := new(hra_dto.SleepHabitsCommitResponse)
	err := c.commit(ctx, constvars.PathSleepHabits, constvars.SectionSleepHabits, hra_dto.SleepHabitsToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.SleepHabitsID, nil
}

func (c *sectionClient) CommitEatingHabits(ctx context.Context, assessmentID, actorID string, payload *models.EatingHabits) (string, error) {
	result := new(hra_dto.EatingHabitsCommitResponse)
	err := c.commit(ctx, constvars.PathEatingHabits, constvars.SectionEatingHabits, hra_dto.EatingHabitsToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.EatingHabitsID, nil
}

func (c *sectionClient) CommitDrinkingHabits(ctx context.Context, assessmentID, actorID string, payload *models.DrinkingHabits) (string, error) {
	result := new(hra_dto.DrinkingHabitsCommitResponse)
	err := c.commit(ctx, constvars.PathDrinkingHabits, constvars.SectionDrinkingHabits, hra_dto.DrinkingHabitsToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.DrinkingHabitsID, nil
}

func (c *sectionClient) CommitSmokingHabits(ctx context.Context, assessmentID, actorID string, payload *models.SmokingHabits) (string, error) {
	result := new(hra_dto.SmokingHabitsCommitResponse)
	err := c.commit(ctx, constvars.PathSmokingHabits, constvars.SectionSmokingHabits, hra_dto.SmokingHabitsToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.SmokingHabitsID, nil
}

func (c *sectionClient) CommitHereditary(ctx context.Context, assessmentID, actorID string, payload *models.Hereditary) (string, error) {
	result := new(hra_dto.HereditaryCommitResponse)
	err := c.commit(ctx, constvars.PathHereditary, constvars.SectionHereditary, hra_dto.HereditaryToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.HereditaryID, nil
}

func (c *sectionClient) CommitBowelBladder(ctx context.Context, assessmentID, actorID string, payload *models.BowelBladder) (string, error) {
	result := new(hra_dto.BowelBladderCommitResponse)
	err := c.commit(ctx, constvars.PathBowelBladder, constvars.SectionBowelBladder, hra_dto.BowelBladderToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.BowelBladderID, nil
}

func (c *sectionClient) CommitFitness(ctx context.Context, assessmentID, actorID string, payload *models.Fitness) (string, error) {
	result := new(hra_dto.FitnessCommitResponse)
	err := c.commit(ctx, constvars.PathFitness, constvars.SectionFitness, hra_dto.FitnessToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.FitnessID, nil
}

func (c *sectionClient) CommitMentalWellness(ctx context.Context, assessmentID, actorID string, payload *models.MentalWellness) (string, error) {
	result := new(hra_dto.MentalWellnessCommitResponse)
	err := c.commit(ctx, constvars.PathMentalWellness, constvars.SectionMentalWellness, hra_dto.MentalWellnessToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.MentalWellnessID, nil
}

func (c *sectionClient) CommitEmployeeWellness(ctx context.Context, assessmentID, actorID string, payload *models.EmployeeWellness) (string, error) {
	result := new(hra_dto.EmployeeWellnessCommitResponse)
	err := c.commit(ctx, constvars.PathEmployeeWellness, constvars.SectionEmployeeWellness, hra_dto.EmployeeWellnessToWire(assessmentID, actorID, payload), result)
	if err != nil {
		return "", err
	}
	return result.EmployeeWellnessID, nil
}
