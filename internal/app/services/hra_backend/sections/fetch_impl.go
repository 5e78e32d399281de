package sections

import (
	"context"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/hra_dto"
)

func (c *sectionClient) FetchBasicProfile(ctx context.Context, assessmentID string) (*models.BasicProfile, error) {
	wire := new(hra_dto.BasicProfileRecord)
	found, err := c.fetch(ctx, constvars.PathBasicProfile, constvars.SectionBasicProfile, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.BasicProfileFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchPresentingIllness(ctx context.Context, assessmentID string) (*models.PresentingIllness, error) {
	wire := new(hra_dto.PresentingIllnessRecord)
	found, err := c.fetch(ctx, constvars.PathPresentingIllness, constvars.SectionPresentingIllness, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.PresentingIllnessFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchPastHistory(ctx context.Context, assessmentID string) (*models.PastHistory, error) {
	wire := new(hra_dto.PastHistoryRecord)
	found, err := c.fetch(ctx, constvars.PathPastHistory, constvars.SectionPastHistory, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.PastHistoryFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchSleepHabits(ctx context.Context, assessmentID string) (*models.SleepHabits, error) {
	wire := new(hra_dto.SleepHabitsRecord)
	found, err := c.fetch(ctx, constvars.PathSleepHabits, constvars.SectionSleepHabits, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.SleepHabitsFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchEatingHabits(ctx context.Context, assessmentID string) (*models.EatingHabits, error) {
	wire := new(hra_dto.EatingHabitsRecord)
	found, err := c.fetch(ctx, constvars.PathEatingHabits, constvars.SectionEatingHabits, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.EatingHabitsFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchDrinkingHabits(ctx context.Context, assessmentID string) (*models.DrinkingHabits, error) {
	wire := new(hra_dto.DrinkingHabitsRecord)
	found, err := c.fetch(ctx, constvars.PathDrinkingHabits, constvars.SectionDrinkingHabits, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.DrinkingHabitsFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchSmokingHabits(ctx context.Context, assessmentID string) (*models.SmokingHabits, error) {
	wire := new(hra_dto.SmokingHabitsRecord)
	found, err := c.fetch(ctx, constvars.PathSmokingHabits, constvars.SectionSmokingHabits, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.SmokingHabitsFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchHereditary(ctx context.Context, assessmentID string) (*models.Hereditary, error) {
	wire := new(hra_dto.HereditaryRecord)
	found, err := c.fetch(ctx, constvars.PathHereditary, constvars.SectionHereditary, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.HereditaryFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchBowelBladder(ctx context.Context, assessmentID string) (*models.BowelBladder, error) {
	wire := new(hra_dto.BowelBladderRecord)
	found, err := c.fetch(ctx, constvars.PathBowelBladder, constvars.SectionBowelBladder, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.BowelBladderFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchFitness(ctx context.Context, assessmentID string) (*models.Fitness, error) {
	wire := new(hra_dto.FitnessRecord)
	found, err := c.fetch(ctx, constvars.PathFitness, constvars.SectionFitness, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.FitnessFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchMentalWellness(ctx context.Context, assessmentID string) (*models.MentalWellness, error) {
	wire := new(hra_dto.MentalWellnessRecord)
	found, err := c.fetch(ctx, constvars.PathMentalWellness, constvars.SectionMentalWellness, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.MentalWellnessFromWire(wire)
	return &section, nil
}

func (c *sectionClient) FetchEmployeeWellness(ctx context.Context, assessmentID string) (*models.EmployeeWellness, error) {
	wire := new(hra_dto.EmployeeWellnessRecord)
	found, err := c.fetch(ctx, constvars.PathEmployeeWellness, constvars.SectionEmployeeWellness, assessmentID, wire)
	if err != nil || !found {
		return nil, err
	}
	section := hra_dto.EmployeeWellnessFromWire(wire)
	return &section, nil
}
