package requests

type BasicProfile struct {
	HeightCM      float64 `json:"height_cm" validate:"required,gt=0,lte=250"`
	WeightKG      float64 `json:"weight_kg" validate:"required,gt=0,lte=300"`
	BloodGroup    string  `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	MaritalStatus string  `json:"marital_status" validate:"required,oneof=single married widowed divorced"`
}

type PresentingIllness struct {
	Illnesses       []string `json:"illnesses" validate:"required,min=1,dive,oneof=diabetes hypertension asthma thyroid heartDisease cancer none"`
	Duration        string   `json:"duration" validate:"omitempty,oneof=lessThanMonth oneToSixMonths moreThanSixMonths"`
	UnderMedication string   `json:"under_medication" validate:"required,yes_no"`
}

type PastHistory struct {
	Hospitalized      string   `json:"hospitalized" validate:"required,yes_no"`
	Surgeries         []string `json:"surgeries" validate:"omitempty,dive,min=1"`
	Allergies         string   `json:"allergies" validate:"omitempty,max=500"`
	ChronicConditions []string `json:"chronic_conditions" validate:"omitempty,dive,oneof=diabetes hypertension asthma thyroid heartDisease cancer none"`
}

type SleepHabits struct {
	HoursOfSleep         string `json:"hours_of_sleep" validate:"required,oneof=lessThan7 sevenToEight moreThan8"`
	TroubleFallingAsleep string `json:"trouble_falling_asleep" validate:"required,yes_no"`
	Snoring              string `json:"snoring" validate:"required,yes_no"`
	WakeRested           string `json:"wake_rested" validate:"required,yes_no"`
}

type EatingHabits struct {
	DietType      string `json:"diet_type" validate:"required,oneof=veg nonVeg vegan mixed"`
	MealsPerDay   string `json:"meals_per_day" validate:"required,oneof=two three moreThanThree"`
	WaterIntake   string `json:"water_intake" validate:"required,oneof=lessThan1L oneToTwoL moreThan2L"`
	JunkFrequency string `json:"junk_frequency" validate:"required,oneof=never occasional weekly daily"`
}

type DrinkingHabits struct {
	Drinks    string `json:"drinks" validate:"required,yes_no"`
	Frequency string `json:"frequency" validate:"required_if=Drinks yes,omitempty,oneof=never occasional weekly daily"`
	Quantity  string `json:"quantity" validate:"required_if=Drinks yes,omitempty,oneof=oneToTwo threeToFive moreThanFive"`
}

type SmokingHabits struct {
	Smokes           string `json:"smokes" validate:"required,yes_no"`
	CigarettesPerDay string `json:"cigarettes_per_day" validate:"required_if=Smokes yes,omitempty,oneof=lessThan5 fiveToTen moreThanTen"`
	YearsSmoking     string `json:"years_smoking" validate:"required_if=Smokes yes,omitempty,oneof=lessThan5 fiveToTen moreThanTen"`
	TriedQuitting    string `json:"tried_quitting" validate:"omitempty,yes_no"`
}

type Hereditary struct {
	FamilyConditions []string `json:"family_conditions" validate:"required,min=1,dive,oneof=diabetes hypertension asthma thyroid heartDisease cancer none"`
	Relation         string   `json:"relation" validate:"omitempty,oneof=father mother sibling grandparent"`
}

type BowelBladder struct {
	BowelRegularity string `json:"bowel_regularity" validate:"required,oneof=regular irregular"`
	Constipation    string `json:"constipation" validate:"required,yes_no"`
	UrinaryTrouble  string `json:"urinary_trouble" validate:"required,yes_no"`
	BloodInStool    string `json:"blood_in_stool" validate:"required,yes_no"`
}

type Fitness struct {
	ExerciseFrequency string   `json:"exercise_frequency" validate:"required,oneof=never onceAWeek twoToFour daily"`
	ExerciseTypes     []string `json:"exercise_types" validate:"omitempty,dive,oneof=walking running gym yoga sports"`
	SittingHours      string   `json:"sitting_hours" validate:"required,oneof=lessThan4 fourToEight moreThan8"`
}

type MentalWellness struct {
	AnxietyFrequency    string `json:"anxiety_frequency" validate:"required,oneof=never sometimes often always"`
	DepressionFrequency string `json:"depression_frequency" validate:"required,oneof=never sometimes often always"`
	InterestLoss        string `json:"interest_loss" validate:"required,yes_no"`
}

type EmployeeWellness struct {
	WorkStressLevel string   `json:"work_stress_level" validate:"required,oneof=low moderate high"`
	StressReasons   []string `json:"stress_reasons" validate:"omitempty,dive,oneof=workload deadlines workEnvironment management commute"`
	WorkLifeBalance string   `json:"work_life_balance" validate:"required,yes_no"`
	WorkHoursPerDay string   `json:"work_hours_per_day" validate:"required,oneof=lessThan8 eightToTen moreThan10"`
}
