package models

import "time"

// Subject identifies who the assessment is about: the portal account holder
// or one of their named dependents. Immutable once the general details
// section commits.
type Subject struct {
	SubjectID    string `json:"subjectId"`
	EmployeeID   string `json:"employeeId"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	RelationType string `json:"relationType"`
}

// AssessmentDraft is the single typed aggregate owned by the sequencer. All
// section state lives here; there is no ambient form state anywhere else.
type AssessmentDraft struct {
	AssessmentID         string  `json:"assessmentId"`
	Subject              Subject `json:"subject"`
	CurrentStep          int     `json:"currentStep"`
	LastAnsweredQuestion int     `json:"lastAnsweredQuestion"`

	GeneralDetails    GeneralDetails    `json:"generalDetails"`
	BasicProfile      BasicProfile      `json:"basicProfile"`
	PresentingIllness PresentingIllness `json:"presentingIllness"`
	PastHistory       PastHistory       `json:"pastHistory"`
	SleepHabits       SleepHabits       `json:"sleepHabits"`
	EatingHabits      EatingHabits      `json:"eatingHabits"`
	DrinkingHabits    DrinkingHabits    `json:"drinkingHabits"`
	SmokingHabits     SmokingHabits     `json:"smokingHabits"`
	Hereditary        Hereditary        `json:"hereditary"`
	BowelBladder      BowelBladder      `json:"bowelBladder"`
	Fitness           Fitness           `json:"fitness"`
	MentalWellness    MentalWellness    `json:"mentalWellness"`
	EmployeeWellness  EmployeeWellness  `json:"employeeWellness"`

	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// AssessmentRecord is the upstream view of one assessment: the authoritative
// progress marker plus subject metadata, as returned by the record endpoints.
type AssessmentRecord struct {
	AssessmentID         string  `json:"assessmentId"`
	Subject              Subject `json:"subject"`
	LastAnsweredQuestion int     `json:"lastAnsweredQuestion"`
	Action               string  `json:"action"`
	CreatedAt            string  `json:"createdAt"`
}

// GeneralDetails is section 1; committing it creates the assessment upstream
// and establishes the identifier every later section depends on.
type GeneralDetails struct {
	Mood string `json:"mood"`
}

type BasicProfile struct {
	HeightCM      float64 `json:"heightCm"`
	WeightKG      float64 `json:"weightKg"`
	BloodGroup    string  `json:"bloodGroup"`
	MaritalStatus string  `json:"maritalStatus"`
}

type PresentingIllness struct {
	Illnesses       []string `json:"illnesses"`
	Duration        string   `json:"duration"`
	UnderMedication string   `json:"underMedication"`
}

type PastHistory struct {
	Hospitalized      string   `json:"hospitalized"`
	Surgeries         []string `json:"surgeries"`
	Allergies         string   `json:"allergies"`
	ChronicConditions []string `json:"chronicConditions"`
}

type SleepHabits struct {
	HoursOfSleep         string `json:"hoursOfSleep"`
	TroubleFallingAsleep string `json:"troubleFallingAsleep"`
	Snoring              string `json:"snoring"`
	WakeRested           string `json:"wakeRested"`
}

type EatingHabits struct {
	DietType      string `json:"dietType"`
	MealsPerDay   string `json:"mealsPerDay"`
	WaterIntake   string `json:"waterIntake"`
	JunkFrequency string `json:"junkFrequency"`
}

type DrinkingHabits struct {
	Drinks    string `json:"drinks"`
	Frequency string `json:"frequency"`
	Quantity  string `json:"quantity"`
}

type SmokingHabits struct {
	Smokes           string `json:"smokes"`
	CigarettesPerDay string `json:"cigarettesPerDay"`
	YearsSmoking     string `json:"yearsSmoking"`
	TriedQuitting    string `json:"triedQuitting"`
}

type Hereditary struct {
	FamilyConditions []string `json:"familyConditions"`
	Relation         string   `json:"relation"`
}

type BowelBladder struct {
	BowelRegularity string `json:"bowelRegularity"`
	Constipation    string `json:"constipation"`
	UrinaryTrouble  string `json:"urinaryTrouble"`
	BloodInStool    string `json:"bloodInStool"`
}

type Fitness struct {
	ExerciseFrequency string   `json:"exerciseFrequency"`
	ExerciseTypes     []string `json:"exerciseTypes"`
	SittingHours      string   `json:"sittingHours"`
}

type MentalWellness struct {
	AnxietyFrequency    string `json:"anxietyFrequency"`
	DepressionFrequency string `json:"depressionFrequency"`
	InterestLoss        string `json:"interestLoss"`
}

type EmployeeWellness struct {
	WorkStressLevel string   `json:"workStressLevel"`
	StressReasons   []string `json:"stressReasons"`
	WorkLifeBalance string   `json:"workLifeBalance"`
	WorkHoursPerDay string   `json:"workHoursPerDay"`
}
