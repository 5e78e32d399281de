package requests

// Subject is supplied by the identity/employee directory lookup on the
// portal side; relation_type distinguishes self-assessments from dependents.
type Subject struct {
	SubjectID    string `json:"subject_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Gender       string `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	RelationType string `json:"relation_type" validate:"required,relation_type"`
}

// BeginAssessment starts a new assessment: subject selection plus the
// general-details/mood section. Committing it establishes the assessment
// identifier upstream.
type BeginAssessment struct {
	Subject        Subject        `json:"subject" validate:"required"`
	GeneralDetails GeneralDetails `json:"general_details" validate:"required"`
}

type GeneralDetails struct {
	Mood string `json:"mood" validate:"required,oneof=happy good okay low stressed"`
}

// AdvanceStep carries the payload for exactly one section; which pointer must
// be set is determined by Step. The sequencer rejects a mismatch before any
// network call is made.
type AdvanceStep struct {
	Step int `json:"step" validate:"required,min=2,max=13"`

	BasicProfile      *BasicProfile      `json:"basic_profile,omitempty"`
	PresentingIllness *PresentingIllness `json:"presenting_illness,omitempty"`
	PastHistory       *PastHistory       `json:"past_history,omitempty"`
	SleepHabits       *SleepHabits       `json:"sleep_habits,omitempty"`
	EatingHabits      *EatingHabits      `json:"eating_habits,omitempty"`
	DrinkingHabits    *DrinkingHabits    `json:"drinking_habits,omitempty"`
	SmokingHabits     *SmokingHabits     `json:"smoking_habits,omitempty"`
	Hereditary        *Hereditary        `json:"hereditary,omitempty"`
	BowelBladder      *BowelBladder      `json:"bowel_bladder,omitempty"`
	Fitness           *Fitness           `json:"fitness,omitempty"`
	MentalWellness    *MentalWellness    `json:"mental_wellness,omitempty"`
	EmployeeWellness  *EmployeeWellness  `json:"employee_wellness,omitempty"`
}

type RenderReport struct {
	Target string `json:"target" validate:"required,oneof=download store"`
}
