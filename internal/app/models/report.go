package models

// ReportDocument is the derived, read-only compilation of all thirteen
// sections plus subject metadata. It always carries exactly one slot per
// section; a section that was never visited contributes its zero value, so
// the document renderer never has to deal with absent fields.
type ReportDocument struct {
	AssessmentID string  `json:"assessmentId"`
	Subject      Subject `json:"subject"`
	SubjectAge   int     `json:"subjectAge"`
	GeneratedAt  string  `json:"generatedAt"`
	SubmittedAt  string  `json:"submittedAt,omitempty"`

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
}
