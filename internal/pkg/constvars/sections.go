package constvars

// Step indices of the thirteen assessment sections. Step 1 also creates the
// assessment record upstream; its identifier gates every later section.
const (
	StepSelectingSubject  = 0
	StepGeneralDetails    = 1
	StepBasicProfile      = 2
	StepPresentingIllness = 3
	StepPastHistory       = 4
	StepSleepHabits       = 5
	StepEatingHabits      = 6
	StepDrinkingHabits    = 7
	StepSmokingHabits     = 8
	StepHereditary        = 9
	StepBowelBladder      = 10
	StepFitness           = 11
	StepMentalWellness    = 12
	StepEmployeeWellness  = 13
	StepComplete          = 14

	TotalSections = 13
)

const (
	SectionGeneralDetails    = "GeneralDetails"
	SectionBasicProfile      = "BasicProfile"
	SectionPresentingIllness = "PresentingIllness"
	SectionPastHistory       = "PastHistory"
	SectionSleepHabits       = "SleepHabits"
	SectionEatingHabits      = "EatingHabits"
	SectionDrinkingHabits    = "DrinkingHabits"
	SectionSmokingHabits     = "SmokingHabits"
	SectionHereditary        = "Hereditary"
	SectionBowelBladder      = "BowelBladder"
	SectionFitness           = "Fitness"
	SectionMentalWellness    = "MentalWellness"
	SectionEmployeeWellness  = "EmployeeWellness"
)

// Upstream persistence service resource paths.
const (
	PathAssessments       = "/assessments"
	PathGeneralDetails    = "/general-details"
	PathBasicProfile      = "/basic-profile"
	PathPresentingIllness = "/presenting-illness"
	PathPastHistory       = "/past-history"
	PathSleepHabits       = "/sleep-habits"
	PathEatingHabits      = "/eating-habits"
	PathDrinkingHabits    = "/drinking-habits"
	PathSmokingHabits     = "/smoking-habits"
	PathHereditary        = "/hereditary"
	PathBowelBladder      = "/bowel-bladder"
	PathFitness           = "/fitness"
	PathMentalWellness    = "/mental-wellness"
	PathEmployeeWellness  = "/employee-wellness"
)
