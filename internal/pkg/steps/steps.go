package steps

import "hra-service/internal/pkg/constvars"

var sectionNames = map[int]string{
	constvars.StepGeneralDetails:    constvars.SectionGeneralDetails,
	constvars.StepBasicProfile:      constvars.SectionBasicProfile,
	constvars.StepPresentingIllness: constvars.SectionPresentingIllness,
	constvars.StepPastHistory:       constvars.SectionPastHistory,
	constvars.StepSleepHabits:       constvars.SectionSleepHabits,
	constvars.StepEatingHabits:      constvars.SectionEatingHabits,
	constvars.StepDrinkingHabits:    constvars.SectionDrinkingHabits,
	constvars.StepSmokingHabits:     constvars.SectionSmokingHabits,
	constvars.StepHereditary:        constvars.SectionHereditary,
	constvars.StepBowelBladder:      constvars.SectionBowelBladder,
	constvars.StepFitness:           constvars.SectionFitness,
	constvars.StepMentalWellness:    constvars.SectionMentalWellness,
	constvars.StepEmployeeWellness:  constvars.SectionEmployeeWellness,
}

// Definition describes one entry of the step catalog.
type Definition struct {
	Index int
	Name  string
	Next  int
	Prev  int
}

// At looks up the catalog entry for a section index. The second return is
// false for indices outside the thirteen sections.
func At(step int) (Definition, bool) {
	if !IsSection(step) {
		return Definition{}, false
	}
	return Definition{
		Index: step,
		Name:  sectionNames[step],
		Next:  Next(step),
		Prev:  Prev(step),
	}, true
}

// Name returns the section name for a step index, or an empty string for
// indices outside the thirteen sections.
func Name(step int) string {
	return sectionNames[step]
}

// IsSection reports whether step addresses one of the thirteen sections.
func IsSection(step int) bool {
	return step >= constvars.StepGeneralDetails && step <= constvars.StepEmployeeWellness
}

// Next returns the step after a successful commit of step. Committing the
// final section moves the assessment to the terminal state.
func Next(step int) int {
	if step >= constvars.StepEmployeeWellness {
		return constvars.StepComplete
	}
	return step + 1
}

// Prev returns the step shown when the user navigates backwards. Stepping
// back from the first section returns to subject selection.
func Prev(step int) int {
	if step <= constvars.StepGeneralDetails {
		return constvars.StepSelectingSubject
	}
	return step - 1
}

// Marker returns the progress marker value after committing step: markers
// only move forward, so a re-committed earlier section never rewinds one.
func Marker(lastAnswered, step int) int {
	if lastAnswered > step {
		return lastAnswered
	}
	return step
}

// ResumeTarget maps a stored progress marker to the step a resumed
// assessment opens on. A finished assessment starts over from the first
// section; anything else continues one past the marker.
func ResumeTarget(lastAnswered int) int {
	if lastAnswered >= constvars.StepEmployeeWellness {
		return constvars.StepGeneralDetails
	}
	return lastAnswered + 1
}
