package reports

import (
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/utils"
	"time"
)

// aggregate folds the draft's section state into the report document. Pure:
// no I/O, idempotent apart from the generation timestamp. Every one of the
// thirteen slots is populated; a section the draft never filled contributes
// its zero value.
func aggregate(draft *models.AssessmentDraft) *models.ReportDocument {
	document := &models.ReportDocument{
		AssessmentID: draft.AssessmentID,
		Subject:      draft.Subject,
		SubjectAge:   utils.CalculateAge(draft.Subject.DateOfBirth),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),

		GeneralDetails:    draft.GeneralDetails,
		BasicProfile:      draft.BasicProfile,
		PresentingIllness: draft.PresentingIllness,
		PastHistory:       draft.PastHistory,
		SleepHabits:       draft.SleepHabits,
		EatingHabits:      draft.EatingHabits,
		DrinkingHabits:    draft.DrinkingHabits,
		SmokingHabits:     draft.SmokingHabits,
		Hereditary:        draft.Hereditary,
		BowelBladder:      draft.BowelBladder,
		Fitness:           draft.Fitness,
		MentalWellness:    draft.MentalWellness,
		EmployeeWellness:  draft.EmployeeWellness,
	}

	if draft.SubmittedAt != nil {
		document.SubmittedAt = draft.SubmittedAt.UTC().Format(time.RFC3339)
	}
	return document
}
