package reports

import (
	"bytes"
	"context"
	"hra-service/internal/app/contracts"
	"hra-service/internal/app/models"
	"hra-service/internal/pkg/constvars"
	"hra-service/internal/pkg/exceptions"
	"html/template"
	"strings"
)

// reportTemplate renders one block per section in questionnaire order. Empty
// values render as empty cells; the layout never collapses a section.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Health Risk Assessment Report</title>
</head>
<body>
<h1>Health Risk Assessment Report</h1>
<p>Assessment: {{.AssessmentID}}</p>
<p>Subject: {{.Subject.Name}} ({{.Subject.RelationType}})</p>
{{if .SubjectAge}}<p>Age: {{.SubjectAge}}</p>{{end}}
<p>Generated: {{.GeneratedAt}}</p>
{{if .SubmittedAt}}<p>Submitted: {{.SubmittedAt}}</p>{{end}}

<h2>General Details</h2>
<table>
<tr><td>Mood</td><td>{{.GeneralDetails.Mood}}</td></tr>
</table>

<h2>Basic Profile</h2>
<table>
<tr><td>Height (cm)</td><td>{{.BasicProfile.HeightCM}}</td></tr>
<tr><td>Weight (kg)</td><td>{{.BasicProfile.WeightKG}}</td></tr>
<tr><td>Blood group</td><td>{{.BasicProfile.BloodGroup}}</td></tr>
<tr><td>Marital status</td><td>{{.BasicProfile.MaritalStatus}}</td></tr>
</table>

<h2>Presenting Illness</h2>
<table>
<tr><td>Illnesses</td><td>{{join .PresentingIllness.Illnesses}}</td></tr>
<tr><td>Duration</td><td>{{.PresentingIllness.Duration}}</td></tr>
<tr><td>Under medication</td><td>{{.PresentingIllness.UnderMedication}}</td></tr>
</table>

<h2>Past History</h2>
<table>
<tr><td>Hospitalized</td><td>{{.PastHistory.Hospitalized}}</td></tr>
<tr><td>Surgeries</td><td>{{join .PastHistory.Surgeries}}</td></tr>
<tr><td>Allergies</td><td>{{.PastHistory.Allergies}}</td></tr>
<tr><td>Chronic conditions</td><td>{{join .PastHistory.ChronicConditions}}</td></tr>
</table>

<h2>Sleep Habits</h2>
<table>
<tr><td>Hours of sleep</td><td>{{.SleepHabits.HoursOfSleep}}</td></tr>
<tr><td>Trouble falling asleep</td><td>{{.SleepHabits.TroubleFallingAsleep}}</td></tr>
<tr><td>Snoring</td><td>{{.SleepHabits.Snoring}}</td></tr>
<tr><td>Wakes rested</td><td>{{.SleepHabits.WakeRested}}</td></tr>
</table>

<h2>Eating Habits</h2>
<table>
<tr><td>Diet type</td><td>{{.EatingHabits.DietType}}</td></tr>
<tr><td>Meals per day</td><td>{{.EatingHabits.MealsPerDay}}</td></tr>
<tr><td>Water intake</td><td>{{.EatingHabits.WaterIntake}}</td></tr>
<tr><td>Junk food frequency</td><td>{{.EatingHabits.JunkFrequency}}</td></tr>
</table>

<h2>Drinking Habits</h2>
<table>
<tr><td>Drinks alcohol</td><td>{{.DrinkingHabits.Drinks}}</td></tr>
<tr><td>Frequency</td><td>{{.DrinkingHabits.Frequency}}</td></tr>
<tr><td>Quantity</td><td>{{.DrinkingHabits.Quantity}}</td></tr>
</table>

<h2>Smoking Habits</h2>
<table>
<tr><td>Smokes</td><td>{{.SmokingHabits.Smokes}}</td></tr>
<tr><td>Cigarettes per day</td><td>{{.SmokingHabits.CigarettesPerDay}}</td></tr>
<tr><td>Years smoking</td><td>{{.SmokingHabits.YearsSmoking}}</td></tr>
<tr><td>Tried quitting</td><td>{{.SmokingHabits.TriedQuitting}}</td></tr>
</table>

<h2>Hereditary</h2>
<table>
<tr><td>Family conditions</td><td>{{join .Hereditary.FamilyConditions}}</td></tr>
<tr><td>Relation</td><td>{{.Hereditary.Relation}}</td></tr>
</table>

<h2>Bowel and Bladder</h2>
<table>
<tr><td>Bowel regularity</td><td>{{.BowelBladder.BowelRegularity}}</td></tr>
<tr><td>Constipation</td><td>{{.BowelBladder.Constipation}}</td></tr>
<tr><td>Urinary trouble</td><td>{{.BowelBladder.UrinaryTrouble}}</td></tr>
<tr><td>Blood in stool</td><td>{{.BowelBladder.BloodInStool}}</td></tr>
</table>

<h2>Fitness</h2>
<table>
<tr><td>Exercise frequency</td><td>{{.Fitness.ExerciseFrequency}}</td></tr>
<tr><td>Exercise types</td><td>{{join .Fitness.ExerciseTypes}}</td></tr>
<tr><td>Sitting hours</td><td>{{.Fitness.SittingHours}}</td></tr>
</table>

<h2>Mental Wellness</h2>
<table>
<tr><td>Anxiety frequency</td><td>{{.MentalWellness.AnxietyFrequency}}</td></tr>
<tr><td>Depression frequency</td><td>{{.MentalWellness.DepressionFrequency}}</td></tr>
<tr><td>Loss of interest</td><td>{{.MentalWellness.InterestLoss}}</td></tr>
</table>

<h2>Employee Wellness</h2>
<table>
<tr><td>Work stress level</td><td>{{.EmployeeWellness.WorkStressLevel}}</td></tr>
<tr><td>Stress reasons</td><td>{{join .EmployeeWellness.StressReasons}}</td></tr>
<tr><td>Work-life balance</td><td>{{.EmployeeWellness.WorkLifeBalance}}</td></tr>
<tr><td>Work hours per day</td><td>{{.EmployeeWellness.WorkHoursPerDay}}</td></tr>
</table>
</body>
</html>
`

type htmlRenderer struct {
	template *template.Template
}

func NewHTMLRenderer() contracts.DocumentRenderer {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"join": func(values []string) string { return strings.Join(values, ", ") },
	}).Parse(reportTemplate))
	return &htmlRenderer{template: tmpl}
}

func (r *htmlRenderer) Render(ctx context.Context, document *models.ReportDocument) ([]byte, string, error) {
	var buffer bytes.Buffer
	err := r.template.Execute(&buffer, document)
	if err != nil {
		return nil, "", exceptions.ErrRenderReport(err)
	}

	return buffer.Bytes(), constvars.MIMETextHTML, nil
}
