package steps

import (
	"testing"

	"hra-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	t.Run("Section Lookup", func(t *testing.T) {
		definition, ok := At(constvars.StepSleepHabits)
		assert.True(t, ok)
		assert.Equal(t, constvars.StepSleepHabits, definition.Index)
		assert.Equal(t, constvars.SectionSleepHabits, definition.Name)
		assert.Equal(t, constvars.StepEatingHabits, definition.Next)
		assert.Equal(t, constvars.StepPastHistory, definition.Prev)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, ok := At(constvars.StepSelectingSubject)
		assert.False(t, ok)
		_, ok = At(constvars.StepComplete)
		assert.False(t, ok)
	})
}

func TestName(t *testing.T) {
	assert.Equal(t, constvars.SectionGeneralDetails, Name(constvars.StepGeneralDetails))
	assert.Equal(t, constvars.SectionEmployeeWellness, Name(constvars.StepEmployeeWellness))
	assert.Equal(t, "", Name(constvars.StepSelectingSubject))
	assert.Equal(t, "", Name(constvars.StepComplete))
}

func TestIsSection(t *testing.T) {
	assert.False(t, IsSection(constvars.StepSelectingSubject))
	for step := constvars.StepGeneralDetails; step <= constvars.StepEmployeeWellness; step++ {
		assert.True(t, IsSection(step), "step %d should be a section", step)
	}
	assert.False(t, IsSection(constvars.StepComplete))
}

func TestNext(t *testing.T) {
	t.Run("Moves Forward One Section", func(t *testing.T) {
		assert.Equal(t, constvars.StepBasicProfile, Next(constvars.StepGeneralDetails))
		assert.Equal(t, constvars.StepMentalWellness, Next(constvars.StepFitness))
	})

	t.Run("Final Section Completes", func(t *testing.T) {
		assert.Equal(t, constvars.StepComplete, Next(constvars.StepEmployeeWellness))
	})
}

func TestPrev(t *testing.T) {
	assert.Equal(t, constvars.StepSelectingSubject, Prev(constvars.StepGeneralDetails))
	assert.Equal(t, constvars.StepGeneralDetails, Prev(constvars.StepBasicProfile))
	assert.Equal(t, constvars.StepMentalWellness, Prev(constvars.StepEmployeeWellness))
}

func TestMarker(t *testing.T) {
	t.Run("Advances On New Section", func(t *testing.T) {
		assert.Equal(t, 5, Marker(4, 5))
	})

	t.Run("Never Rewinds On Recommit", func(t *testing.T) {
		assert.Equal(t, 9, Marker(9, 3))
	})

	t.Run("Recommit Of Marker Section Keeps Marker", func(t *testing.T) {
		assert.Equal(t, 7, Marker(7, 7))
	})
}

func TestResumeTarget(t *testing.T) {
	t.Run("In Progress Continues Past Marker", func(t *testing.T) {
		assert.Equal(t, constvars.StepBasicProfile, ResumeTarget(constvars.StepGeneralDetails))
		assert.Equal(t, constvars.StepEmployeeWellness, ResumeTarget(constvars.StepMentalWellness))
	})

	t.Run("Finished Assessment Starts Over", func(t *testing.T) {
		assert.Equal(t, constvars.StepGeneralDetails, ResumeTarget(constvars.StepEmployeeWellness))
		assert.Equal(t, constvars.StepGeneralDetails, ResumeTarget(constvars.StepComplete))
	})
}
