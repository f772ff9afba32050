package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachStudent(t *testing.T) {
	status, err := AttachStudent(StatusOpen)
	require.NoError(t, err)
	assert.Equal(t, StatusBooked, status)

	status, err = AttachStudent(StatusDraft)
	require.NoError(t, err)
	assert.Equal(t, StatusBooked, status)

	_, err = AttachStudent(StatusBooked)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = AttachStudent(StatusBlocked)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestDetachStudent(t *testing.T) {
	status, err := DetachStudent(StatusBooked)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, status)

	_, err = DetachStudent(StatusOpen)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = DetachStudent(StatusCancelled)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestPublishDraft(t *testing.T) {
	status, err := PublishDraft(StatusDraft)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, status)

	_, err = PublishDraft(StatusOpen)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestEffectiveDurationMinutes(t *testing.T) {
	custom := 90
	defaults := &ProfileDefaults{LessonDurationMinutes: 60}

	// Замороженная длительность всегда побеждает
	s := &Slot{DurationMinutes: 45, CustomDurationMinutes: &custom}
	assert.Equal(t, 45, s.EffectiveDurationMinutes(defaults))

	// Без замороженной - пользовательская
	s = &Slot{CustomDurationMinutes: &custom}
	assert.Equal(t, 90, s.EffectiveDurationMinutes(defaults))

	// Без обеих - профиль
	s = &Slot{}
	assert.Equal(t, 60, s.EffectiveDurationMinutes(defaults))

	// Сдвоенное занятие удваивает профильную длительность
	s = &Slot{IsDouble: true}
	assert.Equal(t, 120, s.EffectiveDurationMinutes(defaults))

	// Без профиля - системный дефолт
	s = &Slot{}
	assert.Equal(t, DefaultLessonDurationMinutes, s.EffectiveDurationMinutes(nil))
}

func TestRejectReasonCategory(t *testing.T) {
	assert.Equal(t, CategoryCollision, ReasonCollision.Category())
	assert.Equal(t, CategoryRestriction, ReasonRestrictedMorning.Category())
	assert.Equal(t, CategoryRestriction, ReasonRestrictedEvening.Category())
	assert.Equal(t, CategoryOther, ReasonTooEarly.Category())
	assert.Equal(t, CategoryOther, ReasonTooLate.Category())
	assert.Equal(t, CategoryOther, ReasonNone.Category())
}

func TestRejectReasonMessage(t *testing.T) {
	assert.Equal(t, "Too Early", ReasonTooEarly.Message())
	assert.Equal(t, "Too Late", ReasonTooLate.Message())
	assert.Equal(t, "Restricted Morning Hours", ReasonRestrictedMorning.Message())
	assert.Equal(t, "Restricted Evening Hours", ReasonRestrictedEvening.Message())
	assert.Equal(t, "Collision", ReasonCollision.Message())
	assert.Equal(t, "", ReasonNone.Message())
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Slot{Status: StatusOpen}).IsActive())
	assert.True(t, (&Slot{Status: StatusBlocked}).IsActive())
	assert.False(t, (&Slot{Status: StatusCancelled}).IsActive())
}
