package copy_week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/pkg/ptr"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

func sourceSlot(id int64, date time.Time, start, end string, kind domain.SlotKind, status domain.SlotStatus) *domain.Slot {
	return &domain.Slot{
		ID:              id,
		InstructorID:    1,
		Date:            date,
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		DurationMinutes: 45,
		Kind:            kind,
		Status:          status,
	}
}

func TestCopyForwardShiftsSevenCalendarDays(t *testing.T) {
	// 2024-02-29 - високосный четверг, сдвиг через границу месяца
	leapDay := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	src := []*domain.Slot{
		sourceSlot(1, leapDay, "11:00", "11:45", domain.KindLesson, domain.StatusOpen),
	}

	accepted, skipped := copyForward(src, nil, nil, nil)
	require.Len(t, accepted, 1)
	assert.Equal(t, 0, skipped.Total())

	copied := accepted[0]
	assert.Equal(t, "2024-03-07", copied.Date.Format(domain.DateFormat))
	assert.Equal(t, "11:00", copied.StartTime.String())
	assert.Equal(t, "11:45", copied.EndTime.String())
}

func TestCopyForwardStripsIdentityAndStudent(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	booked := sourceSlot(42, monday, "11:00", "11:45", domain.KindLesson, domain.StatusBooked)
	booked.StudentID = ptr.Ptr(int64(500))

	accepted, skipped := copyForward([]*domain.Slot{booked}, nil, nil, nil)
	require.Len(t, accepted, 1)
	assert.Equal(t, 0, skipped.Total())

	copied := accepted[0]
	assert.Zero(t, copied.ID)
	assert.Nil(t, copied.StudentID)
	assert.Equal(t, domain.StatusDraft, copied.Status)
}

func TestCopyForwardPreservesBlocks(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	block := sourceSlot(7, monday, "11:00", "12:00", domain.KindBlock, domain.StatusBlocked)
	block.DurationMinutes = 60
	block.BlockReason = ptr.Ptr("Техосмотр")

	accepted, _ := copyForward([]*domain.Slot{block}, nil, nil, nil)
	require.Len(t, accepted, 1)

	copied := accepted[0]
	assert.Equal(t, domain.KindBlock, copied.Kind)
	assert.Equal(t, domain.StatusBlocked, copied.Status)
	require.NotNil(t, copied.BlockReason)
	assert.Equal(t, "Техосмотр", *copied.BlockReason)
}

func TestCopyForwardClassifiesSkips(t *testing.T) {
	// 2026-03-03 - вторник, источник был праздником, целевая неделя - нет
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	targetTuesday := tuesday.AddDate(0, 0, 7)

	src := []*domain.Slot{
		// Коллизия: на целевой неделе интервал уже занят
		sourceSlot(1, tuesday, "11:00", "11:45", domain.KindLesson, domain.StatusOpen),
		// Запрещённая зона: утро вторника без праздника
		sourceSlot(2, tuesday, "08:00", "08:45", domain.KindLesson, domain.StatusOpen),
		// Прочее: старт раньше открытия
		sourceSlot(3, tuesday, "05:00", "05:45", domain.KindLesson, domain.StatusOpen),
		// Валидный
		sourceSlot(4, tuesday, "12:00", "12:45", domain.KindLesson, domain.StatusOpen),
	}

	target := []*domain.Slot{
		sourceSlot(90, targetTuesday, "11:00", "12:00", domain.KindLesson, domain.StatusBooked),
	}

	accepted, skipped := copyForward(src, target, nil, nil)

	require.Len(t, accepted, 1)
	assert.Equal(t, "12:00", accepted[0].StartTime.String())

	assert.Equal(t, 1, skipped.Collisions)
	assert.Equal(t, 1, skipped.Restrictions)
	assert.Equal(t, 1, skipped.Other)
	assert.Equal(t, 3, skipped.Total())
}

func TestCopyForwardDurationFallback(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Слот без замороженной длительности восстанавливается из профиля
	src := sourceSlot(1, monday, "11:00", "11:45", domain.KindLesson, domain.StatusOpen)
	src.DurationMinutes = 0

	defaults := &domain.ProfileDefaults{InstructorID: 1, LessonDurationMinutes: 50}

	accepted, _ := copyForward([]*domain.Slot{src}, nil, nil, defaults)
	require.Len(t, accepted, 1)

	assert.Equal(t, 50, accepted[0].DurationMinutes)
	assert.Equal(t, "11:50", accepted[0].EndTime.String())
}

func TestCopyForwardChecksAgainstPreBatchSnapshotOnly(t *testing.T) {
	// Два одинаковых исходных слота: оба проходят, потому что копии
	// этой же пачки не участвуют в проверке коллизий
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	src := []*domain.Slot{
		sourceSlot(1, monday, "11:00", "11:45", domain.KindLesson, domain.StatusOpen),
		sourceSlot(2, monday, "11:00", "11:45", domain.KindLesson, domain.StatusOpen),
	}

	accepted, skipped := copyForward(src, nil, nil, nil)
	assert.Len(t, accepted, 2)
	assert.Equal(t, 0, skipped.Total())
}
