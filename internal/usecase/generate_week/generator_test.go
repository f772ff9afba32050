package generate_week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

var (
	// 2026-03-08 - воскресенье (освобождено от зон), 2026-03-03 - вторник
	genSunday  = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	genTuesday = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	// "Сейчас" задолго до тестовых недель, прошлое не мешает
	longAgo = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

func weekConfig(start, end string, duration int, days ...int) domain.WeekConfig {
	return domain.WeekConfig{
		WorkingDays:           days,
		StartTime:             types.TimeString(start),
		EndTime:               types.TimeString(end),
		LessonDurationMinutes: duration,
	}
}

func startTimes(slots []*domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestBuildWeekDraftsPacksAroundBlock(t *testing.T) {
	existing := []*domain.Slot{
		{
			ID:           10,
			InstructorID: 1,
			Date:         genSunday,
			StartTime:    types.TimeString("10:00"),
			EndTime:      types.TimeString("11:00"),
			Kind:         domain.KindBlock,
			Status:       domain.StatusBlocked,
		},
	}

	cfg := weekConfig("09:00", "13:00", 60, int(time.Sunday))

	drafts, err := buildWeekDrafts(1, genSunday, cfg, existing, nil, longAgo)
	require.NoError(t, err)

	// 10:00 упирается в блок, курсор прыгает к его концу
	assert.Equal(t, []string{"09:00", "11:00", "12:00"}, startTimes(drafts))
}

func TestBuildWeekDraftsSkipsLunch(t *testing.T) {
	cfg := weekConfig("12:00", "15:00", 60, int(time.Sunday))
	cfg.SkipLunch = true

	drafts, err := buildWeekDrafts(1, genSunday, cfg, nil, nil, longAgo)
	require.NoError(t, err)

	// 12:00-13:00 пересекает обед 12:30-13:30, курсор прыгает к 13:30
	assert.Equal(t, []string{"13:30"}, startTimes(drafts))
}

func TestBuildWeekDraftsJumpsOverMorningZone(t *testing.T) {
	cfg := weekConfig("07:00", "11:00", 45, int(time.Tuesday))

	drafts, err := buildWeekDrafts(1, genTuesday, cfg, nil, nil, longAgo)
	require.NoError(t, err)

	// 07:00-07:45 задевает утреннюю зону, курсор прыгает к 09:30
	assert.Equal(t, []string{"09:30", "10:15"}, startTimes(drafts))
}

func TestBuildWeekDraftsSkipsPastStarts(t *testing.T) {
	now := time.Date(2026, 3, 8, 9, 30, 0, 0, time.UTC)
	cfg := weekConfig("09:00", "12:00", 60, int(time.Sunday))

	drafts, err := buildWeekDrafts(1, genSunday, cfg, nil, nil, now)
	require.NoError(t, err)

	// 09:00 уже в прошлом, пропускается на длину занятия
	assert.Equal(t, []string{"10:00", "11:00"}, startTimes(drafts))
}

func TestBuildWeekDraftsStepsToOperatingOpen(t *testing.T) {
	// Окно конфига начинается до открытия: ни один из явных прыжков
	// не срабатывает, курсор шагает по 15 минут до 06:00
	cfg := weekConfig("05:00", "07:30", 45, int(time.Sunday))

	drafts, err := buildWeekDrafts(1, genSunday, cfg, nil, nil, longAgo)
	require.NoError(t, err)

	assert.Equal(t, []string{"06:00", "06:45"}, startTimes(drafts))
}

func TestBuildWeekDraftsHonorsWorkingDays(t *testing.T) {
	// Вся неделя от воскресенья, рабочий только вторник
	cfg := weekConfig("10:00", "12:00", 60, int(time.Tuesday))

	drafts, err := buildWeekDrafts(1, genSunday, cfg, nil, nil, longAgo)
	require.NoError(t, err)

	require.Len(t, drafts, 2)
	for _, d := range drafts {
		assert.Equal(t, time.Tuesday, d.Date.Weekday())
	}
}

func TestBuildWeekDraftsDoubleLesson(t *testing.T) {
	cfg := weekConfig("10:00", "13:00", 45, int(time.Sunday))
	cfg.IsDouble = true

	drafts, err := buildWeekDrafts(1, genSunday, cfg, nil, nil, longAgo)
	require.NoError(t, err)

	// Сдвоенное занятие занимает 90 минут
	assert.Equal(t, []string{"10:00", "11:30"}, startTimes(drafts))
	assert.Equal(t, 90, drafts[0].DurationMinutes)
}

func TestBuildWeekDraftsSlotShape(t *testing.T) {
	cfg := weekConfig("10:00", "11:00", 60, int(time.Sunday))
	cfg.VehicleCategory = "B"
	cfg.Location = "Автодром Север"
	cfg.ExamCenter = "ГИБДД-1"

	drafts, err := buildWeekDrafts(7, genSunday, cfg, nil, nil, longAgo)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	d := drafts[0]
	assert.Equal(t, int64(7), d.InstructorID)
	assert.Equal(t, domain.KindLesson, d.Kind)
	assert.Equal(t, domain.StatusDraft, d.Status)
	assert.Equal(t, domain.SourceTeacher, d.Source)
	assert.Equal(t, "B", d.VehicleCategory)
	assert.Equal(t, "Автодром Север", d.Location)
	assert.Equal(t, "ГИБДД-1", d.ExamCenter)
	assert.Equal(t, "11:00", d.EndTime.String())
	assert.Nil(t, d.StudentID)
}

func TestBuildWeekDraftsHolidayLiftsZones(t *testing.T) {
	holidays := domain.HolidayCalendar{
		genTuesday.Format(domain.DateFormat): "Праздник",
	}

	cfg := weekConfig("08:00", "09:30", 45, int(time.Tuesday))

	drafts, err := buildWeekDrafts(1, genTuesday, cfg, nil, holidays, longAgo)
	require.NoError(t, err)

	// В праздник утренняя зона не действует
	assert.Equal(t, []string{"08:00", "08:45"}, startTimes(drafts))
}
