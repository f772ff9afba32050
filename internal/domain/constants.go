package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Operating window of the school: no slot may start before opening
// or end after closing.
const (
	OpeningMinutes = 6 * 60      // 06:00
	ClosingMinutes = 23*60 + 30  // 23:30
)

// Restricted placement zones, minutes since midnight.
// Morning applies every day except Sundays and holidays.
// Evening additionally does not apply on Saturdays.
const (
	MorningZoneStartMinutes = 7*60 + 30  // 07:30
	MorningZoneEndMinutes   = 9*60 + 30  // 09:30
	EveningZoneStartMinutes = 16*60 + 30 // 16:30
	EveningZoneEndMinutes   = 19*60 + 30 // 19:30
)

// Lunch window skipped by the week generator when SkipLunch is set
const (
	LunchStartMinutes = 12*60 + 30 // 12:30
	LunchEndMinutes   = 13*60 + 30 // 13:30
)

// Default configuration values
const (
	DefaultLessonDurationMinutes = 45
	DefaultBlockDurationMinutes  = 60
)

// ProbeStepMinutes шаг, на который генератор сдвигает курсор, если
// валидатор отклонил позицию по причине, не обработанной явными прыжками
const ProbeStepMinutes = 15

// DaysPerWeek длина окна недельного генератора и сдвиг копирования
const DaysPerWeek = 7

// Business validation constants
const (
	MinLessonDurationMinutes = 15
	MaxLessonDurationMinutes = 240
	MaxBlockReasonLength     = 500
	MaxLocationLength        = 255
)
