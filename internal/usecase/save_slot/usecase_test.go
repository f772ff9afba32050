package save_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	profileRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/profile"
	"github.com/m04kA/DS-ScheduleService/pkg/ptr"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// Моки

type mockSlotRepo struct {
	slots  map[int64]*domain.Slot
	nextID int64
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{slots: make(map[int64]*domain.Slot), nextID: 1}
}

func (m *mockSlotRepo) Create(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	stored := *s
	stored.ID = m.nextID
	m.nextID++
	m.slots[stored.ID] = &stored
	return &stored, nil
}

func (m *mockSlotRepo) Update(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	stored := *s
	m.slots[stored.ID] = &stored
	return &stored, nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := m.slots[id]
	if !ok {
		return nil, errors.New("slot.repository: slot not found")
	}
	return s, nil
}

func (m *mockSlotRepo) GetByInstructorWithFilter(_ context.Context, filter domain.InstructorSlotsFilter) ([]*domain.Slot, error) {
	var out []*domain.Slot
	for _, s := range m.slots {
		if s.InstructorID != filter.InstructorID {
			continue
		}
		if filter.StartDate != nil && s.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type mockProfileRepo struct {
	defaults *domain.ProfileDefaults
}

func (m *mockProfileRepo) GetByInstructorID(_ context.Context, _ int64) (*domain.ProfileDefaults, error) {
	if m.defaults == nil {
		return nil, profileRepo.ErrProfileNotFound
	}
	return m.defaults, nil
}

type mockHolidayProvider struct {
	calendar domain.HolidayCalendar
	err      error
}

func (m *mockHolidayProvider) GetCalendar(_ context.Context, _, _ time.Time) (domain.HolidayCalendar, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.calendar, nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *mockSlotRepo, profiles *mockProfileRepo, holidays *mockHolidayProvider) *UseCase {
	return NewUseCase(repo, profiles, holidays, &mockTxManager{}, nopLogger{})
}

var (
	// 2026-03-03 - вторник, 2026-03-08 - воскресенье
	testTuesday = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	testSunday  = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func lessonRequest(start string) *Request {
	return &Request{
		InstructorID:    1,
		Date:            testTuesday,
		StartTime:       types.TimeString(start),
		Kind:            domain.KindLesson,
		VehicleCategory: "B",
		Location:        "Автодром Север",
		ExamCenter:      "ГИБДД-1",
	}
}

// Тесты

func TestSaveSlotPresenceBeforeTemporal(t *testing.T) {
	uc := newTestUseCase(newMockSlotRepo(), &mockProfileRepo{}, &mockHolidayProvider{})

	// Время заведомо невалидно (раньше открытия), но место проведения
	// отсутствует - побеждает проверка обязательных полей
	req := lessonRequest("05:00")
	req.Location = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingLocation)
}

func TestSaveSlotFreezesDuration(t *testing.T) {
	repo := newMockSlotRepo()
	profiles := &mockProfileRepo{defaults: &domain.ProfileDefaults{InstructorID: 1, LessonDurationMinutes: 45}}
	uc := newTestUseCase(repo, profiles, &mockHolidayProvider{})

	req := lessonRequest("14:00")
	req.IsDouble = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, "15:30", resp.EndTime.String())
	assert.Equal(t, domain.StatusOpen, resp.Status)
}

func TestSaveSlotBlockDefaults(t *testing.T) {
	uc := newTestUseCase(newMockSlotRepo(), &mockProfileRepo{}, &mockHolidayProvider{})

	req := &Request{
		InstructorID: 1,
		Date:         testTuesday,
		StartTime:    types.TimeString("14:00"),
		Kind:         domain.KindBlock,
		BlockReason:  "Техосмотр",
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultBlockDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, "15:00", resp.EndTime.String())
	assert.Equal(t, domain.StatusBlocked, resp.Status)
	require.NotNil(t, resp.BlockReason)
	assert.Equal(t, "Техосмотр", *resp.BlockReason)
}

func TestSaveSlotStatusDerivation(t *testing.T) {
	profiles := &mockProfileRepo{}
	holidays := &mockHolidayProvider{}

	// Ученик назначен - booked
	uc := newTestUseCase(newMockSlotRepo(), profiles, holidays)
	req := lessonRequest("14:00")
	req.StudentID = ptr.Ptr(int64(77))
	req.Source = domain.SourceStudent

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBooked, resp.Status)

	// Явный черновик - draft
	uc = newTestUseCase(newMockSlotRepo(), profiles, holidays)
	req = lessonRequest("14:00")
	req.Draft = true

	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, resp.Status)
}

func TestSaveSlotRejectsCollision(t *testing.T) {
	repo := newMockSlotRepo()
	uc := newTestUseCase(repo, &mockProfileRepo{}, &mockHolidayProvider{})

	first, err := uc.Execute(context.Background(), lessonRequest("14:00"))
	require.NoError(t, err)

	// Второй слот поверх первого
	_, err = uc.Execute(context.Background(), lessonRequest("14:30"))
	require.Error(t, err)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, domain.ReasonCollision, rejection.Reason)

	// Отклонённый слот не сохранён
	assert.Len(t, repo.slots, 1)
	assert.Contains(t, repo.slots, first.ID)
}

func TestSaveSlotZonesEnforcedWhenHolidaysUnavailable(t *testing.T) {
	holidays := &mockHolidayProvider{err: errors.New("holidayservice: internal error")}
	uc := newTestUseCase(newMockSlotRepo(), &mockProfileRepo{}, holidays)

	// Утро вторника: при недоступном календаре зона остаётся в силе
	_, err := uc.Execute(context.Background(), lessonRequest("08:00"))
	require.Error(t, err)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, domain.ReasonRestrictedMorning, rejection.Reason)
}

func TestSaveSlotHolidayLiftsZones(t *testing.T) {
	holidays := &mockHolidayProvider{calendar: domain.HolidayCalendar{
		testTuesday.Format(domain.DateFormat): "Праздник",
	}}
	uc := newTestUseCase(newMockSlotRepo(), &mockProfileRepo{}, holidays)

	resp, err := uc.Execute(context.Background(), lessonRequest("08:00"))
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.StartTime.String())
}

func TestSaveSlotEditExcludesSelfFromCollisions(t *testing.T) {
	repo := newMockSlotRepo()
	uc := newTestUseCase(repo, &mockProfileRepo{}, &mockHolidayProvider{})

	created, err := uc.Execute(context.Background(), lessonRequest("14:00"))
	require.NoError(t, err)

	// Сдвиг на 15 минут пересекает старую позицию, но сам слот исключён
	req := lessonRequest("14:15")
	req.SlotID = &created.ID

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "14:15", resp.StartTime.String())
	assert.Len(t, repo.slots, 1)
}

func TestSaveSlotEditOwnershipCheck(t *testing.T) {
	repo := newMockSlotRepo()
	uc := newTestUseCase(repo, &mockProfileRepo{}, &mockHolidayProvider{})

	created, err := uc.Execute(context.Background(), lessonRequest("14:00"))
	require.NoError(t, err)

	// Чужой инструктор не видит слот
	req := lessonRequest("15:00")
	req.InstructorID = 2
	req.SlotID = &created.ID

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSaveSlotSundayExemptFromZones(t *testing.T) {
	uc := newTestUseCase(newMockSlotRepo(), &mockProfileRepo{}, &mockHolidayProvider{})

	req := lessonRequest("08:00")
	req.Date = testSunday

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, resp.Status)
}
