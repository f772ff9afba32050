package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/DS-ScheduleService/internal/service/slots/models"
	"github.com/m04kA/DS-ScheduleService/pkg/ptr"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

type mockSlotRepo struct {
	slots map[int64]*domain.Slot
}

func newMockSlotRepo(slots ...*domain.Slot) *mockSlotRepo {
	m := &mockSlotRepo{slots: make(map[int64]*domain.Slot)}
	for _, s := range slots {
		m.slots[s.ID] = s
	}
	return m
}

func (m *mockSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := m.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

func (m *mockSlotRepo) GetByInstructorWithFilter(_ context.Context, filter domain.InstructorSlotsFilter) ([]*domain.Slot, error) {
	var out []*domain.Slot
	for _, s := range m.slots {
		if s.InstructorID != filter.InstructorID {
			continue
		}
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		if !filter.IncludeCancelled && s.Status == domain.StatusCancelled && filter.Status == nil {
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

func (m *mockSlotRepo) UpdateStatus(_ context.Context, id int64, status domain.SlotStatus) error {
	s, ok := m.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.Status = status
	return nil
}

func (m *mockSlotRepo) SetStudent(_ context.Context, id int64, studentID *int64, status domain.SlotStatus) error {
	s, ok := m.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.StudentID = studentID
	s.Status = status
	return nil
}

func (m *mockSlotRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.slots[id]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	delete(m.slots, id)
	return nil
}

type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func makeSlot(id, instructorID int64, status domain.SlotStatus) *domain.Slot {
	return &domain.Slot{
		ID:              id,
		InstructorID:    instructorID,
		Date:            testMonday,
		StartTime:       types.TimeString("11:00"),
		EndTime:         types.TimeString("11:45"),
		DurationMinutes: 45,
		Kind:            domain.KindLesson,
		Status:          status,
	}
}

func TestPublishWeek(t *testing.T) {
	repo := newMockSlotRepo(
		makeSlot(1, 1, domain.StatusDraft),
		makeSlot(2, 1, domain.StatusDraft),
		makeSlot(3, 1, domain.StatusBooked),
		makeSlot(4, 2, domain.StatusDraft), // чужой инструктор
	)
	svc := NewService(repo, mockTxManager{}, nopLogger{})

	resp, err := svc.PublishWeek(context.Background(), &models.PublishWeekRequest{
		InstructorID: 1,
		WeekStart:    testMonday,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Published)
	assert.Equal(t, domain.StatusOpen, repo.slots[1].Status)
	assert.Equal(t, domain.StatusOpen, repo.slots[2].Status)
	assert.Equal(t, domain.StatusBooked, repo.slots[3].Status)
	assert.Equal(t, domain.StatusDraft, repo.slots[4].Status)
}

func TestCancelBooking(t *testing.T) {
	booked := makeSlot(1, 1, domain.StatusBooked)
	booked.StudentID = ptr.Ptr(int64(500))

	repo := newMockSlotRepo(booked)
	svc := NewService(repo, mockTxManager{}, nopLogger{})

	resp, err := svc.CancelBooking(context.Background(), 1, &models.CancelBookingRequest{InstructorID: 1})
	require.NoError(t, err)

	assert.Equal(t, "open", resp.Status)
	assert.Nil(t, repo.slots[1].StudentID)
	assert.Equal(t, domain.StatusOpen, repo.slots[1].Status)
}

func TestCancelBookingErrors(t *testing.T) {
	repo := newMockSlotRepo(makeSlot(1, 1, domain.StatusOpen))
	svc := NewService(repo, mockTxManager{}, nopLogger{})

	// Слот не найден
	_, err := svc.CancelBooking(context.Background(), 99, &models.CancelBookingRequest{InstructorID: 1})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// Чужой слот
	_, err = svc.CancelBooking(context.Background(), 1, &models.CancelBookingRequest{InstructorID: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Слот без записи
	_, err = svc.CancelBooking(context.Background(), 1, &models.CancelBookingRequest{InstructorID: 1})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestDeleteSlot(t *testing.T) {
	repo := newMockSlotRepo(
		makeSlot(1, 1, domain.StatusOpen),
		makeSlot(2, 1, domain.StatusBooked),
	)
	svc := NewService(repo, mockTxManager{}, nopLogger{})

	// Открытый слот удаляется
	err := svc.Delete(context.Background(), 1, &models.DeleteSlotRequest{InstructorID: 1})
	require.NoError(t, err)
	assert.NotContains(t, repo.slots, int64(1))

	// Слот с записью - нет
	err = svc.Delete(context.Background(), 2, &models.DeleteSlotRequest{InstructorID: 1})
	assert.ErrorIs(t, err, ErrSlotBooked)
	assert.Contains(t, repo.slots, int64(2))
}

func TestGetScheduleStatusFilter(t *testing.T) {
	repo := newMockSlotRepo(
		makeSlot(1, 1, domain.StatusOpen),
		makeSlot(2, 1, domain.StatusDraft),
	)
	svc := NewService(repo, mockTxManager{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), &models.GetScheduleRequest{
		InstructorID: 1,
		Status:       ptr.Ptr("draft"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "draft", resp.Slots[0].Status)

	// Невалидный статус отклоняется до похода в репозиторий
	_, err = svc.GetSchedule(context.Background(), &models.GetScheduleRequest{
		InstructorID: 1,
		Status:       ptr.Ptr("garbage"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
