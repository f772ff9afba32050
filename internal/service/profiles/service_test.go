package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	profileRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/profile"
	"github.com/m04kA/DS-ScheduleService/internal/service/profiles/models"
)

type mockProfileRepo struct {
	profiles map[int64]*domain.ProfileDefaults
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[int64]*domain.ProfileDefaults)}
}

func (m *mockProfileRepo) GetByInstructorID(_ context.Context, instructorID int64) (*domain.ProfileDefaults, error) {
	p, ok := m.profiles[instructorID]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	stored := *p
	return &stored, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, p *domain.ProfileDefaults) (*domain.ProfileDefaults, error) {
	stored := *p
	m.profiles[p.InstructorID] = &stored
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByInstructorIDNotFound(t *testing.T) {
	svc := NewService(newMockProfileRepo(), nopLogger{})

	_, err := svc.GetByInstructorID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpsertAndGet(t *testing.T) {
	svc := NewService(newMockProfileRepo(), nopLogger{})

	saved, err := svc.Upsert(context.Background(), &models.UpsertProfileRequest{
		InstructorID:          1,
		LessonDurationMinutes: 50,
		DefaultDoubleLesson:   true,
		VehicleCategories:     []string{"B"},
		ExamCenters:           []string{"ГИБДД-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, saved.LessonDurationMinutes)
	assert.True(t, saved.DefaultDoubleLesson)

	got, err := svc.GetByInstructorID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, got.VehicleCategories)
	assert.Equal(t, []string{"ГИБДД-1"}, got.ExamCenters)
}

func TestUpsertValidation(t *testing.T) {
	svc := NewService(newMockProfileRepo(), nopLogger{})

	_, err := svc.Upsert(context.Background(), &models.UpsertProfileRequest{
		InstructorID:          0,
		LessonDurationMinutes: 45,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upsert(context.Background(), &models.UpsertProfileRequest{
		InstructorID:          1,
		LessonDurationMinutes: domain.MinLessonDurationMinutes - 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upsert(context.Background(), &models.UpsertProfileRequest{
		InstructorID:          1,
		LessonDurationMinutes: domain.MaxLessonDurationMinutes + 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
