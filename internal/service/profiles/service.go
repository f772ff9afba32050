package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	profileRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/profile"
	"github.com/m04kA/DS-ScheduleService/internal/service/profiles/models"
)

// Service сервис для работы с профилями инструкторов (дефолты занятий)
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetByInstructorID получает профиль инструктора
func (s *Service) GetByInstructorID(ctx context.Context, instructorID int64) (*models.ProfileResponse, error) {
	s.logger.Info("GetByInstructorID: fetching profile for instructor=%d", instructorID)

	profile, err := s.profileRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetByInstructorID: profile for instructor=%d not found", instructorID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetByInstructorID: repository error for instructor=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: GetByInstructorID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// Upsert создает или обновляет профиль инструктора
func (s *Service) Upsert(ctx context.Context, req *models.UpsertProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Upsert: saving profile for instructor=%d, duration=%d, double=%t",
		req.InstructorID, req.LessonDurationMinutes, req.DefaultDoubleLesson)

	if req.InstructorID <= 0 {
		return nil, fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}
	if req.LessonDurationMinutes < domain.MinLessonDurationMinutes ||
		req.LessonDurationMinutes > domain.MaxLessonDurationMinutes {
		return nil, fmt.Errorf("%w: lessonDuration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinLessonDurationMinutes, domain.MaxLessonDurationMinutes)
	}

	saved, err := s.profileRepo.Upsert(ctx, req.ToDomainProfile())
	if err != nil {
		s.logger.Error("Upsert: repository error for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved profile for instructor=%d", req.InstructorID)
	return models.FromDomainProfile(saved), nil
}
