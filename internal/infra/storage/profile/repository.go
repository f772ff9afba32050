package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DS-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий профилей инструкторов (дефолты занятий)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByInstructorID получает профиль инструктора
func (r *Repository) GetByInstructorID(ctx context.Context, instructorID int64) (*domain.ProfileDefaults, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"instructor_id",
		"lesson_duration_minutes",
		"default_double_lesson",
		"vehicle_categories",
		"exam_centers",
		"created_at",
		"updated_at",
	).
		From("instructor_profiles").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.ProfileDefaults
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.InstructorID,
		&p.LessonDurationMinutes,
		&p.DefaultDoubleLesson,
		pq.Array(&p.VehicleCategories),
		pq.Array(&p.ExamCenters),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - scan profile: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Upsert создает или обновляет профиль инструктора
func (r *Repository) Upsert(ctx context.Context, p *domain.ProfileDefaults) (*domain.ProfileDefaults, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("instructor_profiles").
		Columns(
			"instructor_id",
			"lesson_duration_minutes",
			"default_double_lesson",
			"vehicle_categories",
			"exam_centers",
		).
		Values(
			p.InstructorID,
			p.LessonDurationMinutes,
			p.DefaultDoubleLesson,
			pq.Array(p.VehicleCategories),
			pq.Array(p.ExamCenters),
		).
		Suffix(`ON CONFLICT (instructor_id) DO UPDATE SET
			lesson_duration_minutes = EXCLUDED.lesson_duration_minutes,
			default_double_lesson = EXCLUDED.default_double_lesson,
			vehicle_categories = EXCLUDED.vehicle_categories,
			exam_centers = EXCLUDED.exam_centers,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}
