package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DS-ScheduleService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"instructor_id",
	"student_id",
	"slot_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"custom_duration_minutes",
	"kind",
	"status",
	"vehicle_category",
	"location",
	"exam_center",
	"block_reason",
	"is_double",
	"source",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"instructor_id",
			"student_id",
			"slot_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"custom_duration_minutes",
			"kind",
			"status",
			"vehicle_category",
			"location",
			"exam_center",
			"block_reason",
			"is_double",
			"source",
		).
		Values(
			s.InstructorID,
			s.StudentID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.DurationMinutes,
			s.CustomDurationMinutes,
			s.Kind,
			s.Status,
			s.VehicleCategory,
			s.Location,
			s.ExamCenter,
			s.BlockReason,
			s.IsDouble,
			s.Source,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// CreateBatch создает пакет слотов одним INSERT.
// Используется генератором недели и копированием недели вперед:
// пачка вычисляется целиком, затем пишется за один запрос.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error) {
	if len(slots) == 0 {
		return slots, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("slots").
		Columns(
			"instructor_id",
			"student_id",
			"slot_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"custom_duration_minutes",
			"kind",
			"status",
			"vehicle_category",
			"location",
			"exam_center",
			"block_reason",
			"is_double",
			"source",
		)

	for _, s := range slots {
		builder = builder.Values(
			s.InstructorID,
			s.StudentID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.DurationMinutes,
			s.CustomDurationMinutes,
			s.Kind,
			s.Status,
			s.VehicleCategory,
			s.Location,
			s.ExamCenter,
			s.BlockReason,
			s.IsDouble,
			s.Source,
		)
	}

	query, args, err := builder.
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(slots) {
			break
		}
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&slots[i].ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returning row: %v", ErrScanRow, err)
		}
		slots[i].CreatedAt = createdAt.Time
		slots[i].UpdatedAt = updatedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots, err := r.scanSlots(rows)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrSlotNotFound
	}

	return slots[0], nil
}

// GetByInstructorWithFilter получает слоты инструктора с гибкой фильтрацией.
// Слоты на конкретную дату сортируются по времени начала; для периода -
// по дате и времени. Внутри транзакции выборка одного дня блокируется
// FOR UPDATE - так снапшот дня, против которого идет проверка коллизий,
// не может измениться до коммита.
func (r *Repository) GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorSlotsFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"instructor_id": filter.InstructorID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDay {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("slot_date ASC, start_time ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// Update обновляет изменяемые поля слота
func (r *Repository) Update(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("student_id", s.StudentID).
		Set("slot_date", s.Date).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("duration_minutes", s.DurationMinutes).
		Set("custom_duration_minutes", s.CustomDurationMinutes).
		Set("kind", s.Kind).
		Set("status", s.Status).
		Set("vehicle_category", s.VehicleCategory).
		Set("location", s.Location).
		Set("exam_center", s.ExamCenter).
		Set("block_reason", s.BlockReason).
		Set("is_double", s.IsDouble).
		Set("source", s.Source).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// UpdateStatus обновляет статус слота
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// SetStudent назначает или снимает ученика со слота вместе со статусом.
// Статус и ссылка на ученика меняются одним запросом, чтобы инвариант
// "booked => студент назначен" не нарушался даже на мгновение.
func (r *Repository) SetStudent(ctx context.Context, id int64, studentID *int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("student_id", studentID).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStudent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStudent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStudent - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete физически удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.InstructorID,
			&s.StudentID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.DurationMinutes,
			&s.CustomDurationMinutes,
			&s.Kind,
			&s.Status,
			&s.VehicleCategory,
			&s.Location,
			&s.ExamCenter,
			&s.BlockReason,
			&s.IsDouble,
			&s.Source,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
