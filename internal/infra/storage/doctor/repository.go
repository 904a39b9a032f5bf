package doctor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ChatbotService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочника врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает всех врачей, отсортированных по имени.
// Справочник небольшой, фильтрация по специализации и имени
// выполняется на уровне сервиса.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"specialization",
		"days",
		"start_time",
		"end_time",
	).
		From("doctors").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDoctors(rows)
}

// scanDoctors сканирует результаты запроса в слайс врачей
func (r *Repository) scanDoctors(rows *sql.Rows) ([]*domain.Doctor, error) {
	doctors := make([]*domain.Doctor, 0)

	for rows.Next() {
		var doctor domain.Doctor

		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Specialization,
			&doctor.Days,
			&doctor.StartTime,
			&doctor.EndTime,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanDoctors - scan row: %v", ErrScanRow, err)
		}

		doctors = append(doctors, &doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDoctors - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}
