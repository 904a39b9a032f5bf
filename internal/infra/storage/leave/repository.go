package leave

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

// Repository репозиторий одобренных отпусков врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отпусков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает все отпуска. Сопоставление врача и даты с конкретной
// записью выполняет usecase.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Leave, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"doctor_name",
		"leave_date",
		"reason",
	).
		From("leaves").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanLeaves(rows)
}

// scanLeaves сканирует результаты запроса в слайс отпусков
func (r *Repository) scanLeaves(rows *sql.Rows) ([]*domain.Leave, error) {
	leaves := make([]*domain.Leave, 0)

	for rows.Next() {
		var leave domain.Leave

		err := rows.Scan(
			&leave.ID,
			&leave.DoctorName,
			&leave.Date,
			&leave.Reason,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanLeaves - scan row: %v", ErrScanRow, err)
		}

		leaves = append(leaves, &leave)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanLeaves - rows error: %v", ErrScanRow, err)
	}

	return leaves, nil
}
