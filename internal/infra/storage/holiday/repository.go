package holiday

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

// Repository репозиторий календаря праздников больницы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория праздников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает все праздники. Даты хранятся строками в каноничной
// форме dd-mm-yyyy, сопоставление с конкретным днем выполняет usecase.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"holiday_date",
		"occasion",
	).
		From("holidays").
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

	return r.scanHolidays(rows)
}

// scanHolidays сканирует результаты запроса в слайс праздников
func (r *Repository) scanHolidays(rows *sql.Rows) ([]*domain.Holiday, error) {
	holidays := make([]*domain.Holiday, 0)

	for rows.Next() {
		var holiday domain.Holiday

		err := rows.Scan(
			&holiday.ID,
			&holiday.Date,
			&holiday.Occasion,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanHolidays - scan row: %v", ErrScanRow, err)
		}

		holidays = append(holidays, &holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}
