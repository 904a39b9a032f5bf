package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ChatbotService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateUnlessTaken создает запись на прием, только если слот еще свободен.
// Проверка занятости и вставка выполняются одним запросом
// (INSERT ... SELECT ... WHERE NOT EXISTS), поэтому между проверкой и
// вставкой нет окна для гонки. Возвращает ErrSlotTaken, если слот занят.
//
// Если в контексте передана активная транзакция (через context.Value),
// использует её — usecase создания записи выполняет метод внутри
// serializable-транзакции вместе с проверками праздников и отпусков.
func (r *Repository) CreateUnlessTaken(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sourceSelect := psqlbuilder.Select().
		Column(squirrel.Expr("?", booking.DoctorName)).
		Column(squirrel.Expr("?", booking.Date)).
		Column(squirrel.Expr("?", booking.Time)).
		Column(squirrel.Expr("?", booking.Phone)).
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM bookings WHERE LOWER(doctor_name) = LOWER(?) AND booking_date = ? AND booking_time = ?)",
			booking.DoctorName, booking.Date, booking.Time,
		))

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("doctor_name", "booking_date", "booking_time", "phone").
		Select(sourceSelect).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateUnlessTaken - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		// вставка не прошла условие NOT EXISTS — слот занят
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUnlessTaken - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// ListByDoctorAndDate получает записи врача на дату. Имя врача
// сравнивается без учета регистра. Порядок строк стабильный, но не
// хронологический: booking_time хранится текстом "hh:mm AM/PM",
// потребители работают с занятыми слотами как со множеством.
//
// Если метод вызван внутри транзакции, добавляет FOR UPDATE для блокировки
// строк на время расчета свободных слотов.
func (r *Repository) ListByDoctorAndDate(ctx context.Context, doctorName, date string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"doctor_name",
		"booking_date",
		"booking_time",
		"phone",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Expr("LOWER(doctor_name) = LOWER(?)", doctorName)).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("booking_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctorAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctorAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByPhone получает все записи по номеру телефона. Порядок строк
// стабильный (лексикографический по текстовым дате и времени),
// хронология не гарантируется
func (r *Repository) ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"doctor_name",
		"booking_date",
		"booking_time",
		"phone",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"phone": phone}).
		OrderBy("booking_date ASC, booking_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// DeleteFirstMatch удаляет одну запись, совпадающую по телефону, врачу,
// дате и времени. При наличии нескольких одинаковых записей удаляется
// ровно одна — самая ранняя по id. Возвращает ErrBookingNotFound,
// если совпадений нет.
func (r *Repository) DeleteFirstMatch(ctx context.Context, phone, doctorName, date, timeSlot string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Expr(
			"id IN (SELECT id FROM bookings WHERE phone = ? AND LOWER(doctor_name) = LOWER(?) AND booking_date = ? AND booking_time = ? ORDER BY id ASC LIMIT 1)",
			phone, doctorName, date, timeSlot,
		)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteFirstMatch - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteFirstMatch - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteFirstMatch - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс записей
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.DoctorName,
			&booking.Date,
			&booking.Time,
			&booking.Phone,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
