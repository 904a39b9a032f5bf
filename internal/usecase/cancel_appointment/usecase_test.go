package cancel_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/m04kA/HMS-ChatbotService/internal/infra/storage/booking"
)

type stubBookingRepo struct {
	err error

	phone  string
	doctor string
	date   string
	time   string
}

func (s *stubBookingRepo) DeleteFirstMatch(_ context.Context, phone, doctorName, date, timeSlot string) error {
	s.phone, s.doctor, s.date, s.time = phone, doctorName, date, timeSlot
	return s.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo *stubBookingRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Phone:      "+91 98765-43210",
		DoctorName: "Dr. Arun Mehta",
		Date:       "15 April",
		Time:       "9:20",
	})
	require.NoError(t, err)

	// реквизиты приведены к каноничной форме перед удалением
	assert.Equal(t, "9876543210", repo.phone)
	assert.Equal(t, "15-04-2026", repo.date)
	assert.Equal(t, "09:20 AM", repo.time)
	assert.Equal(t, "15-04-2026", resp.Date)
	assert.Equal(t, "09:20 AM", resp.Time)
}

func TestExecute_FallsBackToRawInput(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Phone:      "9876543210",
		DoctorName: "Dr. Arun Mehta",
		Date:       " someday ",
		Time:       " sometime ",
	})
	require.NoError(t, err)

	// нечитаемые дата и время уходят в поиск как есть, без паники
	assert.Equal(t, "someday", repo.date)
	assert.Equal(t, "sometime", repo.time)
}

func TestExecute_NoMatchingBooking(t *testing.T) {
	repo := &stubBookingRepo{err: bookingRepo.ErrBookingNotFound}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Phone:      "9876543210",
		DoctorName: "Dr. Arun Mehta",
		Date:       "15-04-2026",
		Time:       "09:20 AM",
	})
	assert.ErrorIs(t, err, ErrNoMatchingBooking)
}

func TestExecute_InvalidPhone(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Phone:      "98765",
		DoctorName: "Dr. Arun Mehta",
		Date:       "15-04-2026",
		Time:       "09:20 AM",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
