package open_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
	"github.com/m04kA/HMS-ChatbotService/internal/service/doctors"
)

type stubResolver struct {
	doctor *domain.Doctor
	err    error
}

func (s *stubResolver) ResolveByName(context.Context, string) (*domain.Doctor, error) {
	return s.doctor, s.err
}

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) ListByDoctorAndDate(context.Context, string, string) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(resolver *stubResolver, repo *stubBookingRepo) *UseCase {
	uc := NewUseCase(resolver, repo, domain.DefaultSlotMinutes, nopLogger{})
	uc.timeProvider = fixedTime{time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	doctor := &domain.Doctor{
		Name:      "Dr. Arun Mehta",
		Days:      "Mon, Wed, Fri",
		StartTime: "09:00 AM",
		EndTime:   "10:00 AM",
	}
	uc := newUseCase(&stubResolver{doctor: doctor}, &stubBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun", Date: "15-04-2026"})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Arun Mehta", resp.DoctorName)
	assert.Equal(t, "15-04-2026", resp.Date)
	assert.Equal(t, []string{"09:00 AM", "09:20 AM", "09:40 AM"}, resp.Slots)
}

func TestExecute_BookedSlotsExcluded(t *testing.T) {
	doctor := &domain.Doctor{
		Name:      "Dr. Arun Mehta",
		StartTime: "09:00 AM",
		EndTime:   "10:00 AM",
	}
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{DoctorName: "Dr. Arun Mehta", Date: "15-04-2026", Time: "09:20 AM"},
	}}
	uc := newUseCase(&stubResolver{doctor: doctor}, repo)

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun", Date: "15-04-2026"})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "09:40 AM"}, resp.Slots)
}

func TestExecute_FallbackHours(t *testing.T) {
	// нечитаемое расписание заменяется часами по умолчанию
	doctor := &domain.Doctor{
		Name:      "Dr. Arun Mehta",
		StartTime: "morning",
		EndTime:   "evening",
	}
	uc := newUseCase(&stubResolver{doctor: doctor}, &stubBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun", Date: "15-04-2026"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "09:00 AM", resp.Slots[0])
	assert.Equal(t, "04:40 PM", resp.Slots[len(resp.Slots)-1])
}

func TestExecute_FlexibleDate(t *testing.T) {
	doctor := &domain.Doctor{Name: "Dr. Arun Mehta", StartTime: "09:00 AM", EndTime: "09:40 AM"}
	uc := newUseCase(&stubResolver{doctor: doctor}, &stubBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun", Date: "15 April"})
	require.NoError(t, err)
	assert.Equal(t, "15-04-2026", resp.Date)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newUseCase(&stubResolver{err: doctors.ErrDoctorNotFound}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{DoctorName: "house", Date: "15-04-2026"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&stubResolver{}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{DoctorName: "", Date: "15-04-2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorName: "arun", Date: "someday"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
