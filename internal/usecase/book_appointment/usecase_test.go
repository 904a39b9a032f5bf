package book_appointment

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

type stubHolidayRepo struct{ holidays []*domain.Holiday }

func (s *stubHolidayRepo) ListAll(context.Context) ([]*domain.Holiday, error) {
	return s.holidays, nil
}

type stubLeaveRepo struct{ leaves []*domain.Leave }

func (s *stubLeaveRepo) ListAll(context.Context) ([]*domain.Leave, error) {
	return s.leaves, nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
	err      error
}

func (s *stubBookingRepo) ListByDoctorAndDate(context.Context, string, string) ([]*domain.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingRepo) CreateUnlessTaken(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	b.ID = 42
	b.CreatedAt = time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)
	s.created = b
	return b, nil
}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDoctor() *domain.Doctor {
	return &domain.Doctor{
		Name:      "Dr. Arun Mehta",
		Days:      "Mon, Wed, Fri",
		StartTime: "09:00 AM",
		EndTime:   "10:00 AM",
	}
}

func newUseCase(resolver *stubResolver, holidays *stubHolidayRepo, leaves *stubLeaveRepo, bookings *stubBookingRepo) *UseCase {
	uc := NewUseCase(resolver, holidays, leaves, bookings, passthroughTxManager{}, domain.DefaultSlotMinutes, nopLogger{})
	uc.timeProvider = fixedTime{time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newUseCase(&stubResolver{doctor: testDoctor()}, &stubHolidayRepo{}, &stubLeaveRepo{}, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorName: "arun",
		Date:       "15 April",
		Time:       "9:20",
		Phone:      "+91 98765-43210",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Dr. Arun Mehta", resp.DoctorName)
	assert.Equal(t, "15-04-2026", resp.Date)
	assert.Equal(t, "09:20 AM", resp.Time)
	assert.Equal(t, "9876543210", resp.Phone)

	require.NotNil(t, repo.created)
	assert.Equal(t, "09:20 AM", repo.created.Time)
}

func TestExecute_HospitalHoliday(t *testing.T) {
	holidays := &stubHolidayRepo{holidays: []*domain.Holiday{
		{ID: 1, Date: "15-04-2026", Occasion: "Founders Day"},
	}}
	uc := newUseCase(&stubResolver{doctor: testDoctor()}, holidays, &stubLeaveRepo{}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		DoctorName: "arun", Date: "15-04-2026", Time: "09:20 AM", Phone: "9876543210",
	})
	require.ErrorIs(t, err, ErrHospitalHoliday)

	var holidayErr *HolidayError
	require.ErrorAs(t, err, &holidayErr)
	assert.Equal(t, "Founders Day", holidayErr.Occasion)
}

func TestExecute_DoctorOnLeave(t *testing.T) {
	leaves := &stubLeaveRepo{leaves: []*domain.Leave{
		{ID: 1, DoctorName: "dr. arun mehta", Date: "15-04-2026", Reason: "Conference"},
	}}
	uc := newUseCase(&stubResolver{doctor: testDoctor()}, &stubHolidayRepo{}, leaves, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		DoctorName: "arun", Date: "15-04-2026", Time: "09:20 AM", Phone: "9876543210",
	})
	require.ErrorIs(t, err, ErrDoctorOnLeave)

	var leaveErr *LeaveError
	require.ErrorAs(t, err, &leaveErr)
	assert.Equal(t, "Conference", leaveErr.Reason)
}

func TestExecute_SlotTakenWithHint(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{DoctorName: "Dr. Arun Mehta", Date: "15-04-2026", Time: "09:20 AM"},
	}}
	uc := newUseCase(&stubResolver{doctor: testDoctor()}, &stubHolidayRepo{}, &stubLeaveRepo{}, repo)

	_, err := uc.Execute(context.Background(), &Request{
		DoctorName: "arun", Date: "15-04-2026", Time: "09:20 AM", Phone: "9876543210",
	})
	require.ErrorIs(t, err, ErrSlotTaken)

	var slotErr *SlotTakenError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, "09:40 AM", slotErr.NextAvailable)
}

func TestExecute_NoOpenSlots(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{Time: "09:00 AM"}, {Time: "09:20 AM"}, {Time: "09:40 AM"},
	}}
	uc := newUseCase(&stubResolver{doctor: testDoctor()}, &stubHolidayRepo{}, &stubLeaveRepo{}, repo)

	_, err := uc.Execute(context.Background(), &Request{
		DoctorName: "arun", Date: "15-04-2026", Time: "09:20 AM", Phone: "9876543210",
	})
	assert.ErrorIs(t, err, ErrNoOpenSlots)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newUseCase(&stubResolver{err: doctors.ErrDoctorNotFound}, &stubHolidayRepo{}, &stubLeaveRepo{}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		DoctorName: "house", Date: "15-04-2026", Time: "09:20 AM", Phone: "9876543210",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_InvalidPhone(t *testing.T) {
	uc := newUseCase(&stubResolver{doctor: testDoctor()}, &stubHolidayRepo{}, &stubLeaveRepo{}, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		DoctorName: "arun", Date: "15-04-2026", Time: "09:20 AM", Phone: "98765",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
