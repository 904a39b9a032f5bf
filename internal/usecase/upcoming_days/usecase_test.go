package upcoming_days

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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// среда 1 апреля 2026
var testNow = time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(doctor *domain.Doctor, holidays []*domain.Holiday, leaves []*domain.Leave) *UseCase {
	uc := NewUseCase(
		&stubResolver{doctor: doctor},
		&stubHolidayRepo{holidays: holidays},
		&stubLeaveRepo{leaves: leaves},
		domain.DefaultHorizonDays,
		nopLogger{},
	)
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func TestExecute(t *testing.T) {
	doctor := &domain.Doctor{Name: "Dr. Arun Mehta", Days: "Mon, Wed, Fri"}
	uc := newUseCase(doctor, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun"})
	require.NoError(t, err)
	require.Len(t, resp.Days, domain.DefaultHorizonDays)

	// 1 апреля 2026 — среда, первый рабочий день — она сама
	assert.Equal(t, "01-04-2026", resp.Days[0].Date)
	assert.Equal(t, "03-04-2026", resp.Days[1].Date) // пятница
	assert.Equal(t, "06-04-2026", resp.Days[2].Date) // понедельник

	for _, day := range resp.Days {
		assert.Equal(t, domain.DayAvailable, day.Status)
	}
}

func TestExecute_HolidayAndLeave(t *testing.T) {
	doctor := &domain.Doctor{Name: "Dr. Arun Mehta", Days: "Mon, Wed, Fri"}
	holidays := []*domain.Holiday{{ID: 1, Date: "03-04-2026", Occasion: "Founders Day"}}
	leaves := []*domain.Leave{
		{ID: 1, DoctorName: "Dr. Arun Mehta", Date: "06-04-2026", Reason: "Conference"},
		{ID: 2, DoctorName: "Dr. Priya Nair", Date: "08-04-2026", Reason: "Vacation"},
	}
	uc := newUseCase(doctor, holidays, leaves)

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun"})
	require.NoError(t, err)

	assert.Equal(t, domain.DayAvailable, resp.Days[0].Status)
	assert.Equal(t, domain.DayHoliday, resp.Days[1].Status)
	assert.Equal(t, "Founders Day", resp.Days[1].Note)
	assert.Equal(t, domain.DayLeave, resp.Days[2].Status)
	assert.Equal(t, "Conference", resp.Days[2].Note)
	// отпуск другого врача не влияет
	assert.Equal(t, domain.DayAvailable, resp.Days[3].Status)
}

func TestExecute_UnreadableCalendarRowsSkipped(t *testing.T) {
	doctor := &domain.Doctor{Name: "Dr. Arun Mehta", Days: "Wed"}
	holidays := []*domain.Holiday{{ID: 1, Date: "someday", Occasion: "Unknown"}}
	uc := newUseCase(doctor, holidays, nil)

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun"})
	require.NoError(t, err)
	for _, day := range resp.Days {
		assert.Equal(t, domain.DayAvailable, day.Status)
	}
}

func TestExecute_NoWorkingDays(t *testing.T) {
	// нераспознанные рабочие дни — проход упирается в предохранитель
	doctor := &domain.Doctor{Name: "Dr. Arun Mehta", Days: "never"}
	uc := newUseCase(doctor, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{DoctorName: "arun"})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newUseCase(nil, nil, nil)
	uc.doctorResolver = &stubResolver{err: doctors.ErrDoctorNotFound}

	_, err := uc.Execute(context.Background(), &Request{DoctorName: "house"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
