package doctors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

type stubRepo struct {
	doctors []*domain.Doctor
	err     error
}

func (s *stubRepo) ListAll(context.Context) ([]*domain.Doctor, error) {
	return s.doctors, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDoctors() []*domain.Doctor {
	return []*domain.Doctor{
		{ID: 1, Name: "Dr. Arun Mehta", Specialization: "Cardiology"},
		{ID: 2, Name: "Dr. Priya Nair", Specialization: "Dermatology"},
		{ID: 3, Name: "Dr. Sanjay Rao", Specialization: "cardiology"},
	}
}

func TestSpecializations(t *testing.T) {
	svc := NewService(&stubRepo{doctors: testDoctors()}, nopLogger{})

	specs, err := svc.Specializations(context.Background())
	require.NoError(t, err)
	// повторы схлопываются без учета регистра, порядок алфавитный
	assert.Equal(t, []string{"Cardiology", "Dermatology"}, specs)
}

func TestBySpecialization(t *testing.T) {
	svc := NewService(&stubRepo{doctors: testDoctors()}, nopLogger{})

	matched, err := svc.BySpecialization(context.Background(), "CARDIOLOGY")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Dr. Arun Mehta", matched[0].Name)

	none, err := svc.BySpecialization(context.Background(), "Neurology")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestResolveByName(t *testing.T) {
	svc := NewService(&stubRepo{doctors: testDoctors()}, nopLogger{})

	doctor, err := svc.ResolveByName(context.Background(), "priya")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya Nair", doctor.Name)

	_, err = svc.ResolveByName(context.Background(), "House")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&stubRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
