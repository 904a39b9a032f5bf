package doctors

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// Service сервис справочника врачей. Справочник небольшой,
// поэтому фильтрация и поиск выполняются в памяти поверх ListAll.
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// List получает всех врачей
func (s *Service) List(ctx context.Context) ([]*domain.Doctor, error) {
	doctors, err := s.doctorRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return doctors, nil
}

// Specializations получает отсортированный список специализаций без повторов
func (s *Service) Specializations(ctx context.Context) ([]string, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	specs := make([]string, 0)
	for _, doctor := range doctors {
		spec := strings.TrimSpace(doctor.Specialization)
		if spec == "" {
			continue
		}
		key := strings.ToLower(spec)
		if !seen[key] {
			seen[key] = true
			specs = append(specs, spec)
		}
	}

	sort.Strings(specs)

	return specs, nil
}

// BySpecialization получает врачей указанной специализации.
// Сравнение без учета регистра, пустой результат не считается ошибкой.
func (s *Service) BySpecialization(ctx context.Context, specialization string) ([]*domain.Doctor, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(strings.TrimSpace(specialization))
	matched := make([]*domain.Doctor, 0)
	for _, doctor := range doctors {
		if strings.ToLower(strings.TrimSpace(doctor.Specialization)) == want {
			matched = append(matched, doctor)
		}
	}

	return matched, nil
}

// ResolveByName находит врача по подстроке имени без учета регистра.
// При нескольких совпадениях возвращается первый по алфавиту.
// Возвращает ErrDoctorNotFound, если совпадений нет.
func (s *Service) ResolveByName(ctx context.Context, query string) (*domain.Doctor, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, doctor := range doctors {
		if doctor.MatchesName(query) {
			return doctor, nil
		}
	}

	s.logger.Warn("ResolveByName: no doctor matches %q", query)
	return nil, ErrDoctorNotFound
}
