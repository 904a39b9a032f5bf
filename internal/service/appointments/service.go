package appointments

import (
	"context"
	"fmt"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// Service сервис просмотра существующих записей на прием
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// FindByPhone получает записи по номеру телефона, отсортированные
// по дате и времени. Пустой результат не считается ошибкой.
func (s *Service) FindByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("FindByPhone: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindByPhone - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}
