package book_appointment

import (
	"fmt"
	"strings"
)

// validateRequest проверяет, что все поля запроса заполнены
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.DoctorName) == "" {
		return fmt.Errorf("%w: doctor name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
