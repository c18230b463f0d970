package create_booking

import (
	"fmt"
	"strings"

	"github.com/padelplus/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserPhone) == "" {
		return fmt.Errorf("%w: userPhone is required", ErrInvalidInput)
	}

	if len(req.UserName) > domain.MaxUserNameLength {
		return fmt.Errorf("%w: userName exceeds %d characters", ErrInvalidInput, domain.MaxUserNameLength)
	}

	if len(req.UserPhone) > domain.MaxUserPhoneLength {
		return fmt.Errorf("%w: userPhone exceeds %d characters", ErrInvalidInput, domain.MaxUserPhoneLength)
	}

	return nil
}
