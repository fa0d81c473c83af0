package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
	"eventhub/internal/ports/input"
	"eventhub/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	registrationRepo output.RegistrationRepository
	validate         *validator.Validate
}

func NewRegistrationService(registrationRepo output.RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register validates in, assigns a public reference and appends the
// registration. A validation failure rejects the request before any write.
// A dangling event id is surfaced as domain.ErrEventNotFound by the
// repository, never dropped.
func (s *RegistrationService) Register(ctx context.Context, in input.RegisterInput) (*entities.Registration, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRegistration, err)
	}
	registration := &entities.Registration{
		EventID:   in.EventID,
		Reference: uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     strings.TrimSpace(in.Phone),
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, err
	}
	return registration, nil
}
