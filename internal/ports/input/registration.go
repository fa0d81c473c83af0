package input

import (
	"context"

	"eventhub/internal/domain/entities"
)

// RegisterInput carries one registration request across the boundary.
type RegisterInput struct {
	EventID uint   `validate:"required"`
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string
}

type RegistrationUseCase interface {
	// Register validates the input and appends a registration. Validation
	// failures reject the request before any write happens.
	Register(ctx context.Context, in RegisterInput) (*entities.Registration, error)
}
