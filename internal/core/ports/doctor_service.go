package ports

import (
	"context"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// CreateDoctorInput carries a doctor profile with its uploaded image bytes.
type CreateDoctorInput struct {
	Name  string
	Email string
	Image []byte
}

type DoctorService interface {
	List(ctx context.Context) ([]*domain.Doctor, error)
	Create(ctx context.Context, input CreateDoctorInput) (*domain.InsertResult, error)
}
