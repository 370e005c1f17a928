package ports

import (
	"context"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]*domain.Doctor, error)
	Insert(ctx context.Context, d *domain.Doctor) (*domain.InsertResult, error)
}
