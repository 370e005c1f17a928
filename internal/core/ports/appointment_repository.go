package ports

import (
	"context"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	// FindByEmailAndDate returns every appointment matching both fields exactly.
	FindByEmailAndDate(ctx context.Context, email, date string) ([]*domain.Appointment, error)
	Insert(ctx context.Context, a *domain.Appointment) (*domain.InsertResult, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	SetPayment(ctx context.Context, id string, payment domain.Payment) (*domain.UpdateResult, error)
}
