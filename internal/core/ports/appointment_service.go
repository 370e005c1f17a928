package ports

import (
	"context"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// CreateAppointmentInput carries a booking submitted by the client.
type CreateAppointmentInput struct {
	PatientName string
	Email       string
	Phone       string
	Date        string
	Time        string
	ServiceName string
	Price       float64
}

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	List(ctx context.Context, email, date string) ([]*domain.Appointment, error)
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.InsertResult, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	AttachPayment(ctx context.Context, id string, payment domain.Payment) (*domain.UpdateResult, error)
}
