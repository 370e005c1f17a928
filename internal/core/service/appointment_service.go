package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/api/metrics"
	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

type AppointmentService struct {
	repo   ports.AppointmentRepository
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, logger: logger}
}

// List returns the appointments booked by email on the given day. The date is
// normalised the same way Create stores it, so any accepted representation of
// a day finds that day's bookings.
func (s *AppointmentService) List(ctx context.Context, email, date string) ([]*domain.Appointment, error) {
	day, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindByEmailAndDate(ctx, email, day)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if items == nil {
		items = []*domain.Appointment{}
	}
	return items, nil
}

func (s *AppointmentService) Create(ctx context.Context, in ports.CreateAppointmentInput) (*domain.InsertResult, error) {
	day, err := domain.NormalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		PatientName: in.PatientName,
		Email:       in.Email,
		Phone:       in.Phone,
		Date:        day,
		Time:        in.Time,
		ServiceName: in.ServiceName,
		Price:       in.Price,
	}

	result, err := s.repo.Insert(ctx, appointment)
	if err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create appointment")
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	metrics.AppointmentsCreatedTotal.Inc()
	s.logger.Info().
		Str("appointment_id", result.InsertedID).
		Str("date", day).
		Str("service", in.ServiceName).
		Msg("appointment created")

	return result, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

// AttachPayment records a confirmed payment on the appointment.
func (s *AppointmentService) AttachPayment(ctx context.Context, id string, payment domain.Payment) (*domain.UpdateResult, error) {
	result, err := s.repo.SetPayment(ctx, id, payment)
	if err != nil {
		return nil, fmt.Errorf("attach payment: %w", err)
	}

	if result.MatchedCount > 0 {
		metrics.AppointmentsPaidTotal.Inc()
		s.logger.Info().Str("appointment_id", id).Str("transaction", payment.Transaction).Msg("payment attached")
	} else {
		s.logger.Warn().Str("appointment_id", id).Msg("payment attached to unknown appointment")
	}
	return result, nil
}
