package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/api/metrics"
	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

type DoctorService struct {
	repo   ports.DoctorRepository
	logger zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, logger zerolog.Logger) *DoctorService {
	return &DoctorService{repo: repo, logger: logger}
}

func (s *DoctorService) List(ctx context.Context) ([]*domain.Doctor, error) {
	doctors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	if doctors == nil {
		doctors = []*domain.Doctor{}
	}
	return doctors, nil
}

// Create stores the doctor profile with the image bytes exactly as uploaded.
func (s *DoctorService) Create(ctx context.Context, in ports.CreateDoctorInput) (*domain.InsertResult, error) {
	result, err := s.repo.Insert(ctx, &domain.Doctor{
		Name:  in.Name,
		Email: in.Email,
		Image: in.Image,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create doctor")
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	metrics.DoctorsCreatedTotal.Inc()
	s.logger.Info().Str("doctor_id", result.InsertedID).Int("image_bytes", len(in.Image)).Msg("doctor created")
	return result, nil
}
