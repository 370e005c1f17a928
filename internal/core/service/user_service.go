package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/api/metrics"
	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

// UserService implements account bookkeeping and admin promotion.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// IsAdmin reports whether email belongs to an admin. Unknown emails are not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("admin lookup: %w", err)
	}
	return user.IsAdmin(), nil
}

func (s *UserService) Create(ctx context.Context, in ports.UserInput) (*domain.InsertResult, error) {
	result, err := s.repo.Insert(ctx, &domain.User{Email: in.Email, DisplayName: in.DisplayName})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("email", in.Email).Msg("user created")
	return result, nil
}

func (s *UserService) Upsert(ctx context.Context, in ports.UserInput) (*domain.UpdateResult, error) {
	result, err := s.repo.Upsert(ctx, &domain.User{Email: in.Email, DisplayName: in.DisplayName})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	if result.UpsertedCount > 0 {
		s.log.Info().Str("email", in.Email).Msg("user created on sign-in")
	}
	return result, nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, requester domain.Identity, targetEmail string) (*domain.UpdateResult, error) {
	email, ok := requester.Email()
	if !ok {
		metrics.AdminPromotionsTotal.WithLabelValues("denied").Inc()
		return nil, domain.ErrForbidden
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("promote admin: requester lookup: %w", err)
	}
	if !account.IsAdmin() {
		metrics.AdminPromotionsTotal.WithLabelValues("denied").Inc()
		s.log.Warn().Str("requester", email).Str("target", targetEmail).Msg("admin promotion denied")
		return nil, domain.ErrForbidden
	}

	result, err := s.repo.SetRole(ctx, targetEmail, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("promote admin: %w", err)
	}

	metrics.AdminPromotionsTotal.WithLabelValues("granted").Inc()
	s.log.Info().Str("requester", email).Str("target", targetEmail).Int64("matched", result.MatchedCount).Msg("admin promoted")
	return result, nil
}
