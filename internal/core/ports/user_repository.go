package ports

import (
	"context"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// UserRepository defines persistence operations for portal users.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	// Upsert sets the given fields on the document keyed by user.Email,
	// inserting it when absent.
	Upsert(ctx context.Context, user *domain.User) (*domain.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*domain.UpdateResult, error)
}
