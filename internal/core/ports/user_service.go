package ports

import (
	"context"

	"github.com/doctors-portal/portal-server/internal/core/domain"
)

// UserInput is the account data a client may submit. Roles are not part of it.
type UserInput struct {
	Email       string
	DisplayName string
}

type UserService interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, input UserInput) (*domain.InsertResult, error)
	Upsert(ctx context.Context, input UserInput) (*domain.UpdateResult, error)
	// PromoteToAdmin grants the admin role to targetEmail on behalf of
	// requester. Returns domain.ErrForbidden unless requester is a verified
	// admin.
	PromoteToAdmin(ctx context.Context, requester domain.Identity, targetEmail string) (*domain.UpdateResult, error)
}
