package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

type stubAppointmentService struct {
	listFn   func(ctx context.Context, email, date string) ([]*domain.Appointment, error)
	createFn func(ctx context.Context, in ports.CreateAppointmentInput) (*domain.InsertResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Appointment, error)
	attachFn func(ctx context.Context, id string, p domain.Payment) (*domain.UpdateResult, error)
}

func (s *stubAppointmentService) List(ctx context.Context, email, date string) ([]*domain.Appointment, error) {
	return s.listFn(ctx, email, date)
}

func (s *stubAppointmentService) Create(ctx context.Context, in ports.CreateAppointmentInput) (*domain.InsertResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubAppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.getFn(ctx, id)
}

func (s *stubAppointmentService) AttachPayment(ctx context.Context, id string, p domain.Payment) (*domain.UpdateResult, error) {
	return s.attachFn(ctx, id, p)
}

type stubUserService struct {
	isAdminFn func(ctx context.Context, email string) (bool, error)
	createFn  func(ctx context.Context, in ports.UserInput) (*domain.InsertResult, error)
	upsertFn  func(ctx context.Context, in ports.UserInput) (*domain.UpdateResult, error)
	promoteFn func(ctx context.Context, requester domain.Identity, target string) (*domain.UpdateResult, error)
}

func (s *stubUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.isAdminFn(ctx, email)
}

func (s *stubUserService) Create(ctx context.Context, in ports.UserInput) (*domain.InsertResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Upsert(ctx context.Context, in ports.UserInput) (*domain.UpdateResult, error) {
	return s.upsertFn(ctx, in)
}

func (s *stubUserService) PromoteToAdmin(ctx context.Context, requester domain.Identity, target string) (*domain.UpdateResult, error) {
	return s.promoteFn(ctx, requester, target)
}

type stubDoctorService struct {
	listFn   func(ctx context.Context) ([]*domain.Doctor, error)
	createFn func(ctx context.Context, in ports.CreateDoctorInput) (*domain.InsertResult, error)
}

func (s *stubDoctorService) List(ctx context.Context) ([]*domain.Doctor, error) {
	return s.listFn(ctx)
}

func (s *stubDoctorService) Create(ctx context.Context, in ports.CreateDoctorInput) (*domain.InsertResult, error) {
	return s.createFn(ctx, in)
}

type stubPaymentService struct {
	createFn func(ctx context.Context, price float64, key string) (string, error)
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, price float64, key string) (string, error) {
	return s.createFn(ctx, price, key)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}
