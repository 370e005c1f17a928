package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/doctors-portal/portal-server/internal/api/middleware"
	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

func TestUserHandler_IsAdmin(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		isAdminFn: func(ctx context.Context, email string) (bool, error) {
			return email == "boss@clinic.test", nil
		},
	}
	h := NewUserHandler(stub)

	tests := []struct {
		email string
		want  string
	}{
		{"boss@clinic.test", `{"admin":true}`},
		{"nobody@clinic.test", `{"admin":false}`},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/users/"+tt.email, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("email")
		c.SetParamValues(tt.email)

		if err := h.IsAdmin(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != tt.want {
			t.Fatalf("%s: expected %s, got %s", tt.email, tt.want, got)
		}
	}
}

func TestUserHandler_Create_IgnoresRole(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.InsertResult, error) {
			if in.Email != "pat@clinic.test" || in.DisplayName != "Pat" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.InsertResult{Acknowledged: true, InsertedID: "u1"}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"pat@clinic.test","displayName":"Pat","role":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.UserInput) (*domain.InsertResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"pat@clinic.test"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserHandler_Upsert(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		upsertFn: func(ctx context.Context, in ports.UserInput) (*domain.UpdateResult, error) {
			return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: "u9"}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users", strings.NewReader(`{"email":"new@clinic.test","displayName":"New"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Upsert(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"upsertedId":"u9"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Upsert_MissingEmail(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodPut, "/users", strings.NewReader(`{"displayName":"Nobody"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Upsert(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestUserHandler_PromoteToAdmin_PassesRequester(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		promoteFn: func(ctx context.Context, requester domain.Identity, target string) (*domain.UpdateResult, error) {
			email, ok := requester.Email()
			if !ok || email != "boss@clinic.test" || target != "pat@clinic.test" {
				t.Fatalf("unexpected args: %q %v %s", email, ok, target)
			}
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/admin", strings.NewReader(`{"email":"pat@clinic.test"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, domain.Verified("boss@clinic.test"))

	if err := h.PromoteToAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_PromoteToAdmin_AnonymousForbiddenBeforeValidation(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		promoteFn: func(ctx context.Context, requester domain.Identity, target string) (*domain.UpdateResult, error) {
			t.Fatalf("service should not be called for an anonymous requester")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	for _, body := range []string{`{"email":"pat@clinic.test"}`, `{}`, `{"email":"not-an-email"}`, `{"email":`} {
		req := httptest.NewRequest(http.MethodPut, "/users/admin", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(middleware.IdentityKey, domain.Anonymous())

		if err := h.PromoteToAdmin(c); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v (status %d)", body, err, rec.Code)
		}
	}
}

func TestUserHandler_PromoteToAdmin_VerifiedRequesterStillValidated(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodPut, "/users/admin", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, domain.Verified("boss@clinic.test"))

	if err := h.PromoteToAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
