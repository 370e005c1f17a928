package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

type fakeVerifier map[string]string

func (f fakeVerifier) VerifyEmail(_ context.Context, token string) (string, error) {
	if email, ok := f[token]; ok {
		return email, nil
	}
	return "", domain.ErrForbidden
}

type fakeUsers struct {
	promoted []string
}

func (f *fakeUsers) IsAdmin(_ context.Context, email string) (bool, error) {
	return email == "boss@clinic.test", nil
}

func (f *fakeUsers) Create(context.Context, ports.UserInput) (*domain.InsertResult, error) {
	return &domain.InsertResult{Acknowledged: true}, nil
}

func (f *fakeUsers) Upsert(context.Context, ports.UserInput) (*domain.UpdateResult, error) {
	return &domain.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeUsers) PromoteToAdmin(_ context.Context, requester domain.Identity, target string) (*domain.UpdateResult, error) {
	email, ok := requester.Email()
	if !ok || email != "boss@clinic.test" {
		return nil, domain.ErrForbidden
	}
	f.promoted = append(f.promoted, target)
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeAppointments struct{}

func (fakeAppointments) List(context.Context, string, string) ([]*domain.Appointment, error) {
	return []*domain.Appointment{}, nil
}

func (fakeAppointments) Create(context.Context, ports.CreateAppointmentInput) (*domain.InsertResult, error) {
	return &domain.InsertResult{Acknowledged: true, InsertedID: "a1"}, nil
}

func (fakeAppointments) Get(_ context.Context, id string) (*domain.Appointment, error) {
	if id == "bad" {
		return nil, domain.ErrInvalidID
	}
	return nil, domain.ErrAppointmentNotFound
}

func (fakeAppointments) AttachPayment(context.Context, string, domain.Payment) (*domain.UpdateResult, error) {
	return &domain.UpdateResult{Acknowledged: true}, nil
}

type fakeDoctors struct{}

func (fakeDoctors) List(context.Context) ([]*domain.Doctor, error) { return []*domain.Doctor{}, nil }

func (fakeDoctors) Create(context.Context, ports.CreateDoctorInput) (*domain.InsertResult, error) {
	return &domain.InsertResult{Acknowledged: true}, nil
}

type fakePayments struct{}

func (fakePayments) CreateIntent(context.Context, float64, string) (string, error) {
	return "secret", nil
}

func newTestRouter(users *fakeUsers) http.Handler {
	return NewRouter(Dependencies{
		Log:          zerolog.Nop(),
		Appointments: fakeAppointments{},
		Users:        users,
		Doctors:      fakeDoctors{},
		Payments:     fakePayments{},
		Verifier:     fakeVerifier{"boss-token": "boss@clinic.test", "pat-token": "pat@clinic.test"},
		UploadLimit:  "1K",
		Registry:     prometheus.NewRegistry(),
	})
}

func do(h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Root(t *testing.T) {
	rec := do(newTestRouter(&fakeUsers{}), http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "doctors portal running" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header")
	}
}

func TestRouter_PromoteWithoutTokenIsForbidden(t *testing.T) {
	users := &fakeUsers{}
	rec := do(newTestRouter(users), http.MethodPut, "/users/admin", `{"email":"pat@clinic.test"}`, "")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "you do not have access to make admin") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if len(users.promoted) != 0 {
		t.Fatalf("no role should change, got %v", users.promoted)
	}
}

func TestRouter_PromoteWithoutTokenIgnoresBody(t *testing.T) {
	users := &fakeUsers{}
	h := newTestRouter(users)

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`} {
		rec := do(h, http.MethodPut, "/users/admin", body, "")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d: %s", body, rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "you do not have access to make admin") {
			t.Fatalf("%s: unexpected body: %s", body, rec.Body.String())
		}
	}
	if len(users.promoted) != 0 {
		t.Fatalf("no role should change, got %v", users.promoted)
	}
}

func TestRouter_PromoteByNonAdminIsForbidden(t *testing.T) {
	users := &fakeUsers{}
	rec := do(newTestRouter(users), http.MethodPut, "/users/admin", `{"email":"pat@clinic.test"}`, "pat-token")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRouter_PromoteByAdmin(t *testing.T) {
	users := &fakeUsers{}
	rec := do(newTestRouter(users), http.MethodPut, "/users/admin", `{"email":"pat@clinic.test"}`, "boss-token")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(users.promoted) != 1 || users.promoted[0] != "pat@clinic.test" {
		t.Fatalf("unexpected promotions: %v", users.promoted)
	}
}

func TestRouter_InvalidTokenFailsOpen(t *testing.T) {
	rec := do(newTestRouter(&fakeUsers{}), http.MethodGet, "/appointments?email=pat@clinic.test&date=3/5/2026", "", "garbage")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_IsAdminRouteDoesNotShadowPromotion(t *testing.T) {
	rec := do(newTestRouter(&fakeUsers{}), http.MethodGet, "/users/boss@clinic.test", "", "")
	if strings.TrimSpace(rec.Body.String()) != `{"admin":true}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_AppointmentLookupErrors(t *testing.T) {
	h := newTestRouter(&fakeUsers{})
	if rec := do(h, http.MethodGet, "/appointments/bad", "", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := do(h, http.MethodGet, "/appointments/65f0c0ffee0000000000beef", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_BodyLimit(t *testing.T) {
	big := `{"email":"pat@clinic.test","displayName":"` + strings.Repeat("x", 2048) + `"}`
	rec := do(newTestRouter(&fakeUsers{}), http.MethodPost, "/users", big, "")
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestRouter(&fakeUsers{})
	do(h, http.MethodGet, "/health", "", "")

	rec := do(h, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "doctors_portal_requests_total") {
		t.Fatalf("expected request metrics, got %s", rec.Body.String())
	}
}
