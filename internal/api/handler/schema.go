package handler

import "github.com/doctors-portal/portal-server/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Appointments ---

type paymentRequest struct {
	Amount      float64 `json:"amount"      validate:"gte=0"`
	Transaction string  `json:"transaction" validate:"required"`
	Last4       string  `json:"last4"`
	Created     int64   `json:"created"`
}

func (p paymentRequest) toDomain() domain.Payment {
	return domain.Payment{
		Amount:      p.Amount,
		Transaction: p.Transaction,
		Last4:       p.Last4,
		Created:     p.Created,
	}
}

type createAppointmentRequest struct {
	PatientName string  `json:"patientName"`
	Email       string  `json:"email"       validate:"required,email"`
	Phone       string  `json:"phone"`
	Date        string  `json:"date"        validate:"required"`
	Time        string  `json:"time"        validate:"required"`
	ServiceName string  `json:"serviceName" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

type listAppointmentsQuery struct {
	Email string `query:"email" validate:"required"`
	Date  string `query:"date"  validate:"required"`
}

type attachPaymentRequest struct {
	Payment *paymentRequest `json:"payment" validate:"required"`
}

// --- Users ---

type userRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	DisplayName string `json:"displayName"`
}

type promoteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type adminResponse struct {
	Admin bool `json:"admin"`
}

// --- Payments ---

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
