package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidID = errors.New("invalid identifier")
var ErrInvalidDate = errors.New("invalid date")

// Payment is the card payment attached to an appointment once the client
// confirms the payment intent.
type Payment struct {
	Amount      float64 `json:"amount" bson:"amount"`
	Transaction string  `json:"transaction" bson:"transaction"`
	Last4       string  `json:"last4,omitempty" bson:"last4,omitempty"`
	Created     int64   `json:"created,omitempty" bson:"created,omitempty"`
}

// Appointment is a booked treatment slot for a patient.
type Appointment struct {
	ID          string   `json:"_id" bson:"_id,omitempty"`
	PatientName string   `json:"patientName" bson:"patientName"`
	Email       string   `json:"email" bson:"email"`
	Phone       string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Date        string   `json:"date" bson:"date"`
	Time        string   `json:"time" bson:"time"`
	ServiceName string   `json:"serviceName" bson:"serviceName"`
	Price       float64  `json:"price" bson:"price"`
	Payment     *Payment `json:"payment,omitempty" bson:"payment,omitempty"`
}

// AppointmentDateLayout is the US locale short date the booking client stores.
const AppointmentDateLayout = "1/2/2006"

var dateLayouts = []string{
	AppointmentDateLayout,
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// NormalizeDate converts any date representation the booking client sends
// into AppointmentDateLayout so stored and queried dates compare equal.
func NormalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidDate
	}
	// Date.toString() appends a zone name: "... GMT+0600 (Bangladesh Standard Time)".
	if i := strings.Index(s, " ("); i > 0 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(AppointmentDateLayout), nil
		}
	}
	return "", ErrInvalidDate
}
