package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doctors-portal/portal-server/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment operations.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List handles GET /appointments.
//
// @Summary      List a patient's appointments for a day
// @Tags         appointments
// @Produce      json
// @Param        email  query     string  true  "Patient email"
// @Param        date   query     string  true  "Day (M/D/YYYY, YYYY-MM-DD or RFC3339)"
// @Success      200    {array}   domain.Appointment
// @Failure      400    {object}  errorResponse
// @Failure      422    {object}  errorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	var q listAppointmentsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	appointments, err := h.service.List(c.Request().Context(), q.Email, q.Date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Create handles POST /appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      createAppointmentRequest  true  "Booking"
// @Success      201   {object}  domain.InsertResult
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	res, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		PatientName: req.PatientName,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		Time:        req.Time,
		ServiceName: req.ServiceName,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Get handles GET /appointments/:id.
//
// @Summary      Get an appointment by id
// @Tags         appointments
// @Produce      json
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	appointment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// AttachPayment handles PUT /appointments/:id.
//
// @Summary      Record the payment for an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Appointment id"
// @Param        body  body      attachPaymentRequest  true  "Payment"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) AttachPayment(c echo.Context) error {
	var req attachPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	res, err := h.service.AttachPayment(c.Request().Context(), c.Param("id"), req.Payment.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
