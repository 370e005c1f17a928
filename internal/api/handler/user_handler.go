package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doctors-portal/portal-server/internal/api/metrics"
	"github.com/doctors-portal/portal-server/internal/core/domain"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

// UserHandler handles account lookups, registration and admin promotion.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// IsAdmin handles GET /users/:email.
//
// @Summary      Report whether a user is an admin
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  adminResponse
// @Router       /users/{email} [get]
func (h *UserHandler) IsAdmin(c echo.Context) error {
	admin, err := h.service.IsAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminResponse{Admin: admin})
}

// Create handles POST /users.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User"
// @Success      201   {object}  domain.InsertResult
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	res, err := h.service.Create(c.Request().Context(), ports.UserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

// Upsert handles PUT /users.
//
// @Summary      Create or update a user by email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [put]
func (h *UserHandler) Upsert(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	res, err := h.service.Upsert(c.Request().Context(), ports.UserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// PromoteToAdmin handles PUT /users/admin.
//
// @Summary      Grant the admin role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      promoteRequest  true  "Target user"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users/admin [put]
func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	// Anonymous requesters are refused before the body is looked at.
	who := requester(c)
	if _, ok := who.Email(); !ok {
		metrics.AdminPromotionsTotal.WithLabelValues("denied").Inc()
		return domain.ErrForbidden
	}

	var req promoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	res, err := h.service.PromoteToAdmin(c.Request().Context(), who, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
