package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doctors-portal/portal-server/internal/core/ports"
)

// DoctorHandler handles HTTP requests for doctor profiles.
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type createDoctorForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// List handles GET /doctors.
//
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Success      200  {array}  domain.Doctor
// @Router       /doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Create handles POST /doctors.
//
// @Summary      Add a doctor with a profile image
// @Tags         doctors
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string  true  "Doctor name"
// @Param        email  formData  string  true  "Doctor email"
// @Param        image  formData  file    true  "Profile image"
// @Success      201    {object}  domain.InsertResult
// @Failure      400    {object}  errorResponse
// @Failure      413    {object}  errorResponse
// @Failure      422    {object}  errorResponse
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	form := createDoctorForm{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "image is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	res, err := h.service.Create(c.Request().Context(), ports.CreateDoctorInput{
		Name:  form.Name,
		Email: form.Email,
		Image: image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}
