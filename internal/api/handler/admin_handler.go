package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dotwatch/dotwatch-api/internal/api/metrics"
	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

// AdminHandler handles HTTP requests for the admin collection.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Create handles POST /admin.
//
// @Summary      Register a company admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createAdminRequest  true  "Admin details"
// @Success      200   {object}  createdResponse
// @Failure      409   {object}  conflictResponse
// @Failure      500   {object}  errorResponse
// @Router       /admin [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateAdminInput{
		Name:        req.Name,
		Email:       req.Email,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			metrics.DuplicateCreatesTotal.WithLabelValues("admin").Inc()
			return c.JSON(http.StatusConflict, conflictResponse{
				Error:   "Admin already exists",
				Message: "An admin with this email already exists",
			})
		}
		return err
	}

	metrics.AdminsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, createdResponse{ID: result.ID, Message: "Admin added"})
}

// List handles GET /admin.
//
// @Summary      List all admins
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Admin
// @Failure      500  {object}  errorResponse
// @Router       /admin [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// CompanyUsers handles GET /admin/:email — the tenant fan-out. An admin with
// zero users is a successful lookup with an empty array, not a 404.
//
// @Summary      List the users in an admin's company
// @Tags         admin
// @Produce      json
// @Param        email  path      string  true  "Admin email"
// @Success      200    {object}  companyUsersResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /admin/{email} [get]
func (h *AdminHandler) CompanyUsers(c echo.Context) error {
	result, err := h.service.CompanyUsers(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Admin not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, companyUsersResponse{
		CompanyName: result.CompanyName,
		Users:       result.Users,
	})
}

// Check handles GET /admin/check/:email.
//
// @Summary      Check whether an admin exists by email
// @Tags         admin
// @Produce      json
// @Param        email  path      string  true  "Admin email"
// @Success      200    {object}  checkAdminResponse
// @Failure      404    {object}  checkAdminResponse
// @Failure      500    {object}  errorResponse
// @Router       /admin/check/{email} [get]
func (h *AdminHandler) Check(c echo.Context) error {
	adm, err := h.service.CheckEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return c.JSON(http.StatusNotFound, checkAdminResponse{Exists: false, Message: "Admin not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, checkAdminResponse{Exists: true, Admin: adm})
}
