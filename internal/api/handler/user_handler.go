package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dotwatch/dotwatch-api/internal/api/metrics"
	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the users collection.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  createdResponse
// @Failure      409   {object}  conflictResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.DuplicateCreatesTotal.WithLabelValues("user").Inc()
			return c.JSON(http.StatusConflict, conflictResponse{
				Error:   "User already exists",
				Message: "A user with this email already exists",
			})
		}
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, createdResponse{ID: result.ID, Message: "User added"})
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Check handles GET /users/check/:email.
//
// @Summary      Check whether a user exists by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  checkUserResponse
// @Failure      404    {object}  checkUserResponse
// @Failure      500    {object}  errorResponse
// @Router       /users/check/{email} [get]
func (h *UserHandler) Check(c echo.Context) error {
	user, err := h.service.CheckEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, checkUserResponse{Exists: false, Message: "User not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, checkUserResponse{Exists: true, User: user})
}

// Update handles PUT /users/:email. Fields absent from the body are left
// untouched; fields present with a zero value are written as given.
//
// @Summary      Update a user's profile by email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string             true  "User email"
// @Param        body   body      updateUserRequest  true  "Fields to update"
// @Success      200    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Failure      500    {object}  errorResponse
// @Router       /users/{email} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	err := h.service.UpdateByEmail(c.Request().Context(), c.Param("email"), ports.UserUpdate{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Age:         req.Age,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated"})
}

// Delete handles DELETE /users/:email. Every document matching the email is
// removed, guarding against duplicates from legacy unchecked creates.
//
// @Summary      Delete a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Failure      500    {object}  errorResponse
// @Router       /users/{email} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	err := h.service.DeleteByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted"})
}
