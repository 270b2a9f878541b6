package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dotwatch/dotwatch-api/internal/api/metrics"
	"github.com/dotwatch/dotwatch-api/internal/core/domain"
	"github.com/dotwatch/dotwatch-api/internal/core/ports"
)

// MachineHandler handles the machine sub-resource nested under /users.
type MachineHandler struct {
	service ports.MachineService
}

func NewMachineHandler(service ports.MachineService) *MachineHandler {
	return &MachineHandler{service: service}
}

// Add handles POST /users/machine. All three fields are required; the fixed
// 400 message is part of the frontend contract.
//
// @Summary      Register a machine under a user
// @Tags         machines
// @Accept       json
// @Produce      json
// @Param        body  body      addMachineRequest  true  "Machine details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  conflictResponse
// @Failure      500   {object}  errorResponse
// @Router       /users/machine [post]
func (h *MachineHandler) Add(c echo.Context) error {
	var req addMachineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{
			Message: "machineId, location, and userEmail are required",
		})
	}

	result, err := h.service.Add(c.Request().Context(), ports.AddMachineInput{
		MachineID: req.MachineID,
		Location:  req.Location,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrMachineExists):
			metrics.DuplicateCreatesTotal.WithLabelValues("machine").Inc()
			return c.JSON(http.StatusConflict, conflictResponse{
				Error:   "Machine already exists",
				Message: "A machine with this machineId already exists for this user",
			})
		}
		return err
	}

	metrics.MachinesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{ID: result.ID, Message: "Machine added"})
}

// List handles GET /users/machine/:email. A user with no machines yields an
// empty array; 404 is reserved for a missing user.
//
// @Summary      List a user's machines
// @Tags         machines
// @Produce      json
// @Param        email  path      string  true  "Owning user's email"
// @Success      200    {object}  machineListResponse
// @Failure      404    {object}  messageResponse
// @Failure      500    {object}  errorResponse
// @Router       /users/machine/{email} [get]
func (h *MachineHandler) List(c echo.Context) error {
	result, err := h.service.ListForUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}

	items := make([]machineItemResponse, 0, len(result.Machines))
	for _, m := range result.Machines {
		items = append(items, machineItemResponse{MachineID: m.MachineID, Location: m.Location})
	}
	return c.JSON(http.StatusOK, machineListResponse{Email: result.Email, Machines: items})
}

// Delete handles DELETE /users/machine/:email/:machineId.
//
// @Summary      Delete a user's machine by machineId
// @Tags         machines
// @Produce      json
// @Param        email      path      string  true  "Owning user's email"
// @Param        machineId  path      string  true  "Machine identifier"
// @Success      200        {object}  messageResponse
// @Failure      404        {object}  messageResponse
// @Failure      500        {object}  errorResponse
// @Router       /users/machine/{email}/{machineId} [delete]
func (h *MachineHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), c.Param("email"), c.Param("machineId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrMachineNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Machine not found for this user"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Machine deleted"})
}
