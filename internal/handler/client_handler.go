package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"garage/internal/service"
	"garage/internal/validation"
)

// ClientHandler bundles client endpoints, including the nested vehicle routes.
type ClientHandler struct {
	svc      service.ClientService
	vehicles service.VehicleService
}

// NewClientHandler creates a handler layer.
func NewClientHandler(svc service.ClientService, vehicles service.VehicleService) *ClientHandler {
	return &ClientHandler{svc: svc, vehicles: vehicles}
}

// Create godoc
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body validation.ClientCreate true "Client payload"
// @Success 201 {object} model.Client
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var payload validation.ClientCreate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	client, err := h.svc.Create(c.Request().Context(), &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, client)
}

// List godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Client
// @Router /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	clients, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}

// Get godoc
// @Summary Get client by id
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} model.Client
// @Failure 404 {object} errors.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	client, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}

// Update godoc
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param client body validation.ClientUpdate true "Fields to change"
// @Success 200 {object} model.Client
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.ClientUpdate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	client, err := h.svc.Update(c.Request().Context(), id, &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}

// Delete godoc
// @Summary Delete client and cascade its vehicles and work orders
// @Tags clients
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListVehicles godoc
// @Summary List a client's vehicles
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {array} model.Vehicle
// @Failure 404 {object} errors.ErrorResponse
// @Router /clients/{id}/vehicles [get]
func (h *ClientHandler) ListVehicles(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	vehicles, err := h.vehicles.ListByOwner(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle godoc
// @Summary Create a vehicle for a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param vehicle body validation.VehicleCreate true "Vehicle payload"
// @Success 201 {object} model.Vehicle
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /clients/{id}/vehicles [post]
func (h *ClientHandler) CreateVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.VehicleCreate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// The path, not the body, decides the owner.
	payload.OwnerID = int(id)
	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	vehicle, err := h.vehicles.Create(c.Request().Context(), &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// DeleteVehicle godoc
// @Summary Delete a client's vehicle
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param vehicleID path int true "Vehicle ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /clients/{id}/vehicles/{vehicleID} [delete]
func (h *ClientHandler) DeleteVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	vehicleID, err := pathID(c, "vehicleID")
	if err != nil {
		return err
	}
	if err := h.vehicles.DeleteForOwner(c.Request().Context(), id, vehicleID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "vehicle deleted"})
}
