package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"garage/internal/service"
	"garage/internal/validation"
)

// VehicleHandler bundles vehicle endpoints.
type VehicleHandler struct {
	svc service.VehicleService
}

// NewVehicleHandler creates a handler layer.
func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// Create godoc
// @Summary Create vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicle body validation.VehicleCreate true "Vehicle payload"
// @Success 201 {object} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var payload validation.VehicleCreate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	vehicle, err := h.svc.Create(c.Request().Context(), &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// List godoc
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Vehicle
// @Router /vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	vehicles, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Get godoc
// @Summary Get vehicle by id
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} model.Vehicle
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	vehicle, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Update godoc
// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param vehicle body validation.VehicleUpdate true "Fields to change"
// @Success 200 {object} model.Vehicle
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.VehicleUpdate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	vehicle, err := h.svc.Update(c.Request().Context(), id, &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Delete godoc
// @Summary Delete vehicle and cascade its work orders
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "vehicle deleted"})
}
