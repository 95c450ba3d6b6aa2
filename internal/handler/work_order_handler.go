package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garage/internal/repository"
	"garage/internal/service"
	"garage/internal/validation"
)

// WorkOrderHandler bundles work order endpoints.
type WorkOrderHandler struct {
	svc service.WorkOrderService
}

// NewWorkOrderHandler creates a handler layer.
func NewWorkOrderHandler(svc service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc}
}

// Create godoc
// @Summary Open a work order
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body validation.WorkOrderCreate true "Work order payload"
// @Success 201 {object} model.WorkOrder
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /work-orders [post]
func (h *WorkOrderHandler) Create(c echo.Context) error {
	var payload validation.WorkOrderCreate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	order, err := h.svc.Create(c.Request().Context(), &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

// List godoc
// @Summary List work orders
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Param client_id query int false "Filter by client"
// @Param vehicle_id query int false "Filter by vehicle"
// @Success 200 {array} model.WorkOrder
// @Router /work-orders [get]
func (h *WorkOrderHandler) List(c echo.Context) error {
	skip, limit := pagination(c)

	var filter repository.WorkOrderFilter
	if v := c.QueryParam("client_id"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			filter.ClientID = uint(parsed)
		}
	}
	if v := c.QueryParam("vehicle_id"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			filter.VehicleID = uint(parsed)
		}
	}

	orders, err := h.svc.List(c.Request().Context(), filter, skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary Get work order by id
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work order ID"
// @Success 200 {object} model.WorkOrder
// @Failure 404 {object} errors.ErrorResponse
// @Router /work-orders/{id} [get]
func (h *WorkOrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// Update godoc
// @Summary Update work order
// @Tags work-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work order ID"
// @Param order body validation.WorkOrderUpdate true "Fields to change"
// @Success 200 {object} model.WorkOrder
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /work-orders/{id} [put]
func (h *WorkOrderHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.WorkOrderUpdate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	order, err := h.svc.Update(c.Request().Context(), id, &payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// Delete godoc
// @Summary Delete work order
// @Tags work-orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work order ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /work-orders/{id} [delete]
func (h *WorkOrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "work order deleted"})
}
