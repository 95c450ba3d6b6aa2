package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "garage/internal/errors"
	"garage/internal/model"
	"garage/internal/repository"
	"garage/internal/validation"
)

// WorkOrderService manages service jobs. Creation enforces the cross-entity
// invariant that the vehicle belongs to the claimed client.
type WorkOrderService interface {
	Create(ctx context.Context, payload *validation.WorkOrderCreate) (*model.WorkOrder, error)
	Get(ctx context.Context, id uint) (*model.WorkOrder, error)
	List(ctx context.Context, filter repository.WorkOrderFilter, skip, limit int) ([]model.WorkOrder, error)
	Update(ctx context.Context, id uint, payload *validation.WorkOrderUpdate) (*model.WorkOrder, error)
	Delete(ctx context.Context, id uint) error
}

type workOrderService struct {
	orders   repository.WorkOrderRepository
	clients  repository.ClientRepository
	vehicles repository.VehicleRepository
}

// NewWorkOrderService builds a WorkOrderService.
func NewWorkOrderService(
	orders repository.WorkOrderRepository,
	clients repository.ClientRepository,
	vehicles repository.VehicleRepository,
) WorkOrderService {
	return &workOrderService{orders: orders, clients: clients, vehicles: vehicles}
}

// Create checks both references exist and that the vehicle's owner matches
// the claimed client, then inserts. The check and the insert are not wrapped
// in a transaction; a concurrent re-owning of the vehicle can slip through.
func (s *workOrderService) Create(ctx context.Context, payload *validation.WorkOrderCreate) (*model.WorkOrder, error) {
	if _, err := s.clients.FindByID(ctx, uint(payload.ClientID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}

	vehicle, err := s.vehicles.FindByID(ctx, uint(payload.VehicleID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, err
	}

	if vehicle.OwnerID != uint(payload.ClientID) {
		return nil, apperrors.ErrVehicleOwnerMismatch
	}

	order := &model.WorkOrder{
		EntryDate:               payload.EntryDate.Time,
		ClientID:                uint(payload.ClientID),
		VehicleID:               uint(payload.VehicleID),
		WorkStatus:              payload.WorkStatus,
		PaymentStatus:           payload.PaymentStatus,
		RefrigerantGasRetrieved: payload.RefrigerantGasRetrieved,
		RefrigerantGasInjected:  payload.RefrigerantGasInjected,
		OilRetrieved:            payload.OilRetrieved,
		OilInjected:             payload.OilInjected,
		Detector:                payload.Detector,
		SpareParts:              payload.SpareParts,
		Details:                 payload.Details,
		Workers:                 payload.Workers,
		Hours:                   payload.Hours,
	}
	if payload.EgressDate != nil {
		egress := payload.EgressDate.Time
		order.EgressDate = &egress
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *workOrderService) Get(ctx context.Context, id uint) (*model.WorkOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *workOrderService) List(ctx context.Context, filter repository.WorkOrderFilter, skip, limit int) ([]model.WorkOrder, error) {
	return s.orders.List(ctx, filter, skip, limit)
}

func (s *workOrderService) Update(ctx context.Context, id uint, payload *validation.WorkOrderUpdate) (*model.WorkOrder, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.ClientID != nil {
		if _, err := s.clients.FindByID(ctx, uint(*payload.ClientID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrClientNotFound
			}
			return nil, err
		}
		order.ClientID = uint(*payload.ClientID)
	}
	if payload.VehicleID != nil {
		if _, err := s.vehicles.FindByID(ctx, uint(*payload.VehicleID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrVehicleNotFound
			}
			return nil, err
		}
		order.VehicleID = uint(*payload.VehicleID)
	}

	if payload.EntryDate != nil {
		order.EntryDate = payload.EntryDate.Time
	}
	if payload.EgressDate != nil {
		egress := payload.EgressDate.Time
		order.EgressDate = &egress
	}

	// Re-check ordering against the stored row once both sides are known.
	if ferr := validation.EgressNotBeforeEntry(&order.EntryDate, order.EgressDate); ferr != nil {
		return nil, apperrors.ValidationErrors{*ferr}
	}

	if payload.WorkStatus != nil {
		order.WorkStatus = *payload.WorkStatus
	}
	if payload.PaymentStatus != nil {
		order.PaymentStatus = *payload.PaymentStatus
	}
	if payload.RefrigerantGasRetrieved != nil {
		order.RefrigerantGasRetrieved = payload.RefrigerantGasRetrieved
	}
	if payload.RefrigerantGasInjected != nil {
		order.RefrigerantGasInjected = payload.RefrigerantGasInjected
	}
	if payload.OilRetrieved != nil {
		order.OilRetrieved = payload.OilRetrieved
	}
	if payload.OilInjected != nil {
		order.OilInjected = payload.OilInjected
	}
	if payload.Detector != nil {
		order.Detector = payload.Detector
	}
	if payload.SpareParts != nil {
		order.SpareParts = payload.SpareParts
	}
	if payload.Details != nil {
		order.Details = payload.Details
	}
	if payload.Workers != nil {
		order.Workers = *payload.Workers
	}
	if payload.Hours != nil {
		order.Hours = payload.Hours
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *workOrderService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.orders.Delete(ctx, id)
}
