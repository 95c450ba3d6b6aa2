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

// VehicleService manages vehicles and their owner references.
type VehicleService interface {
	Create(ctx context.Context, payload *validation.VehicleCreate) (*model.Vehicle, error)
	Get(ctx context.Context, id uint) (*model.Vehicle, error)
	List(ctx context.Context, skip, limit int) ([]model.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Vehicle, error)
	Update(ctx context.Context, id uint, payload *validation.VehicleUpdate) (*model.Vehicle, error)
	Delete(ctx context.Context, id uint) error
	DeleteForOwner(ctx context.Context, ownerID, id uint) error
}

type vehicleService struct {
	vehicles repository.VehicleRepository
	clients  repository.ClientRepository
}

// NewVehicleService builds a VehicleService.
func NewVehicleService(vehicles repository.VehicleRepository, clients repository.ClientRepository) VehicleService {
	return &vehicleService{vehicles: vehicles, clients: clients}
}

// Create stores a vehicle after checking the referenced owner exists.
func (s *vehicleService) Create(ctx context.Context, payload *validation.VehicleCreate) (*model.Vehicle, error) {
	if err := s.ownerExists(ctx, uint(payload.OwnerID)); err != nil {
		return nil, err
	}

	vehicle := &model.Vehicle{
		VehicleType: payload.VehicleType,
		BrandModel:  payload.BrandModel,
		Kilometers:  payload.Kilometers,
		PlateNumber: payload.PlateNumber,
		OwnerID:     uint(payload.OwnerID),
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, apperrors.ErrPlateTaken
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context, skip, limit int) ([]model.Vehicle, error) {
	return s.vehicles.List(ctx, skip, limit)
}

// ListByOwner returns a client's vehicles, 404ing when the client is missing.
func (s *vehicleService) ListByOwner(ctx context.Context, ownerID uint) ([]model.Vehicle, error) {
	if _, err := s.clients.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}
	return s.vehicles.ListByOwner(ctx, ownerID)
}

func (s *vehicleService) Update(ctx context.Context, id uint, payload *validation.VehicleUpdate) (*model.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.OwnerID != nil {
		if err := s.ownerExists(ctx, uint(*payload.OwnerID)); err != nil {
			return nil, err
		}
		vehicle.OwnerID = uint(*payload.OwnerID)
	}
	if payload.VehicleType != nil {
		vehicle.VehicleType = *payload.VehicleType
	}
	if payload.BrandModel != nil {
		vehicle.BrandModel = *payload.BrandModel
	}
	if payload.Kilometers != nil {
		vehicle.Kilometers = *payload.Kilometers
	}
	if payload.PlateNumber != nil {
		vehicle.PlateNumber = *payload.PlateNumber
	}

	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, apperrors.ErrPlateTaken
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

// DeleteForOwner deletes a vehicle only when it belongs to the given client;
// anything else is a 404, matching the nested route contract.
func (s *vehicleService) DeleteForOwner(ctx context.Context, ownerID, id uint) error {
	vehicle, err := s.vehicles.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVehicleNotFound
		}
		return err
	}
	return s.vehicles.Delete(ctx, vehicle.ID)
}

func (s *vehicleService) ownerExists(ctx context.Context, ownerID uint) error {
	if _, err := s.clients.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOwnerNotFound
		}
		return err
	}
	return nil
}
