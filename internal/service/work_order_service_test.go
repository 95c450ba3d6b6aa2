package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "garage/internal/errors"
	"garage/internal/model"
	"garage/internal/repository"
	"garage/internal/validation"
)

// MockClientRepository is a mock implementation of repository.ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, skip, limit int) ([]model.Client, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleRepository is a mock implementation of repository.VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, skip, limit int) ([]model.Vehicle, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Vehicle, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWorkOrderRepository is a mock implementation of repository.WorkOrderRepository.
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) Create(ctx context.Context, order *model.WorkOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) FindByID(ctx context.Context, id uint) (*model.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) List(ctx context.Context, filter repository.WorkOrderFilter, skip, limit int) ([]model.WorkOrder, error) {
	args := m.Called(ctx, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, order *model.WorkOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func workOrderPayload(clientID, vehicleID int) *validation.WorkOrderCreate {
	payload := &validation.WorkOrderCreate{
		EntryDate: validation.Date{Time: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)},
		ClientID:  clientID,
		VehicleID: vehicleID,
		Workers:   "Mike",
	}
	// Apply defaults the handler would have applied.
	_ = payload.Validate()
	return payload
}

func TestWorkOrderCreateSuccess(t *testing.T) {
	clients := new(MockClientRepository)
	vehicles := new(MockVehicleRepository)
	orders := new(MockWorkOrderRepository)

	clients.On("FindByID", mock.Anything, uint(1)).Return(&model.Client{ID: 1, Name: "Jane"}, nil)
	vehicles.On("FindByID", mock.Anything, uint(2)).Return(&model.Vehicle{ID: 2, OwnerID: 1}, nil)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o *model.WorkOrder) bool {
		return o.ClientID == 1 && o.VehicleID == 2 &&
			o.WorkStatus == model.WorkStatusPending &&
			o.PaymentStatus == model.PaymentNotPaid
	})).Return(nil)

	svc := NewWorkOrderService(orders, clients, vehicles)

	order, err := svc.Create(context.Background(), workOrderPayload(1, 2))
	assert.NoError(t, err)
	assert.Equal(t, uint(1), order.ClientID)
	orders.AssertExpectations(t)
}

func TestWorkOrderCreateOwnerMismatch(t *testing.T) {
	clients := new(MockClientRepository)
	vehicles := new(MockVehicleRepository)
	orders := new(MockWorkOrderRepository)

	// Both rows exist, but the vehicle belongs to somebody else.
	clients.On("FindByID", mock.Anything, uint(1)).Return(&model.Client{ID: 1}, nil)
	vehicles.On("FindByID", mock.Anything, uint(2)).Return(&model.Vehicle{ID: 2, OwnerID: 9}, nil)

	svc := NewWorkOrderService(orders, clients, vehicles)

	_, err := svc.Create(context.Background(), workOrderPayload(1, 2))
	assert.ErrorIs(t, err, apperrors.ErrVehicleOwnerMismatch)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkOrderCreateMissingClient(t *testing.T) {
	clients := new(MockClientRepository)
	clients.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewWorkOrderService(new(MockWorkOrderRepository), clients, new(MockVehicleRepository))

	_, err := svc.Create(context.Background(), workOrderPayload(1, 2))
	assert.ErrorIs(t, err, apperrors.ErrClientNotFound)
}

func TestWorkOrderCreateMissingVehicle(t *testing.T) {
	clients := new(MockClientRepository)
	vehicles := new(MockVehicleRepository)
	clients.On("FindByID", mock.Anything, uint(1)).Return(&model.Client{ID: 1}, nil)
	vehicles.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewWorkOrderService(new(MockWorkOrderRepository), clients, vehicles)

	_, err := svc.Create(context.Background(), workOrderPayload(1, 2))
	assert.ErrorIs(t, err, apperrors.ErrVehicleNotFound)
}

func TestWorkOrderUpdateEgressAgainstStoredEntry(t *testing.T) {
	orders := new(MockWorkOrderRepository)
	stored := &model.WorkOrder{
		ID:        5,
		EntryDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		ClientID:  1,
		VehicleID: 2,
		Workers:   "Mike",
	}
	orders.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)

	svc := NewWorkOrderService(orders, new(MockClientRepository), new(MockVehicleRepository))

	egress := validation.Date{Time: time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)}
	_, err := svc.Update(context.Background(), 5, &validation.WorkOrderUpdate{EgressDate: &egress})

	var verrs apperrors.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestWorkOrderGetNotFound(t *testing.T) {
	orders := new(MockWorkOrderRepository)
	orders.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewWorkOrderService(orders, new(MockClientRepository), new(MockVehicleRepository))

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrWorkOrderNotFound)
}
