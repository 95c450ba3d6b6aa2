package repository

import (
	"context"

	"gorm.io/gorm"

	"garage/internal/model"
)

// WorkOrderFilter narrows work order listings. Zero values mean "no filter".
type WorkOrderFilter struct {
	ClientID  uint
	VehicleID uint
}

// WorkOrderRepository defines persistence operations for work orders.
type WorkOrderRepository interface {
	Create(ctx context.Context, order *model.WorkOrder) error
	FindByID(ctx context.Context, id uint) (*model.WorkOrder, error)
	List(ctx context.Context, filter WorkOrderFilter, skip, limit int) ([]model.WorkOrder, error)
	Update(ctx context.Context, order *model.WorkOrder) error
	Delete(ctx context.Context, id uint) error
}

type workOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository builds a GORM-backed repository.
func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(ctx context.Context, order *model.WorkOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *workOrderRepository) FindByID(ctx context.Context, id uint) (*model.WorkOrder, error) {
	var order model.WorkOrder
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *workOrderRepository) List(ctx context.Context, filter WorkOrderFilter, skip, limit int) ([]model.WorkOrder, error) {
	query := r.db.WithContext(ctx)
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.VehicleID != 0 {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}

	var orders []model.WorkOrder
	if err := query.Offset(skip).Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *workOrderRepository) Update(ctx context.Context, order *model.WorkOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *workOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.WorkOrder{}, id).Error
}
