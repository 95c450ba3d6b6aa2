package model

// Vehicle represents a client's vehicle. The plate number is stored
// upper-cased and is unique across the shop.
type Vehicle struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	VehicleType string `json:"vehicle_type" gorm:"size:25;not null"`
	BrandModel  string `json:"brand_model" gorm:"size:50;not null"`
	Kilometers  int    `json:"kilometers" gorm:"not null"`
	PlateNumber string `json:"plate_number" gorm:"uniqueIndex;size:25;not null"`
	OwnerID     uint   `json:"owner_id" gorm:"not null;index"`

	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}
