package model

// Client represents a customer of the shop.
type Client struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:50;not null"`
	PhoneNumber string  `json:"phone_number" gorm:"size:20;not null"`
	Email       *string `json:"email" gorm:"size:50"`

	// Relations; deleting a client removes its vehicles and work orders.
	Vehicles   []Vehicle   `json:"vehicles,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}
