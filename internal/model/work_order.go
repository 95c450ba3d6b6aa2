package model

import "time"

// WorkStatus tracks whether a job is still on the floor.
type WorkStatus string

const (
	WorkStatusPending   WorkStatus = "pending"
	WorkStatusCompleted WorkStatus = "completed"
)

// Valid reports whether the status is a known value.
func (s WorkStatus) Valid() bool {
	switch s {
	case WorkStatusPending, WorkStatusCompleted:
		return true
	}
	return false
}

// PaymentStatus tracks billing for a work order.
type PaymentStatus string

const (
	PaymentNotPaid      PaymentStatus = "NOT_PAID"
	PaymentPaid         PaymentStatus = "PAID"
	PaymentBillSent     PaymentStatus = "BILL_SENT"
	PaymentNotRequested PaymentStatus = "NOT_REQUESTED"
)

// Valid reports whether the status is a known value.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentNotPaid, PaymentPaid, PaymentBillSent, PaymentNotRequested:
		return true
	}
	return false
}

// WorkOrder represents a service job performed on a client's vehicle.
// The vehicle must belong to the client; that invariant is checked at
// creation time, not by the storage layer.
type WorkOrder struct {
	ID uint `json:"id" gorm:"primaryKey"`

	EntryDate  time.Time  `json:"entry_date" gorm:"type:date;not null"`
	EgressDate *time.Time `json:"egress_date" gorm:"type:date"`

	ClientID  uint `json:"client_id" gorm:"not null;index"`
	VehicleID uint `json:"vehicle_id" gorm:"not null;index"`

	WorkStatus    WorkStatus    `json:"work_status" gorm:"size:20;not null;default:'pending'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"size:20;not null;default:'NOT_PAID'"`

	RefrigerantGasRetrieved *int `json:"refrigerant_gas_retrieved"`
	RefrigerantGasInjected  *int `json:"refrigerant_gas_injected"`
	OilRetrieved            *int `json:"oil_retrieved"`
	OilInjected             *int `json:"oil_injected"`

	Detector   *bool   `json:"detector"`
	SpareParts *string `json:"spare_parts" gorm:"type:text"`
	Details    *string `json:"details" gorm:"type:text"`

	Workers string `json:"workers" gorm:"size:50;not null"`
	Hours   *int   `json:"hours"`
}
