package validation

import (
	"time"

	apperrors "garage/internal/errors"
	"garage/internal/model"
)

const (
	maxWorkersLen    = 50
	maxSparePartsLen = 500
	maxDetailsLen    = 1000
)

// WorkOrderCreate is the payload for opening a work order.
type WorkOrderCreate struct {
	EntryDate  Date  `json:"entry_date"`
	EgressDate *Date `json:"egress_date"`

	ClientID  int `json:"client_id"`
	VehicleID int `json:"vehicle_id"`

	WorkStatus    model.WorkStatus    `json:"work_status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`

	RefrigerantGasRetrieved *int `json:"refrigerant_gas_retrieved"`
	RefrigerantGasInjected  *int `json:"refrigerant_gas_injected"`
	OilRetrieved            *int `json:"oil_retrieved"`
	OilInjected             *int `json:"oil_injected"`

	Detector   *bool   `json:"detector"`
	SpareParts *string `json:"spare_parts"`
	Details    *string `json:"details"`

	Workers string `json:"workers"`
	Hours   *int   `json:"hours"`
}

// Validate checks the payload, applies status defaults and normalizes the
// free-text fields in place. Whether the referenced client and vehicle exist
// (and belong together) is checked at the service layer.
func (p *WorkOrderCreate) Validate() error {
	var errs apperrors.ValidationErrors

	if p.EntryDate.IsZero() {
		errs = append(errs, apperrors.FieldError{
			Field:   "entry_date",
			Message: "entry_date is required",
		})
	} else if p.EgressDate != nil {
		entry, egress := p.EntryDate.Time, p.EgressDate.Time
		if ferr := EgressNotBeforeEntry(&entry, &egress); ferr != nil {
			errs = append(errs, *ferr)
		}
	}

	if ferr := MinInt(p.ClientID, 1, "client_id"); ferr != nil {
		errs = append(errs, *ferr)
	}
	if ferr := MinInt(p.VehicleID, 1, "vehicle_id"); ferr != nil {
		errs = append(errs, *ferr)
	}

	if p.WorkStatus == "" {
		p.WorkStatus = model.WorkStatusPending
	}
	if !p.WorkStatus.Valid() {
		errs = append(errs, apperrors.FieldError{
			Field:   "work_status",
			Message: "work_status must be pending or completed",
		})
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = model.PaymentNotPaid
	}
	if !p.PaymentStatus.Valid() {
		errs = append(errs, apperrors.FieldError{
			Field:   "payment_status",
			Message: "payment_status must be NOT_PAID, PAID, BILL_SENT or NOT_REQUESTED",
		})
	}

	errs = append(errs, validateQuantities(p.RefrigerantGasRetrieved, p.RefrigerantGasInjected,
		p.OilRetrieved, p.OilInjected, p.Hours)...)

	if ferr := validateRequiredText(p.Workers, "workers", maxWorkersLen); ferr != nil {
		errs = append(errs, *ferr)
	}

	p.SpareParts = OptionalString(p.SpareParts)
	if p.SpareParts != nil {
		if ferr := MaxLen(*p.SpareParts, maxSparePartsLen, "spare_parts"); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	p.Details = OptionalString(p.Details)
	if p.Details != nil {
		if ferr := MaxLen(*p.Details, maxDetailsLen, "details"); ferr != nil {
			errs = append(errs, *ferr)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkOrderUpdate is the payload for a partial work order update; nil means
// "do not change".
type WorkOrderUpdate struct {
	EntryDate  *Date `json:"entry_date"`
	EgressDate *Date `json:"egress_date"`

	ClientID  *int `json:"client_id"`
	VehicleID *int `json:"vehicle_id"`

	WorkStatus    *model.WorkStatus    `json:"work_status"`
	PaymentStatus *model.PaymentStatus `json:"payment_status"`

	RefrigerantGasRetrieved *int `json:"refrigerant_gas_retrieved"`
	RefrigerantGasInjected  *int `json:"refrigerant_gas_injected"`
	OilRetrieved            *int `json:"oil_retrieved"`
	OilInjected             *int `json:"oil_injected"`

	Detector   *bool   `json:"detector"`
	SpareParts *string `json:"spare_parts"`
	Details    *string `json:"details"`

	Workers *string `json:"workers"`
	Hours   *int    `json:"hours"`
}

// Validate checks only the fields that are present. The entry/egress ordering
// across the update and the stored row is re-checked by the service, which
// has both sides.
func (p *WorkOrderUpdate) Validate() error {
	var errs apperrors.ValidationErrors

	var entry, egress *time.Time
	if p.EntryDate != nil {
		entry = &p.EntryDate.Time
	}
	if p.EgressDate != nil {
		egress = &p.EgressDate.Time
	}
	if ferr := EgressNotBeforeEntry(entry, egress); ferr != nil {
		errs = append(errs, *ferr)
	}

	if ferr := OptionalMinInt(p.ClientID, 1, "client_id"); ferr != nil {
		errs = append(errs, *ferr)
	}
	if ferr := OptionalMinInt(p.VehicleID, 1, "vehicle_id"); ferr != nil {
		errs = append(errs, *ferr)
	}

	if p.WorkStatus != nil && !p.WorkStatus.Valid() {
		errs = append(errs, apperrors.FieldError{
			Field:   "work_status",
			Message: "work_status must be pending or completed",
		})
	}
	if p.PaymentStatus != nil && !p.PaymentStatus.Valid() {
		errs = append(errs, apperrors.FieldError{
			Field:   "payment_status",
			Message: "payment_status must be NOT_PAID, PAID, BILL_SENT or NOT_REQUESTED",
		})
	}

	errs = append(errs, validateQuantities(p.RefrigerantGasRetrieved, p.RefrigerantGasInjected,
		p.OilRetrieved, p.OilInjected, p.Hours)...)

	if p.Workers != nil {
		if ferr := validateRequiredText(*p.Workers, "workers", maxWorkersLen); ferr != nil {
			errs = append(errs, *ferr)
		}
	}

	p.SpareParts = OptionalString(p.SpareParts)
	if p.SpareParts != nil {
		if ferr := MaxLen(*p.SpareParts, maxSparePartsLen, "spare_parts"); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	p.Details = OptionalString(p.Details)
	if p.Details != nil {
		if ferr := MaxLen(*p.Details, maxDetailsLen, "details"); ferr != nil {
			errs = append(errs, *ferr)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateQuantities(gasRetrieved, gasInjected, oilRetrieved, oilInjected, hours *int) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors
	checks := []struct {
		value *int
		field string
	}{
		{gasRetrieved, "refrigerant_gas_retrieved"},
		{gasInjected, "refrigerant_gas_injected"},
		{oilRetrieved, "oil_retrieved"},
		{oilInjected, "oil_injected"},
		{hours, "hours"},
	}
	for _, c := range checks {
		if ferr := OptionalMinInt(c.value, 0, c.field); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	return errs
}
