package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validVehicleCreate() VehicleCreate {
	return VehicleCreate{
		VehicleType: "Car",
		BrandModel:  "Toyota Corolla",
		Kilometers:  12000,
		PlateNumber: "ABC-123",
		OwnerID:     1,
	}
}

func TestVehicleCreateValid(t *testing.T) {
	payload := validVehicleCreate()
	assert.NoError(t, payload.Validate())
	assert.Equal(t, "ABC-123", payload.PlateNumber)
}

func TestVehicleCreatePlateUppercased(t *testing.T) {
	payload := validVehicleCreate()
	payload.PlateNumber = "ccc-222"

	assert.NoError(t, payload.Validate())
	assert.Equal(t, "CCC-222", payload.PlateNumber)

	// Re-validating the normalized value is a no-op.
	assert.NoError(t, payload.Validate())
	assert.Equal(t, "CCC-222", payload.PlateNumber)
}

func TestVehicleCreateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VehicleCreate)
	}{
		{"empty vehicle type", func(p *VehicleCreate) { p.VehicleType = "" }},
		{"blank vehicle type", func(p *VehicleCreate) { p.VehicleType = "   " }},
		{"empty brand model", func(p *VehicleCreate) { p.BrandModel = "" }},
		{"negative kilometers", func(p *VehicleCreate) { p.Kilometers = -10 }},
		{"empty plate", func(p *VehicleCreate) { p.PlateNumber = "" }},
		{"plate with space", func(p *VehicleCreate) { p.PlateNumber = "abc 123" }},
		{"zero owner", func(p *VehicleCreate) { p.OwnerID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validVehicleCreate()
			tt.mutate(&payload)
			assert.Error(t, payload.Validate())
		})
	}
}

func TestVehicleUpdatePartial(t *testing.T) {
	assert.NoError(t, (&VehicleUpdate{}).Validate())

	plate := "bike-01"
	payload := VehicleUpdate{PlateNumber: &plate}
	assert.NoError(t, payload.Validate())
	assert.Equal(t, "BIKE-01", *payload.PlateNumber)

	blank := "   "
	assert.Error(t, (&VehicleUpdate{VehicleType: &blank}).Validate())

	negative := -1
	assert.Error(t, (&VehicleUpdate{Kilometers: &negative}).Validate())

	zero := 0
	assert.Error(t, (&VehicleUpdate{OwnerID: &zero}).Validate())
}
