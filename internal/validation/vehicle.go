package validation

import (
	"regexp"
	"strings"

	apperrors "garage/internal/errors"
)

var platePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

const (
	maxVehicleTypeLen = 25
	maxBrandModelLen  = 50
	maxPlateLen       = 25
)

// VehicleCreate is the payload for creating a vehicle. OwnerID may be
// supplied by the route when nested under a client.
type VehicleCreate struct {
	VehicleType string `json:"vehicle_type"`
	BrandModel  string `json:"brand_model"`
	Kilometers  int    `json:"kilometers"`
	PlateNumber string `json:"plate_number"`
	OwnerID     int    `json:"owner_id"`
}

// Validate checks the payload and upper-cases the plate number in place.
func (p *VehicleCreate) Validate() error {
	var errs apperrors.ValidationErrors

	if ferr := validateRequiredText(p.VehicleType, "vehicle_type", maxVehicleTypeLen); ferr != nil {
		errs = append(errs, *ferr)
	}
	if ferr := validateRequiredText(p.BrandModel, "brand_model", maxBrandModelLen); ferr != nil {
		errs = append(errs, *ferr)
	}
	if ferr := MinInt(p.Kilometers, 0, "kilometers"); ferr != nil {
		errs = append(errs, *ferr)
	}

	if plate, ferr := validatePlate(p.PlateNumber); ferr != nil {
		errs = append(errs, *ferr)
	} else {
		p.PlateNumber = plate
	}

	if ferr := MinInt(p.OwnerID, 1, "owner_id"); ferr != nil {
		errs = append(errs, *ferr)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// VehicleUpdate is the payload for a partial vehicle update; nil means
// "do not change".
type VehicleUpdate struct {
	VehicleType *string `json:"vehicle_type"`
	BrandModel  *string `json:"brand_model"`
	Kilometers  *int    `json:"kilometers"`
	PlateNumber *string `json:"plate_number"`
	OwnerID     *int    `json:"owner_id"`
}

// Validate checks only the fields that are present, upper-casing the plate
// number when given.
func (p *VehicleUpdate) Validate() error {
	var errs apperrors.ValidationErrors

	if p.VehicleType != nil {
		if ferr := validateRequiredText(*p.VehicleType, "vehicle_type", maxVehicleTypeLen); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	if p.BrandModel != nil {
		if ferr := validateRequiredText(*p.BrandModel, "brand_model", maxBrandModelLen); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	if ferr := OptionalMinInt(p.Kilometers, 0, "kilometers"); ferr != nil {
		errs = append(errs, *ferr)
	}

	if p.PlateNumber != nil {
		if plate, ferr := validatePlate(*p.PlateNumber); ferr != nil {
			errs = append(errs, *ferr)
		} else {
			p.PlateNumber = &plate
		}
	}

	if ferr := OptionalMinInt(p.OwnerID, 1, "owner_id"); ferr != nil {
		errs = append(errs, *ferr)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateRequiredText(value, field string, max int) *apperrors.FieldError {
	if _, ferr := RequiredString(value, field); ferr != nil {
		return ferr
	}
	return MaxLen(value, max, field)
}

// validatePlate normalizes a plate to upper case before the pattern check,
// so "ccc-222" and "CCC-222" validate to the same stored value.
func validatePlate(plate string) (string, *apperrors.FieldError) {
	if _, ferr := RequiredString(plate, "plate_number"); ferr != nil {
		return "", ferr
	}
	upper := strings.ToUpper(plate)
	if ferr := MaxLen(upper, maxPlateLen, "plate_number"); ferr != nil {
		return "", ferr
	}
	if ferr := MatchPattern(upper, platePattern, "plate_number",
		"plate_number may only contain letters, digits and hyphens"); ferr != nil {
		return "", ferr
	}
	return upper, nil
}
