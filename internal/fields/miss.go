package fields

import "fmt"

// Field is name of listing field.
type Field string

// Listing fields extracted by parsers.
const (
	FieldURL          Field = "url"
	FieldTitle        Field = "title"
	FieldBrand        Field = "brand"
	FieldModel        Field = "model"
	FieldPrice        Field = "price"
	FieldYear         Field = "year"
	FieldMileage      Field = "mileage"
	FieldFuelType     Field = "fuelType"
	FieldPowerCV      Field = "powerCv"
	FieldPowerKW      Field = "powerKw"
	FieldTransmission Field = "transmission"
)

// Miss describes field which couldn't be extracted from listing.
type Miss struct {
	ExternalID string
	Field      Field
}

// Error implements error interface.
func (m Miss) Error() string {
	return fmt.Sprintf("listing %s: field %s not found", m.ExternalID, m.Field)
}
