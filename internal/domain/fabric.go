package domain

import (
	"strings"
	"time"
)

// DefaultFabricUnit is used when a fabric is created without a unit.
const DefaultFabricUnit = "yard"

// Fabric is a catalog item whose stock is held in purchase batches.
type Fabric struct {
	ID        string
	Name      string
	Code      string
	Category  string
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize trims user input and fills defaults.
func (f *Fabric) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
	f.Category = strings.TrimSpace(f.Category)
	f.Unit = strings.TrimSpace(f.Unit)
	if f.Unit == "" {
		f.Unit = DefaultFabricUnit
	}
}

// Validate checks if fabric is valid.
func (f *Fabric) Validate() error {
	if err := ValidateFabricName(f.Name); err != nil {
		return err
	}
	return ValidateFabricCode(f.Code)
}
