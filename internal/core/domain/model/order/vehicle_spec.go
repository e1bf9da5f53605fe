package order

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrVehicleSpecIsNotConstructed is returned when a VehicleSpec instance was
// not created through the NewVehicleSpec factory method.
var ErrVehicleSpecIsNotConstructed = errors.New("VehicleSpec must be created via NewVehicleSpec constructor")

// VehicleSpec is a value object describing the vehicle an order is for:
// model, color, engine type, transmission, and door count. Orders sharing the
// same (model, color, engine, transmission) combination are considered the
// same specification when batches summarize their members.
type VehicleSpec struct {
	model        string
	color        string
	engine       string
	transmission string
	doors        int

	isConstructed bool
}

// NewVehicleSpec creates a validated vehicle specification. All text fields
// are required and the door count must be positive.
func NewVehicleSpec(model, color, engine, transmission string, doors int) (VehicleSpec, error) {
	spec := VehicleSpec{isConstructed: true}

	if err := errors.Join(
		spec.setModel(model),
		spec.setColor(color),
		spec.setEngine(engine),
		spec.setTransmission(transmission),
		spec.setDoors(doors),
	); err != nil {
		return VehicleSpec{}, err
	}

	return spec, nil
}

// Validate ensures the VehicleSpec was constructed via NewVehicleSpec.
func (v VehicleSpec) Validate() error {
	if !v.isConstructed {
		return ErrVehicleSpecIsNotConstructed
	}
	return nil
}

// Model returns the vehicle model reference.
func (v VehicleSpec) Model() string {
	return v.model
}

// Color returns the vehicle color.
func (v VehicleSpec) Color() string {
	return v.color
}

// Engine returns the engine type.
func (v VehicleSpec) Engine() string {
	return v.engine
}

// Transmission returns the transmission type.
func (v VehicleSpec) Transmission() string {
	return v.transmission
}

// Doors returns the door count.
func (v VehicleSpec) Doors() int {
	return v.doors
}

// GroupKey returns the (model, color, engine, transmission) combination used
// when grouping orders into batch summaries. Door count does not take part in
// grouping.
func (v VehicleSpec) GroupKey() string {
	return fmt.Sprintf("%s|%s|%s|%s", v.model, v.color, v.engine, v.transmission)
}

// IsEqual reports whether two specifications share the same group key.
func (v VehicleSpec) IsEqual(other VehicleSpec) bool {
	return v.GroupKey() == other.GroupKey()
}

func (v *VehicleSpec) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *VehicleSpec) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	v.color = color
	return nil
}

func (v *VehicleSpec) setEngine(engine string) error {
	if engine == "" {
		return errs.NewValueIsRequiredError("engine")
	}
	v.engine = engine
	return nil
}

func (v *VehicleSpec) setTransmission(transmission string) error {
	if transmission == "" {
		return errs.NewValueIsRequiredError("transmission")
	}
	v.transmission = transmission
	return nil
}

func (v *VehicleSpec) setDoors(doors int) error {
	if doors <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("doors",
			fmt.Errorf("%d is not greater than 0", doors))
	}
	v.doors = doors
	return nil
}
