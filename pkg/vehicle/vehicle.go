// Package vehicle demonstrates the Abstract Factory pattern with vehicle
// families: every factory builds a car and the engine that belongs in it.
package vehicle

import (
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/domain"
)

// Vehicle is assembled by a factory.
type Vehicle interface {
	Name() string
	Assemble() colors.Line
}

// Engine is started once the vehicle is assembled.
type Engine interface {
	Name() string
	Start() colors.Line
}

type (
	ElectricCar    struct{}
	GasCar         struct{}
	ElectricEngine struct{}
	GasEngine      struct{}
)

func (ElectricCar) Name() string { return "ElectricCar" }

func (ElectricCar) Assemble() colors.Line {
	return colors.Styled("Assembling an ", "electric car 🚗🔋", colors.Green)
}

func (GasCar) Name() string { return "GasCar" }

func (GasCar) Assemble() colors.Line {
	return colors.Styled("Assembling a ", "combustion car 🚗⛽", colors.Orange)
}

func (ElectricEngine) Name() string { return "ElectricEngine" }

func (ElectricEngine) Start() colors.Line {
	return colors.Styled("Starting ", "electric engine 🔋", colors.Green)
}

func (GasEngine) Name() string { return "GasEngine" }

func (GasEngine) Start() colors.Line {
	return colors.Styled("Starting ", "combustion engine ⛽", colors.Orange)
}

// Factory creates a vehicle and a compatible engine.
type Factory interface {
	CreateVehicle() Vehicle
	CreateEngine() Engine
}

// ElectricFactory builds electric cars.
type ElectricFactory struct{}

func (ElectricFactory) CreateVehicle() Vehicle { return ElectricCar{} }
func (ElectricFactory) CreateEngine() Engine   { return ElectricEngine{} }

// GasFactory builds combustion cars.
type GasFactory struct{}

func (GasFactory) CreateVehicle() Vehicle { return GasCar{} }
func (GasFactory) CreateEngine() Engine   { return GasEngine{} }

// Product is one family produced by a Factory.
type Product struct {
	Vehicle Vehicle
	Engine  Engine
}

// Lines assembles the vehicle, then starts the engine.
func (p Product) Lines() []colors.Line {
	return []colors.Line{p.Vehicle.Assemble(), p.Engine.Start()}
}

// Produce creates a vehicle and its engine through f.
func Produce(f Factory) Product {
	return Product{
		Vehicle: f.CreateVehicle(),
		Engine:  f.CreateEngine(),
	}
}

// Families lists the accepted family selectors.
func Families() []string {
	return []string{"electric", "gas"}
}

// NewFactory picks a vehicle family by selector.
func NewFactory(selector string) (Factory, error) {
	switch domain.NormalizeSelector(selector) {
	case "electric":
		return ElectricFactory{}, nil
	case "gas":
		return GasFactory{}, nil
	default:
		return nil, domain.NewInvalidOption(domain.PatternAbstractFactory, selector, Families()...)
	}
}
