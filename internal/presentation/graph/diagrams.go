package graph

import (
	"sort"

	"github.com/aretw0/creational/pkg/domain"
)

func implements(from, to string) Relation {
	return Relation{From: from, To: to, Implements: true}
}

func creates(from, to string) Relation {
	return Relation{From: from, To: to, Label: "creates"}
}

var diagrams = map[string]Diagram{
	"computer": {
		Participants: []Participant{
			{Name: "main", Kind: KindClient},
			{Name: "Builder", Kind: KindConcrete},
			{Name: "Computer", Kind: KindConcrete},
		},
		Relations: []Relation{
			{From: "main", To: "Builder", Label: "SetCPU / SetRAM / SetStorage / SetGPU"},
			{From: "Builder", To: "Computer", Label: "Build"},
		},
	},
	"burger": {
		Participants: []Participant{
			{Name: "OrderHamburger", Kind: KindClient},
			{Name: "Restaurant", Kind: KindInterface},
			{Name: "Hamburger", Kind: KindInterface},
			{Name: "ChickenRestaurant", Kind: KindConcrete, Variant: "chicken"},
			{Name: "BeefRestaurant", Kind: KindConcrete, Variant: "beef"},
			{Name: "ChickenHamburger", Kind: KindConcrete, Variant: "chicken"},
			{Name: "BeefHamburger", Kind: KindConcrete, Variant: "beef"},
		},
		Relations: []Relation{
			{From: "OrderHamburger", To: "Restaurant", Label: "CreateHamburger"},
			implements("ChickenRestaurant", "Restaurant"),
			implements("BeefRestaurant", "Restaurant"),
			creates("ChickenRestaurant", "ChickenHamburger"),
			creates("BeefRestaurant", "BeefHamburger"),
			implements("ChickenHamburger", "Hamburger"),
			implements("BeefHamburger", "Hamburger"),
		},
	},
	"report": {
		Participants: []Participant{
			{Name: "GenerateReport", Kind: KindClient},
			{Name: "Factory", Kind: KindInterface},
			{Name: "Report", Kind: KindInterface},
			{Name: "SalesFactory", Kind: KindConcrete, Variant: "sales"},
			{Name: "InventoryFactory", Kind: KindConcrete, Variant: "inventory"},
			{Name: "ManagementFactory", Kind: KindConcrete, Variant: "management"},
			{Name: "SalesReport", Kind: KindConcrete, Variant: "sales"},
			{Name: "InventoryReport", Kind: KindConcrete, Variant: "inventory"},
			{Name: "ManagementReport", Kind: KindConcrete, Variant: "management"},
		},
		Relations: []Relation{
			{From: "GenerateReport", To: "Factory", Label: "CreateReport"},
			implements("SalesFactory", "Factory"),
			implements("InventoryFactory", "Factory"),
			implements("ManagementFactory", "Factory"),
			creates("SalesFactory", "SalesReport"),
			creates("InventoryFactory", "InventoryReport"),
			creates("ManagementFactory", "ManagementReport"),
			implements("SalesReport", "Report"),
			implements("InventoryReport", "Report"),
			implements("ManagementReport", "Report"),
		},
	},
	"meal": {
		Participants: []Participant{
			{Name: "Serve", Kind: KindClient},
			{Name: "RestaurantFactory", Kind: KindInterface},
			{Name: "FastFactory", Kind: KindConcrete, Variant: "fast"},
			{Name: "HealthyFactory", Kind: KindConcrete, Variant: "healthy"},
			{Name: "BeefHamburger", Kind: KindConcrete, Variant: "fast"},
			{Name: "Soda", Kind: KindConcrete, Variant: "fast"},
			{Name: "ChickenHamburger", Kind: KindConcrete, Variant: "healthy"},
			{Name: "Juice", Kind: KindConcrete, Variant: "healthy"},
		},
		Relations: []Relation{
			{From: "Serve", To: "RestaurantFactory", Label: "CreateHamburger / CreateDrink"},
			implements("FastFactory", "RestaurantFactory"),
			implements("HealthyFactory", "RestaurantFactory"),
			creates("FastFactory", "BeefHamburger"),
			creates("FastFactory", "Soda"),
			creates("HealthyFactory", "ChickenHamburger"),
			creates("HealthyFactory", "Juice"),
		},
	},
	"vehicle": {
		Participants: []Participant{
			{Name: "Produce", Kind: KindClient},
			{Name: "Factory", Kind: KindInterface},
			{Name: "ElectricFactory", Kind: KindConcrete, Variant: "electric"},
			{Name: "GasFactory", Kind: KindConcrete, Variant: "gas"},
			{Name: "ElectricCar", Kind: KindConcrete, Variant: "electric"},
			{Name: "ElectricEngine", Kind: KindConcrete, Variant: "electric"},
			{Name: "GasCar", Kind: KindConcrete, Variant: "gas"},
			{Name: "GasEngine", Kind: KindConcrete, Variant: "gas"},
		},
		Relations: []Relation{
			{From: "Produce", To: "Factory", Label: "CreateVehicle / CreateEngine"},
			implements("ElectricFactory", "Factory"),
			implements("GasFactory", "Factory"),
			creates("ElectricFactory", "ElectricCar"),
			creates("ElectricFactory", "ElectricEngine"),
			creates("GasFactory", "GasCar"),
			creates("GasFactory", "GasEngine"),
		},
	},
	"document": {
		Participants: []Participant{
			{Name: "Registry", Kind: KindClient},
			{Name: "Template", Kind: KindConcrete},
			{Name: "Copy", Kind: KindConcrete},
		},
		Relations: []Relation{
			{From: "Registry", To: "Template", Label: "Load"},
			{From: "Template", To: "Copy", Label: "Clone"},
		},
	},
}

// Lookup returns the diagram of an example, such as "burger" or "vehicle".
func Lookup(example string) (Diagram, error) {
	name := domain.NormalizeSelector(example)
	d, ok := diagrams[name]
	if !ok {
		return Diagram{}, domain.NewInvalidOption("", example, Examples()...)
	}
	return d, nil
}

// Examples lists the examples that have a diagram, sorted.
func Examples() []string {
	names := make([]string, 0, len(diagrams))
	for name := range diagrams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
