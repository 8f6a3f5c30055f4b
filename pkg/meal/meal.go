// Package meal demonstrates the Abstract Factory pattern.
//
// A RestaurantFactory produces a family of related products, a hamburger and
// a drink, that are meant to be served together.
package meal

import (
	"github.com/aretw0/creational/pkg/burger"
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/domain"
)

// Drink is the second product of every family.
type Drink interface {
	Name() string
	Pour() colors.Line
}

// Soda goes with fast food.
type Soda struct{}

func (Soda) Name() string { return "Soda" }

func (d Soda) Pour() colors.Line {
	return colors.Styled("Serving a ", d.Name()+" 🥤", colors.Cyan)
}

// Juice goes with healthy food.
type Juice struct{}

func (Juice) Name() string { return "Juice" }

func (d Juice) Pour() colors.Line {
	return colors.Styled("Serving a ", d.Name()+" 🧃", colors.Orange)
}

// RestaurantFactory creates matching hamburgers and drinks.
type RestaurantFactory interface {
	CreateHamburger() burger.Hamburger
	CreateDrink() Drink
}

// FastFactory serves a beef hamburger with a soda.
type FastFactory struct{}

func (FastFactory) CreateHamburger() burger.Hamburger { return burger.BeefHamburger{} }
func (FastFactory) CreateDrink() Drink                { return Soda{} }

// HealthyFactory serves a chicken hamburger with a juice.
type HealthyFactory struct{}

func (HealthyFactory) CreateHamburger() burger.Hamburger { return burger.ChickenHamburger{} }
func (HealthyFactory) CreateDrink() Drink                { return Juice{} }

// Meal is one family of products.
type Meal struct {
	Hamburger burger.Hamburger
	Drink     Drink
}

// Lines returns the hamburger line followed by the drink line.
func (m Meal) Lines() []colors.Line {
	return []colors.Line{m.Hamburger.Prepare(), m.Drink.Pour()}
}

// Serve creates a whole meal through f.
func Serve(f RestaurantFactory) Meal {
	return Meal{
		Hamburger: f.CreateHamburger(),
		Drink:     f.CreateDrink(),
	}
}

// Families lists the accepted family selectors.
func Families() []string {
	return []string{"fast", "healthy"}
}

// NewFactory picks a restaurant family by selector.
func NewFactory(selector string) (RestaurantFactory, error) {
	switch domain.NormalizeSelector(selector) {
	case "fast":
		return FastFactory{}, nil
	case "healthy":
		return HealthyFactory{}, nil
	default:
		return nil, domain.NewInvalidOption(domain.PatternAbstractFactory, selector, Families()...)
	}
}
