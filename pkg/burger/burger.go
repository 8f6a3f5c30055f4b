// Package burger demonstrates the Factory Method pattern.
//
// A Restaurant defers the creation of its Hamburger to CreateHamburger;
// OrderHamburger is the shared operation built on top of that step.
package burger

import (
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/domain"
)

// Hamburger is the product created by a Restaurant.
type Hamburger interface {
	Name() string
	Prepare() colors.Line
}

// ChickenHamburger is a chicken hamburger.
type ChickenHamburger struct{}

func (ChickenHamburger) Name() string { return "ChickenHamburger" }

func (h ChickenHamburger) Prepare() colors.Line {
	return colors.Styled("Preparing a ", h.Name()+" 🍔🍗", colors.Blue)
}

// BeefHamburger is a beef hamburger.
type BeefHamburger struct{}

func (BeefHamburger) Name() string { return "BeefHamburger" }

func (h BeefHamburger) Prepare() colors.Line {
	return colors.Styled("Preparing a ", h.Name()+" 🍔🥩", colors.Red)
}

// Restaurant is the creator. Each concrete restaurant decides which
// hamburger it makes.
type Restaurant interface {
	CreateHamburger() Hamburger
}

// ChickenRestaurant makes chicken hamburgers.
type ChickenRestaurant struct{}

func (ChickenRestaurant) CreateHamburger() Hamburger { return ChickenHamburger{} }

// BeefRestaurant makes beef hamburgers.
type BeefRestaurant struct{}

func (BeefRestaurant) CreateHamburger() Hamburger { return BeefHamburger{} }

// Order is the result of ordering a hamburger.
type Order struct {
	Hamburger Hamburger
	Line      colors.Line
}

// OrderHamburger creates a hamburger through r and prepares it.
func OrderHamburger(r Restaurant) Order {
	h := r.CreateHamburger()
	return Order{Hamburger: h, Line: h.Prepare()}
}

// Options lists the accepted restaurant selectors.
func Options() []string {
	return []string{"chicken", "beef"}
}

// NewRestaurant picks a restaurant by selector.
func NewRestaurant(selector string) (Restaurant, error) {
	switch domain.NormalizeSelector(selector) {
	case "chicken":
		return ChickenRestaurant{}, nil
	case "beef":
		return BeefRestaurant{}, nil
	default:
		return nil, domain.NewInvalidOption(domain.PatternFactoryMethod, selector, Options()...)
	}
}
