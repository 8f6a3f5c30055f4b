// Package report demonstrates the Factory Method pattern with report
// generators. Each Factory defers the creation of its Report to CreateReport.
package report

import (
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/domain"
)

// Report is the product created by a Factory.
type Report interface {
	Kind() string
	Generate() colors.Line
}

// SalesReport summarizes sales.
type SalesReport struct{}

func (SalesReport) Kind() string { return "sales" }

func (SalesReport) Generate() colors.Line {
	return colors.Styled("Generating ", "sales report...", colors.Green)
}

// InventoryReport summarizes stock.
type InventoryReport struct{}

func (InventoryReport) Kind() string { return "inventory" }

func (InventoryReport) Generate() colors.Line {
	return colors.Styled("Generating ", "inventory report...", colors.Yellow)
}

// ManagementReport is the report for the management team.
type ManagementReport struct{}

func (ManagementReport) Kind() string { return "management" }

func (ManagementReport) Generate() colors.Line {
	return colors.Styled("Generating ", "management report...", colors.Purple)
}

// Factory creates one kind of report.
type Factory interface {
	CreateReport() Report
}

type (
	SalesFactory      struct{}
	InventoryFactory  struct{}
	ManagementFactory struct{}
)

func (SalesFactory) CreateReport() Report      { return SalesReport{} }
func (InventoryFactory) CreateReport() Report  { return InventoryReport{} }
func (ManagementFactory) CreateReport() Report { return ManagementReport{} }

// GenerateReport creates a report through f and generates it.
func GenerateReport(f Factory) (Report, colors.Line) {
	r := f.CreateReport()
	return r, r.Generate()
}

// Options lists the accepted factory selectors.
func Options() []string {
	return []string{"sales", "inventory", "management"}
}

// NewFactory picks a report factory by selector.
func NewFactory(selector string) (Factory, error) {
	switch domain.NormalizeSelector(selector) {
	case "sales":
		return SalesFactory{}, nil
	case "inventory":
		return InventoryFactory{}, nil
	case "management":
		return ManagementFactory{}, nil
	default:
		return nil, domain.NewInvalidOption(domain.PatternFactoryMethod, selector, Options()...)
	}
}
