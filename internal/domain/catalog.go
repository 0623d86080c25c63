package domain

import (
	"fmt"
)

// ServiceCategory groups services for presentation.
type ServiceCategory string

const (
	CategoryHaircut ServiceCategory = "haircut"
	CategoryMassage ServiceCategory = "massage"
	CategoryPremium ServiceCategory = "premium"
)

// ServiceDefinition describes one bookable service. Prices are in minor
// currency units (KES cents).
type ServiceDefinition struct {
	Name            string
	PriceMinorUnits int64
	DurationMinutes int
	Category        ServiceCategory
}

// ServiceCatalog is the immutable service lookup table, built once at startup.
type ServiceCatalog struct {
	services map[string]ServiceDefinition
	names    []string
}

// NewServiceCatalog validates the definitions and builds the catalog.
func NewServiceCatalog(defs []ServiceDefinition) (*ServiceCatalog, error) {
	c := &ServiceCatalog{
		services: make(map[string]ServiceDefinition, len(defs)),
		names:    make([]string, 0, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("catalog: service with empty name")
		}
		if _, exists := c.services[def.Name]; exists {
			return nil, fmt.Errorf("catalog: duplicate service %q", def.Name)
		}
		if def.DurationMinutes <= 0 {
			return nil, fmt.Errorf("catalog: service %q has non-positive duration %d", def.Name, def.DurationMinutes)
		}
		if def.PriceMinorUnits < 0 {
			return nil, fmt.Errorf("catalog: service %q has negative price", def.Name)
		}
		switch def.Category {
		case CategoryHaircut, CategoryMassage, CategoryPremium:
		default:
			return nil, fmt.Errorf("catalog: service %q has unknown category %q", def.Name, def.Category)
		}

		c.services[def.Name] = def
		c.names = append(c.names, def.Name)
	}

	if len(c.names) == 0 {
		return nil, fmt.Errorf("catalog: no services configured")
	}

	return c, nil
}

// Lookup resolves a service by name.
func (c *ServiceCatalog) Lookup(name string) (ServiceDefinition, bool) {
	def, ok := c.services[name]
	return def, ok
}

// Contains reports whether name is a configured service.
func (c *ServiceCatalog) Contains(name string) bool {
	_, ok := c.services[name]
	return ok
}

// Names returns the service names in configuration order.
func (c *ServiceCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Services returns all definitions in configuration order.
func (c *ServiceCatalog) Services() []ServiceDefinition {
	out := make([]ServiceDefinition, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.services[name])
	}
	return out
}

// DefaultServices returns the shop's standard offering, used when config.toml
// does not override the catalog.
func DefaultServices() []ServiceDefinition {
	return []ServiceDefinition{
		{Name: "Haircut", PriceMinorUnits: 390000, DurationMinutes: 45, Category: CategoryHaircut},
		{Name: "Beard Trim", PriceMinorUnits: 260000, DurationMinutes: 30, Category: CategoryHaircut},
		{Name: "Hot Shave", PriceMinorUnits: 325000, DurationMinutes: 35, Category: CategoryHaircut},
		{Name: "Hair & Beard Combo", PriceMinorUnits: 585000, DurationMinutes: 75, Category: CategoryHaircut},
		{Name: "Head Massage", PriceMinorUnits: 325000, DurationMinutes: 30, Category: CategoryMassage},
		{Name: "Face Massage", PriceMinorUnits: 260000, DurationMinutes: 25, Category: CategoryMassage},
		{Name: "Shoulder & Back", PriceMinorUnits: 455000, DurationMinutes: 45, Category: CategoryMassage},
		{Name: "Premium Package", PriceMinorUnits: 780000, DurationMinutes: 120, Category: CategoryPremium},
	}
}
