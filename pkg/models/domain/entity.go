package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	EntityTypeHolding   = "Holding"
	EntityTypeRegional  = "Regional"
	EntityTypeOperating = "Operating"

	DefaultCurrency = "USD"

	// GlobalRegion marks a parent that may own children in any region.
	GlobalRegion = "Global"
)

// Entity is a node of the legal-entity tree. An empty Parent marks a root.
type Entity struct {
	ID       string
	Name     string
	Parent   string
	Type     string
	Region   string
	Currency string
}

// IsRoot reports whether the entity has no declared parent.
func (e Entity) IsRoot() bool {
	return e.Parent == ""
}

// IsOperating accepts the two casings seen in source ledgers, "Operating" and
// "operating". Any other spelling is not treated as an operating entity.
func (e Entity) IsOperating() bool {
	return e.Type == EntityTypeOperating || e.Type == "operating"
}

// IsRegional matches the declared "Regional" type exactly.
func (e Entity) IsRegional() bool {
	return e.Type == EntityTypeRegional
}

// NormalizeName case-folds the name, collapses internal whitespace and trims it.
func NormalizeName(name string) string {
	// a Caser keeps state, so one is built per call
	return strings.Join(strings.Fields(cases.Fold().String(name)), " ")
}
