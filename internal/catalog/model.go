package catalog

import "time"

// Kind selects one of the slug-keyed reference collections that classify
// products. All three share a schema, so one model and repository serve them.
type Kind string

const (
	KindBrand    Kind = "brand"
	KindCategory Kind = "category"
	KindUnit     Kind = "unit"
)

// Table returns the table backing the kind, or "" for an unknown kind.
func (k Kind) Table() string {
	switch k {
	case KindBrand:
		return "brands"
	case KindCategory:
		return "categories"
	case KindUnit:
		return "units"
	default:
		return ""
	}
}

// Label returns the human-readable entity name used in response messages.
func (k Kind) Label() string {
	switch k {
	case KindBrand:
		return "Brand"
	case KindCategory:
		return "Category"
	case KindUnit:
		return "Unit"
	default:
		return "Entry"
	}
}

// Entry is a reference record: a brand, a category or a unit of measure.
// Abbreviation is only meaningful for units.
type Entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation,omitempty"`
	Slug         string    `json:"slug"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
