package moneta

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Direction defines whether a transaction increases (income) or decreases
// (expense) its account's balance.
type Direction string

const (
	Income  Direction = "INCOME"
	Expense Direction = "EXPENSE"
)

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown direction: %q", s)
	}
}

// Category classifies a transaction. It is a closed enumeration with an
// extra custom variant carrying arbitrary free text, so that grouping
// stays well-defined while user-typed labels are preserved verbatim.
type Category struct {
	label  string
	custom bool
}

// The closed set of well-known categories.
var (
	Food          = Category{label: "food"}
	Transport     = Category{label: "transport"}
	Housing       = Category{label: "housing"}
	Salary        = Category{label: "salary"}
	Investment    = Category{label: "investment"}
	Entertainment = Category{label: "entertainment"}
	Shopping      = Category{label: "shopping"}
	Other         = Category{label: "other"}
)

var knownCategories = []Category{Food, Transport, Housing, Salary, Investment, Entertainment, Shopping, Other}

// CustomCategory creates a category from free text. Blank text degrades
// to Other.
func CustomCategory(label string) Category {
	label = strings.TrimSpace(label)
	if label == "" {
		return Other
	}
	return Category{label: label, custom: true}
}

// ParseCategory resolves a string to a well-known category, or wraps it
// as a custom one. It never fails: any text is a valid category.
func ParseCategory(s string) Category {
	for _, c := range knownCategories {
		if strings.EqualFold(s, c.label) {
			return c
		}
	}
	return CustomCategory(s)
}

// IsCustom reports whether the category carries free text rather than one
// of the well-known values.
func (c Category) IsCustom() bool { return c.custom }

func (c Category) String() string {
	if c.label == "" {
		return Other.label
	}
	return c.label
}

// MarshalJSON implements the json.Marshaler interface.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseCategory(s)
	return nil
}
