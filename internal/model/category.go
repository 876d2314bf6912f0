// Package model defines the domain types for weekly budgets and expenses.
package model

// Category classifies an expense. The set is closed: five fixed tags,
// never extended at runtime.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryEducation Category = "education"
	CategoryLeisure   Category = "leisure"
	CategoryEmergency Category = "emergency"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEducation,
	CategoryLeisure,
	CategoryEmergency,
}

// CategoryInfo holds display metadata for a category.
type CategoryInfo struct {
	Label string
	Kanji string
}

// CategoryDetails maps each category to its display metadata.
var CategoryDetails = map[Category]CategoryInfo{
	CategoryFood:      {Label: "Food", Kanji: "食"},
	CategoryTransport: {Label: "Transport", Kanji: "道"},
	CategoryEducation: {Label: "Education", Kanji: "学"},
	CategoryLeisure:   {Label: "Leisure", Kanji: "楽"},
	CategoryEmergency: {Label: "Emergency", Kanji: "急"},
}

// ParseCategory returns the category matching s, or false if s is not
// one of the five known tags.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	_, ok := CategoryDetails[c]
	return ok
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	if info, ok := CategoryDetails[c]; ok {
		return info.Label
	}
	return string(c)
}

// Kanji returns the single-glyph marker for the category.
func (c Category) Kanji() string {
	return CategoryDetails[c].Kanji
}
