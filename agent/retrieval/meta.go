package retrieval

import "fmt"

// Catalog-level metadata used by the CLI and preference forms.

func GuitarCategories() []string {
	return []string{
		"Acoustic Guitars",
		"Electric Guitars",
		"Bass Guitars",
		"Classical Guitars",
		"12-String Guitars",
	}
}

type PriceRange struct {
	Label string
	Min   int
	Max   int // 0 means unbounded
}

func (p PriceRange) String() string {
	if p.Max > 0 {
		return fmt.Sprintf("%s ($%d-%d)", p.Label, p.Min, p.Max)
	}
	return fmt.Sprintf("%s ($%d+)", p.Label, p.Min)
}

func PriceRanges() []PriceRange {
	return []PriceRange{
		{Label: "Budget", Min: 0, Max: 500},
		{Label: "Mid-Range", Min: 500, Max: 1500},
		{Label: "Premium", Min: 1500, Max: 5000},
		{Label: "Ultra-Premium", Min: 5000, Max: 0},
	}
}

func PlayingStyles() []string {
	return []string{
		"Rock",
		"Blues",
		"Jazz",
		"Classical",
		"Folk",
		"Country",
		"Metal",
		"Pop",
		"Fingerstyle",
		"Strumming",
	}
}
