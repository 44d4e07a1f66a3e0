package domain

type Hotel struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Price     int      `json:"price"` // nightly rate, KES
	Type      string   `json:"type"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`
}

// SearchQuery criteria are ANDed; zero-value fields impose no constraint.
type SearchQuery struct {
	Location string // substring, case-insensitive
	MinPrice *int   // inclusive
	MaxPrice *int   // inclusive
	Type     string // substring, case-insensitive
}
