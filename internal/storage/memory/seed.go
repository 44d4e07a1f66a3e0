package memory

import "kenyastay/internal/domain"

// seedHotels returns the fixed hotel table. IDs are stable and referenced by
// clients; order here is the order every listing preserves.
func seedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:        1,
			Name:      "Sarova Stanley",
			Location:  "Nairobi",
			Price:     12000,
			Type:      "Deluxe",
			Amenities: []string{"Free WiFi", "Swimming Pool", "Spa", "Restaurant"},
			Image:     "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400",
		},
		{
			ID:        2,
			Name:      "Diani Reef Beach Resort",
			Location:  "Mombasa",
			Price:     15000,
			Type:      "Suite",
			Amenities: []string{"Beach Front", "All Inclusive", "Water Sports", "Bar"},
			Image:     "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400",
		},
		{
			ID:        3,
			Name:      "Imperial Hotel Kisumu",
			Location:  "Kisumu",
			Price:     8000,
			Type:      "Standard",
			Amenities: []string{"Lake View", "Free Breakfast", "Conference Room"},
			Image:     "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=400",
		},
		{
			ID:        4,
			Name:      "Lake Nakuru Lodge",
			Location:  "Nakuru",
			Price:     11000,
			Type:      "Deluxe",
			Amenities: []string{"Wildlife Viewing", "Game Drives", "Bonfire", "Restaurant"},
			Image:     "https://images.unsplash.com/photo-1564501049418-3c27787d01e8?w=400",
		},
		{
			ID:        5,
			Name:      "Fairview Hotel",
			Location:  "Nairobi",
			Price:     9500,
			Type:      "Business",
			Amenities: []string{"City View", "Business Center", "Gym", "Bar"},
			Image:     "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400",
		},
		{
			ID:        6,
			Name:      "Voyager Beach Resort",
			Location:  "Mombasa",
			Price:     13500,
			Type:      "Family",
			Amenities: []string{"Private Beach", "Kids Club", "Multiple Pools", "Spa"},
			Image:     "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=400",
		},
	}
}
