package domain

// BookingRequest is accepted as-is from the client. Only HotelID is ever
// validated; guest details and dates pass through unchecked.
type BookingRequest struct {
	HotelID   int
	GuestName string
	Email     string
	CheckIn   string
	CheckOut  string
	Guests    int
}

type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StayDates struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Booking is computed per request and returned to the caller. It is never
// stored; the reference is the guest's only handle on it.
type Booking struct {
	Reference string    `json:"reference"`
	Hotel     Hotel     `json:"hotel"`
	Guest     Guest     `json:"guest"`
	Dates     StayDates `json:"dates"`
	Guests    int       `json:"guests"`
	Total     int       `json:"total"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"createdAt"`
	Message   string    `json:"message"`
}

type BookingResult struct {
	Success   bool
	Message   string
	Booking   Booking
	EmailSent bool
}

// ConfirmationDetails is the flattened view of a booking handed to the
// notification sender.
type ConfirmationDetails struct {
	GuestName string
	Email     string
	HotelName string
	Location  string
	CheckIn   string
	CheckOut  string
	Guests    int
	Total     int
	Reference string
}
