package models

// BookingCategory identifies one section of the multi-section booking form.
type BookingCategory string

const (
	CategoryTransport     BookingCategory = "transport"
	CategoryAccommodation BookingCategory = "accommodation"
	CategoryTourism       BookingCategory = "tourism"
	CategoryGuide         BookingCategory = "guide"
)

// Valid reports whether c is one of the four known booking sections.
func (c BookingCategory) Valid() bool {
	switch c {
	case CategoryTransport, CategoryAccommodation, CategoryTourism, CategoryGuide:
		return true
	}
	return false
}

// TransportFields holds the transport section of the form. An empty string or
// zero integer means the field has not been filled in yet.
type TransportFields struct {
	Type       string `json:"type"` // "train", "plane" or "bus"
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"` // "YYYY-MM-DD"
	Passengers int    `json:"passengers,omitempty"`
}

// AccommodationFields holds the accommodation section of the form.
type AccommodationFields struct {
	Type     string `json:"type"`
	Location string `json:"location"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Rooms    int    `json:"rooms,omitempty"`
	Guests   int    `json:"guests,omitempty"`
}

// TourismFields holds the tourism section of the form.
type TourismFields struct {
	Attraction string `json:"attraction"`
	Date       string `json:"date"`
	Tickets    int    `json:"tickets,omitempty"`
}

// BookingState is the snapshot of the booking form shared between the form UI
// and the assistant. The form owns and mutates it; the assistant only reads it.
type BookingState struct {
	Transport     TransportFields     `json:"transport"`
	Accommodation AccommodationFields `json:"accommodation"`
	Tourism       TourismFields       `json:"tourism"`
}
