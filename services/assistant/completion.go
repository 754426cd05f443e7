// File: services/assistant/completion.go
package assistant

import "tripmate/models"

// MissingFields lists the unfilled required fields for one booking section in
// its fixed priority order. A field is missing iff its value is the unset
// sentinel. Sections without a completion check (tourism, guide) and unknown
// sections yield an empty list; the function never fails.
//
// Transport deliberately does not check the passenger count.
func MissingFields(category models.BookingCategory, state models.BookingState) []string {
	var missing []string
	switch category {
	case models.CategoryTransport:
		if state.Transport.From == "" {
			missing = append(missing, "departure location")
		}
		if state.Transport.To == "" {
			missing = append(missing, "destination")
		}
		if state.Transport.Date == "" {
			missing = append(missing, "travel date")
		}
	case models.CategoryAccommodation:
		if state.Accommodation.Location == "" {
			missing = append(missing, "location")
		}
		if state.Accommodation.CheckIn == "" {
			missing = append(missing, "check-in date")
		}
	}
	return missing
}
