// File: services/assistant/responses.go
package assistant

import (
	"fmt"
	"strings"

	"tripmate/models"
)

// Greeting seeds the transcript of every new session.
const Greeting = "Hello! How can I help you with your travel plans today?"

const fallbackTemplate = "I see you're in the %s section. How can I assist you with %s?"

// sectionResponse is the canned-reply set for one booking section. fillForm
// is a format template receiving the joined missing-field list; sections
// that leave it empty fall back to the generic reply on "book".
type sectionResponse struct {
	help     string
	suggest  string
	fillForm string
}

var sectionResponses = map[models.BookingCategory]sectionResponse{
	models.CategoryTransport: {
		help:     "I can help you book transport tickets. Would you like to search for trains, planes, or buses?",
		fillForm: "I notice you haven't filled in the %s. Would you like help with that?",
		suggest:  "Based on popular routes, I can suggest some travel options. Would you like to see them?",
	},
	models.CategoryAccommodation: {
		help:     "I can help you find the perfect place to stay. Are you interested in hotels, lodges, or camps?",
		fillForm: "To complete your accommodation booking, I notice you need to fill in %s",
		suggest:  "I can show you our top-rated accommodations in your desired location.",
	},
	models.CategoryTourism: {
		help:    "Looking to book tickets for tourist attractions? I can help you find the best spots!",
		suggest: "Would you like to see popular attractions at your destination?",
	},
	models.CategoryGuide: {
		help:    "Need travel guidance? I can provide tips about your destination.",
		suggest: "I can share local insights, safety tips, and cultural information.",
	},
}

// Resolve maps one free-text user message to the bot reply for the active
// section. Pure and deterministic: keyword matching is case-insensitive
// substring containment with fixed priority help > book > suggest > default,
// and the first match wins. An unknown section or an undefined per-section
// template degrades to the generic fallback, never an error.
func Resolve(input string, section models.BookingCategory, state models.BookingState) string {
	text := strings.ToLower(input)
	resp, known := sectionResponses[section]

	switch {
	case strings.Contains(text, "help"):
		if known {
			return resp.help
		}
	case strings.Contains(text, "book"):
		if known && resp.fillForm != "" {
			return fmt.Sprintf(resp.fillForm, strings.Join(MissingFields(section, state), ", "))
		}
	case strings.Contains(text, "suggest"):
		if known && resp.suggest != "" {
			return resp.suggest
		}
	}

	return fmt.Sprintf(fallbackTemplate, section, section)
}
