package services

import (
	"regexp"
	"strings"

	"complaint-intake-backend/db/models"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateComplainant checks the required fields of a new complainant and
// returns a human-readable message for the first problem found, or "" when
// the record is acceptable.
func ValidateComplainant(complainant *models.Complainant) string {
	if strings.TrimSpace(complainant.Name) == "" {
		return "Name is required"
	}

	if strings.TrimSpace(complainant.Email) == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(complainant.Email) {
		return "Email address is not valid"
	}

	if strings.TrimSpace(complainant.AddressLine1) == "" {
		return "Address line 1 is required"
	}
	if strings.TrimSpace(complainant.City) == "" {
		return "City is required"
	}
	if strings.TrimSpace(complainant.Postcode) == "" {
		return "Postcode is required"
	}

	return ""
}
