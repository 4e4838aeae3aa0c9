package services

import (
	"testing"

	"complaint-intake-backend/db/models"
	"complaint-intake-backend/utils"

	"github.com/stretchr/testify/assert"
)

func validComplainant() models.Complainant {
	return models.Complainant{
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		Phone:        utils.StringPtr("123-456-7890"),
		AddressLine1: "123 Main St",
		AddressLine2: utils.StringPtr("Apt 4B"),
		City:         "Anytown",
		Postcode:     "12345",
	}
}

func TestValidateComplainantAccepted(t *testing.T) {
	c := validComplainant()
	assert.Empty(t, ValidateComplainant(&c))
}

func TestValidateComplainantOptionalFieldsMayBeNil(t *testing.T) {
	c := validComplainant()
	c.Phone = nil
	c.AddressLine2 = nil
	assert.Empty(t, ValidateComplainant(&c))
}

func TestValidateComplainantRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Complainant)
		want   string
	}{
		{"missing name", func(c *models.Complainant) { c.Name = "" }, "Name is required"},
		{"blank name", func(c *models.Complainant) { c.Name = "   " }, "Name is required"},
		{"missing email", func(c *models.Complainant) { c.Email = "" }, "Email is required"},
		{"bad email", func(c *models.Complainant) { c.Email = "not-an-email" }, "Email address is not valid"},
		{"missing address", func(c *models.Complainant) { c.AddressLine1 = "" }, "Address line 1 is required"},
		{"missing city", func(c *models.Complainant) { c.City = "" }, "City is required"},
		{"missing postcode", func(c *models.Complainant) { c.Postcode = "" }, "Postcode is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validComplainant()
			tc.mutate(&c)
			assert.Equal(t, tc.want, ValidateComplainant(&c))
		})
	}
}
