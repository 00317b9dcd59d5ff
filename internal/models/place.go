package models

import (
	"fmt"
	"strings"
)

// Place is one geocoding candidate for a free-text location.
type Place struct {
	Name        string  `json:"name"`
	Admin1      string  `json:"admin1,omitempty"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Label renders "name, admin1, country (cc)", skipping empty parts.
func (p Place) Label() string {
	country := p.Country
	if country != "" && p.CountryCode != "" {
		country = fmt.Sprintf("%s (%s)", country, p.CountryCode)
	}
	var parts []string
	for _, part := range []string{p.Name, p.Admin1, country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, ", ")
}
