// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package models

// SponsorRecord is one row of the register. Every field except
// OrganisationName is optional; an empty string means absent.
type SponsorRecord struct {
	OrganisationName string `json:"organisation_name"`
	TownCity         string `json:"town_city,omitempty"`
	County           string `json:"county,omitempty"`
	TypeRating       string `json:"type_rating,omitempty"`
	Route            string `json:"route,omitempty"`
}
