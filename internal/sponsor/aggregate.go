// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package sponsor

import (
	"strings"

	"github.com/tomtom215/sponsorcheck/internal/models"
)

// Labels used by the capacity and organization scale rules.
const (
	CapacityStandard         = "Standard"
	CapacityMultipleEntities = "Multiple Entities"
	CapacityARated           = "A-Rated Sponsor"

	ScaleSingleEntity      = "Single Entity"
	ScaleMultipleEntities  = "Multiple Entities"
	ScaleLargeOrganization = "Large Organization"

	// LocationNotSpecified is the location of a row with neither town nor county.
	LocationNotSpecified = "Location not specified"

	// aRatingMarker is matched case-sensitively against the license type text.
	aRatingMarker = "A rating"

	// searchLocationCap bounds geographic_coverage on the search path only.
	searchLocationCap = 5
)

// LocationString joins town and county as "Town, County", falling back to
// whichever is present, then to LocationNotSpecified.
func LocationString(r models.SponsorRecord) string {
	town := strings.TrimSpace(r.TownCity)
	county := strings.TrimSpace(r.County)

	switch {
	case town != "" && county != "":
		return town + ", " + county
	case town != "":
		return town
	case county != "":
		return county
	default:
		return LocationNotSpecified
	}
}

// aggregate is the summary derived from one request's rows.
type aggregate struct {
	routes       []string
	licenseTypes []string
	locations    []string
}

// summarize collects distinct routes, license types and locations in order of
// first occurrence. locationCap <= 0 leaves locations uncapped.
func summarize(rows []models.SponsorRecord, locationCap int) aggregate {
	routes := newOrderedSet()
	licenseTypes := newOrderedSet()
	locations := newOrderedSet()

	for _, r := range rows {
		routes.add(r.Route)
		licenseTypes.add(r.TypeRating)
		if loc := LocationString(r); loc != LocationNotSpecified {
			locations.add(loc)
		}
	}

	locs := locations.values()
	if locationCap > 0 && len(locs) > locationCap {
		locs = locs[:locationCap]
	}

	return aggregate{
		routes:       routes.values(),
		licenseTypes: licenseTypes.values(),
		locations:    locs,
	}
}

// labelRule sets label when applies holds. Rules run top to bottom and the
// last matching rule wins.
type labelRule struct {
	label   string
	applies func(rows []models.SponsorRecord) bool
}

var capacityRules = []labelRule{
	{label: CapacityMultipleEntities, applies: rowsMoreThan(5)},
	{label: CapacityARated, applies: anyARating},
}

var scaleRules = []labelRule{
	{label: ScaleMultipleEntities, applies: rowsMoreThan(1)},
	{label: ScaleLargeOrganization, applies: rowsMoreThan(5)},
}

func applyRules(defaultLabel string, rules []labelRule, rows []models.SponsorRecord) string {
	label := defaultLabel
	for _, rule := range rules {
		if rule.applies(rows) {
			label = rule.label
		}
	}
	return label
}

// capacityLabel classifies a search result set.
func capacityLabel(rows []models.SponsorRecord) string {
	return applyRules(CapacityStandard, capacityRules, rows)
}

// organizationScale classifies a profile result set.
func organizationScale(rows []models.SponsorRecord) string {
	return applyRules(ScaleSingleEntity, scaleRules, rows)
}

func rowsMoreThan(n int) func([]models.SponsorRecord) bool {
	return func(rows []models.SponsorRecord) bool {
		return len(rows) > n
	}
}

func anyARating(rows []models.SponsorRecord) bool {
	for _, r := range rows {
		if strings.Contains(r.TypeRating, aRatingMarker) {
			return true
		}
	}
	return false
}

// orderedSet keeps distinct non-blank strings in insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if strings.TrimSpace(v) == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// values never returns nil so the JSON encoding is [] rather than null.
func (s *orderedSet) values() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}
