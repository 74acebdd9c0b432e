// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the process; it caches struct
// metadata, so callers should always go through GetValidator or ValidateStruct.
// Field names in messages come from the `label` struct tag when present:
//
//	type companyNameQuery struct {
//	    Name string `label:"Company name" validate:"min=2,max=200"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    return verr.Error() // "Company name must be at least 2 characters"
//	}
package validation
