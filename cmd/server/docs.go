// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

// @title Sponsorcheck API
// @version 1.0.0
// @description Look up companies on the UK Home Office Register of Licensed Sponsors.
// @description
// @description Company names are matched as a case-insensitive substring of the
// @description organisation name. Errors are returned as `{"error": "...", ...}`
// @description objects with a 4xx or 5xx status.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/sponsorcheck/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Service index and health
//
// @tag.name Sponsors
// @tag.description Sponsor register lookups
package main
