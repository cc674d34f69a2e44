// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Regions is the fixed set of US state codes (plus DC) a user may declare
// at signup. A user's region is set once and copied onto every vote they
// cast, so historical tallies survive later profile changes.
var Regions = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var regionSet = func() map[string]bool {
	set := make(map[string]bool, len(Regions))
	for _, r := range Regions {
		set[r] = true
	}
	return set
}()

// ValidRegion reports whether code is a known region code.
func ValidRegion(code string) bool {
	return regionSet[code]
}
