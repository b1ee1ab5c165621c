// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package fqdn assembles candidate domain names from keyword variants and
// top-level domain zones.
package fqdn

import "strings"

// DefaultZones returns the default list of zones: common and abuse-prone
// top-level domains. Please note that "top" is listed twice.
func DefaultZones() []string {
	return []string{
		"com", "ru", "net", "org", "info", "cn", "es", "top", "au", "pl", "it",
		"uk", "tk", "ml", "ga", "cf", "us", "xyz", "top", "site", "win", "bid",
	}
}

// Assemble returns the cross product of the specified variants and zones in
// the form of “variant.zone”, with the zones varying fastest. There is no
// filtering, deduplication or validation whatsoever. If either variants or
// zones are empty, then the result is empty too.
func Assemble(variants []string, zones []string) []string {
	names := make([]string, 0, len(variants)*len(zones))
	for _, variant := range variants {
		for _, zone := range zones {
			names = append(names, variant+"."+zone)
		}
	}
	return names
}

// NormalizeZones returns the specified zones in lower case and without leading
// and trailing dots and white space; zones ending up empty are dropped.
func NormalizeZones(zones []string) []string {
	normalized := make([]string, 0, len(zones))
	for _, zone := range zones {
		zone = strings.Trim(strings.ToLower(strings.TrimSpace(zone)), ".")
		if zone == "" {
			continue
		}
		normalized = append(normalized, zone)
	}
	return normalized
}
