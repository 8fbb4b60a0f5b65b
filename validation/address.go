// Package validation holds the pure checkout input rules. Functions
// return (ok, message) pairs; messages are shown to the customer as-is.
package validation

import (
	"regexp"
	"strings"
)

var pinCodeRe = regexp.MustCompile(`^\d{6}$`)

// Shipping is limited to the 28 states and 8 union territories of India.
// Matching is against full names, case-insensitively; the rejection
// message still talks about state codes (kept as-is from the original
// storefront, see DESIGN.md).
var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar",
	"Chhattisgarh", "Goa", "Gujarat", "Haryana",
	"Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala",
	"Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana",
	"Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi",
	"Jammu and Kashmir", "Ladakh", "Lakshadweep",
	"Puducherry",
}

// ValidateAddress checks a shipping address. Checks run in a fixed
// order and the first failure wins; no aggregation.
func ValidateAddress(address, city, state, zipCode string) (bool, string) {
	if !pinCodeRe.MatchString(zipCode) {
		return false, "Invalid PIN code format. Please enter a 6-digit PIN code"
	}

	if !isIndianState(state) {
		return false, "Invalid state code. Please use standard state codes (e.g., MH for Maharashtra)"
	}

	if len(strings.TrimSpace(address)) < 5 {
		return false, "Address is too short"
	}

	// The length check deliberately runs on the raw string, the
	// emptiness check on the trimmed one.
	if strings.TrimSpace(city) == "" || len(city) < 2 {
		return false, "Invalid city name"
	}

	return true, "Valid address"
}

func isIndianState(state string) bool {
	for _, s := range indianStates {
		if strings.EqualFold(s, state) {
			return true
		}
	}
	return false
}
