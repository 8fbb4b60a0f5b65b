package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var expirationRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

// ValidateCardExpiration checks an MM/YY card expiry string. A card is
// considered expired from the first instant of its expiry month, one
// month earlier than the usual valid-through-end-of-month card
// semantics. That boundary comes from the original storefront and is
// preserved rather than corrected (see DESIGN.md).
func ValidateCardExpiration(expiration string) (bool, string) {
	if !expirationRe.MatchString(expiration) {
		return false, "Invalid expiration format (use MM/YY)"
	}

	parts := strings.Split(expiration, "/")
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return false, "Invalid expiration date"
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false, "Invalid expiration date"
	}

	expDate := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	if !expDate.After(time.Now()) {
		return false, "Card has expired"
	}

	return true, "Valid expiration date"
}
