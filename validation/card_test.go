package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardExpirationFormat(t *testing.T) {
	tests := []struct {
		expiration string
	}{
		{"13/30"},   // month out of range
		{"00/30"},   // month zero
		{"5/99"},    // month not zero-padded
		{"05-99"},   // wrong separator
		{"05/1999"}, // four-digit year
		{"05/9"},    // one-digit year
		{""},
		{"garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.expiration, func(t *testing.T) {
			ok, msg := ValidateCardExpiration(tt.expiration)
			assert.False(t, ok)
			assert.Equal(t, "Invalid expiration format (use MM/YY)", msg)
		})
	}
}

func TestValidateCardExpirationPastDate(t *testing.T) {
	ok, msg := ValidateCardExpiration("01/20")
	assert.False(t, ok)
	assert.Equal(t, "Card has expired", msg)
}

func TestValidateCardExpirationFarFuture(t *testing.T) {
	ok, msg := ValidateCardExpiration("05/99")
	assert.True(t, ok)
	assert.Equal(t, "Valid expiration date", msg)
}

func TestValidateCardExpirationCurrentMonthAlreadyExpired(t *testing.T) {
	// A card expiring this month is rejected: the comparison point is
	// the first day of the expiry month.
	now := time.Now()
	ok, msg := ValidateCardExpiration(fmt.Sprintf("%02d/%02d", int(now.Month()), now.Year()%100))
	assert.False(t, ok)
	assert.Equal(t, "Card has expired", msg)
}

func TestValidateCardExpirationNextMonthValid(t *testing.T) {
	next := time.Date(time.Now().Year(), time.Now().Month()+1, 1, 0, 0, 0, 0, time.Local)
	ok, _ := ValidateCardExpiration(fmt.Sprintf("%02d/%02d", int(next.Month()), next.Year()%100))
	assert.True(t, ok)
}
