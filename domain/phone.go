package domain

import (
	"fmt"
	"regexp"
)

// Iranian mobile numbers: optional +98 or 0 prefix, then a 9 followed by
// nine digits, e.g. 09123456789 or +989123456789.
var phonePattern = regexp.MustCompile(`^(\+98|0)?9\d{9}$`)

// ValidatePhoneNumber accepts the candidate unchanged or reports
// ErrInvalidPhoneNumber with the offending value.
func ValidatePhoneNumber(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, phone)
	}
	return nil
}
