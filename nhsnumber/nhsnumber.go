// Package nhsnumber validates, formats and generates NHS numbers.
//
// An NHS number is a 10-digit numeric identifier for patients in England and Wales.
// The final digit is a check digit calculated using a weighted modulus 11 algorithm
// over the first nine digits.
package nhsnumber

import (
	"strconv"
	"strings"
)

// Length is the number of digits in an NHS number
const Length = 10

// multipliers are the weights applied to the first nine digits, in order.
var multipliers = [Length - 1]int{10, 9, 8, 7, 6, 5, 4, 3, 2}

// Number is an NHS number, as supplied by a user or another system.
// A Number may not be valid; use Validate or IsValid before relying on it.
type Number struct {
	raw string
}

// New creates an NHS number from a string, trimming surrounding whitespace.
// No validation is performed.
func New(s string) Number {
	return Number{raw: strings.TrimSpace(s)}
}

// FromInt creates an NHS number from an integer.
// Note that an integer cannot represent NHS numbers with a leading zero.
func FromInt(n int64) Number {
	return New(strconv.FormatInt(n, 10))
}

// Raw returns the NHS number as stored, without formatting.
func (n Number) Raw() string {
	return n.raw
}

// IsValid returns whether this is a valid NHS number.
func (n Number) IsValid() bool {
	return n.Validate() == nil
}

// Validate checks the format and check digit of the NHS number.
// The returned error, if any, is a *ValidationError.
// Note: This does not check for repeated (and supposedly invalid) NHS numbers such as 4444444444 and 6666666666
func (n Number) Validate() error {
	if len(n.raw) != Length || !isDigits(n.raw) {
		return &ValidationError{Kind: InvalidFormat, Value: n.raw}
	}
	cd, _ := CheckDigit(n.raw)
	// a check digit of 10 means no valid NHS number exists for these nine digits;
	// it can never equal the final digit and so is reported as a mismatch.
	if cd != int(n.raw[Length-1]-'0') {
		return &ValidationError{Kind: ChecksumMismatch, Value: n.raw}
	}
	return nil
}

// Format returns the NHS number with spaces in a 3-3-4 grouping
// e.g. 9077844449 -> 907 784 4449
// It does not validate; an invalid number is formatted as best it can.
func (n Number) Format() string {
	var sb strings.Builder
	sb.Grow(len(n.raw) + 2)
	for i, r := range []rune(n.raw) {
		if i == 3 || i == 6 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// String returns a human readable representation of the NHS number.
func (n Number) String() string {
	return n.Format()
}

// CheckDigit calculates the check digit from the first nine digits of s.
// The result is in the range 0-10; a check digit of 10 means that there is no
// valid NHS number beginning with those nine digits.
func CheckDigit(s string) (int, error) {
	if len(s) < Length-1 || !isDigits(s[:Length-1]) {
		return 0, &ValidationError{Kind: InvalidFormat, Value: s}
	}
	sum := 0
	for i, m := range multipliers {
		sum += int(s[i]-'0') * m
	}
	cd := 11 - (sum % 11)
	if cd == 11 {
		cd = 0
	}
	return cd, nil
}

// IsValid returns whether s is a valid NHS number.
func IsValid(s string) bool {
	return New(s).IsValid()
}

// Validate validates s as an NHS number.
func Validate(s string) error {
	return New(s).Validate()
}

// Format returns s formatted as an NHS number e.g. 0123456789 -> 012 345 6789
func Format(s string) string {
	return New(s).Format()
}

// isDigits reports whether s is non-empty and made up only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
