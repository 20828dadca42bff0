package promo

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCode = errors.New("invalid promo code format")

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

func CodePattern() *regexp.Regexp {
	return codeRegex
}

type Code string

// NewCode normalizes to upper case. The cart engine never calls this: it
// looks codes up exactly as typed.
func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return "", ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Address struct {
	Street  string
	City    string
	Zipcode string
}

func (a Address) IsComplete() bool {
	return strings.TrimSpace(a.Street) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.Zipcode) != ""
}
