// Package codes provides validated value types for IATA aviation codes:
// aircraft type codes, airline designators, airport and city codes, and
// flight numbers.
//
// Every type is constructed through a validating parser, stores its data in
// fixed-size fields, and is comparable with ==, so values can be used as map
// keys and sorted with their Compare methods.
package codes

import "unicode/utf8"

// charClass is the set of bytes a fixed-width code may contain.
type charClass struct {
	alphabet string // shown in error messages
	allows   func(c byte) bool
}

var (
	upperAlpha = charClass{alphabet: "A-Z", allows: isASCIIUpper}
	upperAlnum = charClass{alphabet: "A-Z0-9", allows: isASCIIUpperAlnum}
)

// checkFixed validates s as a code of exactly width bytes drawn from class.
// Length is checked before content, so a wrong-length input never reports
// a character error.
func checkFixed(kind, s string, width int, class charClass) error {
	if len(s) != width {
		return &ParseError{Kind: kind, Input: s, Err: ErrInvalidLength, Length: len(s), Want: width}
	}
	for _, r := range s {
		if r >= utf8.RuneSelf || !class.allows(byte(r)) {
			return &ParseError{Kind: kind, Input: s, Err: ErrInvalidCharacter, Char: r, Alphabet: class.alphabet}
		}
	}
	return nil
}

// IsValidAircraftCode reports whether s is a valid IATA aircraft type code.
func IsValidAircraftCode(s string) bool {
	return checkFixed(kindAircraft, s, aircraftCodeLen, upperAlnum) == nil
}

// IsValidAirlineCode reports whether s is a valid IATA airline designator.
func IsValidAirlineCode(s string) bool {
	return checkFixed(kindAirline, s, airlineCodeLen, upperAlnum) == nil
}

// IsValidAirportCode reports whether s is a valid IATA airport code.
// Unlike a lookup, it only checks the shape: 3 uppercase ASCII letters.
func IsValidAirportCode(s string) bool {
	return checkFixed(kindAirport, s, airportCodeLen, upperAlpha) == nil
}

// IsValidCityCode reports whether s is a valid IATA city code.
func IsValidCityCode(s string) bool {
	return checkFixed(kindCity, s, cityCodeLen, upperAlpha) == nil
}

// IsValidFlightNumber reports whether s parses as a flight number in 1-9999.
func IsValidFlightNumber(s string) bool {
	_, err := ParseFlightNumber(s)
	return err == nil
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIIUpperAlnum(c byte) bool {
	return isASCIIUpper(c) || isASCIIDigit(c)
}
