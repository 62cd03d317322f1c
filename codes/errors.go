package codes

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ParseError. Match them with errors.Is.
var (
	// ErrInvalidLength means the input is not exactly as wide as the code.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidCharacter means the input has a character outside the code's alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrNotANumber means a flight number input is not an unsigned decimal integer.
	ErrNotANumber = errors.New("not a number")
	// ErrInvalidNumber means a flight number is outside 1-9999.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrZeroValue is returned when serializing a zero value that was never
	// produced by a constructor.
	ErrZeroValue = errors.New("zero value")
)

const (
	kindAircraft = "aircraft code"
	kindAirline  = "airline code"
	kindAirport  = "airport code"
	kindCity     = "city code"
	kindFlight   = "flight number"
)

// ParseError describes why an input was rejected. Only the fields relevant
// to Err are set.
type ParseError struct {
	Kind  string // code family, e.g. "airport code"
	Input string // raw input as given
	Err   error  // one of the Err* sentinels

	Length int // observed length, ErrInvalidLength
	Want   int // expected length, ErrInvalidLength

	Char     rune   // offending character, ErrInvalidCharacter
	Alphabet string // allowed characters, ErrInvalidCharacter

	Number uint64 // out-of-range value, ErrInvalidNumber
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrInvalidLength:
		return fmt.Sprintf("%s %q: invalid length %d, expected %d", e.Kind, e.Input, e.Length, e.Want)
	case ErrInvalidCharacter:
		return fmt.Sprintf("%s %q: invalid character %q, expected %s", e.Kind, e.Input, e.Char, e.Alphabet)
	case ErrNotANumber:
		return fmt.Sprintf("%s %q: not a number", e.Kind, e.Input)
	case ErrInvalidNumber:
		return fmt.Sprintf("%s %d: invalid number, expected %04d to %04d", e.Kind, e.Number, minFlightNumber, maxFlightNumber)
	}
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func zeroValueError(kind string) error {
	return fmt.Errorf("%s: %w", kind, ErrZeroValue)
}
