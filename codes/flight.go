package codes

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	minFlightNumber = 1
	maxFlightNumber = 9999
)

// FlightNumber is the numeric part of a flight designator, 1 to 9999.
// It prints as four zero-padded digits ("0007").
type FlightNumber struct {
	n uint16
}

// ParseFlightNumber parses s as an unsigned decimal integer in 1-9999.
// Leading zeros and a single leading '+' are allowed. Input that is not a
// 16-bit unsigned integer fails with ErrNotANumber; a number outside the
// range fails with ErrInvalidNumber.
func ParseFlightNumber(s string) (FlightNumber, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 16)
	if err != nil {
		return FlightNumber{}, &ParseError{Kind: kindFlight, Input: s, Err: ErrNotANumber}
	}
	return newFlightNumber(s, v)
}

// NewFlightNumber returns n as a FlightNumber, or ErrInvalidNumber if n is
// 0 or greater than 9999.
func NewFlightNumber(n uint16) (FlightNumber, error) {
	return newFlightNumber(strconv.FormatUint(uint64(n), 10), uint64(n))
}

func newFlightNumber(input string, v uint64) (FlightNumber, error) {
	if v < minFlightNumber || v > maxFlightNumber {
		return FlightNumber{}, &ParseError{Kind: kindFlight, Input: input, Err: ErrInvalidNumber, Number: v}
	}
	return FlightNumber{n: uint16(v)}, nil
}

// MustFlightNumber is like NewFlightNumber but panics if n is out of range.
func MustFlightNumber(n uint16) FlightNumber {
	f, err := NewFlightNumber(n)
	if err != nil {
		panic(err)
	}
	return f
}

// Uint16 returns the stored number.
func (f FlightNumber) Uint16() uint16 {
	return f.n
}

// String returns the number as exactly four digits, zero-padded.
func (f FlightNumber) String() string {
	return fmt.Sprintf("%04d", f.n)
}

// IsZero reports whether f is the zero value.
func (f FlightNumber) IsZero() bool {
	return f.n == 0
}

// Compare orders flight numbers numerically.
func (f FlightNumber) Compare(o FlightNumber) int {
	return cmp.Compare(f.n, o.n)
}

// Less reports whether f is numerically smaller than o.
func (f FlightNumber) Less(o FlightNumber) bool {
	return f.n < o.n
}

// MarshalJSON encodes f as a bare JSON number.
func (f FlightNumber) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return nil, zeroValueError(kindFlight)
	}
	return strconv.AppendUint(nil, uint64(f.n), 10), nil
}

// UnmarshalJSON decodes a JSON number and checks its range. A JSON string
// is parsed with ParseFlightNumber; encoding/json hands map keys written by
// MarshalText to this method quoted. JSON null leaves f unchanged.
func (f *FlightNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &ParseError{Kind: kindFlight, Input: string(data), Err: ErrNotANumber}
		}
		return f.UnmarshalText([]byte(s))
	}
	var v uint16
	if err := json.Unmarshal(data, &v); err != nil {
		return &ParseError{Kind: kindFlight, Input: string(data), Err: ErrNotANumber}
	}
	parsed, err := NewFlightNumber(v)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText returns the padded display form. encoding/json uses it for
// map keys.
func (f FlightNumber) MarshalText() ([]byte, error) {
	if f.IsZero() {
		return nil, zeroValueError(kindFlight)
	}
	return []byte(f.String()), nil
}

// UnmarshalText parses text with ParseFlightNumber.
func (f *FlightNumber) UnmarshalText(text []byte) error {
	parsed, err := ParseFlightNumber(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML encodes f as an integer scalar.
func (f FlightNumber) MarshalYAML() (any, error) {
	if f.IsZero() {
		return nil, zeroValueError(kindFlight)
	}
	return f.n, nil
}

// UnmarshalYAML parses the scalar text with ParseFlightNumber, so both 123
// and "0123" decode to the same value.
func (f *FlightNumber) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(kindFlight, n)
	if err != nil {
		return err
	}
	return f.UnmarshalText([]byte(s))
}
