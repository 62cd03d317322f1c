package codes

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const airportCodeLen = 3

// AirportCode is a three-letter IATA airport code such as "JFK".
// The zero value is not a valid code.
type AirportCode struct {
	b [airportCodeLen]byte
}

// ParseAirportCode validates s and returns it as an AirportCode.
// s must be exactly 3 uppercase ASCII letters; it is not case-folded.
func ParseAirportCode(s string) (AirportCode, error) {
	if err := checkFixed(kindAirport, s, airportCodeLen, upperAlpha); err != nil {
		return AirportCode{}, err
	}
	var c AirportCode
	copy(c.b[:], s)
	return c, nil
}

// MustParseAirportCode is like ParseAirportCode but panics if s is invalid.
func MustParseAirportCode(s string) AirportCode {
	c, err := ParseAirportCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// AirportCodeUnchecked rebuilds an AirportCode from bytes returned by
// AirportCode.Bytes without validating them.
//
// The caller is responsible for b holding 3 uppercase ASCII letters.
// Any other content yields a value whose comparison, display and
// serialization no longer describe a real airport code. Decoders in this
// package never use it.
func AirportCodeUnchecked(b [airportCodeLen]byte) AirportCode {
	return AirportCode{b: b}
}

// String returns the code as stored, e.g. "JFK".
func (c AirportCode) String() string {
	return string(c.b[:])
}

// Bytes returns the raw code bytes.
func (c AirportCode) Bytes() [airportCodeLen]byte {
	return c.b
}

// IsZero reports whether c is the zero value.
func (c AirportCode) IsZero() bool {
	return c == AirportCode{}
}

// Compare orders codes by their bytes. It returns -1, 0 or +1.
func (c AirportCode) Compare(o AirportCode) int {
	return bytes.Compare(c.b[:], o.b[:])
}

// Less reports whether c sorts before o.
func (c AirportCode) Less(o AirportCode) bool {
	return c.Compare(o) < 0
}

// MarshalText implements encoding.TextMarshaler.
func (c AirportCode) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindAirport)
	}
	return c.b[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// with ParseAirportCode.
func (c *AirportCode) UnmarshalText(text []byte) error {
	parsed, err := ParseAirportCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c AirportCode) MarshalYAML() (any, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindAirport)
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *AirportCode) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(kindAirport, n)
	if err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
