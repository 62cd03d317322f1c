package codes

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// IATA Resolution 762 allows an optional third letter, but no assigned
// designator uses it, so only the two-character form is accepted.
const airlineCodeLen = 2

// AirlineCode is a two-character IATA airline designator, e.g. "AA" or "U2".
// Designators identify an airline in reservations, timetables, tickets and
// air waybills.
type AirlineCode struct {
	b [airlineCodeLen]byte
}

// ParseAirlineCode validates s as exactly 2 characters from A-Z and 0-9.
func ParseAirlineCode(s string) (AirlineCode, error) {
	if err := checkFixed(kindAirline, s, airlineCodeLen, upperAlnum); err != nil {
		return AirlineCode{}, err
	}
	var c AirlineCode
	copy(c.b[:], s)
	return c, nil
}

// MustParseAirlineCode is like ParseAirlineCode but panics if s is invalid.
func MustParseAirlineCode(s string) AirlineCode {
	c, err := ParseAirlineCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// AirlineCodeUnchecked rebuilds an AirlineCode from AirlineCode.Bytes
// without validation. The caller guarantees b holds 2 characters from
// A-Z and 0-9.
func AirlineCodeUnchecked(b [airlineCodeLen]byte) AirlineCode {
	return AirlineCode{b: b}
}

// String returns the designator as stored.
func (c AirlineCode) String() string {
	return string(c.b[:])
}

// Bytes returns the raw designator bytes.
func (c AirlineCode) Bytes() [airlineCodeLen]byte {
	return c.b
}

// IsZero reports whether c is the zero value.
func (c AirlineCode) IsZero() bool {
	return c == AirlineCode{}
}

// Compare orders designators by their bytes, so digits sort before letters.
func (c AirlineCode) Compare(o AirlineCode) int {
	return bytes.Compare(c.b[:], o.b[:])
}

// Less reports whether c sorts before o.
func (c AirlineCode) Less(o AirlineCode) bool {
	return c.Compare(o) < 0
}

// MarshalText implements encoding.TextMarshaler.
func (c AirlineCode) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindAirline)
	}
	return c.b[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *AirlineCode) UnmarshalText(text []byte) error {
	parsed, err := ParseAirlineCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c AirlineCode) MarshalYAML() (any, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindAirline)
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *AirlineCode) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(kindAirline, n)
	if err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
