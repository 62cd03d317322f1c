package codes

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const aircraftCodeLen = 3

// AircraftCode is a three-character IATA aircraft type code such as "73G"
// (Boeing 737-700) or "320".
type AircraftCode struct {
	b [aircraftCodeLen]byte
}

// ParseAircraftCode validates s as exactly 3 characters from A-Z and 0-9.
// Lowercase letters are rejected.
func ParseAircraftCode(s string) (AircraftCode, error) {
	if err := checkFixed(kindAircraft, s, aircraftCodeLen, upperAlnum); err != nil {
		return AircraftCode{}, err
	}
	var c AircraftCode
	copy(c.b[:], s)
	return c, nil
}

// MustParseAircraftCode is like ParseAircraftCode but panics if s is invalid.
func MustParseAircraftCode(s string) AircraftCode {
	c, err := ParseAircraftCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// AircraftCodeUnchecked rebuilds an AircraftCode from AircraftCode.Bytes
// without validation. Passing anything else is a caller bug.
func AircraftCodeUnchecked(b [aircraftCodeLen]byte) AircraftCode {
	return AircraftCode{b: b}
}

// String returns the code as stored.
func (c AircraftCode) String() string {
	return string(c.b[:])
}

// Bytes returns the raw code bytes.
func (c AircraftCode) Bytes() [aircraftCodeLen]byte {
	return c.b
}

// IsZero reports whether c is the zero value.
func (c AircraftCode) IsZero() bool {
	return c == AircraftCode{}
}

// Compare orders codes by their bytes.
func (c AircraftCode) Compare(o AircraftCode) int {
	return bytes.Compare(c.b[:], o.b[:])
}

// Less reports whether c sorts before o.
func (c AircraftCode) Less(o AircraftCode) bool {
	return c.Compare(o) < 0
}

// MarshalText implements encoding.TextMarshaler.
func (c AircraftCode) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindAircraft)
	}
	return c.b[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *AircraftCode) UnmarshalText(text []byte) error {
	parsed, err := ParseAircraftCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c AircraftCode) MarshalYAML() (any, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindAircraft)
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. All-digit codes such as 320
// arrive as integer scalars and are parsed from their text.
func (c *AircraftCode) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(kindAircraft, n)
	if err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
