package codes

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const cityCodeLen = 3

// CityCode is a three-letter IATA metropolitan area code, e.g. "NYC".
// A city code may cover several airports.
type CityCode struct {
	b [cityCodeLen]byte
}

// ParseCityCode validates s as 3 uppercase ASCII letters.
func ParseCityCode(s string) (CityCode, error) {
	if err := checkFixed(kindCity, s, cityCodeLen, upperAlpha); err != nil {
		return CityCode{}, err
	}
	var c CityCode
	copy(c.b[:], s)
	return c, nil
}

// MustParseCityCode is like ParseCityCode but panics if s is invalid.
func MustParseCityCode(s string) CityCode {
	c, err := ParseCityCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// CityCodeUnchecked rebuilds a CityCode from CityCode.Bytes without
// validation. The caller guarantees b is 3 uppercase ASCII letters.
func CityCodeUnchecked(b [cityCodeLen]byte) CityCode {
	return CityCode{b: b}
}

// String returns the code as stored.
func (c CityCode) String() string {
	return string(c.b[:])
}

// Bytes returns the raw code bytes.
func (c CityCode) Bytes() [cityCodeLen]byte {
	return c.b
}

// IsZero reports whether c is the zero value.
func (c CityCode) IsZero() bool {
	return c == CityCode{}
}

// Compare orders codes by their bytes.
func (c CityCode) Compare(o CityCode) int {
	return bytes.Compare(c.b[:], o.b[:])
}

// Less reports whether c sorts before o.
func (c CityCode) Less(o CityCode) bool {
	return c.Compare(o) < 0
}

// MarshalText implements encoding.TextMarshaler.
func (c CityCode) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindCity)
	}
	return c.b[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// with ParseCityCode.
func (c *CityCode) UnmarshalText(text []byte) error {
	parsed, err := ParseCityCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c CityCode) MarshalYAML() (any, error) {
	if c.IsZero() {
		return nil, zeroValueError(kindCity)
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CityCode) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar(kindCity, n)
	if err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
