package codes

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlightNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint16
		wantErr error
	}{
		{name: "plain", in: "123", want: 123},
		{name: "lower bound padded", in: "0001", want: 1},
		{name: "lower bound", in: "1", want: 1},
		{name: "upper bound", in: "9999", want: 9999},
		{name: "zero padded", in: "0000", wantErr: ErrInvalidNumber},
		{name: "zero", in: "0", wantErr: ErrInvalidNumber},
		{name: "five digits", in: "10000", wantErr: ErrInvalidNumber},
		{name: "max uint16", in: "65535", wantErr: ErrInvalidNumber},
		{name: "overflows uint16", in: "65536", wantErr: ErrNotANumber},
		{name: "letters", in: "abcd", wantErr: ErrNotANumber},
		{name: "empty", in: "", wantErr: ErrNotANumber},
		{name: "negative", in: "-1", wantErr: ErrNotANumber},
		{name: "plus sign", in: "+12", want: 12},
		{name: "plus sign padded", in: "+0001", want: 1},
		{name: "lone plus", in: "+", wantErr: ErrNotANumber},
		{name: "double plus", in: "++1", wantErr: ErrNotANumber},
		{name: "plus zero", in: "+0", wantErr: ErrInvalidNumber},
		{name: "trailing space", in: "12 ", wantErr: ErrNotANumber},
		{name: "with designator", in: "AA123", wantErr: ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlightNumber(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Uint16())
		})
	}
}

func TestNewFlightNumber(t *testing.T) {
	f, err := NewFlightNumber(1)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), f.Uint16())

	f, err = NewFlightNumber(9999)
	require.NoError(t, err)
	assert.Equal(t, uint16(9999), f.Uint16())

	_, err = NewFlightNumber(0)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = NewFlightNumber(10000)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, uint64(10000), pe.Number)
}

func TestFlightNumber_String(t *testing.T) {
	tests := []struct {
		n    uint16
		want string
	}{
		{7, "0007"},
		{42, "0042"},
		{123, "0123"},
		{1234, "1234"},
		{9999, "9999"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, MustFlightNumber(tt.n).String())
		})
	}
}

func TestParseFlightNumber_DisplayRoundTrip(t *testing.T) {
	f, err := ParseFlightNumber("123")
	require.NoError(t, err)
	assert.Equal(t, "0123", f.String())

	again, err := ParseFlightNumber(f.String())
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestFlightNumber_Errors(t *testing.T) {
	_, err := ParseFlightNumber("abcd")
	assert.EqualError(t, err, `flight number "abcd": not a number`)

	_, err = ParseFlightNumber("10000")
	assert.EqualError(t, err, "flight number 10000: invalid number, expected 0001 to 9999")

	_, err = NewFlightNumber(0)
	assert.EqualError(t, err, "flight number 0: invalid number, expected 0001 to 9999")
}

func TestFlightNumber_Ordering(t *testing.T) {
	nums := []FlightNumber{
		MustFlightNumber(900),
		MustFlightNumber(12),
		MustFlightNumber(9999),
		MustFlightNumber(1),
	}
	slices.SortFunc(nums, FlightNumber.Compare)

	got := make([]uint16, len(nums))
	for i, n := range nums {
		got[i] = n.Uint16()
	}
	assert.Equal(t, []uint16{1, 12, 900, 9999}, got)

	assert.True(t, MustFlightNumber(12).Less(MustFlightNumber(900)))
	assert.Equal(t, 0, MustFlightNumber(5).Compare(MustFlightNumber(5)))
	assert.Equal(t, MustFlightNumber(5), MustFlightNumber(5))
}

func TestFlightNumber_MapKey(t *testing.T) {
	seen := map[FlightNumber]bool{}
	for _, s := range []string{"7", "07", "0007"} {
		seen[mustParseFlightNumber(t, s)] = true
	}
	assert.Len(t, seen, 1)
}

func TestMustFlightNumber_Panics(t *testing.T) {
	assert.Panics(t, func() { MustFlightNumber(0) })
	assert.NotPanics(t, func() { MustFlightNumber(1) })
}

func mustParseFlightNumber(t *testing.T, s string) FlightNumber {
	t.Helper()
	f, err := ParseFlightNumber(s)
	require.NoError(t, err)
	return f
}
