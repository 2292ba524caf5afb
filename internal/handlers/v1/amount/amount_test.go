package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12.50", want: 1250},
		{in: "0.01", want: 1},
		{in: "1000", want: 100000},
		{in: "0", want: 0},
		{in: "-5.25", want: -525},
		{in: "1.005", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.50", Format(1250))
	assert.Equal(t, "0.01", Format(1))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "1000.00", Format(100000))
}

func TestRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 123456789} {
		parsed, err := Parse(Format(minor))
		assert.NoError(t, err)
		assert.Equal(t, minor, parsed)
	}
}
