package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinor(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "5000.00", want: 500000},
		{in: "0.01", want: 1},
		{in: "10.5", want: 1050},
		{in: "1", want: 100},
		{in: "10000", want: 1000000},
		{in: " 25.00 ", want: 2500},
		{in: ".99", want: 99},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: ".", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.234", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "1,000", wantErr: true},
		{in: "1e3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinor(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "5000.00", FormatMinor(500000))
	assert.Equal(t, "0.01", FormatMinor(1))
	assert.Equal(t, "0.00", FormatMinor(0))
	assert.Equal(t, "4000.00", FormatMinor(400000))
	assert.Equal(t, "-12.34", FormatMinor(-1234))
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 99, 100, 123456789} {
		got, err := ParseMinor(FormatMinor(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
