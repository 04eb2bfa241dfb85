package rider_test

import (
	"testing"

	"zap-shift/models/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesArea(t *testing.T) {
	r := &rider.Rider{AreasToRide: rider.StringSlice{"dhaka", "Chattogram", " Sylhet "}}

	tests := []struct {
		name string
		area string
		want bool
	}{
		{"case-insensitive match", "Dhaka", true},
		{"exact lower-case match", "dhaka", true},
		{"mixed case match", "cHaTtOgRaM", true},
		{"whitespace trimmed on both sides", "sylhet", true},
		{"no substring match", "Dhaka Division", false},
		{"no partial match", "Dha", false},
		{"regex metacharacters are literal", "dhaka.*", false},
		{"unknown area", "Khulna", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.MatchesArea(tt.area))
		})
	}
}

func TestMatchesAreaEmptySet(t *testing.T) {
	r := &rider.Rider{}
	assert.False(t, r.MatchesArea("Dhaka"))
}

func TestStringSliceRoundTrip(t *testing.T) {
	ss := rider.StringSlice{"dhaka", "sylhet"}

	value, err := ss.Value()
	require.NoError(t, err)

	var decoded rider.StringSlice
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, ss, decoded)
}

func TestStringSliceScanNil(t *testing.T) {
	var ss rider.StringSlice
	require.NoError(t, ss.Scan(nil))
	assert.Nil(t, ss)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, rider.StatusPending.Valid())
	assert.True(t, rider.StatusApproved.Valid())
	assert.True(t, rider.StatusDeactivated.Valid())
	assert.False(t, rider.Status("busy").Valid())
}
