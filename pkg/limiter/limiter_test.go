package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		limit string
		rate  float64
	}{
		{"5-S", 5},
		{"120-M", 2},
		{"3600-H", 1},
		{"86400-D", 1},
	}
	for _, tc := range cases {
		rate, err := ParseLimit(tc.limit)
		require.NoError(t, err, tc.limit)
		assert.InDelta(t, tc.rate, rate.Rate, 0.0001, tc.limit)
	}
}

func TestParseLimitInvalid(t *testing.T) {
	for _, limit := range []string{"", "10", "10-X", "abc-S", "10-S-extra"} {
		_, err := ParseLimit(limit)
		assert.Error(t, err, limit)
	}
}
