package puzzleid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_String(t *testing.T) {
	testCases := []struct {
		name        string
		addr        *Address
		expectedStr string
	}{
		{name: "day only", addr: &Address{Day: 3}, expectedStr: "day3"},
		{name: "day and part", addr: &Address{Day: 12, Part: 2}, expectedStr: "day12.part2"},
		{name: "nil address", addr: nil, expectedStr: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.addr.String())
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	for _, id := range []string{"day1", "day3.part2", "day25.part1"} {
		t.Run(id, func(t *testing.T) {
			addr, err := Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, addr.String())

			again, err := Parse(addr.String())
			require.NoError(t, err)
			assert.True(t, addr.Equal(again))
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	addr1, _ := Parse("day3.part1")
	addr2, _ := Parse("3.1")
	addr3, _ := Parse("day3")

	assert.True(t, addr1.Equal(addr2))
	assert.False(t, addr1.Equal(addr3))
	assert.False(t, addr1.Equal(nil))
	assert.False(t, (*Address)(nil).Equal(addr1))
	assert.True(t, (*Address)(nil).Equal(nil))
}

func TestAddress_WithPart(t *testing.T) {
	addr := Address{Day: 4}
	withPart := addr.WithPart(2)

	assert.False(t, addr.HasPart())
	assert.True(t, withPart.HasPart())
	assert.Equal(t, "day4.part2", withPart.String())
}
