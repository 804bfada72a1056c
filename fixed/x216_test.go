package fixed

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestX216RoundTrip(t *testing.T) {
	type TC struct {
		name string
		x    *uint256.Int
	}

	tcs := []TC{
		{
			name: "epsilon",
			x:    uint256.NewInt(1),
		},
		{
			name: "half",
			x:    lsh(1, SqrtFractionBits-1),
		},
		{
			name: "just below one",
			x:    new(uint256.Int).SubUint64(OneX216(), 1),
		},
		{
			name: "mixed bits",
			x:    new(uint256.Int).SetBytes([]byte{0x5a, 0x01, 0xff, 0x00, 0xc3, 0x3c, 0x7e}),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			field := make([]byte, SqrtByteLen)

			err := (*X216)(tc.x).Put(field)
			require.NoError(t, err)

			back, err := X216FromBytes(field)
			require.NoError(t, err)
			require.True(t, tc.x.Eq(back.Int()))
		})
	}
}

func TestX216Domain(t *testing.T) {
	field := make([]byte, SqrtByteLen)

	// Zero and one sit on the boundary and are rejected.
	err := (*X216)(uint256.NewInt(0)).Put(field)
	require.Error(t, err)

	err = (*X216)(OneX216()).Put(field)
	require.Error(t, err)

	// Negative values are rejected.
	err = (*X216)(neg(uint256.NewInt(1))).Put(field)
	require.Error(t, err)

	// Wrong field widths are rejected.
	err = (*X216)(uint256.NewInt(1)).Put(make([]byte, SqrtByteLen-1))
	require.Error(t, err)

	_, err = X216FromBytes(make([]byte, SqrtByteLen+1))
	require.Error(t, err)
}
