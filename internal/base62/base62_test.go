package base62

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{9, "9"},
		{10, "a"},
		{35, "z"},
		{36, "A"},
		{61, "Z"},
		{62, "10"},
		{3843, "ZZ"},
		{3844, "100"},
		{10000, "2Bi"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Encode(tc.n))
	}
}

func TestEncode_deterministic(t *testing.T) {
	assert.Equal(t, Encode(123456789), Encode(123456789))
}

func TestEncode_injective(t *testing.T) {
	seen := make(map[string]uint64)

	for n := uint64(0); n < 20000; n++ {
		code := Encode(n)

		prev, ok := seen[code]
		require.Falsef(t, ok, "Encode(%d) and Encode(%d) both produced %q", prev, n, code)
		seen[code] = n
	}
}

func TestEncode_alphabetClosure(t *testing.T) {
	for _, n := range []uint64{0, 1, 61, 62, 10000, 1<<32 + 7, 1<<63 - 1} {
		for _, c := range Encode(n) {
			assert.Truef(t, strings.ContainsRune(Alphabet, c), "Encode(%d) produced %q outside the alphabet", n, c)
		}
	}
}

func TestDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, n := range []uint64{0, 1, 61, 62, 3844, 10000, 987654321, 1<<64 - 1} {
			got, err := Decode(Encode(n))

			require.NoError(t, err)
			assert.Equal(t, n, got)
		}
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := Decode("")

		assert.Error(t, err)
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := Decode("abc-def")

		assert.Error(t, err)
	})
}
