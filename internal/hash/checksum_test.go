package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	require.Equal(t, xxhash.Sum64(nil), Checksum(nil))
	require.Equal(t, Checksum(nil), Checksum([]byte{}), "nil and empty hash identically")

	data := []byte("packed buffer body")
	require.Equal(t, xxhash.Sum64(data), Checksum(data))

	// Deterministic, and sensitive to single-byte changes.
	require.Equal(t, Checksum(data), Checksum(data))

	mutated := append([]byte(nil), data...)
	mutated[0] ^= 0x01
	require.NotEqual(t, Checksum(data), Checksum(mutated))
}
