package wallet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKeychainKindBytes checks the stable single-byte encoding of the
// keychain kinds, and that the slice view always matches the byte form.
func TestKeychainKindBytes(t *testing.T) {
	t.Parallel()

	require.Equal(t, byte('e'), KeychainExternal.AsByte())
	require.Equal(t, byte('i'), KeychainInternal.AsByte())

	require.Equal(t, []byte("e"), KeychainExternal.Bytes())
	require.Equal(t, []byte("i"), KeychainInternal.Bytes())

	for _, kind := range []KeychainKind{
		KeychainExternal, KeychainInternal,
	} {
		require.Equal(t, []byte{kind.AsByte()}, kind.Bytes())
	}

	// The external keychain orders before the internal one.
	require.Less(t, KeychainExternal, KeychainInternal)
}

// TestKeychainKindText checks the textual encoding round-trips and rejects
// unknown values.
func TestKeychainKindText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "external", KeychainExternal.String())
	require.Equal(t, "internal", KeychainInternal.String())

	for _, kind := range []KeychainKind{
		KeychainExternal, KeychainInternal,
	} {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var decoded KeychainKind
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, kind, decoded)
	}

	_, err := KeychainKind(42).MarshalText()
	require.Error(t, err)

	var decoded KeychainKind
	require.Error(t, decoded.UnmarshalText([]byte("change")))
}

// TestKeychainKindUnknownByte checks that asking for the byte encoding of an
// out-of-range kind is treated as a contract violation.
func TestKeychainKindUnknownByte(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		KeychainKind(42).AsByte()
	})
}
