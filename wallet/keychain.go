// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet defines the value types a bitcoin wallet is built from:
// keychain discriminators, unspent outputs and wallet transaction records.
// The types are immutable values with no internal synchronization; they are
// safe to copy and share between goroutines.
package wallet

import (
	"fmt"
)

// KeychainKind identifies which derivation branch produced an address or
// output. KeychainExternal orders before KeychainInternal.
type KeychainKind uint8

const (
	// KeychainExternal is the keychain used for deriving recipient
	// addresses.
	KeychainExternal KeychainKind = iota

	// KeychainInternal is the keychain used for deriving change
	// addresses.
	KeychainInternal
)

// AsByte returns the single-byte encoding of the keychain kind. The values
// 'e' and 'i' are a persistence contract: storage layers use them as
// composite-key fragments, so they must never change.
func (k KeychainKind) AsByte() byte {
	switch k {
	case KeychainExternal:
		return 'e'

	case KeychainInternal:
		return 'i'
	}

	panic(fmt.Sprintf("unknown keychain kind %d", uint8(k)))
}

// Bytes returns the keychain kind as a one-byte slice, for use as a key
// fragment. The slice contents always match AsByte.
func (k KeychainKind) Bytes() []byte {
	return []byte{k.AsByte()}
}

// String returns a human-readable form of the keychain kind.
func (k KeychainKind) String() string {
	switch k {
	case KeychainExternal:
		return "external"

	case KeychainInternal:
		return "internal"
	}

	return fmt.Sprintf("unknown<%d>", uint8(k))
}

// MarshalText implements encoding.TextMarshaler, encoding the kind as
// "external" or "internal".
func (k KeychainKind) MarshalText() ([]byte, error) {
	switch k {
	case KeychainExternal, KeychainInternal:
		return []byte(k.String()), nil
	}

	return nil, fmt.Errorf("unknown keychain kind %d", uint8(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *KeychainKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "external":
		*k = KeychainExternal
		return nil

	case "internal":
		*k = KeychainInternal
		return nil
	}

	return fmt.Errorf("unknown keychain kind %q", text)
}
