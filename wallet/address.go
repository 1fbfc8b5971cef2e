// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/btcsuite/btcd/btcutil"
)

// AddressInfo pairs a derived address with the keychain and child index that
// produced it.
type AddressInfo struct {
	// Index is the child index the address was derived at.
	Index uint32

	// Address is the derived address.
	Address btcutil.Address

	// Keychain is the keychain the address belongs to.
	Keychain KeychainKind
}

// String returns the encoded form of the address.
func (a AddressInfo) String() string {
	if a.Address == nil {
		return ""
	}

	return a.Address.EncodeAddress()
}
