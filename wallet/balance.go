// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// Balance breaks the wallet's funds down by spendability. All categories are
// in satoshis and mutually exclusive.
type Balance struct {
	// Immature is the sum of coinbase outputs that have not yet matured.
	Immature btcutil.Amount `json:"immature"`

	// TrustedPending is the sum of unconfirmed outputs received from the
	// wallet's own change keychain.
	TrustedPending btcutil.Amount `json:"trusted_pending"`

	// UntrustedPending is the sum of unconfirmed outputs received from
	// external sources.
	UntrustedPending btcutil.Amount `json:"untrusted_pending"`

	// Confirmed is the sum of confirmed, mature outputs.
	Confirmed btcutil.Amount `json:"confirmed"`
}

// TrustedSpendable returns the funds the wallet can rely on spending now:
// confirmed funds plus unconfirmed change.
func (b Balance) TrustedSpendable() btcutil.Amount {
	return b.Confirmed + b.TrustedPending
}

// Total returns the sum of all balance categories.
func (b Balance) Total() btcutil.Amount {
	return b.Immature + b.TrustedPending + b.UntrustedPending +
		b.Confirmed
}

// Add returns the category-wise sum of two balances.
func (b Balance) Add(other Balance) Balance {
	return Balance{
		Immature:         b.Immature + other.Immature,
		TrustedPending:   b.TrustedPending + other.TrustedPending,
		UntrustedPending: b.UntrustedPending + other.UntrustedPending,
		Confirmed:        b.Confirmed + other.Confirmed,
	}
}

// String returns a human-readable form of the balance.
func (b Balance) String() string {
	return fmt.Sprintf("{ immature: %d, trusted_pending: %d, "+
		"untrusted_pending: %d, confirmed: %d }", b.Immature,
		b.TrustedPending, b.UntrustedPending, b.Confirmed)
}
