// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain provides the chain-state values that wallet types reference,
// such as the confirmation status of a transaction.
package chain

import (
	"cmp"
	"fmt"
)

// ConfirmationTime describes whether and where a transaction was confirmed.
// It is an immutable value type: a reorg or re-sync produces a new value
// rather than mutating an existing one.
type ConfirmationTime struct {
	// Confirmed reports whether the transaction is included in a block.
	Confirmed bool `json:"confirmed"`

	// Height is the height of the block containing the transaction. Zero
	// unless Confirmed is true.
	Height uint32 `json:"height"`

	// Time is the Unix timestamp of the block containing the transaction.
	// Zero unless Confirmed is true.
	Time uint64 `json:"time"`
}

// Confirmed returns the confirmation status of a transaction mined in the
// block at the given height with the given Unix timestamp.
func Confirmed(height uint32, time uint64) ConfirmationTime {
	return ConfirmationTime{
		Confirmed: true,
		Height:    height,
		Time:      time,
	}
}

// Unconfirmed returns the confirmation status of a transaction that is not
// yet mined.
func Unconfirmed() ConfirmationTime {
	return ConfirmationTime{}
}

// Compare defines the total order over confirmation statuses: every
// confirmed status sorts before every unconfirmed one, confirmed statuses
// order by height and then block time, and unconfirmed statuses are mutually
// equal. It returns -1, 0 or 1 in the manner of cmp.Compare.
func (c ConfirmationTime) Compare(other ConfirmationTime) int {
	switch {
	case c.Confirmed && !other.Confirmed:
		return -1

	case !c.Confirmed && other.Confirmed:
		return 1

	case !c.Confirmed && !other.Confirmed:
		return 0
	}

	if r := cmp.Compare(c.Height, other.Height); r != 0 {
		return r
	}

	return cmp.Compare(c.Time, other.Time)
}

// String returns a human-readable form of the confirmation status.
func (c ConfirmationTime) String() string {
	if !c.Confirmed {
		return "unconfirmed"
	}

	return fmt.Sprintf("confirmed at height %d, time %d", c.Height, c.Time)
}
