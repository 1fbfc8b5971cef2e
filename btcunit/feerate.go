// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package btcunit provides a set of types for dealing with bitcoin units.
package btcunit

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
)

const (
	// kilo is a generic multiplier for kilo units.
	kilo = 1000

	// floatStringPrecision is the number of decimal places to use when
	// converting a fee rate to a string. We use 3 decimal places to ensure
	// that low fee rates (e.g., 1 sat/kvb = 0.001 sat/vbyte) are displayed
	// with sufficient precision and not rounded to zero.
	floatStringPrecision = 3
)

// DefaultFeeRate is the fee rate used when the caller expresses no
// preference. It equals DefaultMinRelayFee.
var DefaultFeeRate = DefaultMinRelayFee()

// FeeRate expresses the price of block space as satoshis per virtual byte.
// All fee rates are stored in single precision; callers needing exact
// arithmetic should work in absolute satoshi amounts instead.
//
// A FeeRate obtained from one of the New* constructors always holds a value
// that is a normal float or positive zero. The zero value of the type is a
// zero fee rate.
type FeeRate struct {
	satPerVB float32
}

// newFeeRateChecked builds a FeeRate from a raw sat/vb value, enforcing the
// construction invariant: the value must be an IEEE-754 normal number or
// exactly positive zero. Anything else (negative values including negative
// zero, NaN, infinities, nonzero subnormals) is a contract violation by the
// caller, typically a unit conversion bug upstream, and panics rather than
// silently clamping.
func newFeeRateChecked(satPerVB float32) FeeRate {
	const (
		signMask     = 1 << 31
		exponentMask = 0x7f800000
		mantissaMask = 0x007fffff
	)

	bits := math.Float32bits(satPerVB)
	switch {
	case bits&signMask != 0:
		panic(fmt.Sprintf("invalid fee rate %v sat/vb: negative",
			satPerVB))

	case bits&exponentMask == exponentMask:
		panic(fmt.Sprintf("invalid fee rate %v sat/vb: NaN or "+
			"infinite", satPerVB))

	case bits&exponentMask == 0 && bits&mantissaMask != 0:
		panic(fmt.Sprintf("invalid fee rate %v sat/vb: subnormal",
			satPerVB))
	}

	return FeeRate{satPerVB: satPerVB}
}

// NewFeeRateSatPerVB creates a new fee rate from a value expressed in
// satoshis per virtual byte.
//
// Panics if the value is not a normal float or positive zero.
func NewFeeRateSatPerVB(satPerVB float32) FeeRate {
	return newFeeRateChecked(satPerVB)
}

// NewFeeRateSatPerKVB creates a new fee rate from a value expressed in
// satoshis per kilo-virtual-byte.
//
// Panics if the value is not a normal float or positive zero.
func NewFeeRateSatPerKVB(satPerKVB float32) FeeRate {
	return newFeeRateChecked(satPerKVB / kilo)
}

// NewFeeRateSatPerKWU creates a new fee rate from a value expressed in
// satoshis per kilo-weight-unit. 1000 wu equal 250 vb, so the value is
// scaled by kilo/WitnessScaleFactor.
//
// Panics if the value is not a normal float or positive zero.
func NewFeeRateSatPerKWU(satPerKWU float32) FeeRate {
	return newFeeRateChecked(
		satPerKWU / (kilo / blockchain.WitnessScaleFactor),
	)
}

// NewFeeRateBTCPerKVB creates a new fee rate from a value expressed in BTC
// per kilo-virtual-byte, the unit used by the legacy estimatefee/feerate RPC
// fields.
//
// Panics if the value is not a normal float or positive zero.
func NewFeeRateBTCPerKVB(btcPerKVB float32) FeeRate {
	return newFeeRateChecked(
		btcPerKVB * (btcutil.SatoshiPerBitcoin / kilo),
	)
}

// NewFeeRateFromWU calculates the fee rate paid by a transaction of the
// given size in weight units with the given absolute fee. The weight is
// converted to virtual bytes first, rounding up.
//
// Panics if the resulting rate is not a normal float or positive zero, which
// includes the zero-weight case.
func NewFeeRateFromWU(fee btcutil.Amount, wu WeightUnit) FeeRate {
	return NewFeeRateFromVB(fee, wu.ToVBytes())
}

// NewFeeRateFromVB calculates the fee rate paid by a transaction of the
// given size in virtual bytes with the given absolute fee.
//
// Panics if the resulting rate is not a normal float or positive zero, which
// includes the zero-size case.
func NewFeeRateFromVB(fee btcutil.Amount, vb VByte) FeeRate {
	return newFeeRateChecked(float32(fee) / float32(vb))
}

// DefaultMinRelayFee returns the fee rate of the default network relay
// policy, 1 sat/vb.
func DefaultMinRelayFee() FeeRate {
	return FeeRate{satPerVB: 1}
}

// SatPerVByte returns the fee rate in satoshis per virtual byte.
func (f FeeRate) SatPerVByte() float32 {
	return f.satPerVB
}

// SatPerKWU returns the fee rate in satoshis per kilo-weight-unit.
func (f FeeRate) SatPerKWU() float32 {
	return f.satPerVB * (kilo / blockchain.WitnessScaleFactor)
}

// FeeForWeight calculates the absolute fee owed by a transaction of the
// given size in weight units. The weight is converted to virtual bytes
// first, rounding up.
func (f FeeRate) FeeForWeight(wu WeightUnit) btcutil.Amount {
	return f.FeeForVBytes(wu.ToVBytes())
}

// FeeForVBytes calculates the absolute fee owed by a transaction of the
// given size in virtual bytes. The fee is rounded up to the next satoshi so
// that a transaction paying it never falls below the rate it was budgeted
// at.
func (f FeeRate) FeeForVBytes(vb VByte) btcutil.Amount {
	return capFee(math.Ceil(float64(f.satPerVB * float32(vb))))
}

// Sub returns the difference between two fee rates. Unlike the constructors
// the result is not validated: intermediate arithmetic such as computing a
// fee-bump delta may legally produce a zero or negative rate.
func (f FeeRate) Sub(other FeeRate) FeeRate {
	return FeeRate{satPerVB: f.satPerVB - other.satPerVB}
}

// String returns a human-readable string of the fee rate.
func (f FeeRate) String() string {
	return fmt.Sprintf("%.*f sat/vb", floatStringPrecision, f.satPerVB)
}

// capFee converts a rounded fee to a satoshi amount, capping at
// math.MaxInt64. In practice fees are bounded by the 21M coin supply and
// never get near the cap; hitting it means the inputs were already garbage.
func capFee(fee float64) btcutil.Amount {
	if fee >= math.MaxInt64 {
		slog.Warn("Capping fee to math.MaxInt64",
			slog.Float64("fee", fee))

		return btcutil.Amount(math.MaxInt64)
	}

	return btcutil.Amount(fee)
}
