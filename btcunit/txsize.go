package btcunit

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
)

// WeightUnit defines a unit to express the transaction size. One weight unit
// is 1/4_000_000 of the max block size. The tx weight is calculated using
// `Base tx size * 3 + Total tx size`.
//   - Base tx size is size of the transaction serialized without the witness
//     data.
//   - Total tx size is the transaction size in bytes serialized according
//     #BIP144.
type WeightUnit uint64

// ToVBytes converts the weight to virtual bytes, rounding up. The ceiling is
// mandated by the BIP-141 size accounting rule and must never be replaced by
// floor or round: fee estimates built on this conversion may never
// undercount the transaction size.
func (w WeightUnit) ToVBytes() VByte {
	return VByte(
		(uint64(w) + blockchain.WitnessScaleFactor - 1) /
			blockchain.WitnessScaleFactor,
	)
}

// String returns the string representation of the weight unit.
func (w WeightUnit) String() string {
	return fmt.Sprintf("%d wu", uint64(w))
}

// VByte defines a unit to express the transaction size. One virtual byte is
// 1/4th of a weight unit.
type VByte uint64

// ToWU converts the size to weight units.
func (v VByte) ToWU() WeightUnit {
	return WeightUnit(uint64(v) * blockchain.WitnessScaleFactor)
}

// String returns the string representation of the virtual byte.
func (v VByte) String() string {
	return fmt.Sprintf("%d vb", uint64(v))
}
