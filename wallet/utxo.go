// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/walletcore/btcunit"
	"github.com/btcsuite/btcwallet/walletcore/chain"
)

// LocalUtxo is an unspent output owned by the wallet itself. Unlike a
// foreign UTXO it always carries complete output data.
type LocalUtxo struct {
	// OutPoint is the location of the previous output being spent.
	OutPoint wire.OutPoint `json:"outpoint"`

	// TxOut is the full previous output, script and value.
	TxOut wire.TxOut `json:"txout"`

	// Keychain is the keychain that derived the output's script pubkey.
	Keychain KeychainKind `json:"keychain"`

	// IsSpent reports whether the output has already been spent.
	IsSpent bool `json:"is_spent"`

	// DerivationIndex is the child index the script pubkey was derived at
	// within Keychain.
	DerivationIndex uint32 `json:"derivation_index"`

	// ConfirmationTime is the confirmation status of the transaction
	// containing this output.
	ConfirmationTime chain.ConfirmationTime `json:"confirmation_time"`
}

// ForeignUtxo is an unspent output owned by another wallet, described only by
// the partially-signed-transaction input data needed to spend it.
type ForeignUtxo struct {
	// OutPoint is the location of the previous output being spent.
	OutPoint wire.OutPoint

	// PsbtInput carries the data required to add the output to a PSBT.
	// The supplier must set at least one of NonWitnessUtxo or
	// WitnessUtxo; this is a construction contract and is not
	// re-validated when the output is read back.
	PsbtInput *psbt.PInput
}

// UtxoKind identifies which variant a Utxo holds.
type UtxoKind uint8

const (
	// UtxoLocal is a UTXO owned by the local wallet.
	UtxoLocal UtxoKind = iota

	// UtxoForeign is a UTXO owned by another wallet.
	UtxoForeign
)

// Utxo is a tagged union over LocalUtxo and ForeignUtxo, presenting a
// uniform read-only view of an unspent output to coin selection and fee
// estimation.
type Utxo struct {
	kind    UtxoKind
	local   LocalUtxo
	foreign ForeignUtxo
}

// NewUtxoLocal wraps a locally-owned output.
func NewUtxoLocal(local LocalUtxo) Utxo {
	return Utxo{kind: UtxoLocal, local: local}
}

// NewUtxoForeign wraps an externally-supplied output. The PSBT input must
// carry the previous transaction, the spent output, or both; a violation is
// logged here so the supplier bug is visible before the read-side panic in
// TxOut.
func NewUtxoForeign(outPoint wire.OutPoint, psbtInput *psbt.PInput) Utxo {
	if psbtInput == nil || (psbtInput.NonWitnessUtxo == nil &&
		psbtInput.WitnessUtxo == nil) {

		log.Warnf("Foreign utxo %v supplied without witness or "+
			"non-witness data", outPoint)
	}

	return Utxo{
		kind: UtxoForeign,
		foreign: ForeignUtxo{
			OutPoint:  outPoint,
			PsbtInput: psbtInput,
		},
	}
}

// Kind returns the variant held by the union.
func (u Utxo) Kind() UtxoKind {
	return u.kind
}

// Local returns the LocalUtxo variant, if that is what the union holds.
func (u Utxo) Local() (LocalUtxo, bool) {
	return u.local, u.kind == UtxoLocal
}

// Foreign returns the ForeignUtxo variant, if that is what the union holds.
func (u Utxo) Foreign() (ForeignUtxo, bool) {
	return u.foreign, u.kind == UtxoForeign
}

// OutPoint returns the location of the previous output for either variant.
func (u Utxo) OutPoint() wire.OutPoint {
	switch u.kind {
	case UtxoLocal:
		return u.local.OutPoint

	case UtxoForeign:
		return u.foreign.OutPoint
	}

	panic(fmt.Sprintf("unknown utxo kind %d", u.kind))
}

// TxOut returns the spent output for either variant. For a foreign UTXO the
// previous transaction takes precedence over the witness output when both
// are present. The returned output must be treated as read-only.
//
// Panics if a foreign UTXO carries neither field: the supplier broke the
// construction contract and there is no correct output to return.
func (u Utxo) TxOut() *wire.TxOut {
	switch u.kind {
	case UtxoLocal:
		txOut := u.local.TxOut
		return &txOut

	case UtxoForeign:
		in := u.foreign.PsbtInput
		if in != nil && in.NonWitnessUtxo != nil {
			return in.NonWitnessUtxo.TxOut[u.foreign.OutPoint.Index]
		}
		if in != nil && in.WitnessUtxo != nil {
			return in.WitnessUtxo
		}

		panic(fmt.Sprintf("foreign utxo %v has neither witness nor "+
			"non-witness data", u.foreign.OutPoint))
	}

	panic(fmt.Sprintf("unknown utxo kind %d", u.kind))
}

// WeightedUtxo pairs a Utxo with its satisfaction weight so coin selection
// knows the marginal size cost of spending it.
type WeightedUtxo struct {
	// SatisfactionWeight is the expected weight of the witness and
	// scriptSig data once the input is signed. It is used to maintain the
	// fee rate when adding this input to a transaction.
	SatisfactionWeight btcunit.WeightUnit

	// Utxo is the unspent output itself.
	Utxo Utxo
}
