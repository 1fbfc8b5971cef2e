// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/walletcore/chain"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// TransactionDetails summarizes one wallet-relevant transaction: the value
// flowing in and out of the wallet, the fee paid if known, and the
// confirmation status. Records are immutable; a reorg or re-sync produces a
// superseding record rather than mutating an existing one.
type TransactionDetails struct {
	// Transaction is the full transaction. Optional: may be nil when the
	// body was pruned or never known.
	Transaction *wire.MsgTx

	// Hash is the transaction id.
	Hash chainhash.Hash

	// Received is the sum of the wallet-owned outputs of this
	// transaction.
	Received btcutil.Amount

	// Sent is the sum of the wallet-owned inputs of this transaction.
	Sent btcutil.Amount

	// Fee is the absolute fee paid by the transaction. None when the fee
	// is unknown, which is distinct from a known fee of zero.
	Fee fn.Option[btcutil.Amount]

	// ConfirmationTime is the confirmation status of the transaction.
	ConfirmationTime chain.ConfirmationTime
}

// Compare defines the canonical history order: by confirmation status first,
// then by transaction id bytes for determinism among entries at the same
// chain position. The result is a strict total order, so it is safe to use
// for sorted listings and tree storage.
func (t *TransactionDetails) Compare(other *TransactionDetails) int {
	if r := t.ConfirmationTime.Compare(other.ConfirmationTime); r != 0 {
		return r
	}

	return bytes.Compare(t.Hash[:], other.Hash[:])
}

// SortTxDetails sorts the transactions in place into the canonical history
// order.
func SortTxDetails(txs []TransactionDetails) {
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Compare(&txs[j]) < 0
	})
}

// txDetailsJSON is the stable field-for-field serialization of
// TransactionDetails. The transaction body is rendered as the hex of its
// wire serialization, the fee as a nullable integer so an unknown fee stays
// distinct from a zero fee.
type txDetailsJSON struct {
	Transaction      *string                `json:"transaction"`
	Txid             string                 `json:"txid"`
	Received         int64                  `json:"received"`
	Sent             int64                  `json:"sent"`
	Fee              *int64                 `json:"fee"`
	ConfirmationTime chain.ConfirmationTime `json:"confirmation_time"`
}

// MarshalJSON implements json.Marshaler.
func (t TransactionDetails) MarshalJSON() ([]byte, error) {
	enc := txDetailsJSON{
		Txid:             t.Hash.String(),
		Received:         int64(t.Received),
		Sent:             int64(t.Sent),
		ConfirmationTime: t.ConfirmationTime,
	}

	if t.Transaction != nil {
		var buf bytes.Buffer
		if err := t.Transaction.Serialize(&buf); err != nil {
			return nil, fmt.Errorf("unable to serialize "+
				"transaction %v: %w", t.Hash, err)
		}

		txHex := hex.EncodeToString(buf.Bytes())
		enc.Transaction = &txHex
	}

	t.Fee.WhenSome(func(fee btcutil.Amount) {
		v := int64(fee)
		enc.Fee = &v
	})

	return json.Marshal(enc)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TransactionDetails) UnmarshalJSON(data []byte) error {
	var dec txDetailsJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}

	hash, err := chainhash.NewHashFromStr(dec.Txid)
	if err != nil {
		return fmt.Errorf("invalid txid %q: %w", dec.Txid, err)
	}

	details := TransactionDetails{
		Hash:             *hash,
		Received:         btcutil.Amount(dec.Received),
		Sent:             btcutil.Amount(dec.Sent),
		Fee:              fn.None[btcutil.Amount](),
		ConfirmationTime: dec.ConfirmationTime,
	}

	if dec.Transaction != nil {
		rawTx, err := hex.DecodeString(*dec.Transaction)
		if err != nil {
			return fmt.Errorf("invalid transaction hex: %w", err)
		}

		tx := &wire.MsgTx{}
		if err := tx.Deserialize(bytes.NewReader(rawTx)); err != nil {
			return fmt.Errorf("unable to deserialize "+
				"transaction: %w", err)
		}

		details.Transaction = tx
	}

	if dec.Fee != nil {
		details.Fee = fn.Some(btcutil.Amount(*dec.Fee))
	}

	*t = details

	return nil
}
