package wallet

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/walletcore/chain"
	"github.com/davecgh/go-spew/spew"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
)

// testTxDetails returns a minimal record with the given txid byte and
// confirmation status.
func testTxDetails(txidByte byte,
	conf chain.ConfirmationTime) TransactionDetails {

	var hash chainhash.Hash
	hash[0] = txidByte

	return TransactionDetails{
		Hash:             hash,
		Fee:              fn.None[btcutil.Amount](),
		ConfirmationTime: conf,
	}
}

// TestTxDetailsOrdering checks the canonical history order: confirmation
// position first, then txid for entries at the same position, with
// unconfirmed entries after all confirmed ones.
func TestTxDetailsOrdering(t *testing.T) {
	t.Parallel()

	unconfirmed := testTxDetails(1, chain.Unconfirmed())
	largeTxid := testTxDetails(9, chain.Confirmed(100, 1600000000))
	smallTxid := testTxDetails(2, chain.Confirmed(100, 1600000000))

	txs := []TransactionDetails{unconfirmed, largeTxid, smallTxid}
	SortTxDetails(txs)

	expected := []TransactionDetails{smallTxid, largeTxid, unconfirmed}
	require.Equal(t, expected, txs, "unexpected order: %s",
		spew.Sdump(txs))
}

// TestTxDetailsOrderingTransitive checks transitivity for a triple that
// exercises both comparison stages.
func TestTxDetailsOrderingTransitive(t *testing.T) {
	t.Parallel()

	a := testTxDetails(5, chain.Confirmed(99, 1600000000))
	b := testTxDetails(3, chain.Confirmed(100, 1600000000))
	c := testTxDetails(4, chain.Unconfirmed())

	require.Negative(t, a.Compare(&b))
	require.Negative(t, b.Compare(&c))
	require.Negative(t, a.Compare(&c))

	// A record always equals itself.
	require.Zero(t, a.Compare(&a))
}

// TestTxDetailsJSON checks the stable serialization: an unknown fee encodes
// as null and stays distinct from a known zero fee, and a present
// transaction body round-trips through its hex form.
func TestTxDetailsJSON(t *testing.T) {
	t.Parallel()

	tx := &wire.MsgTx{
		Version: 2,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Index: 1},
			SignatureScript:  []byte{},
		}},
		TxOut: []*wire.TxOut{{
			Value:    90_000,
			PkScript: []byte{0x51},
		}},
	}

	testCases := []struct {
		name    string
		details TransactionDetails
	}{
		{
			name: "unknown fee, pruned body",
			details: TransactionDetails{
				Hash:             tx.TxHash(),
				Received:         90_000,
				Fee:              fn.None[btcutil.Amount](),
				ConfirmationTime: chain.Unconfirmed(),
			},
		},
		{
			name: "known zero fee",
			details: TransactionDetails{
				Hash:             tx.TxHash(),
				Fee:              fn.Some(btcutil.Amount(0)),
				ConfirmationTime: chain.Unconfirmed(),
			},
		},
		{
			name: "full record",
			details: TransactionDetails{
				Transaction: tx,
				Hash:        tx.TxHash(),
				Received:    90_000,
				Sent:        100_000,
				Fee:         fn.Some(btcutil.Amount(10_000)),
				ConfirmationTime: chain.Confirmed(
					100, 1600000000,
				),
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(tc.details)
			require.NoError(t, err)

			var decoded TransactionDetails
			require.NoError(t, json.Unmarshal(encoded, &decoded))

			require.Equal(t, tc.details, decoded)
		})
	}

	// The null fee and the zero fee must not encode identically.
	unknown, err := json.Marshal(testTxDetails(1, chain.Unconfirmed()))
	require.NoError(t, err)
	require.Contains(t, string(unknown), `"fee":null`)

	zeroFee := testTxDetails(1, chain.Unconfirmed())
	zeroFee.Fee = fn.Some(btcutil.Amount(0))
	zero, err := json.Marshal(zeroFee)
	require.NoError(t, err)
	require.Contains(t, string(zero), `"fee":0`)
}
