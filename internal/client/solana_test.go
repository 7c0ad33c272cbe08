package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AlexZinkM/chainkit"
	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ chainkit.Submitter = (*SolanaSubmitter)(nil)

const testBlockhash = "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N"

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

// fakeRPC answers getLatestBlockhash and sendTransaction and counts calls per method
type fakeRPC struct {
	calls     map[string]*atomic.Int32
	signature solana.Signature
}

func newFakeRPC() *fakeRPC {
	var sig solana.Signature
	for i := range sig {
		sig[i] = byte(i + 1)
	}
	return &fakeRPC{
		calls: map[string]*atomic.Int32{
			"getLatestBlockhash": {},
			"sendTransaction":    {},
		},
		signature: sig,
	}
}

func (f *fakeRPC) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if c, ok := f.calls[req.Method]; ok {
		c.Add(1)
	}

	var result any
	switch req.Method {
	case "getLatestBlockhash":
		result = map[string]any{
			"context": map[string]any{"slot": 42},
			"value":   map[string]any{"blockhash": testBlockhash, "lastValidBlockHeight": 100},
		}
	case "sendTransaction":
		result = f.signature.String()
	default:
		http.Error(w, "unknown method", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result})
}

func signedTransfer(t *testing.T) string {
	t.Helper()
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(1000, payer.PublicKey(), solana.SystemProgramID).Build()},
		solana.MustHashFromBase58(testBlockhash),
		solana.TransactionPayer(payer.PublicKey()),
	)
	require.NoError(t, err)
	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer.PublicKey()) {
			return &payer
		}
		return nil
	})
	require.NoError(t, err)

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestSubmit(t *testing.T) {
	rpcServer := newFakeRPC()
	srv := httptest.NewServer(rpcServer)
	defer srv.Close()

	s := NewSolanaSubmitter(srv.URL, time.Minute, logging.Discard())
	assert.Equal(t, model.ChainSolana, s.Chain())

	sig, err := s.Submit(context.Background(), signedTransfer(t))
	require.NoError(t, err)
	assert.Equal(t, rpcServer.signature.String(), sig)
	assert.EqualValues(t, 1, rpcServer.calls["sendTransaction"].Load())
}

func TestSubmitRejectsMalformed(t *testing.T) {
	rpcServer := newFakeRPC()
	srv := httptest.NewServer(rpcServer)
	defer srv.Close()

	s := NewSolanaSubmitter(srv.URL, time.Minute, logging.Discard())
	for _, tx := range []string{"not base64!", base64.StdEncoding.EncodeToString([]byte{1, 2, 3})} {
		_, err := s.Submit(context.Background(), tx)
		assert.True(t, model.IsKind(err, model.KindMalformedTransaction), "tx %q: %v", tx, err)
	}
	assert.Zero(t, rpcServer.calls["sendTransaction"].Load())
}

func TestLatestBlockhashIsCached(t *testing.T) {
	rpcServer := newFakeRPC()
	srv := httptest.NewServer(rpcServer)
	defer srv.Close()

	s := NewSolanaSubmitter(srv.URL, time.Minute, logging.Discard())
	for i := 0; i < 3; i++ {
		hash, err := s.LatestBlockhash(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testBlockhash, hash)
	}
	assert.EqualValues(t, 1, rpcServer.calls["getLatestBlockhash"].Load())

	s.Invalidate()
	_, err := s.LatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, rpcServer.calls["getLatestBlockhash"].Load())
}

func TestLatestBlockhashExpires(t *testing.T) {
	rpcServer := newFakeRPC()
	srv := httptest.NewServer(rpcServer)
	defer srv.Close()

	s := NewSolanaSubmitter(srv.URL, 20*time.Millisecond, logging.Discard())
	_, err := s.LatestBlockhash(context.Background())
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	_, err = s.LatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, rpcServer.calls["getLatestBlockhash"].Load())
}
