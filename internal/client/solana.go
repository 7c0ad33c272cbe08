package client

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const blockhashKey = "latest_blockhash"

// SolanaSubmitter broadcasts signed Solana transactions over JSON-RPC
type SolanaSubmitter struct {
	rpcClient *rpc.Client
	hashes    *cache.Cache
	log       *logrus.Entry
}

// NewSolanaSubmitter creates a submitter for rpcURL. Fetched blockhashes are reused for ttl.
func NewSolanaSubmitter(rpcURL string, ttl time.Duration, log *logrus.Entry) *SolanaSubmitter {
	if log == nil {
		log = logging.Component("solana-rpc")
	}
	return &SolanaSubmitter{
		rpcClient: rpc.New(rpcURL),
		hashes:    cache.New(ttl, 2*ttl),
		log:       log,
	}
}

// Chain returns the chain this submitter broadcasts to
func (s *SolanaSubmitter) Chain() model.Chain {
	return model.ChainSolana
}

// Submit sends a base64 signed transaction and returns its signature
func (s *SolanaSubmitter) Submit(ctx context.Context, signedTx string) (string, error) {
	raw, err := common.FromBase64(signedTx)
	if err != nil {
		return "", model.WrapError(model.KindMalformedTransaction, "invalid base64", err)
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return "", model.WrapError(model.KindMalformedTransaction, "failed to decode transaction", err)
	}
	if len(tx.Signatures) == 0 || tx.Signatures[0] == (solana.Signature{}) {
		return "", model.NewError(model.KindMalformedTransaction, "transaction is not signed by its fee payer")
	}

	sig, err := s.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	s.log.WithField("signature", sig.String()).Info("transaction sent")
	return sig.String(), nil
}

// LatestBlockhash returns a finalized blockhash, served from cache while it is fresh
func (s *SolanaSubmitter) LatestBlockhash(ctx context.Context) (string, error) {
	if hash, ok := s.hashes.Get(blockhashKey); ok {
		return hash.(string), nil
	}

	recent, err := s.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	if recent == nil || recent.Value == nil {
		return "", fmt.Errorf("failed to get recent blockhash: empty response")
	}

	hash := recent.Value.Blockhash.String()
	s.hashes.SetDefault(blockhashKey, hash)
	s.log.WithField("slot", recent.Context.Slot).Debug("refreshed blockhash")
	return hash, nil
}

// Invalidate drops the cached blockhash, e.g. after a transaction expired
func (s *SolanaSubmitter) Invalidate() {
	s.hashes.Delete(blockhashKey)
}
