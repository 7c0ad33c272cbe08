package chainkit

import (
	"context"

	"github.com/AlexZinkM/chainkit/internal/crypto"
	"github.com/AlexZinkM/chainkit/internal/model"
)

// SignTransaction signs tx with signers
func (e *Engine) SignTransaction(ctx context.Context, chain model.Chain, tx string, signers []model.ChainPrivateKey,
	params *model.TransactionParameters) (*model.ChainTransaction, error) {
	c, err := capability[TransactionCodec](e, chain, "sign_transaction")
	if err != nil {
		return nil, err
	}
	if len(signers) == 0 {
		return nil, model.NewError(model.KindEmptySignerSet, "no signers")
	}
	return offload(ctx, e, "sign_transaction", func() (*model.ChainTransaction, error) {
		return c.SignTransaction(tx, signers, params)
	})
}

// SignMessage signs a free-form message
func (e *Engine) SignMessage(ctx context.Context, chain model.Chain, message string, signers []model.ChainPrivateKey) (string, error) {
	s, err := capability[MessageSigner](e, chain, "sign_message")
	if err != nil {
		return "", err
	}
	if len(signers) == 0 {
		return "", model.NewError(model.KindEmptySignerSet, "no signers")
	}
	return offload(ctx, e, "sign_message", func() (string, error) {
		return s.SignMessage(message, signers)
	})
}

// VerifyMessage reports whether signature over message was produced by address's key
func (e *Engine) VerifyMessage(ctx context.Context, chain model.Chain, address, message, signature string) (bool, error) {
	v, err := capability[MessageVerifier](e, chain, "verify_message")
	if err != nil {
		return false, err
	}
	return offload(ctx, e, "verify_message", func() (bool, error) {
		return v.VerifyMessage(address, message, signature)
	})
}

// SignTypedData signs a structured payload through the chain's typed-data digest
func (e *Engine) SignTypedData(ctx context.Context, chain model.Chain, typedData string, signers []model.ChainPrivateKey) (string, error) {
	s, err := capability[TypedDataSigner](e, chain, "sign_typed_data")
	if err != nil {
		return "", err
	}
	if len(signers) == 0 {
		return "", model.NewError(model.KindEmptySignerSet, "no signers")
	}
	return offload(ctx, e, "sign_typed_data", func() (string, error) {
		return s.SignTypedData(typedData, signers)
	})
}

// EncryptPlaintext seals plaintext under password
func (e *Engine) EncryptPlaintext(ctx context.Context, plaintext, password []byte) (string, error) {
	return offload(ctx, e, "encrypt_plaintext", func() (string, error) {
		return crypto.EncryptPlaintext(plaintext, password)
	})
}

// DecryptCiphertext opens a payload sealed by EncryptPlaintext.
// Every failure is AuthenticationFailed.
func (e *Engine) DecryptCiphertext(ctx context.Context, ciphertext string, password []byte) ([]byte, error) {
	return offload(ctx, e, "decrypt_ciphertext", func() ([]byte, error) {
		return crypto.DecryptCiphertext(ciphertext, password)
	})
}
