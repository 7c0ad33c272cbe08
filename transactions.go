package chainkit

import (
	"context"

	"github.com/AlexZinkM/chainkit/internal/model"
)

// ProgramAddress finds the program-derived address of seeds under program
func (e *Engine) ProgramAddress(ctx context.Context, chain model.Chain, seeds []string, program string) (string, error) {
	d, err := capability[AddressDeriver](e, chain, "get_program_address")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "get_program_address", func() (string, error) {
		return d.ProgramAddress(seeds, program)
	})
}

// AssociatedTokenAddress returns the token account of wallet for mint under ownerProgram
func (e *Engine) AssociatedTokenAddress(ctx context.Context, chain model.Chain, wallet, ownerProgram, mint string) (string, error) {
	d, err := capability[AddressDeriver](e, chain, "get_associated_token_address")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "get_associated_token_address", func() (string, error) {
		return d.AssociatedTokenAddress(wallet, ownerProgram, mint)
	})
}

// ParseTransaction decodes tx into the chain-neutral model
func (e *Engine) ParseTransaction(ctx context.Context, chain model.Chain, tx string) (*model.ParsedTransaction, error) {
	c, err := capability[TransactionCodec](e, chain, "parse_transaction")
	if err != nil {
		return nil, err
	}
	return offload(ctx, e, "parse_transaction", func() (*model.ParsedTransaction, error) {
		return c.ParseTransaction(tx)
	})
}

// Serialize re-encodes a parsed transaction byte for byte
func (e *Engine) Serialize(ctx context.Context, parsed *model.ParsedTransaction) (string, error) {
	if parsed == nil {
		return "", model.NewError(model.KindMalformedTransaction, "no transaction")
	}
	c, err := capability[TransactionCodec](e, parsed.Chain, "serialize")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "serialize", func() (string, error) {
		return c.Serialize(parsed)
	})
}

// GetMessage returns the signable payload of tx
func (e *Engine) GetMessage(ctx context.Context, chain model.Chain, tx string) (string, error) {
	c, err := capability[TransactionCodec](e, chain, "get_message")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "get_message", func() (string, error) {
		return c.GetMessage(tx)
	})
}

// GetTransaction wraps a bare message into an unsigned transaction
func (e *Engine) GetTransaction(ctx context.Context, chain model.Chain, message string) (string, error) {
	w, err := capability[MessageWrapper](e, chain, "get_transaction")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "get_transaction", func() (string, error) {
		return w.GetTransaction(message)
	})
}

// ModifyTransaction applies the named overrides of params to tx and returns it unsigned
func (e *Engine) ModifyTransaction(ctx context.Context, chain model.Chain, tx string, owner model.ChainPrivateKey,
	params *model.TransactionParameters) (string, error) {
	c, err := capability[TransactionCodec](e, chain, "modify_transaction")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "modify_transaction", func() (string, error) {
		return c.ModifyTransaction(tx, owner, params)
	})
}

// SendTransaction builds an unsigned native transfer of amount from sender to receiver
func (e *Engine) SendTransaction(ctx context.Context, chain model.Chain, sender, receiver model.ChainPublicKey, amount string,
	params *model.TransactionParameters) (string, error) {
	b, err := capability[TransactionBuilder](e, chain, "send_transaction")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "send_transaction", func() (string, error) {
		return b.SendTransaction(sender, receiver, amount, params)
	})
}

// TokenTransaction builds an unsigned token transfer
func (e *Engine) TokenTransaction(ctx context.Context, chain model.Chain, destination model.TokenDestination,
	owner, token model.ChainPublicKey, kind model.TransactionKind, params *model.TransactionParameters) (string, error) {
	b, err := capability[TransactionBuilder](e, chain, "token_transaction")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "token_transaction", func() (string, error) {
		return b.TokenTransaction(destination, owner, token, kind, params)
	})
}

// AppendSignature places an externally produced signature of signer into tx
func (e *Engine) AppendSignature(ctx context.Context, chain model.Chain, signer model.ChainPublicKey, signature, tx string) (string, error) {
	c, err := capability[TransactionCodec](e, chain, "append_signature_to_transaction")
	if err != nil {
		return "", err
	}
	return offload(ctx, e, "append_signature_to_transaction", func() (string, error) {
		return c.AppendSignature(signer, signature, tx)
	})
}

// Submit broadcasts a signed transaction through the submitter registered for chain
func (e *Engine) Submit(ctx context.Context, chain model.Chain, signedTx string) (string, error) {
	if _, err := e.Strategy(chain); err != nil {
		return "", err
	}
	s, ok := e.submitters[chain]
	if !ok {
		return "", model.Errorf(model.KindUnsupportedOperation, "no submitter is configured for %s", chain)
	}
	id, err := s.Submit(ctx, signedTx)
	if err != nil {
		if ctx.Err() != nil {
			return "", cancelled("submit", ctx.Err())
		}
		return "", err
	}
	e.log.WithField("chain", chain).Info("submitted transaction")
	return id, nil
}
