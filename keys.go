package chainkit

import (
	"context"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/derivation"
	"github.com/AlexZinkM/chainkit/internal/mnemonic"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxDeriveCount bounds how many keys one Derive call returns
const MaxDeriveCount = 1000

// GenerateMnemonic creates a random mnemonic of length words
func (e *Engine) GenerateMnemonic(ctx context.Context, length int) (model.MnemonicWords, error) {
	return offload(ctx, e, "generate_mnemonic", func() (model.MnemonicWords, error) {
		return mnemonic.Generate(length)
	})
}

// MnemonicToSeed validates words and stretches them into the 64-byte master seed.
// Caller must zero the returned slice after use.
func (e *Engine) MnemonicToSeed(ctx context.Context, words model.MnemonicWords, passphrase string) ([]byte, error) {
	return offload(ctx, e, "mnemonic_to_seed", func() ([]byte, error) {
		return mnemonic.ToSeed(words, passphrase)
	})
}

// Derive returns the keys of derivation for chain, ordered by index.
// A custom path or a template without an index yields exactly one key.
func (e *Engine) Derive(ctx context.Context, chain model.Chain, words model.MnemonicWords, passphrase string,
	d model.Derivation) ([]model.DerivedPrivateKey, error) {
	k, err := e.Strategy(chain)
	if err != nil {
		return nil, err
	}
	paths, err := resolvePaths(k, d)
	if err != nil {
		return nil, err
	}

	return offload(ctx, e, "derive", func() ([]model.DerivedPrivateKey, error) {
		seed, err := mnemonic.ToSeed(words, passphrase)
		if err != nil {
			return nil, err
		}
		defer clear(seed)

		keys, err := deriveKeys(ctx, k, seed, paths, cap(e.workers))
		if err != nil {
			return nil, err
		}
		e.log.WithFields(logrus.Fields{"chain": chain, "count": len(keys)}).Debug("derived keys")
		return keys, nil
	})
}

// deriveKeys derives paths in parallel. Nothing derived is kept once ctx ends.
func deriveKeys(ctx context.Context, k Keys, seed []byte, paths []resolvedPath, limit int) ([]model.DerivedPrivateKey, error) {
	keys := make([]model.DerivedPrivateKey, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key, err := k.DeriveKey(seed, p.path)
			if err != nil {
				return err
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			keys[i] = model.DerivedPrivateKey{
				Contents:  key.Contents,
				PublicKey: key.PublicKey,
				Index:     p.index,
				Path:      p.path.String(),
				PathType:  p.pathType,
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		clear(keys)
		return nil, err
	}
	return keys, nil
}

type resolvedPath struct {
	index    uint32
	path     derivation.Path
	pathType model.DerivationPathType
}

func resolvePaths(k Keys, d model.Derivation) ([]resolvedPath, error) {
	if d.Custom != "" {
		path, err := derivation.ParsePath(d.Custom)
		if err != nil {
			return nil, err
		}
		return []resolvedPath{{index: d.Start, path: path}}, nil
	}

	pathType := d.Path
	if pathType == "" {
		pathType = model.PathBip44Change
	}
	tmpl, err := k.Template(pathType)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(tmpl, "{i}") {
		path, err := derivation.ParsePath(tmpl)
		if err != nil {
			return nil, err
		}
		return []resolvedPath{{index: 0, path: path, pathType: pathType}}, nil
	}

	count := d.Count
	if count == 0 {
		count = 1
	}
	if count > MaxDeriveCount {
		return nil, model.Errorf(model.KindUnsupportedDerivation, "at most %d keys can be derived at once, got %d", MaxDeriveCount, count)
	}
	if uint64(d.Start)+uint64(count) > uint64(derivation.HardenedOffset) {
		return nil, model.Errorf(model.KindUnsupportedDerivation, "index range %d+%d overflows the path index", d.Start, count)
	}

	paths := make([]resolvedPath, 0, count)
	for i := d.Start; i < d.Start+count; i++ {
		path, err := derivation.ParsePath(derivation.Expand(tmpl, i))
		if err != nil {
			return nil, err
		}
		paths = append(paths, resolvedPath{index: i, path: path, pathType: pathType})
	}
	return paths, nil
}

// DeriveFromData derives a key from raw seed material instead of a mnemonic
func (e *Engine) DeriveFromData(ctx context.Context, chain model.Chain, data []byte) (*model.ChainPrivateKey, error) {
	k, err := e.Strategy(chain)
	if err != nil {
		return nil, err
	}
	return offload(ctx, e, "derive_from_data", func() (*model.ChainPrivateKey, error) {
		return k.DeriveFromData(data)
	})
}

// RawPrivateKey imports key in one of chain's accepted encodings
func (e *Engine) RawPrivateKey(ctx context.Context, chain model.Chain, key string) (*model.ChainPrivateKey, error) {
	k, err := e.Strategy(chain)
	if err != nil {
		return nil, err
	}
	return offload(ctx, e, "raw_private_key", func() (*model.ChainPrivateKey, error) {
		return k.RawPrivateKey(key)
	})
}

// ParsePrivateKey imports key with the first chain, in registry order, that accepts it
func (e *Engine) ParsePrivateKey(ctx context.Context, key string) (*model.ChainPrivateKey, error) {
	return offload(ctx, e, "parse_private_key", func() (*model.ChainPrivateKey, error) {
		for _, chain := range e.order {
			if parsed, err := e.strategies[chain].RawPrivateKey(key); err == nil {
				return parsed, nil
			}
		}
		return nil, model.NewError(model.KindInvalidKey, "key is not valid for any chain")
	})
}

// ParsePublicKey tags address with the first chain, in registry order, that accepts it
func (e *Engine) ParsePublicKey(address string) (*model.ChainPublicKey, error) {
	address = strings.TrimSpace(address)
	for _, chain := range e.order {
		if e.strategies[chain].IsValid(address) {
			return &model.ChainPublicKey{Contents: address, Chain: chain}, nil
		}
	}
	return nil, model.NewError(model.KindInvalidAddress, "address is not valid for any chain")
}

// IsValid reports whether address is valid on chain. Unknown chains are never valid.
func (e *Engine) IsValid(chain model.Chain, address string) bool {
	k, ok := e.strategies[chain]
	return ok && k.IsValid(address)
}
