// Package mnemonic generates and validates BIP-39 seed phrases.
package mnemonic

import (
	"fmt"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/tyler-smith/go-bip39"
)

// SeedLen is the length of the seed produced by ToSeed
const SeedLen = 64

// entropyBits maps each supported word count to its entropy size
var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// Generate creates a new random mnemonic with the given number of words
func Generate(length int) (model.MnemonicWords, error) {
	bits, ok := entropyBits[length]
	if !ok {
		return model.MnemonicWords{}, model.Errorf(model.KindInvalidLength,
			"mnemonic length must be one of 12, 15, 18, 21, 24; got %d", length)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return model.MnemonicWords{}, fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return model.MnemonicWords{}, fmt.Errorf("failed to encode mnemonic: %w", err)
	}

	return model.MnemonicFromString(phrase), nil
}

// Validate checks word count, wordlist membership and checksum
func Validate(words model.MnemonicWords) error {
	if _, ok := entropyBits[len(words.Words)]; !ok {
		return model.Errorf(model.KindInvalidMnemonic, "unsupported word count %d", len(words.Words))
	}
	for i, w := range words.Words {
		if _, ok := bip39.GetWordIndex(w); !ok {
			return model.Errorf(model.KindInvalidMnemonic, "word %d is not in the wordlist", i+1)
		}
	}
	entropy, err := bip39.EntropyFromMnemonic(words.Joined())
	if err != nil {
		return model.WrapError(model.KindInvalidMnemonic, "checksum mismatch", err)
	}
	clear(entropy)
	return nil
}

// ToSeed validates the mnemonic and stretches it into a 64-byte seed.
// Caller must zero the returned slice after use.
func ToSeed(words model.MnemonicWords, passphrase string) ([]byte, error) {
	if err := Validate(words); err != nil {
		return nil, err
	}
	return bip39.NewSeed(words.Joined(), passphrase), nil
}
