package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/config"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/spf13/cobra"
)

func newMnemonicCmd() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a BIP-39 mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := newEngine().GenerateMnemonic(cmd.Context(), length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), words.Joined())
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 12, "number of words (12, 15, 18, 21 or 24)")
	return cmd
}

// derivedAddress is what derive prints unless private keys are requested
type derivedAddress struct {
	Index   uint32 `json:"index"`
	Path    string `json:"path"`
	Address string `json:"address"`
}

func newDeriveCmd() *cobra.Command {
	var (
		chainName   string
		d           model.Derivation
		pathType    string
		showPrivate bool
	)
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive keys from a mnemonic read from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := model.ParseChain(chainName)
			if err != nil {
				return err
			}
			d.Path = model.DerivationPathType(pathType)

			words, err := readMnemonic()
			if err != nil {
				return err
			}
			passphrase, err := readOptionalSecret("Passphrase (empty for none): ")
			if err != nil {
				return err
			}

			keys, err := newEngine().Derive(cmd.Context(), chain, words, passphrase, d)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if showPrivate {
				return enc.Encode(keys)
			}
			out := make([]derivedAddress, len(keys))
			for i, k := range keys {
				out[i] = derivedAddress{Index: k.Index, Path: k.Path, Address: k.PublicKey.Contents}
			}
			return enc.Encode(out)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&chainName, "chain", "c", "solana", "chain: solana, ethereum, bitcoin or tron")
	flags.Uint32Var(&d.Start, "start", 0, "first index")
	flags.Uint32Var(&d.Count, "count", 1, "number of keys")
	flags.StringVar(&pathType, "path", string(model.PathBip44Change), "path template: bip44Root, bip44, bip44Change or deprecated")
	flags.StringVar(&d.Custom, "custom", "", "absolute derivation path, overrides --path")
	flags.BoolVar(&showPrivate, "show-private", false, "print private keys as well as addresses")
	return cmd
}

func readMnemonic() (model.MnemonicWords, error) {
	raw, err := readSecret("Mnemonic: ")
	if err != nil {
		return model.MnemonicWords{}, err
	}
	defer clear(raw)
	return model.MnemonicFromString(strings.ToLower(string(raw))), nil
}

// readOptionalSecret treats an empty entry as an empty value
func readOptionalSecret(prompt string) (string, error) {
	raw, err := readSecret(prompt)
	if err != nil {
		if errors.Is(err, config.ErrEmptyPassword) {
			return "", nil
		}
		return "", err
	}
	defer clear(raw)
	return string(raw), nil
}
