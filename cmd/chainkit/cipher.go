package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt stdin under a password read from the terminal",
		Long:  "Encrypt stdin under a password read from the terminal. A single trailing newline is dropped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read plaintext: %w", err)
			}
			defer clear(plaintext)
			plaintext = bytes.TrimSuffix(plaintext, []byte("\n"))

			password, err := readNewPassword()
			if err != nil {
				return err
			}
			defer clear(password)

			ciphertext, err := newEngine().EncryptPlaintext(cmd.Context(), plaintext, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
			return nil
		},
	}
}

func newDecryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a payload given as argument or on stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ciphertext string
			if len(args) == 1 {
				ciphertext = args[0]
			} else {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read ciphertext: %w", err)
				}
				ciphertext = strings.TrimSpace(string(raw))
			}

			password, err := readSecret("Password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			plaintext, err := newEngine().DecryptCiphertext(cmd.Context(), ciphertext, password)
			if err != nil {
				return err
			}
			defer clear(plaintext)
			_, err = cmd.OutOrStdout().Write(plaintext)
			return err
		},
	}
}

// readNewPassword asks for a password twice and fails when the entries differ
func readNewPassword() ([]byte, error) {
	password, err := readSecret("New password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := readSecret("Repeat password: ")
	if err != nil {
		clear(password)
		return nil, err
	}
	defer clear(confirm)
	if !bytes.Equal(password, confirm) {
		clear(password)
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}
