package main

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/chainkit/internal/config"
	"github.com/AlexZinkM/chainkit/internal/crypto"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	var (
		chainName string
		filePath  string
		index     uint32
		custom    string
	)
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Derive one key and write it to an encrypted backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath == "" {
				filePath = config.GetBackupFilePath()
			}
			if filePath == "" {
				return errors.New("backup file path is not set: use --file or BACKUP_FILE_PATH")
			}
			chain, err := model.ParseChain(chainName)
			if err != nil {
				return err
			}

			words, err := readMnemonic()
			if err != nil {
				return err
			}
			passphrase, err := readOptionalSecret("Passphrase (empty for none): ")
			if err != nil {
				return err
			}
			keys, err := newEngine().Derive(cmd.Context(), chain, words, passphrase,
				model.Derivation{Start: index, Count: 1, Custom: custom})
			if err != nil {
				return err
			}
			key := keys[0]

			password, err := readNewPassword()
			if err != nil {
				return err
			}
			defer clear(password)

			secret := &model.BackupSecret{PrivateKey: key.Contents, Path: key.Path}
			if err := crypto.WriteBackup(filePath, chain, key.PublicKey.Contents, secret, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s backup of %s written to %s\n", chain, key.PublicKey.Contents, filePath)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&chainName, "chain", "c", "solana", "chain: solana, ethereum, bitcoin or tron")
	flags.StringVarP(&filePath, "file", "f", "", "backup file, defaults to BACKUP_FILE_PATH")
	flags.Uint32Var(&index, "index", 0, "account index on the bip44Change template")
	flags.StringVar(&custom, "custom", "", "absolute derivation path, overrides --index")
	return cmd
}

func newRekeyCmd() *cobra.Command {
	var filePath string
	cmd := &cobra.Command{
		Use:   "rekey",
		Short: "Re-encrypt a backup file under a new password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath == "" {
				filePath = config.GetBackupFilePath()
			}
			if filePath == "" {
				return errors.New("backup file path is not set: use --file or BACKUP_FILE_PATH")
			}

			oldPassword, err := readSecret("Current password: ")
			if err != nil {
				return err
			}
			defer clear(oldPassword)
			newPassword, err := readNewPassword()
			if err != nil {
				return err
			}
			defer clear(newPassword)

			if err := crypto.Rekey(filePath, oldPassword, newPassword); err != nil {
				return err
			}
			address, err := crypto.ReadBackupAddress(filePath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backup of %s re-encrypted\n", address)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "backup file, defaults to BACKUP_FILE_PATH")
	return cmd
}
