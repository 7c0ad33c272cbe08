// Command chainkit derives keys, builds and signs transactions for several chains,
// and serves the same operations over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlexZinkM/chainkit"
	"github.com/AlexZinkM/chainkit/internal/client"
	"github.com/AlexZinkM/chainkit/internal/config"
	"github.com/AlexZinkM/chainkit/internal/logging"

	"github.com/spf13/cobra"
)

// readSecret reads a hidden line from the terminal. Tests replace it.
var readSecret = config.ReadPassword

// @title        ChainKit API
// @version      1.0
// @description  Multi-chain key derivation, transaction building and signing engine.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chainkit",
		Short:         "Multi-chain key and transaction toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			cfg := config.Get()
			logging.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if cfg.LogFile != "" {
				return logging.AddFileHook(cfg.LogFile, cfg.LogMaxAge)
			}
			return nil
		},
	}
	root.AddCommand(
		newServeCmd(),
		newMnemonicCmd(),
		newDeriveCmd(),
		newEncryptCmd(),
		newDecryptCmd(),
		newBackupCmd(),
		newRekeyCmd(),
	)
	return root
}

// newEngine builds an engine from the loaded configuration
func newEngine() *chainkit.Engine {
	cfg := config.Get()
	return chainkit.New(
		chainkit.WithLogger(logging.Component("engine")),
		chainkit.WithWorkerLimit(cfg.WorkerLimit),
		chainkit.WithSubmitter(client.NewSolanaSubmitter(cfg.SolanaRPCURL, cfg.BlockhashTTL, logging.Component("solana-rpc"))),
	)
}
