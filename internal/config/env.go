package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Passwords are never configured; the CLI reads them with ReadPassword.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	SolanaRPCURL   string        `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"text"`
	LogFile        string        `envconfig:"LOG_FILE"`
	LogMaxAge      time.Duration `envconfig:"LOG_MAX_AGE" default:"168h"`
	CORSOrigins    []string      `envconfig:"CORS_ALLOWED_ORIGINS"`
	WorkerLimit    int           `envconfig:"WORKER_LIMIT" default:"8"`
	BlockhashTTL   time.Duration `envconfig:"BLOCKHASH_TTL" default:"30s"`
	BackupFilePath string        `envconfig:"BACKUP_FILE_PATH"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.WorkerLimit < 1 {
		return fmt.Errorf("WORKER_LIMIT must be positive, got %d", c.WorkerLimit)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetWorkerLimit returns the number of concurrent CPU-bound jobs
func GetWorkerLimit() int {
	return Get().WorkerLimit
}

// GetBlockhashTTL returns how long a fetched blockhash is reused
func GetBlockhashTTL() time.Duration {
	return Get().BlockhashTTL
}

// GetCORSOrigins returns origins allowed to call the HTTP API from a browser
func GetCORSOrigins() []string {
	return Get().CORSOrigins
}

// GetBackupFilePath returns path to the key backup file
func GetBackupFilePath() string {
	return Get().BackupFilePath
}

// ErrEmptyPassword is returned when the terminal entry is empty
var ErrEmptyPassword = errors.New("password cannot be empty")

// ReadPassword reads one hidden line from the terminal.
// Caller must zero the returned slice after use.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyPassword
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
