// Package solana implements the ed25519 Solana strategy: keys, program addresses,
// transaction building, partial signing and message signing.
package solana

import (
	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
)

var (
	// SPL Token program
	TokenProgramID = solana.TokenProgramID
	// Token-2022 program
	Token2022ProgramID = solana.Token2022ProgramID
	// Invite escrow program
	InviteProgramID = solana.MustPublicKeyFromBase58("inv1tEtSwRMtM44tbvJGNiTxMvDfPVnX9StyqXfDfks")

	AssociatedTokenProgramID = solana.SPLAssociatedTokenAccountProgramID
	ComputeBudgetProgramID   = solana.ComputeBudget
	MemoProgramID            = solana.MemoProgramID
	JupiterProgramID         = solana.MustPublicKeyFromBase58("JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4")
)

// lamportsPerSignature is the base fee charged per required signature
const lamportsPerSignature = 5000

// allowedPrograms are the owner programs accepted for token accounts and program addresses
var allowedPrograms = solana.PublicKeySlice{TokenProgramID, Token2022ProgramID, InviteProgramID}

var templates = map[model.DerivationPathType]string{
	model.PathBip44Root:   "m/44'/501'",
	model.PathBip44:       "m/44'/501'/{i}'",
	model.PathBip44Change: "m/44'/501'/{i}'/0'",
	model.PathDeprecated:  "m/501'/{i}'/0'/0'",
}

// Strategy is the Solana chain strategy. It holds no per-call state.
type Strategy struct {
	log *logrus.Entry
}

// New creates the Solana strategy. A nil log uses the process logger.
func New(log *logrus.Entry) *Strategy {
	if log == nil {
		log = logging.Component("solana")
	}
	return &Strategy{log: log}
}

func (s *Strategy) Chain() model.Chain {
	return model.ChainSolana
}

func (s *Strategy) Curve() model.Curve {
	return model.CurveEd25519
}

// Template returns the path template for pathType. Every template is fully hardened.
func (s *Strategy) Template(pathType model.DerivationPathType) (string, error) {
	if pathType == "" {
		pathType = model.PathBip44Change
	}
	t, ok := templates[pathType]
	if !ok {
		return "", model.Errorf(model.KindUnsupportedDerivation, "unknown path type %q", pathType)
	}
	return t, nil
}

func isAllowedProgram(program solana.PublicKey) bool {
	return allowedPrograms.Contains(program)
}

func publicKey(key solana.PublicKey) model.ChainPublicKey {
	return model.ChainPublicKey{Contents: key.String(), Chain: model.ChainSolana}
}
