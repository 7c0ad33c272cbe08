package solana

import (
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
)

// maxUserSeeds leaves room for the bump seed
const maxUserSeeds = solana.MaxSeeds - 1

// ProgramAddress finds the canonical program-derived address of seeds under program.
// A seed that parses as a public key contributes its 32 bytes, any other seed its UTF-8 bytes.
func (s *Strategy) ProgramAddress(seeds []string, program string) (string, error) {
	programID, err := allowedProgram(program)
	if err != nil {
		return "", err
	}
	if len(seeds) > maxUserSeeds {
		return "", model.Errorf(model.KindInvalidSeedLength, "at most %d seeds allowed, got %d", maxUserSeeds, len(seeds))
	}

	raw := make([][]byte, 0, len(seeds))
	for _, seed := range seeds {
		if pub, err := solana.PublicKeyFromBase58(seed); err == nil {
			raw = append(raw, pub.Bytes())
			continue
		}
		if len(seed) > solana.MaxSeedLength {
			return "", model.Errorf(model.KindInvalidSeedLength, "seed %q exceeds %d bytes", seed, solana.MaxSeedLength)
		}
		raw = append(raw, []byte(seed))
	}

	address, _, err := findProgramAddress(raw, programID)
	if err != nil {
		return "", err
	}
	return address.String(), nil
}

// AssociatedTokenAddress returns the token account of wallet for mint under ownerProgram
func (s *Strategy) AssociatedTokenAddress(wallet, ownerProgram, mint string) (string, error) {
	walletKey, err := parsePublicKey(wallet)
	if err != nil {
		return "", err
	}
	programID, err := allowedProgram(ownerProgram)
	if err != nil {
		return "", err
	}
	mintKey, err := parsePublicKey(mint)
	if err != nil {
		return "", err
	}

	address, err := associatedTokenAddress(walletKey, programID, mintKey)
	if err != nil {
		return "", err
	}
	return address.String(), nil
}

func associatedTokenAddress(wallet, ownerProgram, mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := findProgramAddress([][]byte{wallet[:], ownerProgram[:], mint[:]}, AssociatedTokenProgramID)
	return address, err
}

// findProgramAddress tries bumps 255 down to 1
func findProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump > 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		address, err := solana.CreateProgramAddress(withBump, programID)
		if err == nil {
			return address, uint8(bump), nil
		}
	}
	return solana.PublicKey{}, 0, model.NewError(model.KindNoValidAddress, "no off-curve program address for seeds")
}

func allowedProgram(program string) (solana.PublicKey, error) {
	programID, err := parsePublicKey(program)
	if err != nil {
		return solana.PublicKey{}, err
	}
	if !isAllowedProgram(programID) {
		return solana.PublicKey{}, model.Errorf(model.KindUnsupportedToken, "program %s is not supported", programID)
	}
	return programID, nil
}
