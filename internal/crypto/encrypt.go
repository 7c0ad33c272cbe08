// Package crypto seals payloads under a password and stores encrypted key backups.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters for payload encryption
// Security is prioritized over performance
//
// N=2^18 (~256MB RAM, 0.5-2s) is the balance point:
//   - still runs on phones (4-16GB RAM) and desktops alike
//   - brute-force attacks remain extremely expensive
//
// Note: N=2^20 (~1GB) fails on mobile due to Android per-app memory limits (~256-512MB)
type kdfParams struct {
	N, R, P int
}

var params = kdfParams{N: 1 << 18, R: 8, P: 1}

var deriveKey = scrypt.Key

const (
	keyLen   = 32
	saltLen  = 32
	nonceLen = 12
	// salt || nonce || GCM tag is the shortest valid payload
	minSealedLen = saltLen + nonceLen + 16
)

// EncryptPlaintext seals plaintext under password and returns base64(salt || nonce || ciphertext).
// password must be []byte for security (caller should zero it after use)
func EncryptPlaintext(plaintext, password []byte) (string, error) {
	// Generate salt and nonce
	buf := make([]byte, saltLen+nonceLen)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt, nonce := buf[:saltLen], buf[saltLen:]

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return "", err
	}

	// Encrypt, appending to salt || nonce
	sealed := aesGCM.Seal(buf, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// newGCM derives the AES-256 key from password and salt
func newGCM(password, salt []byte) (cipher.AEAD, error) {
	key, err := deriveKey(password, salt, params.N, params.R, params.P, keyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
