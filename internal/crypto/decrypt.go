package crypto

import (
	"encoding/base64"

	"github.com/AlexZinkM/chainkit/internal/model"
)

var errAuthentication = model.NewError(model.KindAuthenticationFailed, "invalid password or corrupted ciphertext")

// DecryptCiphertext opens a payload produced by EncryptPlaintext.
// Every failure is reported as AuthenticationFailed.
// Caller must zero the returned plaintext after use.
func DecryptCiphertext(ciphertext string, password []byte) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil || len(sealed) < minSealedLen {
		// same KDF cost as a wrong password
		_, _ = newGCM(password, make([]byte, saltLen))
		return nil, errAuthentication
	}
	salt := sealed[:saltLen]
	nonce := sealed[saltLen : saltLen+nonceLen]

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return nil, errAuthentication
	}

	plaintext, err := aesGCM.Open(nil, nonce, sealed[saltLen+nonceLen:], nil)
	if err != nil {
		return nil, errAuthentication
	}
	return plaintext, nil
}
