package crypto

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/scrypt"
)

func TestMain(m *testing.M) {
	// cheap KDF for tests
	params = kdfParams{N: 1 << 10, R: 8, P: 1}
	os.Exit(m.Run())
}

func TestCipherRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"text", []byte("4oMuZhcmihwvCpZXGbPbyXVgBzeo9FTvJRBDrkY52EyR")},
		{"binary", []byte{0, 1, 2, 0xff, 0xfe}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := EncryptPlaintext(tt.plaintext, []byte("pass"))
			require.NoError(t, err)

			opened, err := DecryptCiphertext(sealed, []byte("pass"))
			require.NoError(t, err)
			assert.Equal(t, string(tt.plaintext), string(opened))
		})
	}
}

func TestCipherFreshSaltAndNonce(t *testing.T) {
	a, err := EncryptPlaintext([]byte("same"), []byte("pass"))
	require.NoError(t, err)
	b, err := EncryptPlaintext([]byte("same"), []byte("pass"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptFailures(t *testing.T) {
	sealed, err := EncryptPlaintext([]byte("secret"), []byte("pass"))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 1
	tampered := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name       string
		ciphertext string
		password   string
	}{
		{"wrong password", sealed, "other"},
		{"tampered", tampered, "pass"},
		{"not base64", "%%%", "pass"},
		{"too short", base64.StdEncoding.EncodeToString(make([]byte, 10)), "pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptCiphertext(tt.ciphertext, []byte(tt.password))
			require.Error(t, err)
			assert.True(t, model.IsKind(err, model.KindAuthenticationFailed))
		})
	}
}

func TestDecryptAlwaysDerivesKey(t *testing.T) {
	sealed, err := EncryptPlaintext([]byte("secret"), []byte("pass"))
	require.NoError(t, err)

	derived := 0
	deriveKey = func(password, salt []byte, N, r, p, keyLen int) ([]byte, error) {
		derived++
		return scrypt.Key(password, salt, N, r, p, keyLen)
	}
	t.Cleanup(func() { deriveKey = scrypt.Key })

	for _, ciphertext := range []string{
		sealed,
		"%%%",
		base64.StdEncoding.EncodeToString(make([]byte, 10)),
		"",
	} {
		derived = 0
		_, err := DecryptCiphertext(ciphertext, []byte("other"))
		assert.True(t, model.IsKind(err, model.KindAuthenticationFailed), ciphertext)
		assert.Equal(t, 1, derived, "ciphertext %q", ciphertext)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.ckb")
	secret := &model.BackupSecret{PrivateKey: "key", Path: "m/44'/501'/0'/0'"}

	require.NoError(t, WriteBackup(path, model.ChainSolana, "F7xVyQuLzvyUKbMQyrBHaqYGCzHWpmsocn8b7oRUyeC5", secret, []byte("pass")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, utf8BOM, data[:3])

	address, err := ReadBackupAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "F7xVyQuLzvyUKbMQyrBHaqYGCzHWpmsocn8b7oRUyeC5", address)

	file, got, err := ReadBackup(path, []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, secret, got)
	assert.Equal(t, model.ChainSolana, file.Chain)
	assert.NotEmpty(t, file.QR)

	_, _, err = ReadBackup(path, []byte("wrong"))
	assert.True(t, model.IsKind(err, model.KindAuthenticationFailed))
}

func TestWriteBackupRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.ckb")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	err := WriteBackup(path, model.ChainSolana, "addr", &model.BackupSecret{PrivateKey: "k"}, []byte("pass"))
	require.Error(t, err)
	assert.True(t, IsBackupExistsError(err))
}

func TestWriteBackupExtension(t *testing.T) {
	err := WriteBackup(filepath.Join(t.TempDir(), "wallet.json"), model.ChainSolana, "addr", &model.BackupSecret{}, []byte("pass"))
	require.Error(t, err)
	assert.False(t, IsBackupExistsError(err))
}

func TestRekey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.ckb")
	secret := &model.BackupSecret{PrivateKey: "key"}
	require.NoError(t, WriteBackup(path, model.ChainEthereum, "0xabc", secret, []byte("old")))

	require.Error(t, Rekey(path, []byte("bad"), []byte("new")))
	require.NoError(t, Rekey(path, []byte("old"), []byte("new")))

	_, _, err := ReadBackup(path, []byte("old"))
	assert.True(t, model.IsKind(err, model.KindAuthenticationFailed))

	file, got, err := ReadBackup(path, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, secret, got)
	assert.Equal(t, "0xabc", file.Address)
}
