package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/skip2/go-qrcode"
)

const backupExt = ".ckb"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BackupExistsError is an error when backup file already exists and is not empty
type BackupExistsError struct {
	Path string
}

func (e *BackupExistsError) Error() string {
	return fmt.Sprintf("backup file %s is not empty", e.Path)
}

// IsBackupExistsError checks if error is BackupExistsError
func IsBackupExistsError(err error) bool {
	var e *BackupExistsError
	return errors.As(err, &e)
}

// WriteBackup encrypts secret and writes it with address metadata to a .ckb file.
// password must be []byte for security (caller should zero it after use)
func WriteBackup(filePath string, chain model.Chain, address string, secret *model.BackupSecret, password []byte) error {
	// Check file extension
	if filepath.Ext(filePath) != backupExt {
		return fmt.Errorf("file must have %s extension", backupExt)
	}

	// Refuse to overwrite a non-empty file
	if info, err := os.Stat(filePath); err == nil && info.Size() > 0 {
		return &BackupExistsError{Path: filePath}
	}

	qr, err := QRCode(address)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(secret)
	if err != nil {
		return fmt.Errorf("failed to marshal backup secret: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	cipherText, err := EncryptPlaintext(plaintext, password)
	if err != nil {
		return fmt.Errorf("failed to encrypt backup: %w", err)
	}

	return writeBackupFile(filePath, &model.BackupFile{
		Chain:      chain,
		Address:    address,
		QR:         qr,
		CipherText: cipherText,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadBackup reads and decrypts a .ckb file.
// Caller must clear the returned secret after use.
func ReadBackup(filePath string, password []byte) (*model.BackupFile, *model.BackupSecret, error) {
	file, err := readBackupFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := DecryptCiphertext(file.CipherText, password)
	if err != nil {
		return nil, nil, err
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var secret model.BackupSecret
	if err := json.Unmarshal(plaintext, &secret); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal backup secret: %w", err)
	}
	return file, &secret, nil
}

// ReadBackupAddress reads only the address from a .ckb file (without decryption)
func ReadBackupAddress(filePath string) (string, error) {
	file, err := readBackupFile(filePath)
	if err != nil {
		return "", err
	}
	return file.Address, nil
}

// Rekey re-encrypts the secret of a backup file under newPassword.
// The address, QR and creation time are kept.
func Rekey(filePath string, oldPassword, newPassword []byte) error {
	file, err := readBackupFile(filePath)
	if err != nil {
		return err
	}

	plaintext, err := DecryptCiphertext(file.CipherText, oldPassword)
	if err != nil {
		return err
	}
	defer clear(plaintext)

	file.CipherText, err = EncryptPlaintext(plaintext, newPassword)
	if err != nil {
		return fmt.Errorf("failed to encrypt backup: %w", err)
	}
	return writeBackupFile(filePath, file)
}

// QRCode renders text as a base64 PNG QR code
func QRCode(text string) (string, error) {
	png, err := QRCodePNG(text, 256)
	if err != nil {
		return "", err
	}
	return common.ToBase64(png), nil
}

// QRCodePNG renders text as a size x size PNG QR code
func QRCodePNG(text string, size int) ([]byte, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

func writeBackupFile(filePath string, file *model.BackupFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	data = append(append([]byte{}, utf8BOM...), data...)

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func readBackupFile(filePath string) (*model.BackupFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("backup file %s does not exist", filePath)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("file is empty")
	}

	// Skip UTF-8 BOM if present
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	var file model.BackupFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal backup file: %w", err)
	}
	return &file, nil
}
