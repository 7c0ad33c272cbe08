package model

// BackupFile represents the encrypted key backup file structure
type BackupFile struct {
	Chain      Chain  `json:"chain"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	CipherText string `json:"cipherText"` // base64(salt || nonce || ciphertext)
	CreatedAt  string `json:"createdAt"`
}

// BackupSecret is the plaintext sealed inside a backup file
type BackupSecret struct {
	PrivateKey string `json:"privateKey"` // chain's canonical private key text
	Path       string `json:"path,omitempty"`
}
