// Package security encrypts aggregator access tokens before they are
// written to the durable onboarding store. Tokens are the only secret this
// service persists; everything else in a record is plain profile data.
package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var encryptionKey []byte

// InitializeEncryption derives the AES-256 key from the configured secret.
// Called once at startup; shorter secrets are zero-padded, longer ones
// truncated, so the key is always 32 bytes.
func InitializeEncryption(key string) {
	if len(key) < 32 {
		padding := make([]byte, 32-len(key))
		key = key + string(padding)
	}
	encryptionKey = []byte(key[:32])
}

// Encrypt seals a token with AES-GCM and returns it base64-encoded, ready
// for a text column. The random nonce is prepended to the ciphertext.
func Encrypt(plaintext string) (string, error) {
	if len(encryptionKey) == 0 {
		return "", errors.New("encryption key not initialized")
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. GCM authenticates the ciphertext, so a stored
// value that was tampered with fails here instead of yielding garbage.
func Decrypt(encrypted string) (string, error) {
	if len(encryptionKey) == 0 {
		return "", errors.New("encryption key not initialized")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertext = ciphertext[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
