package security

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	InitializeEncryption("finfit-test-encryption-key-123456")
	m.Run()
	encryptionKey = nil
}

func TestInitializeEncryptionKeyLength(t *testing.T) {
	testCases := []struct {
		name string
		key  string
	}{
		{"Short secret is padded", "dev-key"},
		{"Exact 32-byte secret", "12345678901234567890123456789012"},
		{"Long secret is truncated", "a-production-secret-that-is-well-over-thirty-two-bytes-long"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			InitializeEncryption(tc.key)
			if len(encryptionKey) != 32 {
				t.Errorf("Expected 32-byte key, got %d bytes", len(encryptionKey))
			}
		})
	}

	InitializeEncryption("finfit-test-encryption-key-123456")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	// The shapes Plaid actually hands out per environment.
	tokens := []struct {
		name  string
		token string
	}{
		{"Sandbox token", "access-sandbox-4f1a2b3c-5d6e-7f80-91a2-b3c4d5e6f708"},
		{"Production token", "access-production-8e7d6c5b-4a39-2817-0605-f4e3d2c1b0a9"},
		{"Empty token", ""},
	}

	for _, tc := range tokens {
		t.Run(tc.name, func(t *testing.T) {
			encrypted, err := Encrypt(tc.token)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}

			// What lands in the onboarding table must not leak the token.
			if tc.token != "" && strings.Contains(encrypted, tc.token) {
				t.Error("Encrypted value contains the plaintext token")
			}

			decrypted, err := Decrypt(encrypted)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if decrypted != tc.token {
				t.Errorf("Expected token %q after round trip, got %q", tc.token, decrypted)
			}
		})
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	// Two users linking the same sandbox item must not produce equal rows;
	// a fresh nonce per call guarantees that.
	token := "access-sandbox-4f1a2b3c-5d6e-7f80-91a2-b3c4d5e6f708"

	first, err := Encrypt(token)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Encrypt(token)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("Expected distinct ciphertexts for repeated encryptions")
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	encrypted, err := Encrypt("access-sandbox-4f1a2b3c-5d6e-7f80-91a2-b3c4d5e6f708")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := Decrypt(tampered); err == nil {
		t.Error("Expected error for tampered ciphertext, got nil")
	}
}

func TestDecryptRejectsGarbage(t *testing.T) {
	if _, err := Decrypt("not-base64"); err == nil {
		t.Error("Expected error for invalid base64, got nil")
	}

	// Valid base64 but shorter than a GCM nonce.
	if _, err := Decrypt(base64.StdEncoding.EncodeToString([]byte("short"))); err == nil {
		t.Error("Expected error for truncated ciphertext, got nil")
	}
}

func TestUninitializedKey(t *testing.T) {
	originalKey := encryptionKey
	encryptionKey = nil
	defer func() { encryptionKey = originalKey }()

	if _, err := Encrypt("access-sandbox-token"); err == nil {
		t.Error("Expected error encrypting without a key, got nil")
	}
	if _, err := Decrypt("whatever"); err == nil {
		t.Error("Expected error decrypting without a key, got nil")
	}
}
