package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the sealing key from the secret.
const (
	kdfMemory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	kdfIterations  = 2
	kdfParallelism = 1
	kdfKeyLength   = 32
	kdfSaltLength  = 16
)

var (
	sealSecretOnce sync.Once
	sealSecret     []byte
	sealSecretPath string // Can be set via SetSealSecretPath before first use
)

// SetSealSecretPath configures where to load the sealing secret from.
// This must be called before any seal/open operations. If not set, the
// secret comes from the SIGIL_SEAL_SECRET environment variable.
func SetSealSecretPath(path string) {
	sealSecretPath = path
}

// loadSealSecret loads the sealing secret from either:
// 1. File specified by sealSecretPath (if set)
// 2. SIGIL_SEAL_SECRET environment variable
// 3. Generates a temporary secret for development (NOT for production)
func loadSealSecret() ([]byte, error) {
	if sealSecretPath != "" {
		data, err := os.ReadFile(sealSecretPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read seal secret file: %w", err)
		}
		return data, nil
	}

	if envSecret := os.Getenv("SIGIL_SEAL_SECRET"); envSecret != "" {
		return []byte(envSecret), nil
	}

	// Development fallback - generate ephemeral secret
	// WARNING: This means sealed keyrings won't survive restart in development
	secret := make([]byte, kdfKeyLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate ephemeral seal secret: %w", err)
	}
	return secret, nil
}

// getSealSecret returns the loaded sealing secret, loading it on first use.
func getSealSecret() ([]byte, error) {
	var err error
	sealSecretOnce.Do(func() {
		sealSecret, err = loadSealSecret()
	})
	if err != nil {
		return nil, err
	}
	return sealSecret, nil
}

// SealKeyring encrypts an armored private keyring for storage using
// AES-256-GCM. The output format is: [16-byte salt][12-byte nonce][encrypted
// data][16-byte auth tag]. The cipher key is derived per call with Argon2id
// over a fresh salt, so no two stored rows share key material.
func SealKeyring(plaintext []byte) ([]byte, error) {
	secret, err := getSealSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to get seal secret: %w", err)
	}

	salt := make([]byte, kdfSaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	key := argon2.IDKey(secret, salt, kdfIterations, kdfMemory, kdfParallelism, kdfKeyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// gcm.Seal appends the ciphertext and auth tag after the salt and nonce
	out := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// OpenKeyring decrypts data sealed with SealKeyring.
func OpenKeyring(sealed []byte) ([]byte, error) {
	secret, err := getSealSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to get seal secret: %w", err)
	}

	if len(sealed) < kdfSaltLength {
		return nil, errors.New("sealed keyring too short")
	}
	salt := sealed[:kdfSaltLength]
	key := argon2.IDKey(secret, salt, kdfIterations, kdfMemory, kdfParallelism, kdfKeyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	rest := sealed[kdfSaltLength:]
	if len(rest) < gcm.NonceSize() {
		return nil, errors.New("sealed keyring too short")
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open sealed keyring: %w", err)
	}
	return plaintext, nil
}

// ResetSealSecretForTesting resets the seal secret singleton for testing
// purposes. This should ONLY be used in tests.
func ResetSealSecretForTesting() {
	sealSecretOnce = sync.Once{}
	sealSecret = nil
}
