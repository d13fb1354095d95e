package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"os"
)

var (
	ErrCryptoDisabled     = errors.New("crypto key not configured")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

var aead cipher.AEAD

// InitCrypto loads CRYPTO_KEY. An empty key leaves encryption disabled; a key
// of the wrong size is a deployment error.
func InitCrypto() bool {
	k := os.Getenv("CRYPTO_KEY")
	if k == "" {
		aead = nil
		return false
	}
	if len(k) != 32 {
		panic("CRYPTO_KEY must be 32 bytes")
	}

	block, err := aes.NewCipher([]byte(k))
	if err != nil {
		panic(err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		panic(err)
	}
	aead = gcm
	return true
}

func CryptoEnabled() bool {
	return aead != nil
}

func Encrypt(text string) (string, error) {
	if aead == nil {
		return "", ErrCryptoDisabled
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, []byte(text), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func Decrypt(encoded string) (string, error) {
	if aead == nil {
		return "", ErrCryptoDisabled
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrCiphertextTooShort
	}
	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
