package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const separator = "\x1f"

var ErrInvalidToken = errors.New("invalid token")

// Sealer turns a tuple of strings into an opaque, tamper-evident URL-safe token
// using AES-GCM.
type Sealer struct {
	aead cipher.AEAD
}

// New builds a Sealer from a standard base64 AES key of 16, 24 or 32 bytes.
func New(base64Key string) (*Sealer, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seal key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(parts ...string) (string, error) {
	for _, p := range parts {
		if strings.Contains(p, separator) {
			return "", fmt.Errorf("token part contains the separator")
		}
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := s.aead.Seal(nonce, nonce, []byte(strings.Join(parts, separator)), nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// Open verifies token and returns exactly want parts.
func (s *Sealer) Open(token string, want int) ([]string, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	nonceSize := s.aead.NonceSize()
	if len(data) < nonceSize {
		return nil, ErrInvalidToken
	}

	pt, err := s.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	parts := strings.Split(string(pt), separator)
	if len(parts) != want {
		return nil, ErrInvalidToken
	}
	return parts, nil
}
