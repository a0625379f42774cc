package sealer

import (
	"errors"
	"slices"
	"testing"
)

const testKey = "lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60="

func TestSealOpen(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		parts []string
	}{
		{"session and user", []string{"0b6a3c1e-5f7d-4c2a-9e2b-2f1f7f0a9c11", "user-42"}},
		{"anonymous user", []string{"0b6a3c1e-5f7d-4c2a-9e2b-2f1f7f0a9c11", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := s.Seal(tt.parts...)
			if err != nil {
				t.Fatalf("Seal: %v", err)
			}
			got, err := s.Open(token, len(tt.parts))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if !slices.Equal(got, tt.parts) {
				t.Errorf("got %v, want %v", got, tt.parts)
			}
		})
	}
}

func TestSeal_TokensDiffer(t *testing.T) {
	s, _ := New(testKey)
	a, _ := s.Seal("x", "y")
	b, _ := s.Seal("x", "y")
	if a == b {
		t.Error("each seal should use a fresh nonce")
	}
}

func TestOpen_Rejects(t *testing.T) {
	s, _ := New(testKey)
	other, _ := New("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=")
	token, _ := s.Seal("session", "user")

	tampered := []byte(token)
	tampered[len(tampered)-1] ^= 1

	tests := []struct {
		name string
		open func() error
	}{
		{"not base64", func() error { _, err := s.Open("%%%", 2); return err }},
		{"too short", func() error { _, err := s.Open("AAAA", 2); return err }},
		{"tampered", func() error { _, err := s.Open(string(tampered), 2); return err }},
		{"wrong key", func() error { _, err := other.Open(token, 2); return err }},
		{"wrong arity", func() error { _, err := s.Open(token, 3); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.open(); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestNew_BadKey(t *testing.T) {
	for _, key := range []string{"%%%", "c2hvcnQ="} {
		if _, err := New(key); err == nil {
			t.Errorf("New(%q) should fail", key)
		}
	}
}
