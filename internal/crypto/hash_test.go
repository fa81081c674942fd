package crypto

import (
	"strings"
	"testing"
)

// lightParams keeps the tests fast; production uses DefaultHashParams.
func lightParams() HashParams {
	return HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHash_DefaultParamsFormat(t *testing.T) {
	h := NewPasswordHasher(DefaultHashParams())

	hash, err := h.Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("Hash() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("Hash() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("Hash() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("Hash() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerify(t *testing.T) {
	h := NewPasswordHasher(lightParams())

	hash, err := h.Hash("12345")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "correct password", password: "12345", want: true},
		{name: "wrong password", password: "password", want: false},
		{name: "empty password", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Verify(tt.password, hash)
			if err != nil {
				t.Fatalf("Verify() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerify_UsesParamsFromHash(t *testing.T) {
	old := NewPasswordHasher(lightParams())
	hash, err := old.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	current := NewPasswordHasher(DefaultHashParams())
	ok, err := current.Verify("secret", hash)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if !ok {
		t.Error("Verify() should accept hashes written with other parameters")
	}
}

func TestHash_SaltDiffers(t *testing.T) {
	h := NewPasswordHasher(lightParams())

	hash1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	hash2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("Hash() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	h := NewPasswordHasher(lightParams())

	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "garbage", encoded: "invalid-hash-format", wantErr: ErrInvalidHashFormat},
		{name: "wrong algorithm", encoded: "$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "wrong version", encoded: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "empty key", encoded: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$", wantErr: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify("password", tt.encoded)
			if err != tt.wantErr {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
