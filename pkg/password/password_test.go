package password

import (
	"strings"
	"testing"
)

// Small cost parameters keep the test suite fast; the format and verify
// logic is identical at any cost level.
var testParams = Params{
	Memory:      8 * 1024,
	Time:        1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestHashVerifyRoundTrip(t *testing.T) {
	h := NewHasher(testParams)

	passwords := []string{"s3cret", "", "correct horse battery staple", "päss wörd"}
	for _, p := range passwords {
		encoded, err := h.Hash(p)
		if err != nil {
			t.Fatalf("Hash(%q) failed: %v", p, err)
		}
		if !strings.HasPrefix(encoded, "$argon2id$") {
			t.Errorf("Hash(%q) = %q, not a PHC string", p, encoded)
		}
		if !h.Verify(encoded, p) {
			t.Errorf("Verify rejected the password it was derived from (%q)", p)
		}
		if h.Verify(encoded, p+"x") {
			t.Errorf("Verify accepted a wrong password for %q", p)
		}
	}
}

func TestHashFreshSaltEachCall(t *testing.T) {
	h := NewHasher(testParams)

	first, err := h.Hash("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.Hash("s3cret")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("two Hash calls produced identical output; salt is not fresh")
	}
	if !h.Verify(first, "s3cret") || !h.Verify(second, "s3cret") {
		t.Error("both hashes should verify against the original password")
	}
}

func TestHashWithSaltDeterministic(t *testing.T) {
	h := NewHasher(testParams)
	salt := []byte("0123456789abcdef")

	first, err := h.HashWithSalt("s3cret", salt)
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.HashWithSalt("s3cret", salt)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("same salt produced different hashes:\n%s\n%s", first, second)
	}
}

func TestHashWithSaltEmptySalt(t *testing.T) {
	h := NewHasher(testParams)
	if _, err := h.HashWithSalt("s3cret", nil); err == nil {
		t.Error("expected error for empty salt")
	}
}

func TestVerifyParamsFromStoredHash(t *testing.T) {
	// A hash written under one parameter set must keep verifying after the
	// hasher's parameters change.
	old := NewHasher(testParams)
	encoded, err := old.Hash("s3cret")
	if err != nil {
		t.Fatal(err)
	}

	upgraded := testParams
	upgraded.Time = 2
	if !NewHasher(upgraded).Verify(encoded, "s3cret") {
		t.Error("hash written under old parameters no longer verifies")
	}
}

func TestVerifyMalformedHashFailsClosed(t *testing.T) {
	h := NewHasher(testParams)

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"short", "$2a$10$abc"},
		{"wrong algorithm", "$scrypt$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA"},
		{"missing costs", "$argon2id$v=19$m=8192,t=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA"},
		{"zero cost", "$argon2id$v=19$m=8192,t=0,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
		{"bad key encoding", "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$!!!"},
		{"plaintext", "not a hash at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h.Verify(tt.encoded, "s3cret") {
				t.Errorf("Verify(%q) = true, want false", tt.encoded)
			}
			if _, err := h.Check(tt.encoded, "s3cret"); err != ErrHashFormat {
				t.Errorf("Check(%q) error = %v, want ErrHashFormat", tt.encoded, err)
			}
		})
	}
}
