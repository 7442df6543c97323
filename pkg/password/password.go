package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const algorithmID = "argon2id"

// ErrHashFormat is returned when a stored hash is not a valid PHC string.
// Verify never surfaces it; callers that need the reason use Check.
var ErrHashFormat = errors.New("malformed password hash")

// Params holds the argon2id cost parameters baked into new hashes.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams follows the RFC 9106 low-memory recommendation.
var DefaultParams = Params{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hasher derives and verifies salted argon2id password hashes encoded as
// self-describing PHC strings ($argon2id$v=19$m=..,t=..,p=..$salt$hash).
// It holds no mutable state and is safe for concurrent use.
type Hasher struct {
	params Params
}

func NewHasher(params Params) *Hasher {
	return &Hasher{params: params}
}

// Default returns a hasher with DefaultParams.
func Default() *Hasher {
	return NewHasher(DefaultParams)
}

// Hash derives a hash of password under a fresh random salt. The returned
// string embeds the algorithm, cost parameters, salt and derived key, so it
// can be stored and later verified without side-channel metadata.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	return h.HashWithSalt(password, salt)
}

// HashWithSalt derives a hash of password under the given salt. Output is
// deterministic for a fixed salt and parameter set.
func (h *Hasher) HashWithSalt(password string, salt []byte) (string, error) {
	if len(salt) == 0 {
		return "", errors.New("empty salt")
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		h.params.Time,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether candidate matches the stored hash. The salt and
// cost parameters are taken from the stored string itself, so hashes written
// under older parameter sets keep verifying. Malformed input is a definite
// non-match, never an error.
func (h *Hasher) Verify(encoded, candidate string) bool {
	ok, err := h.Check(encoded, candidate)
	return err == nil && ok
}

// Check is Verify with the failure reason. A format problem in the stored
// hash comes back as ErrHashFormat.
func (h *Hasher) Check(encoded, candidate string) (bool, error) {
	parsed, err := parse(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(candidate),
		parsed.salt,
		parsed.time,
		parsed.memory,
		parsed.parallelism,
		uint32(len(parsed.key)),
	)

	return subtle.ConstantTimeCompare(computed, parsed.key) == 1, nil
}

type parsedHash struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parse(encoded string) (*parsedHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, ErrHashFormat
	}
	if parts[1] != algorithmID {
		return nil, ErrHashFormat
	}

	if !strings.HasPrefix(parts[2], "v=") {
		return nil, ErrHashFormat
	}
	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || version != argon2.Version {
		return nil, ErrHashFormat
	}

	p := &parsedHash{}
	if err := parseCosts(parts[3], p); err != nil {
		return nil, err
	}

	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(p.salt) == 0 {
		return nil, ErrHashFormat
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(p.key) == 0 {
		return nil, ErrHashFormat
	}

	return p, nil
}

func parseCosts(part string, p *parsedHash) error {
	pairs := strings.Split(part, ",")
	if len(pairs) != 3 {
		return ErrHashFormat
	}

	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return ErrHashFormat
		}

		switch kv[0] {
		case "m":
			v, err := strconv.ParseUint(kv[1], 10, 32)
			if err != nil || v == 0 {
				return ErrHashFormat
			}
			p.memory = uint32(v)
		case "t":
			v, err := strconv.ParseUint(kv[1], 10, 32)
			if err != nil || v == 0 {
				return ErrHashFormat
			}
			p.time = uint32(v)
		case "p":
			v, err := strconv.ParseUint(kv[1], 10, 8)
			if err != nil || v == 0 {
				return ErrHashFormat
			}
			p.parallelism = uint8(v)
		default:
			return ErrHashFormat
		}
	}

	if p.memory == 0 || p.time == 0 || p.parallelism == 0 {
		return ErrHashFormat
	}
	return nil
}
