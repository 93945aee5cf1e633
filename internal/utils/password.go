// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2Algorithm = "argon2id"

// Upper bounds for parameters read back from stored hashes, so a corrupt
// row cannot make verification allocate unbounded memory or spin.
const (
	maxArgon2MemoryKB    uint32 = 1024 * 1024
	maxArgon2Time        uint32 = 16
	maxArgon2Parallelism uint8  = 16
	maxArgon2KeyLength          = 1024
)

// ErrInvalidPasswordHash is returned for stored hashes that are not
// argon2id PHC strings.
var ErrInvalidPasswordHash = errors.New("invalid password hash")

// Argon2Params are the cost parameters written into new hashes. Existing
// hashes are verified with the parameters they carry.
type Argon2Params struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follows the OWASP minimum for argon2id.
var DefaultArgon2Params = Argon2Params{
	Memory:      19 * 1024,
	Time:        2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// HashPassword returns password as an argon2id PHC string:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
func HashPassword(password string, p Argon2Params) (string, error) {
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Algorithm,
		argon2.Version,
		p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether password matches encodedHash. The
// comparison is constant-time.
func VerifyPassword(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2Algorithm {
		return false, ErrInvalidPasswordHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version", ErrInvalidPasswordHash)
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Parallelism); err != nil {
		return false, fmt.Errorf("%w: bad parameters", ErrInvalidPasswordHash)
	}
	if p.Memory == 0 || p.Time == 0 || p.Parallelism == 0 {
		return false, fmt.Errorf("%w: bad parameters", ErrInvalidPasswordHash)
	}
	if p.Memory > maxArgon2MemoryKB || p.Time > maxArgon2Time || p.Parallelism > maxArgon2Parallelism {
		return false, fmt.Errorf("%w: parameters out of range", ErrInvalidPasswordHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: bad salt", ErrInvalidPasswordHash)
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 || len(want) > maxArgon2KeyLength {
		return false, fmt.Errorf("%w: bad key", ErrInvalidPasswordHash)
	}

	got := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
