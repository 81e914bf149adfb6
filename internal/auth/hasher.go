// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. They are fixed so every stored hash stays comparable
// with every other one.
const (
	PBKDF2Iterations = 65_536 // HMAC-SHA-256 rounds
	SaltLength       = 16     // salt length in bytes
	KeyLength        = 32     // derived key length in bytes (256 bits)
)

// hashSeparator joins the salt and key fields of an encoded hash.
const hashSeparator = ":"

// PasswordHasher provides password hashing and verification.
type PasswordHasher interface {
	// Hash produces an encoded salted hash of the password.
	Hash(password string) (string, error)

	// Verify checks if the password matches the encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or an
	// AUTH_MALFORMED_HASH error when the encoded hash cannot be parsed.
	Verify(password, encodedHash string) (bool, error)
}

// PBKDF2Hasher implements PasswordHasher using PBKDF2 with HMAC-SHA-256.
//
// Encoded hashes have the form "<base64 salt>:<base64 key>" using standard,
// padded base64.
type PBKDF2Hasher struct{}

// NewPBKDF2Hasher creates a new PBKDF2Hasher.
func NewPBKDF2Hasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{}
}

// Hash produces an encoded PBKDF2 hash of the password with a random salt.
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", hashingUnavailable("generate salt", err)
	}

	return EncodeHash(salt, deriveKey(password, salt)), nil
}

// Verify checks if the password matches the encoded hash.
func (h *PBKDF2Hasher) Verify(password, encodedHash string) (bool, error) {
	salt, expected, err := DecodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := deriveKey(password, salt)

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

// EncodeHash renders a salt and derived key in the interchange format.
func EncodeHash(salt, key []byte) string {
	return base64.StdEncoding.EncodeToString(salt) + hashSeparator + base64.StdEncoding.EncodeToString(key)
}

// DecodeHash parses an encoded hash into its salt and derived key.
// The value is split at the first separator; a second separator ends up in
// the key field and fails base64 decoding.
func DecodeHash(encodedHash string) (salt, key []byte, err error) {
	saltPart, keyPart, found := strings.Cut(encodedHash, hashSeparator)
	if !found {
		return nil, nil, malformedHash("missing separator")
	}

	salt, err = base64.StdEncoding.DecodeString(saltPart)
	if err != nil {
		return nil, nil, malformedHash("salt is not valid base64")
	}
	if len(salt) == 0 {
		return nil, nil, malformedHash("empty salt")
	}

	key, err = base64.StdEncoding.DecodeString(keyPart)
	if err != nil {
		return nil, nil, malformedHash("key is not valid base64")
	}
	if len(key) != KeyLength {
		return nil, nil, malformedHash("unexpected key length")
	}

	return salt, key, nil
}

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, PBKDF2Iterations, KeyLength, sha256.New)
}
