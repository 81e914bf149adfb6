// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package memory

// NewTokenIssuerWithGenerator creates a TokenIssuer with a fixed token source.
func NewTokenIssuerWithGenerator(generate func() string) *TokenIssuer {
	i := NewTokenIssuer()
	i.generate = generate
	return i
}

// HasKey reports whether the issuer holds state under key.
func (i *TokenIssuer) HasKey(key string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.sessions[key]
	return ok
}
