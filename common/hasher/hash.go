/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package hasher produces digests used to refer to secrets in logs without
// writing the secret itself
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

type Hasher struct {
	bytes []byte // raw bytes returned by the hash function
}

func New() *Hasher {
	return &Hasher{}
}

// SHA256String hashes s
func (h *Hasher) SHA256String(s string) *Hasher {
	sum := sha256.Sum256([]byte(s))
	h.bytes = sum[:]
	return h
}

func (h *Hasher) Hex() string {
	return hex.EncodeToString(h.bytes)
}

// Fingerprint is a short, stable identifier for a token. Empty input gives "".
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	return New().SHA256String(token).Hex()[:12]
}
