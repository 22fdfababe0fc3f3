package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainAccounts separates account store digests from any other hash.
const DomainAccounts = "codelog/accounts/v1"

// Digest returns a stable SHA-256 digest of the canonical encoding of
// accounts. Two stores with equal contents always share a digest.
//
// Format: SHA256(domain + 0x00 + canonical JSON)
func Digest(accounts Accounts) (string, error) {
	data, err := EncodeAccounts(accounts)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(DomainAccounts))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
