package serialization

import (
	"crypto/sha256"
	"encoding/hex"
)

// checksumHex returns the hex-encoded SHA-256 of data.
func checksumHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
