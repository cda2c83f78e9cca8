package hash

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

func ComputeSHA1(data []byte) string {
	h := sha1.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func ComputeObjectHash(objType string, data []byte) string {
	// Git object format: "type size\0content"
	header := fmt.Sprintf("%s %d\x00", objType, len(data))
	content := append([]byte(header), data...)
	return ComputeSHA1(content)
}

// CommitHash addresses a commit object the way git does: the digest is
// taken over "commit <len>\0<text>", where <len> is the decimal length
// of the unframed text.
func CommitHash(text string) string {
	return ComputeObjectHash("commit", []byte(text))
}

// ValidatePrefix reports whether s is a usable vanity prefix, i.e.
// consists only of lowercase hex digits. The empty prefix is valid and
// matches every hash.
func ValidatePrefix(s string) bool {
	for _, char := range s {
		if !((char >= '0' && char <= '9') || (char >= 'a' && char <= 'f')) {
			return false
		}
	}
	return true
}

func ValidateHash(hash string) bool {
	return len(hash) == 40 && ValidatePrefix(hash)
}

func ShortHash(hash string, length int) string {
	if length <= 0 || length > len(hash) {
		return hash
	}
	return hash[:length]
}
