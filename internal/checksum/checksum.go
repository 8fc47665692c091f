// Package checksum computes a whole-file digest used to skip
// re-ingesting a CWR file already recorded in the database. Two
// interchangeable strategies are kept side by side, exactly as the
// teacher's pkg/checksum/{xxhash,sha256}.go does.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// FileXXHash returns the hex-encoded xxHash64 digest of the file at
// filePath — the default strategy, favoring speed over collision
// resistance for large CWR batches.
func FileXXHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash file %s: %w", filePath, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// FileSHA256 returns the hex-encoded SHA-256 digest of the file at
// filePath — a cryptographically stronger alternative to FileXXHash for
// callers that need collision resistance over raw throughput.
func FileSHA256(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash file %s: %w", filePath, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
