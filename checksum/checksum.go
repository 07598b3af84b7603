// Package checksum computes xxh64 content digests for local files. Uploads
// attach the digest as user metadata so a transfer can be verified later
// without re-downloading.
package checksum

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// File returns the xxh64 digest of the file at path as a hex string.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Reader returns the xxh64 digest of everything read from r as a hex
// string.
func Reader(r io.Reader) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
