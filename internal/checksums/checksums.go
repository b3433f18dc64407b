// Package checksums computes the file digests used for catalog lookups.
package checksums

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// Sums holds one file's digests. CRC32 is uppercase hex to match how the
// catalog stores it; MD5 and SHA1 are lowercase hex.
type Sums struct {
	CRC32 string
	MD5   string
	SHA1  string
	Size  int64
}

// File computes CRC32, MD5, and SHA1 for a file in a single streaming pass.
func File(path string) (*Sums, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	crcHash := crc32.NewIEEE()
	md5Hash := md5.New()
	sha1Hash := sha1.New()

	size, err := io.Copy(io.MultiWriter(crcHash, md5Hash, sha1Hash), file)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", path, err)
	}

	return &Sums{
		CRC32: fmt.Sprintf("%08X", crcHash.Sum32()),
		MD5:   hex.EncodeToString(md5Hash.Sum(nil)),
		SHA1:  hex.EncodeToString(sha1Hash.Sum(nil)),
		Size:  size,
	}, nil
}
