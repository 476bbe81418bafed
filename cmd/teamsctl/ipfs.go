package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	ipfsScheme = "ipfs://"

	// CIDv0 is a base58btc-encoded sha2-256 multihash.
	multihashSHA256 = 0x12
	sha256Len       = 32
)

// ipfsMetadataURI validates IPFS content reference given as CIDv0 with
// optional ipfs:// scheme and returns it as ipfs:// URI.
func ipfsMetadataURI(s string) (string, error) {
	cid := strings.TrimPrefix(strings.TrimSpace(s), ipfsScheme)
	if cid == "" {
		return "", errors.New("empty IPFS reference")
	}

	b, err := base58.Decode(cid)
	if err != nil {
		return "", fmt.Errorf("decode base58 CID: %w", err)
	}

	if len(b) != 2+sha256Len || b[0] != multihashSHA256 || b[1] != sha256Len {
		return "", fmt.Errorf("'%s' is not a CIDv0", cid)
	}

	return ipfsScheme + cid, nil
}
