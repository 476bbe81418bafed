package main

import (
	"crypto/sha256"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func TestIPFSMetadataURI(t *testing.T) {
	digest := sha256.Sum256([]byte("teams"))
	cid := base58.Encode(append([]byte{multihashSHA256, sha256Len}, digest[:]...))

	for _, in := range []string{cid, "ipfs://" + cid, "  " + cid + "\n"} {
		uri, err := ipfsMetadataURI(in)
		require.NoError(t, err, in)
		require.Equal(t, "ipfs://"+cid, uri)
	}

	for _, in := range []string{
		"",
		"ipfs://",
		"not base58 0OIl",
		base58.Encode(digest[:]),                                    // no multihash prefix
		base58.Encode(append([]byte{0x13, sha256Len}, digest[:]...)), // sha2-512 code
		base58.Encode(append([]byte{multihashSHA256, sha256Len}, digest[:16]...)),
	} {
		_, err := ipfsMetadataURI(in)
		require.Error(t, err, in)
	}
}
