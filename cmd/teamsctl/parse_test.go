package main

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/satireball/teams-contract/rpc/teams"
	"github.com/stretchr/testify/require"
)

func TestParsePlayerIDs(t *testing.T) {
	expected := make([]*big.Int, teams.RosterSize)
	for i := range expected {
		expected[i] = big.NewInt(int64(i + 1))
	}

	for _, args := range [][]string{
		{"1,2,3,4,5,6,7,8,9,10,11"},
		{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"},
		{"1,2,3", "4,5,6,7,8", "9, 10, 11,"},
	} {
		ids, err := parsePlayerIDs(args)
		require.NoError(t, err, args)
		require.Equal(t, expected, ids, args)
	}

	_, err := parsePlayerIDs([]string{"1,2,3"})
	require.ErrorIs(t, err, teams.ErrInvalidRosterSize)

	_, err = parsePlayerIDs([]string{"1,2,3,4,5,6,7,8,9,10,-11"})
	require.Error(t, err)

	_, err = parsePlayerIDs([]string{"1,2,3,4,5,6,7,8,9,10,x"})
	require.Error(t, err)
}

func TestParseMetadata(t *testing.T) {
	md, err := parseMetadata(nil)
	require.NoError(t, err)
	require.Nil(t, md)

	md, err = parseMetadata([]string{"=ipfs://QmRoot", "logo=ipfs://QmLogo", "empty="})
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{
		"":      []byte("ipfs://QmRoot"),
		"logo":  []byte("ipfs://QmLogo"),
		"empty": {},
	}, md)

	_, err = parseMetadata([]string{"novalue"})
	require.Error(t, err)

	_, err = parseMetadata([]string{"k=1", "k=2"})
	require.Error(t, err)
}

func TestParseHash160(t *testing.T) {
	h := util.Uint160{1, 2, 3, 4, 5}

	for _, s := range []string{
		address.Uint160ToString(h),
		h.StringLE(),
		"0x" + h.StringLE(),
		" " + h.StringLE() + " ",
	} {
		res, err := parseHash160(s)
		require.NoError(t, err, s)
		require.Equal(t, h, res, s)
	}

	for _, s := range []string{"", "not an address", "0102"} {
		_, err := parseHash160(s)
		require.Error(t, err, s)
	}
}
