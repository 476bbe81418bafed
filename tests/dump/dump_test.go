package dump

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func testContractState(t *testing.T) state.Contract {
	ne, err := nef.NewFile([]byte{0x40}) // RET
	require.NoError(t, err)

	return state.Contract{
		ContractBase: state.ContractBase{
			ID:       1,
			Hash:     util.Uint160{1},
			NEF:      *ne,
			Manifest: *manifest.NewManifest("Teams Registry"),
		},
	}
}

func teamItem(t *testing.T, issuer util.Uint160, ids ...int64) StorageItem {
	players := make([]stackitem.Item, len(ids))
	for i := range ids {
		players[i] = stackitem.NewBigInteger(big.NewInt(ids[i]))
	}

	b, err := stackitem.Serialize(stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(issuer.BytesBE()),
		stackitem.NewArray(players),
	}))
	require.NoError(t, err)

	return StorageItem{Key: append([]byte{'t'}, issuer.BytesBE()...), Value: b}
}

func testStorage(t *testing.T) []StorageItem {
	return []StorageItem{
		{Key: []byte("c"), Value: bigint.ToBytes(big.NewInt(7))},
		{Key: []byte("d"), Value: []byte("ipfs://QmRoot")},
		{Key: []byte("dlogo"), Value: []byte("ipfs://QmLogo")},
		{Key: []byte("m"), Value: util.Uint160{0xaa}.BytesBE()},
		{Key: []byte("p"), Value: util.Uint160{0xbb}.BytesBE()},
		{Key: []byte("s"), Value: []byte{}},
		teamItem(t, util.Uint160{2}, 20, 21),
		teamItem(t, util.Uint160{1}, 10, 11),
	}
}

func TestDecodeRegistry(t *testing.T) {
	r, err := DecodeRegistry(testStorage(t))
	require.NoError(t, err)

	require.Equal(t, &Registry{
		Manager:         util.Uint160{0xaa},
		ProposedManager: util.Uint160{0xbb},
		Counter:         7,
		Paused:          true,
		Metadata: map[string][]byte{
			"":     []byte("ipfs://QmRoot"),
			"logo": []byte("ipfs://QmLogo"),
		},
		Teams: []Team{
			{Owner: util.Uint160{1}, PlayerIDs: []int64{10, 11}},
			{Owner: util.Uint160{2}, PlayerIDs: []int64{20, 21}},
		},
	}, r)

	t.Run("fresh contract", func(t *testing.T) {
		r, err := DecodeRegistry([]StorageItem{
			{Key: []byte("m"), Value: util.Uint160{0xaa}.BytesBE()},
			{Key: []byte("c"), Value: []byte{}},
		})
		require.NoError(t, err)
		require.Equal(t, &Registry{Manager: util.Uint160{0xaa}}, r)
	})

	t.Run("invalid", func(t *testing.T) {
		for name, items := range map[string][]StorageItem{
			"missing manager": {{Key: []byte("c"), Value: []byte{}}},
			"missing counter": {{Key: []byte("m"), Value: util.Uint160{}.BytesBE()}},
			"unknown key":     append(testStorage(t), StorageItem{Key: []byte("x"), Value: []byte{}}),
			"short manager":   append(testStorage(t), StorageItem{Key: []byte("m"), Value: []byte{1}}),
			"issuer mismatch": append(testStorage(t), StorageItem{
				Key:   append([]byte{'t'}, util.Uint160{3}.BytesBE()...),
				Value: teamItem(t, util.Uint160{4}, 1).Value,
			}),
			"not a team": append(testStorage(t), StorageItem{
				Key:   append([]byte{'t'}, util.Uint160{3}.BytesBE()...),
				Value: []byte{0xff},
			}),
		} {
			_, err := DecodeRegistry(items)
			require.Error(t, err, name)
		}
	})
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()

	d, err := New(ID{Label: "test-net", Block: 42}, testContractState(t), testStorage(t))
	require.NoError(t, err)
	require.NoError(t, Write(dir, d))

	require.Error(t, Write(dir, d), "dump already exists")

	// not dumps
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("dumps"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.json"), 0o700))

	var dumps []*Dump
	require.NoError(t, IterateDumps(dir, func(d *Dump) { dumps = append(dumps, d) }))
	require.Len(t, dumps, 1)

	res := dumps[0]
	require.Equal(t, ID{Label: "test-net", Block: 42}, res.ID)
	require.Equal(t, d.Registry, res.Registry)
	require.Equal(t, d.Storage, res.Storage)
	require.Equal(t, d.Contract.Hash, res.Contract.Hash)
	require.Equal(t, d.Contract.Manifest.Name, res.Contract.Manifest.Name)

	t.Run("registry mismatch", func(t *testing.T) {
		p := filepath.Join(dir, "test-net-42.json")

		b, err := os.ReadFile(p)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(b, &raw))

		d := *res
		d.Registry.Counter++
		raw["registry"], err = json.Marshal(d.Registry)
		require.NoError(t, err)

		b, err = json.Marshal(raw)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(p, b, 0o600))

		_, err = Read(p)
		require.ErrorContains(t, err, "does not match storage")
	})
}

func TestNew_Invalid(t *testing.T) {
	for _, label := range []string{"", "a/b", `a\b`} {
		_, err := New(ID{Label: label, Block: 1}, testContractState(t), testStorage(t))
		require.Error(t, err, label)
	}

	_, err := New(ID{Label: "unit", Block: 1}, testContractState(t), []StorageItem{{Key: []byte("x")}})
	require.Error(t, err)
}

func TestIterateDumps_MissingDir(t *testing.T) {
	var called bool
	err := IterateDumps(filepath.Join(t.TempDir(), "missing"), func(*Dump) { called = true })
	require.NoError(t, err)
	require.False(t, called)
}

func TestParseFileName(t *testing.T) {
	id := ID{Label: "main-net", Block: 1000}
	require.Equal(t, "main-net-1000", id.String())

	res, err := parseFileName(id.fileName())
	require.NoError(t, err)
	require.Equal(t, id, res)

	for _, name := range []string{"mainnet.json", "-10.json", "mainnet-height.json", "mainnet-10.csv"} {
		_, err := parseFileName(name)
		require.Error(t, err, name)
	}
}
