package migration

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/satireball/teams-contract/rpc/teams"
	"github.com/satireball/teams-contract/tests/dump"
	"github.com/stretchr/testify/require"
)

// Contract is the Teams Registry contract restored from the dump into a test
// chain. It can be updated to the executable compiled from the current source
// code, and its state can be read through the contract API to ensure that
// data is migrated correctly.
//
// Contract instances must be constructed using NewContract.
type Contract struct {
	exec    *neotest.Executor
	invoker *neotest.ContractInvoker

	// metadata can't be listed via API, so only keys from the dump are read
	metadataKeys []string

	rawNEF      []byte
	rawManifest []byte
}

// ContractOptions groups various options of NewContract.
type ContractOptions struct {
	// Path to the directory containing source code of the tested contract.
	// Defaults to '../../contracts/teams'.
	SourceCodeDir string
}

// NewContract restores the dumped contract in a new test chain and compiles
// the executable it is to be updated to.
//
// Update transactions are signed by the committee of the test chain, so it
// must be the manager of the dumped contract for CheckUpdateSuccess. This holds
// for dumps of neotest chains.
func NewContract(tb testing.TB, d *dump.Dump, opts ContractOptions) *Contract {
	bc, committee := restoreChain(tb, d)
	exec := neotest.NewExecutor(tb, bc, committee, committee)

	if opts.SourceCodeDir == "" {
		opts.SourceCodeDir = filepath.Join("..", "..", "contracts", "teams")
	}

	ctr := neotest.CompileFile(tb, exec.CommitteeHash, opts.SourceCodeDir, filepath.Join(opts.SourceCodeDir, "config.yml"))

	rawNEF, err := ctr.NEF.Bytes()
	require.NoError(tb, err)

	rawManifest, err := json.Marshal(ctr.Manifest)
	require.NoError(tb, err)

	keys := make([]string, 0, len(d.Registry.Metadata))
	for k := range d.Registry.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Contract{
		exec:         exec,
		invoker:      exec.NewInvoker(d.Contract.Hash, committee),
		metadataKeys: keys,
		rawNEF:       rawNEF,
		rawManifest:  rawManifest,
	}
}

// CommitteeHash returns the committee account of the test chain signing
// update transactions.
func (x *Contract) CommitteeHash() util.Uint160 {
	return x.exec.CommitteeHash
}

// CheckUpdateSuccess tests that contract update with given arguments succeeds.
func (x *Contract) CheckUpdateSuccess(tb testing.TB, args ...any) {
	x.invoker.Invoke(tb, stackitem.Null{}, "update", x.rawNEF, x.rawManifest, args)
}

// CheckUpdateFail tests that contract update with given arguments fails with
// exact fault exception.
func (x *Contract) CheckUpdateFail(tb testing.TB, faultException string, args ...any) {
	x.invoker.InvokeFail(tb, faultException, "update", x.rawNEF, x.rawManifest, args)
}

// Call tests that calling the contract method with optional arguments succeeds
// and returns single value. Call doesn't change the chain state, so only safe
// methods should be used.
func (x *Contract) Call(tb testing.TB, method string, args ...any) stackitem.Item {
	s, err := x.invoker.TestInvoke(tb, method, args...)
	require.NoError(tb, err, "method '%s'", method)
	require.Equal(tb, 1, s.Len(), "method '%s'", method)

	return s.Pop().Item()
}

// Version returns version of the deployed contract executable.
func (x *Contract) Version(tb testing.TB) int64 {
	n, err := x.Call(tb, "version").TryInteger()
	require.NoError(tb, err)

	return n.Int64()
}

// Registry reads the contract state through its API.
func (x *Contract) Registry(tb testing.TB) *dump.Registry {
	var r dump.Registry

	r.Manager = x.hash(tb, "manager")
	r.ProposedManager = x.hash(tb, "proposedManager")
	r.Verifier = x.hash(tb, "verifier")

	n, err := x.Call(tb, "counter").TryInteger()
	require.NoError(tb, err)
	r.Counter = n.Int64()

	r.Paused, err = x.Call(tb, "teamsPaused").TryBool()
	require.NoError(tb, err)

	for _, k := range x.metadataKeys {
		item := x.Call(tb, "metadata", k)
		if _, ok := item.(stackitem.Null); ok {
			continue
		}

		v, err := item.TryBytes()
		require.NoError(tb, err)

		if r.Metadata == nil {
			r.Metadata = make(map[string][]byte)
		}
		r.Metadata[k] = v
	}

	r.Teams = x.teams(tb)

	return &r
}

// hash calls method returning script hash or nothing. Nothing is returned as
// zero hash.
func (x *Contract) hash(tb testing.TB, method string) util.Uint160 {
	item := x.Call(tb, method)
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}
	}

	b, err := item.TryBytes()
	require.NoError(tb, err)

	h, err := util.Uint160DecodeBytesBE(b)
	require.NoError(tb, err)

	return h
}

// teams lists registered teams sorted by owner like dump.DecodeRegistry does.
func (x *Contract) teams(tb testing.TB) []dump.Team {
	s, err := x.invoker.TestInvoke(tb, "listTeams")
	require.NoError(tb, err)

	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(tb, ok)

	var res []dump.Team
	for iter.Next() {
		var team teams.TeamsTeam
		require.NoError(tb, team.FromStackItem(iter.Value()))
		res = append(res, dump.NewTeam(&team))
	}

	return res
}
