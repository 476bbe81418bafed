package migration_test

import (
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/satireball/teams-contract/common"
	"github.com/satireball/teams-contract/contracts/teams/teamsconst"
	"github.com/satireball/teams-contract/tests/dump"
	"github.com/satireball/teams-contract/tests/migration"
	"github.com/stretchr/testify/require"
)

const teamsPath = "../../contracts/teams"

// makeDump deploys the contract into a fresh test chain, fills its state and
// dumps it into dir the way 'teamsctl dump' does.
func makeDump(t *testing.T, dir string) *dump.Dump {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	ctr := neotest.CompileFile(t, e.CommitteeHash, teamsPath, path.Join(teamsPath, "config.yml"))
	e.DeployContract(t, ctr, []any{nil, []any{[]byte(""), []byte("ipfs://QmRoot")}})
	c := e.CommitteeInvoker(ctr.Hash)

	for i := 0; i < 3; i++ {
		owner := c.NewAccount(t)

		ids := make([]any, teamsconst.RosterSize)
		for j := range ids {
			ids[j] = int64(i*100 + j)
		}

		c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setTeam", owner.ScriptHash(), ids)
	}

	c.Invoke(t, stackitem.Null{}, "updateMetadata", "logo", []byte("ipfs://QmLogo"))
	c.Invoke(t, stackitem.Null{}, "setVerifier", util.Uint160{1, 2, 3})
	c.Invoke(t, stackitem.Null{}, "proposeManager", c.NewAccount(t).ScriptHash())
	c.Invoke(t, stackitem.Null{}, "setTeamsPaused", true)

	st := bc.GetContractState(ctr.Hash)
	require.NotNil(t, st)

	var items []dump.StorageItem
	bc.SeekStorage(st.ID, nil, func(k, v []byte) bool {
		items = append(items, dump.StorageItem{
			Key:   append([]byte(nil), k...),
			Value: append([]byte(nil), v...),
		})
		return true
	})

	d, err := dump.New(dump.ID{Label: "unit", Block: bc.BlockHeight()}, *st, items)
	require.NoError(t, err)
	require.NoError(t, dump.Write(dir, d))

	return d
}

func TestTeamsMigration(t *testing.T) {
	dir := t.TempDir()
	made := makeDump(t, dir)

	require.EqualValues(t, 3, made.Registry.Counter)
	require.Len(t, made.Registry.Teams, 3)
	require.True(t, made.Registry.Paused)
	require.Equal(t, util.Uint160{1, 2, 3}, made.Registry.Verifier)
	require.NotZero(t, made.Registry.ProposedManager)
	require.Equal(t, map[string][]byte{
		"":     []byte("ipfs://QmRoot"),
		"logo": []byte("ipfs://QmLogo"),
	}, made.Registry.Metadata)

	var dumps int
	err := dump.IterateDumps(dir, func(d *dump.Dump) {
		dumps++
		t.Run(d.ID.String(), func(t *testing.T) {
			testMigrationFromDump(t, d)
		})
	})
	require.NoError(t, err)
	require.Equal(t, 1, dumps)
}

func testMigrationFromDump(t *testing.T, d *dump.Dump) {
	c := migration.NewContract(t, d, migration.ContractOptions{})

	checkState := func(t *testing.T) {
		require.Empty(t, cmp.Diff(&d.Registry, c.Registry(t), cmpopts.EquateEmpty()))
	}

	checkState(t)

	if !d.Registry.Manager.Equals(c.CommitteeHash()) {
		c.CheckUpdateFail(t, teamsconst.ErrNotManager)
		checkState(t)
		t.Skip("dumped contract is managed by an account unavailable in tests")
	}

	if c.Version(t) == common.Version {
		c.CheckUpdateFail(t, common.ErrAlreadyUpdated)
	} else {
		c.CheckUpdateSuccess(t)
		require.EqualValues(t, common.Version, c.Version(t))
	}

	checkState(t)
}
