package teams

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

type testInvoker struct {
	results map[string]stackitem.Item
	calls   []string
}

func (x *testInvoker) Call(_ util.Uint160, operation string, _ ...any) (*result.Invoke, error) {
	x.calls = append(x.calls, operation)

	item, ok := x.results[operation]
	if !ok {
		return nil, errors.New("unexpected call " + operation)
	}

	return &result.Invoke{
		State: vmstate.Halt.String(),
		Stack: []stackitem.Item{item},
	}, nil
}

func (x *testInvoker) CallAndExpandIterator(util.Uint160, string, int, ...any) (*result.Invoke, error) {
	panic("unexpected call")
}

func (x *testInvoker) TerminateSession(uuid.UUID) error {
	panic("unexpected call")
}

func (x *testInvoker) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	panic("unexpected call")
}

func teamItem(owner util.Uint160, ids ...int64) stackitem.Item {
	players := make([]stackitem.Item, len(ids))
	for i := range ids {
		players[i] = stackitem.Make(ids[i])
	}

	return stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(owner.BytesBE()),
		stackitem.NewArray(players),
	})
}

func TestContractReader(t *testing.T) {
	var (
		owner    = util.Uint160{1, 2, 3}
		manager  = util.Uint160{4, 5, 6}
		verifier = util.Uint160{7, 8, 9}
	)

	inv := &testInvoker{results: map[string]stackitem.Item{
		"counter":         stackitem.Make(5),
		"getTeam":         teamItem(owner, 1, 2, 3),
		"manager":         stackitem.NewByteArray(manager.BytesBE()),
		"metadata":        stackitem.NewByteArray([]byte("ipfs://Qm")),
		"proposedManager": stackitem.Null{},
		"teamsPaused":     stackitem.NewBool(true),
		"verifier":        stackitem.NewByteArray(verifier.BytesBE()),
		"version":         stackitem.Make(2_000),
	}}

	r := NewReader(inv, util.Uint160{})

	counter, err := r.Counter()
	require.NoError(t, err)
	require.EqualValues(t, 5, counter.Int64())

	team, err := r.GetTeam(owner)
	require.NoError(t, err)
	expected := &TeamsTeam{
		Issuer:    owner,
		PlayerIDs: []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
	}
	require.Empty(t, cmp.Diff(expected, team, cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })))

	m, err := r.Manager()
	require.NoError(t, err)
	require.Equal(t, manager, m)

	md, err := r.Metadata("")
	require.NoError(t, err)
	require.Equal(t, []byte("ipfs://Qm"), md)

	pm, err := r.ProposedManager()
	require.NoError(t, err)
	require.Zero(t, pm)

	paused, err := r.TeamsPaused()
	require.NoError(t, err)
	require.True(t, paused)

	v, err := r.Verifier()
	require.NoError(t, err)
	require.Equal(t, verifier, v)

	ver, err := r.Version()
	require.NoError(t, err)
	require.EqualValues(t, 2_000, ver.Int64())

	t.Run("missing metadata", func(t *testing.T) {
		inv.results["metadata"] = stackitem.Null{}
		md, err := r.Metadata("unknown")
		require.NoError(t, err)
		require.Nil(t, md)
	})
}

func TestTeamsTeam_FromStackItem(t *testing.T) {
	var team TeamsTeam

	require.Error(t, team.FromStackItem(stackitem.Make(1)))
	require.Error(t, team.FromStackItem(stackitem.NewStruct([]stackitem.Item{stackitem.Make(1)})))
	require.Error(t, team.FromStackItem(stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray([]byte{1, 2}), // not a script hash
		stackitem.NewArray(nil),
	})))
	require.Error(t, team.FromStackItem(stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(make([]byte, util.Uint160Size)),
		stackitem.NewArray([]stackitem.Item{stackitem.NewArray(nil)}),
	})))

	require.NoError(t, team.FromStackItem(teamItem(util.Uint160{1}, 10, 11)))
	require.Equal(t, util.Uint160{1}, team.Issuer)
	require.Len(t, team.PlayerIDs, 2)
	require.EqualValues(t, 11, team.PlayerIDs[1].Int64())
}

func TestEventsFromApplicationLog(t *testing.T) {
	owner := util.Uint160{1}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "TeamSet", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(owner.BytesBE()), stackitem.Make(3),
				})},
				{Name: "TeamsPausedChanged", Item: stackitem.NewArray([]stackitem.Item{stackitem.NewBool(true)})},
				{Name: "VerifierChanged", Item: stackitem.NewArray([]stackitem.Item{stackitem.NewByteArray(owner.BytesBE())})},
				{Name: "VerifierRemoved", Item: stackitem.NewArray([]stackitem.Item{})},
			},
		}},
	}

	teamSet, err := TeamSetEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, teamSet, 1)
	require.Equal(t, owner, teamSet[0].Owner)
	require.EqualValues(t, 3, teamSet[0].Counter.Int64())

	paused, err := TeamsPausedChangedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, paused, 1)
	require.True(t, paused[0].Paused)

	verifierChanged, err := VerifierChangedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, verifierChanged, 1)
	require.Equal(t, owner, verifierChanged[0].Verifier)

	removed, err := VerifierRemovedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, removed, 1)

	// removal carries no verifier
	err = new(VerifierChangedEvent).FromStackItem(stackitem.NewArray([]stackitem.Item{stackitem.NewByteArray(nil)}))
	require.Error(t, err)
	err = new(VerifierRemovedEvent).FromStackItem(stackitem.NewArray([]stackitem.Item{stackitem.Null{}}))
	require.Error(t, err)

	changed, err := ManagerChangedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, changed)

	_, err = TeamSetEventsFromApplicationLog(nil)
	require.Error(t, err)
}
