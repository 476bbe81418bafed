package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/satireball/teams-contract/contracts/teams/teamsconst"
	"github.com/stretchr/testify/require"
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// roster returns a full roster of consecutive player IDs starting at first.
func roster(first int64) []any {
	ids := make([]any, teamsconst.RosterSize)
	for i := range ids {
		ids[i] = first + int64(i)
	}
	return ids
}

func appLog(aer *state.AppExecResult) *result.ApplicationLog {
	return &result.ApplicationLog{Executions: []state.Execution{aer.Execution}}
}

func testInvokeInt(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) int64 {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	n, err := s.Pop().Item().TryInteger()
	require.NoError(t, err)
	return n.Int64()
}

