package teams

import (
	"context"
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/satireball/teams-contract/contracts/teams/teamsconst"
	"github.com/stretchr/testify/require"
)

type testWaiter struct {
	res *state.AppExecResult
	err error
}

func (x testWaiter) WaitAny(context.Context, uint32, ...util.Uint256) (*state.AppExecResult, error) {
	return x.res, x.err
}

func TestAwait(t *testing.T) {
	ctx := context.Background()
	h := util.Uint256{1}

	t.Run("send failure", func(t *testing.T) {
		_, err := Await(ctx, testWaiter{}, h, 0, errors.New("at instruction 3: "+teamsconst.ErrTeamsPaused))
		require.ErrorIs(t, err, ErrTeamsPaused)
	})

	t.Run("wait failure", func(t *testing.T) {
		waitErr := errors.New("timeout")
		_, err := Await(ctx, testWaiter{err: waitErr}, h, 0, nil)
		require.ErrorIs(t, err, waitErr)
	})

	t.Run("fault", func(t *testing.T) {
		res := &state.AppExecResult{Execution: state.Execution{
			VMState:        vmstate.Fault,
			FaultException: teamsconst.ErrNotManager,
		}}
		got, err := Await(ctx, testWaiter{res: res}, h, 0, nil)
		require.ErrorIs(t, err, ErrNotManager)
		require.Equal(t, res, got)
	})

	t.Run("halt", func(t *testing.T) {
		res := &state.AppExecResult{Execution: state.Execution{VMState: vmstate.Halt}}
		got, err := Await(ctx, testWaiter{res: res}, h, 0, nil)
		require.NoError(t, err)
		require.Equal(t, res, got)
	})
}
