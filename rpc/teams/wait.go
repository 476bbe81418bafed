package teams

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
)

// Waiter waits for transactions to be accepted by the chain.
// [actor.Actor] implements it.
type Waiter interface {
	WaitAny(ctx context.Context, vub uint32, hashes ...util.Uint256) (*state.AppExecResult, error)
}

// Await waits for the transaction sent by one of the [Contract] methods and
// checks that it is executed successfully. Arguments after w are results of
// the sending method, so it can be used like
//
//	res, err := teams.Await(ctx, act, c.SetTeamsPaused(true))
//
// Contract exceptions are mapped to the package errors, see [ParseFault].
func Await(ctx context.Context, w Waiter, h util.Uint256, vub uint32, err error) (*state.AppExecResult, error) {
	if err != nil {
		return nil, fmt.Errorf("send transaction: %w", Wrap(err))
	}

	res, err := w.WaitAny(ctx, vub, h)
	if err != nil {
		return nil, fmt.Errorf("wait for transaction %s: %w", h.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return res, fmt.Errorf("transaction %s failed: %w", h.StringLE(), ParseFault(res.FaultException))
	}

	return res, nil
}
