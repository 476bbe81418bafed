package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/satireball/teams-contract/common"
	"github.com/satireball/teams-contract/contracts"
	"github.com/satireball/teams-contract/rpc/teams"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the Teams Registry deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups all parameters of the Teams Registry deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the contract to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It pays for the deployment and must be the contract manager to update it.
	LocalAccount *wallet.Account

	// Compiled contract.
	Contract contracts.Contract

	// Address of the already deployed contract. If set, the contract is updated
	// instead of being deployed. Contract address does not change on update, so
	// it can not be calculated from the new NEF.
	Address util.Uint160

	// Initial manager of the contract. Zero value makes LocalAccount the manager.
	// Ignored on update.
	Manager util.Uint160

	// Initial metadata of the contract. Ignored on update.
	Metadata map[string][]byte
}

// Deploy makes the Teams Registry contract from Prm available on the chain
// and returns its address.
//
// If the contract is missing, it is deployed with the initial manager and
// metadata from Prm. If it already exists and its version is older than the
// one compiled into Prm.Contract, it is updated. Up-to-date contract is left
// untouched.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	addr := prm.Address
	if addr.Equals(util.Uint160{}) {
		addr = prm.Contract.Hash(prm.LocalAccount.ScriptHash())
	}

	l := prm.Logger.With(zap.Stringer("address", addr))

	_, err = prm.Blockchain.GetContractStateByHash(addr)
	if err != nil {
		if !isErrContractNotFound(err) {
			return util.Uint160{}, fmt.Errorf("get contract state: %w", err)
		}

		if !prm.Address.Equals(util.Uint160{}) {
			return util.Uint160{}, fmt.Errorf("contract %s is missing on the chain", addr.StringLE())
		}

		l.Info("contract is missing on the chain, deploying...")

		h, vub, err := management.New(act).Deploy(&prm.Contract.NEF, &prm.Contract.Manifest,
			deployData(prm.Manager, prm.Metadata))
		_, err = teams.Await(ctx, act, h, vub, err)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("deploy contract: %w", err)
		}

		l.Info("contract successfully deployed", zap.Stringer("tx", h))

		return addr, nil
	}

	onChainVersion, err := teams.NewReader(act, addr).Version()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("get version of the contract on the chain: %w", err)
	}

	if onChainVersion.Cmp(bigVersion(common.Version)) >= 0 {
		l.Info("contract is up to date", zap.Stringer("version", onChainVersion))
		return addr, nil
	}

	l.Info("contract version is outdated, updating...",
		zap.Stringer("from", onChainVersion), zap.Int("to", common.Version))

	bNEF, jManifest, err := prm.Contract.Marshal()
	if err != nil {
		return util.Uint160{}, err
	}

	h, vub, err := teams.New(act, addr).Update(bNEF, jManifest, nil)
	_, err = teams.Await(ctx, act, h, vub, err)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("update contract: %w", err)
	}

	l.Info("contract successfully updated", zap.Stringer("tx", h))

	return addr, nil
}

// deployData builds _deploy arguments. Metadata pairs are ordered by key.
func deployData(manager util.Uint160, metadata map[string][]byte) []any {
	var m any
	if !manager.Equals(util.Uint160{}) {
		m = manager
	}

	var md []any
	if len(metadata) > 0 {
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		md = make([]any, 0, 2*len(keys))
		for _, k := range keys {
			md = append(md, []byte(k), metadata[k])
		}
	}

	return []any{m, md}
}

func isErrContractNotFound(err error) bool {
	return errors.Is(err, neorpc.ErrUnknownContract) || strings.Contains(err.Error(), "Unknown contract")
}

func bigVersion(v int) *big.Int {
	return big.NewInt(int64(v))
}
