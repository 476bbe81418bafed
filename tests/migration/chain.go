package migration

import (
	"fmt"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/dao"
	"github.com/nspcc-dev/neo-go/pkg/core/native"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/satireball/teams-contract/tests/dump"
	"github.com/stretchr/testify/require"
)

// restoreChain starts single-node test chain with the dumped contract
// deployed and its storage filled.
func restoreChain(tb testing.TB, d *dump.Dump) (*core.Blockchain, neotest.Signer) {
	store := storage.NewMemoryStore()

	err := putContract(store, d)
	require.NoError(tb, err)

	// FIXME: track neo-go#2926. Contracts put into the store are not visible
	// until the chain is run over it once.
	warmUp, _ := chain.NewSingleWithCustomConfigAndStore(tb, nil, nopCloseStore{store}, false)
	go warmUp.Run()
	warmUp.Close()

	return chain.NewSingleWithCustomConfigAndStore(tb, nil, store, true)
}

// putContract writes state and storage of the dumped contract into the store.
func putContract(store storage.Store, d *dump.Dump) error {
	_dao := dao.NewSimple(store, false)

	mgmt := native.NewContracts(config.ProtocolConfiguration{}).Management

	err := mgmt.InitializeCache(0, _dao)
	if err != nil {
		return fmt.Errorf("init contract cache: %w", err)
	}

	cs := d.Contract
	cs.UpdateCounter = 0 // contract could be dumped as already updated

	err = native.PutContractState(_dao, &cs)
	if err != nil {
		return fmt.Errorf("put contract state: %w", err)
	}

	for _, it := range d.Storage {
		_dao.PutStorageItem(cs.ID, it.Key, state.StorageItem(it.Value))
	}

	_, err = _dao.PersistSync()
	if err != nil {
		return fmt.Errorf("persist contract: %w", err)
	}

	return nil
}

// nopCloseStore keeps the store open when the warm-up chain is closed.
type nopCloseStore struct {
	storage.Store
}

func (nopCloseStore) Close() error {
	return nil
}
