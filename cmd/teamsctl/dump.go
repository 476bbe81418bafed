package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/satireball/teams-contract/tests/dump"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dumpLabel string
	dumpDir   string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump state and storage of the deployed contract",
	Long: `Dump state and storage of the deployed contract into the directory in the
format used by migration tests. Storage is read at the state root of the
penultimate block, so the RPC node must have state root service enabled.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpLabel, "label", "", "Label of the blockchain environment (e.g. 'testnet')")
	dumpCmd.Flags().StringVar(&dumpDir, "out", "testdata", "Output directory")
}

func runDump(cmd *cobra.Command, _ []string) error {
	if dumpLabel == "" {
		return errors.New("missing blockchain label")
	}

	addr, err := contractAddress()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	c, err := dialRPC(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	err = os.MkdirAll(dumpDir, 0700)
	if err != nil {
		return fmt.Errorf("create root dir: %w", err)
	}

	n, err := dumpContract(c, addr, dumpDir, dumpLabel)
	if err != nil {
		return err
	}

	logger.Info("contract successfully dumped",
		zap.String("dir", dumpDir), zap.Int("storage items", n))
	return nil
}

// dumpContract writes state and storage of the contract into a new dump and
// returns number of dumped storage items.
func dumpContract(c *rpcclient.Client, addr util.Uint160, rootDir, label string) (int, error) {
	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get number of the latest block: %w", err)
	}
	if nLatestBlock < 2 {
		return 0, errors.New("blockchain has no persisted state roots yet")
	}

	contractState, err := c.GetContractStateByHash(addr)
	if err != nil {
		return 0, fmt.Errorf("get state of the contract '%s': %w", addr.StringLE(), err)
	}

	var items []dump.StorageItem
	err = iterateContractStorage(c, nLatestBlock-1, addr, func(key, value []byte) error {
		items = append(items, dump.StorageItem{Key: key, Value: value})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("iterate contract storage: %w", err)
	}

	d, err := dump.New(dump.ID{Label: label, Block: nLatestBlock}, *contractState, items)
	if err != nil {
		return 0, fmt.Errorf("make dump of the contract '%s': %w", addr.StringLE(), err)
	}

	err = dump.Write(rootDir, d)
	if err != nil {
		return 0, err
	}

	logger.Debug("registry dumped",
		zap.Stringer("manager", d.Registry.Manager),
		zap.Int64("counter", d.Registry.Counter),
		zap.Int("teams", len(d.Registry.Teams)))

	return len(items), nil
}

// iterateContractStorage iterates over all storage items of the Neo smart
// contract referenced by given address at the given height and passes them
// into f. iterateContractStorage breaks on any f's error and returns it.
func iterateContractStorage(c *rpcclient.Client, height uint32, contract util.Uint160, f func(key, value []byte) error) error {
	stateRoot, err := c.GetStateRootByHeight(height)
	if err != nil {
		return fmt.Errorf("get state root at block #%d: %w", height, err)
	}

	var start []byte

	for {
		res, err := c.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
