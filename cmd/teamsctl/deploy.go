package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/satireball/teams-contract/contracts"
	"github.com/satireball/teams-contract/deploy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	contractSrcDir      string
	contractArtifactDir string
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the contract and save NEF and manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if contractArtifactDir == "" {
			return errors.New("missing output directory, use --out")
		}

		c, err := contracts.Compile(contractSrcDir)
		if err != nil {
			return err
		}

		err = contracts.WriteDir(contractArtifactDir, c)
		if err != nil {
			return fmt.Errorf("save contract: %w", err)
		}

		logger.Info("contract compiled",
			zap.String("name", c.Manifest.Name), zap.String("dir", contractArtifactDir))
		return nil
	},
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the contract or update the deployed one",
	Long: `Deploy the contract from the wallet account or update the deployed one.

The contract is read from artifacts directory (--artifacts) or compiled from
source (--src). If --contract is set, the referenced contract is updated, the
wallet account must be its manager. Otherwise the contract is deployed unless
already deployed by the same account.`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

var (
	deployManager  string
	deployMetadata []string
)

func init() {
	compileCmd.Flags().StringVar(&contractSrcDir, "src", "contracts/teams", "Contract source directory")
	compileCmd.Flags().StringVar(&contractArtifactDir, "out", "", "Output directory for contract.nef and manifest.json")

	deployCmd.Flags().StringVar(&contractSrcDir, "src", "contracts/teams", "Contract source directory")
	deployCmd.Flags().StringVar(&contractArtifactDir, "artifacts", "", "Directory with contract.nef and manifest.json, overrides --src")
	deployCmd.Flags().StringVar(&deployManager, "manager", "", "Initial manager (wallet account by default)")
	deployCmd.Flags().StringArrayVar(&deployMetadata, "metadata", nil, "Initial metadata as key=value, repeatable")
}

// parseMetadata parses key=value pairs. Key may be empty.
func parseMetadata(pairs []string) (map[string][]byte, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	res := make(map[string][]byte, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("metadata '%s' is not a key=value pair", p)
		}
		if _, ok = res[k]; ok {
			return nil, fmt.Errorf("duplicated metadata key '%s'", k)
		}
		res[k] = []byte(v)
	}

	return res, nil
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	metadata, err := parseMetadata(deployMetadata)
	if err != nil {
		return err
	}

	var manager util.Uint160
	if deployManager != "" {
		manager, err = parseHash160(deployManager)
		if err != nil {
			return fmt.Errorf("invalid manager: %w", err)
		}
	}

	var c contracts.Contract
	if contractArtifactDir != "" {
		c, err = contracts.ReadDir(contractArtifactDir)
	} else {
		c, err = contracts.Compile(contractSrcDir)
	}
	if err != nil {
		return err
	}

	var existing util.Uint160
	if cfg.Contract != "" {
		existing, err = contractAddress()
		if err != nil {
			return err
		}
	}

	acc, err := openAccount()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	rpc, err := dialRPC(ctx)
	if err != nil {
		return err
	}
	defer rpc.Close()

	addr, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:       logger,
		Blockchain:   rpc,
		LocalAccount: acc,
		Contract:     c,
		Address:      existing,
		Manager:      manager,
		Metadata:     metadata,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), addr.StringLE())
	return nil
}
