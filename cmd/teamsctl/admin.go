package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/satireball/teams-contract/rpc/teams"
	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause team registration (manager only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setPaused(cmd, true)
	},
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "Resume team registration (manager only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setPaused(cmd, false)
	},
}

func setPaused(cmd *cobra.Command, flag bool) error {
	return sendTx(cmd, "set teams paused", func(c *teams.Contract) (util.Uint256, uint32, error) {
		return c.SetTeamsPaused(flag)
	})
}

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Read and update contract metadata",
}

var metadataGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print metadata value",
	Args:  cobra.NoArgs,
	RunE:  runMetadataGet,
}

var metadataSetCmd = &cobra.Command{
	Use:   "set <value>",
	Short: "Update metadata value (manager only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetadataSet,
}

var (
	metadataKey  string
	metadataIPFS bool
)

func init() {
	metadataCmd.PersistentFlags().StringVar(&metadataKey, "key", "", "Metadata key, empty key holds the contract metadata URI")
	metadataSetCmd.Flags().BoolVar(&metadataIPFS, "ipfs", false, "Validate value as IPFS CIDv0 and store it as ipfs:// URI")

	metadataCmd.AddCommand(metadataGetCmd, metadataSetCmd)
}

func runMetadataGet(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	s, err := newReadSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	val, err := s.reader.Metadata(metadataKey)
	if err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	if val == nil {
		return fmt.Errorf("metadata key '%s' is not set", metadataKey)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(val))
	return nil
}

func runMetadataSet(cmd *cobra.Command, args []string) error {
	value := args[0]
	if metadataIPFS {
		var err error
		value, err = ipfsMetadataURI(value)
		if err != nil {
			return err
		}
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	s, err := newWriteSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	h, vub, err := s.contract.UpdateMetadata(metadataKey, []byte(value))
	return s.await(ctx, "update metadata", h, vub, err)
}

var managerCmd = &cobra.Command{
	Use:   "manager",
	Short: "Inspect and transfer the manager role",
}

var managerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the manager and the pending candidate",
	Args:  cobra.NoArgs,
	RunE:  runManagerShow,
}

var managerProposeCmd = &cobra.Command{
	Use:   "propose <candidate>",
	Short: "Propose the manager role to the candidate (manager only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, err := parseHash160(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate: %w", err)
		}

		return sendTx(cmd, "propose manager", func(c *teams.Contract) (util.Uint256, uint32, error) {
			return c.ProposeManager(candidate)
		})
	},
}

var managerAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept the manager role proposed to the wallet account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return sendTx(cmd, "accept manager", (*teams.Contract).AcceptManager)
	},
}

var managerCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the pending manager proposal (manager only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return sendTx(cmd, "cancel proposal", (*teams.Contract).CancelProposal)
	},
}

func init() {
	managerCmd.AddCommand(managerShowCmd, managerProposeCmd, managerAcceptCmd, managerCancelCmd)
}

func runManagerShow(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	s, err := newReadSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	manager, err := s.reader.Manager()
	if err != nil {
		return fmt.Errorf("get manager: %w", err)
	}

	candidate, err := s.reader.ProposedManager()
	if err != nil {
		return fmt.Errorf("get proposed manager: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "manager:  %s\n", address.Uint160ToString(manager))
	if candidate.Equals(util.Uint160{}) {
		fmt.Fprintln(w, "proposed: none")
	} else {
		fmt.Fprintf(w, "proposed: %s\n", address.Uint160ToString(candidate))
	}

	return nil
}

var verifierCmd = &cobra.Command{
	Use:   "verifier",
	Short: "Configure roster verifier contract",
}

var verifierShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the roster verifier contract",
	Args:  cobra.NoArgs,
	RunE:  runVerifierShow,
}

var verifierSetCmd = &cobra.Command{
	Use:   "set <contract>",
	Short: "Set the roster verifier contract (manager only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verifier, err := parseHash160(args[0])
		if err != nil {
			return fmt.Errorf("invalid verifier: %w", err)
		}

		return sendTx(cmd, "set verifier", func(c *teams.Contract) (util.Uint256, uint32, error) {
			return c.SetVerifier(verifier)
		})
	},
}

var verifierClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Disable roster verification (manager only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return sendTx(cmd, "clear verifier", func(c *teams.Contract) (util.Uint256, uint32, error) {
			return c.SetVerifier(util.Uint160{})
		})
	},
}

func init() {
	verifierCmd.AddCommand(verifierShowCmd, verifierSetCmd, verifierClearCmd)
}

func runVerifierShow(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	s, err := newReadSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	v, err := s.reader.Verifier()
	if err != nil {
		return fmt.Errorf("get verifier: %w", err)
	}

	if v.Equals(util.Uint160{}) {
		fmt.Fprintln(cmd.OutOrStdout(), "none")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), v.StringLE())
	}

	return nil
}

// sendTx sends the transaction made by send with the configured account and
// waits for its acceptance.
func sendTx(cmd *cobra.Command, op string, send func(*teams.Contract) (util.Uint256, uint32, error)) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	s, err := newWriteSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	h, vub, err := send(s.contract)
	return s.await(ctx, op, h, vub, err)
}
