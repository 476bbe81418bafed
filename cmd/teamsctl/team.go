package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/satireball/teams-contract/rpc/teams"
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Register and inspect teams",
}

var teamGetCmd = &cobra.Command{
	Use:   "get [owner]",
	Short: "Print the team registered by the owner (wallet account by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTeamGet,
}

var teamSetCmd = &cobra.Command{
	Use:   "set <player IDs...>",
	Short: "Register the team of the wallet account",
	Long: `Register the team of the wallet account replacing the previous one.

Player IDs are passed as separate arguments or as comma-separated list, e.g.

  teamsctl team set 1,2,3,4,5,6,7,8,9,10,11`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTeamSet,
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all registered teams",
	Args:  cobra.NoArgs,
	RunE:  runTeamList,
}

var teamListMax int

func init() {
	teamListCmd.Flags().IntVar(&teamListMax, "max", 100, "Maximum number of teams to print")

	teamCmd.AddCommand(teamGetCmd, teamSetCmd, teamListCmd)
}

// parsePlayerIDs parses natural-number player IDs from arguments. Each argument
// may hold a comma-separated list.
func parsePlayerIDs(args []string) ([]*big.Int, error) {
	var res []*big.Int

	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}

			id, err := strconv.ParseUint(s, 10, 63)
			if err != nil {
				return nil, fmt.Errorf("invalid player ID '%s': %w", s, err)
			}

			res = append(res, new(big.Int).SetUint64(id))
		}
	}

	if len(res) != teams.RosterSize {
		return nil, fmt.Errorf("%w: %d player IDs instead of %d", teams.ErrInvalidRosterSize, len(res), teams.RosterSize)
	}

	return res, nil
}

func printTeam(w io.Writer, team *teams.TeamsTeam) {
	ids := make([]string, len(team.PlayerIDs))
	for i := range team.PlayerIDs {
		ids[i] = team.PlayerIDs[i].String()
	}

	fmt.Fprintf(w, "%s: %s\n", address.Uint160ToString(team.Issuer), strings.Join(ids, ","))
}

func runTeamGet(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	var (
		owner util.Uint160
		s     *session
		err   error
	)

	if len(args) > 0 {
		owner, err = parseHash160(args[0])
		if err != nil {
			return fmt.Errorf("invalid owner: %w", err)
		}

		s, err = newReadSession(ctx)
	} else {
		s, err = newWriteSession(ctx)
		if err == nil {
			owner = s.account.ScriptHash()
		}
	}
	if err != nil {
		return err
	}
	defer s.close()

	team, err := s.reader.GetTeam(owner)
	if err != nil {
		return fmt.Errorf("get team: %w", teams.Wrap(err))
	}

	printTeam(cmd.OutOrStdout(), team)
	return nil
}

func runTeamSet(cmd *cobra.Command, args []string) error {
	ids, err := parsePlayerIDs(args)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	s, err := newWriteSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	h, vub, err := s.contract.SetTeam(s.account.ScriptHash(), ids)
	return s.await(ctx, "set team", h, vub, err)
}

func runTeamList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	s, err := newReadSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	items, err := s.reader.ListTeamsExpanded(teamListMax)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}

	for i := range items {
		var team teams.TeamsTeam
		err = team.FromStackItem(items[i])
		if err != nil {
			return fmt.Errorf("decode team #%d: %w", i, err)
		}

		printTeam(cmd.OutOrStdout(), &team)
	}

	return nil
}
