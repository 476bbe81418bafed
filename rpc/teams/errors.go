package teams

import (
	"errors"
	"fmt"
	"strings"

	"github.com/satireball/teams-contract/common"
	"github.com/satireball/teams-contract/contracts/teams/teamsconst"
)

// Errors corresponding to exceptions thrown by the contract. Use [Wrap] or
// [ParseFault] to get them from invocation results.
var (
	ErrNotManager         = errors.New(teamsconst.ErrNotManager)
	ErrNotProposedManager = errors.New(teamsconst.ErrNotProposedManager)
	ErrTeamsPaused        = errors.New(teamsconst.ErrTeamsPaused)
	ErrInvalidRosterSize  = errors.New(teamsconst.ErrInvalidRosterSize)
	ErrMalformedRoster    = errors.New(teamsconst.ErrMalformedRoster)
	ErrRosterNotVerified  = errors.New(teamsconst.ErrRosterNotVerified)
	ErrInvalidOwner       = errors.New(teamsconst.ErrInvalidOwner)
	ErrOwnerWitness       = errors.New(common.ErrOwnerWitnessFailed)
	ErrSameManager        = errors.New(teamsconst.ErrSameManager)
	ErrInvalidCandidate   = errors.New(teamsconst.ErrInvalidCandidate)
	ErrNoProposal         = errors.New(teamsconst.ErrNoProposal)
	ErrProposalPending    = errors.New(teamsconst.ErrProposalPending)
	ErrInvalidVerifier    = errors.New(teamsconst.ErrInvalidVerifier)
	ErrTeamNotFound       = errors.New(teamsconst.ErrTeamNotFound)
)

var knownFaults = []error{
	ErrNotProposedManager,
	ErrNotManager,
	ErrTeamsPaused,
	ErrInvalidRosterSize,
	ErrMalformedRoster,
	ErrRosterNotVerified,
	ErrInvalidOwner,
	ErrOwnerWitness,
	ErrSameManager,
	ErrInvalidCandidate,
	ErrNoProposal,
	ErrProposalPending,
	ErrInvalidVerifier,
	ErrTeamNotFound,
}

// ParseFault returns the error matching the contract exception text, e.g.
// FaultException of the invocation result. The returned error wraps one of
// the package errors if the exception is known.
func ParseFault(exception string) error {
	for _, known := range knownFaults {
		if strings.Contains(exception, known.Error()) {
			return fmt.Errorf("%w (%s)", known, exception)
		}
	}

	return errors.New(exception)
}

// Wrap makes err returned by [Contract] or [ContractReader] methods
// comparable with the package errors via [errors.Is] if it was caused by a
// known contract exception. Other errors and nil are returned as is.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	for _, known := range knownFaults {
		if strings.Contains(err.Error(), known.Error()) {
			return fmt.Errorf("%w: %w", known, err)
		}
	}

	return err
}
