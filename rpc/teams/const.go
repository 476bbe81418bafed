package teams

import (
	"github.com/satireball/teams-contract/contracts/teams/teamsconst"
)

const (
	// RosterSize is the exact number of players in a team.
	RosterSize = teamsconst.RosterSize

	// VerifyRosterMethod is the method roster verifier contracts implement.
	VerifyRosterMethod = teamsconst.VerifyRosterMethod
)
