package teamsconst

const (
	// RosterSize is the exact number of players in a team.
	RosterSize = 11

	// VerifyRosterMethod is the method called on the roster verifier contract
	// (if any is configured) with the team owner and player IDs. The method
	// must be safe and return a boolean.
	VerifyRosterMethod = "verifyRoster"
)

// Exception texts thrown by the Teams Registry contract.
const (
	// ErrNotManager is thrown when a manager-only method is called without
	// the manager witness.
	ErrNotManager = "caller is not the manager"
	// ErrNotProposedManager is thrown when the pending manager proposal is
	// accepted by anyone but the proposed candidate.
	ErrNotProposedManager = "caller is not the proposed manager"
	// ErrTeamsPaused is thrown on team registration while it is paused.
	ErrTeamsPaused = "teams are paused"
	// ErrInvalidRosterSize is thrown when a roster does not contain exactly
	// RosterSize players.
	ErrInvalidRosterSize = "invalid roster size"
	// ErrMalformedRoster is thrown for empty rosters and negative player IDs.
	ErrMalformedRoster = "malformed roster"
	// ErrRosterNotVerified is thrown when the configured roster verifier
	// rejects the roster.
	ErrRosterNotVerified = "roster verification failed"
	// ErrInvalidOwner is thrown when the team owner is not a valid script hash.
	ErrInvalidOwner = "invalid team owner"
	// ErrSameManager is thrown when the current manager is proposed again.
	ErrSameManager = "candidate is already the manager"
	// ErrInvalidCandidate is thrown when the proposed manager is not a valid
	// script hash.
	ErrInvalidCandidate = "invalid manager candidate"
	// ErrNoProposal is thrown on accept or cancel without a pending proposal.
	ErrNoProposal = "no pending manager proposal"
	// ErrProposalPending is thrown when a new manager is proposed while
	// another proposal is pending.
	ErrProposalPending = "manager proposal is already pending"
	// ErrInvalidVerifier is thrown when the roster verifier is not a valid
	// script hash.
	ErrInvalidVerifier = "invalid roster verifier"
	// ErrTeamNotFound is thrown when requested team is missing.
	ErrTeamNotFound = "team not found"
)

// Notification names.
const (
	TeamSetEvent                  = "TeamSet"
	TeamsPausedChangedEvent       = "TeamsPausedChanged"
	MetadataUpdatedEvent          = "MetadataUpdated"
	ManagerProposedEvent          = "ManagerProposed"
	ManagerChangedEvent           = "ManagerChanged"
	ManagerProposalCancelledEvent = "ManagerProposalCancelled"
	VerifierChangedEvent          = "VerifierChanged"
	VerifierRemovedEvent          = "VerifierRemoved"
)
