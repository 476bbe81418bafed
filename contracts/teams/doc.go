/*
Package teams implements Teams Registry contract.

Any account can register a team: an ordered roster of exactly 11 player
identifiers. Each account owns at most one team, every new registration
replaces the previous roster completely. Registration is controlled by the
manager account which can pause it, publish metadata references and hand the
manager role over to another account in two steps: the manager proposes a
candidate and the candidate accepts the role.

The contract does not check whether the registering account holds the listed
player tokens. Instead, the manager may configure a verifier contract
implementing

	verifyRoster(owner Hash160, playerIDs []int) bool

which is called on every registration and can reject it.

# Contract notifications

TeamSet notification. This notification is produced when a team is registered
or replaced via SetTeam method.

	TeamSet
	  - name: owner
	    type: Hash160
	  - name: counter
	    type: Integer

TeamsPausedChanged notification. This notification is produced when the
manager pauses or resumes team registration.

	TeamsPausedChanged
	  - name: paused
	    type: Boolean

MetadataUpdated notification. This notification is produced when the manager
sets metadata value.

	MetadataUpdated
	  - name: key
	    type: String

ManagerProposed notification. This notification is produced when the manager
proposes a new manager.

	ManagerProposed
	  - name: manager
	    type: Hash160
	  - name: candidate
	    type: Hash160

ManagerChanged notification. This notification is produced when the proposed
candidate accepts the manager role.

	ManagerChanged
	  - name: previous
	    type: Hash160
	  - name: manager
	    type: Hash160

ManagerProposalCancelled notification. This notification is produced when the
manager cancels pending proposal.

	ManagerProposalCancelled
	  - name: candidate
	    type: Hash160

VerifierChanged notification. This notification is produced when the manager
sets the roster verifier.

	VerifierChanged
	  - name: verifier
	    type: Hash160

VerifierRemoved notification. This notification is produced when the manager
removes configured roster verifier.

	VerifierRemoved
*/
package teams

/*
Contract storage model.

Current conventions:
 <owner>: 20-byte script hash of the account owning a team
 <key>: metadata key

# Summary
Key-value storage format:
 - 'm' -> interop.Hash160
   current manager
 - 'p' -> interop.Hash160
   proposed manager, absent if there is no pending proposal
 - 's' -> []byte{}
   present iff team registration is paused
 - 'c' -> int
   number of successful team registrations
 - 'v' -> interop.Hash160
   roster verifier contract, absent if not configured
 - 'd<key>' -> []byte
   opaque metadata value
 - 't<owner>' -> std.Serialize(Team)
   team registered by the owner

# Teams
Team is stored under its issuer, so an account can only register its own
team. Teams are never deleted.
*/
