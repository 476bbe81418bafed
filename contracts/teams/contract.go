package teams

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/satireball/teams-contract/common"
	"github.com/satireball/teams-contract/contracts/teams/teamsconst"
)

// Team is a roster registered by an account.
type Team struct {
	// Account which registered the team. It always matches the account
	// the team is stored under.
	Issuer interop.Hash160

	// Player identifiers in the submitted order.
	PlayerIDs []int
}

const (
	managerKey         = "m"
	proposedManagerKey = "p"
	counterKey         = "c"
	pausedKey          = "s"
	verifierKey        = "v"

	metadataPrefix = 'd'
	teamPrefix     = 't'
)

// _deploy sets the manager, initial metadata and zero counters.
// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		manager  interop.Hash160
		metadata [][]byte
	})

	manager := args.manager
	if len(manager) == 0 {
		manager = runtime.GetScriptContainer().Sender
	}
	if !common.IsValidHash160(manager) {
		panic("invalid manager")
	}

	ln := len(args.metadata)
	if ln%2 != 0 {
		panic("bad metadata")
	}

	for i := 0; i < ln/2; i++ { //nolint:intrange // Not supported by NeoGo
		storage.Put(ctx, metadataKey(string(args.metadata[i*2])), args.metadata[i*2+1])
	}

	storage.Put(ctx, managerKey, manager)
	storage.Put(ctx, counterKey, 0)

	runtime.Log("teams contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the manager.
func Update(script []byte, manifest []byte, data any) {
	checkIsManager(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("teams contract updated")
}

// SetTeam registers the team of the owner account replacing the previous
// one if any. The transaction must be witnessed by the owner, registration
// must not be paused and the roster must contain exactly 11 non-negative
// player IDs. If a roster verifier is configured, it must approve the roster.
//
// Every successful call increments the counter and produces TeamSet
// notification.
func SetTeam(owner interop.Hash160, playerIDs []int) {
	ctx := storage.GetContext()

	if storage.Get(ctx, pausedKey) != nil {
		panic(teamsconst.ErrTeamsPaused)
	}

	if !common.IsValidHash160(owner) {
		panic(teamsconst.ErrInvalidOwner)
	}
	common.CheckOwnerWitness(owner)

	checkRoster(playerIDs)

	verifier := storage.Get(ctx, verifierKey)
	if verifier != nil {
		ok := contract.Call(verifier.(interop.Hash160), teamsconst.VerifyRosterMethod,
			contract.ReadOnly, owner, playerIDs).(bool)
		if !ok {
			panic(teamsconst.ErrRosterNotVerified)
		}
	}

	common.SetSerialized(ctx, teamKey(owner), Team{
		Issuer:    owner,
		PlayerIDs: playerIDs,
	})

	counter := storage.Get(ctx, counterKey).(int) + 1
	storage.Put(ctx, counterKey, counter)

	runtime.Notify("TeamSet", owner, counter)
}

func checkRoster(playerIDs []int) {
	n := len(playerIDs)
	if n == 0 {
		panic(teamsconst.ErrMalformedRoster + ": no players")
	}
	if n != teamsconst.RosterSize {
		panic(teamsconst.ErrInvalidRosterSize + ": " + std.Itoa(n, 10))
	}

	for i := range playerIDs {
		if playerIDs[i] < 0 {
			panic(teamsconst.ErrMalformedRoster + ": negative player ID")
		}
	}
}

// GetTeam returns the team registered by the owner. It panics if there is no
// such team.
func GetTeam(owner interop.Hash160) Team {
	ctx := storage.GetReadOnlyContext()

	team := common.GetSerialized(ctx, teamKey(owner))
	if team == nil {
		panic(teamsconst.ErrTeamNotFound)
	}

	return team.(Team)
}

// ListTeams returns iterator over all registered teams.
func ListTeams() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{teamPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Counter returns the number of successful team registrations.
func Counter() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, counterKey).(int)
}

// SetTeamsPaused enables or disables team registration. It can be invoked
// only by the manager. Setting current value again does nothing.
func SetTeamsPaused(flag bool) {
	ctx := storage.GetContext()
	checkIsManager(ctx)

	paused := storage.Get(ctx, pausedKey) != nil
	if paused == flag {
		return
	}

	if flag {
		storage.Put(ctx, pausedKey, []byte{})
	} else {
		storage.Delete(ctx, pausedKey)
	}

	runtime.Notify("TeamsPausedChanged", flag)
}

// TeamsPaused returns true if team registration is paused.
func TeamsPaused() bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, pausedKey) != nil
}

// UpdateMetadata sets metadata value by the key. Values are opaque to the
// contract. It can be invoked only by the manager.
func UpdateMetadata(key string, value []byte) {
	ctx := storage.GetContext()
	checkIsManager(ctx)

	storage.Put(ctx, metadataKey(key), value)
	runtime.Notify("MetadataUpdated", key)
}

// Metadata returns metadata value stored by the key or nil.
func Metadata(key string) []byte {
	ctx := storage.GetReadOnlyContext()

	val := storage.Get(ctx, metadataKey(key))
	if val == nil {
		return nil
	}

	return val.([]byte)
}

// ProposeManager starts transfer of the manager role to the candidate which
// must accept it via AcceptManager. It can be invoked only by the manager
// when there is no pending proposal.
func ProposeManager(candidate interop.Hash160) {
	ctx := storage.GetContext()
	manager := checkIsManager(ctx)

	if !common.IsValidHash160(candidate) {
		panic(teamsconst.ErrInvalidCandidate)
	}
	if candidate.Equals(manager) {
		panic(teamsconst.ErrSameManager)
	}
	if storage.Get(ctx, proposedManagerKey) != nil {
		panic(teamsconst.ErrProposalPending)
	}

	storage.Put(ctx, proposedManagerKey, candidate)
	runtime.Notify("ManagerProposed", manager, candidate)
}

// AcceptManager completes the manager role transfer. It must be witnessed
// by the proposed candidate.
func AcceptManager() {
	ctx := storage.GetContext()

	val := storage.Get(ctx, proposedManagerKey)
	if val == nil {
		panic(teamsconst.ErrNoProposal)
	}

	candidate := val.(interop.Hash160)
	if !runtime.CheckWitness(candidate) {
		panic(teamsconst.ErrNotProposedManager)
	}

	previous := storage.Get(ctx, managerKey).(interop.Hash160)

	storage.Put(ctx, managerKey, candidate)
	storage.Delete(ctx, proposedManagerKey)

	runtime.Notify("ManagerChanged", previous, candidate)
}

// CancelProposal drops pending manager proposal. It can be invoked only by
// the manager.
func CancelProposal() {
	ctx := storage.GetContext()
	checkIsManager(ctx)

	val := storage.Get(ctx, proposedManagerKey)
	if val == nil {
		panic(teamsconst.ErrNoProposal)
	}

	storage.Delete(ctx, proposedManagerKey)
	runtime.Notify("ManagerProposalCancelled", val.(interop.Hash160))
}

// Manager returns the current manager account.
func Manager() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, managerKey).(interop.Hash160)
}

// ProposedManager returns the pending manager candidate or nil.
func ProposedManager() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	val := storage.Get(ctx, proposedManagerKey)
	if val == nil {
		return nil
	}

	return val.(interop.Hash160)
}

// SetVerifier sets the contract which approves rosters on SetTeam. Empty
// verifier disables verification, removing absent verifier does nothing. It
// can be invoked only by the manager.
func SetVerifier(verifier interop.Hash160) {
	ctx := storage.GetContext()
	checkIsManager(ctx)

	if len(verifier) == 0 {
		if storage.Get(ctx, verifierKey) == nil {
			return
		}

		storage.Delete(ctx, verifierKey)
		runtime.Notify("VerifierRemoved")
		return
	}

	if !common.IsValidHash160(verifier) {
		panic(teamsconst.ErrInvalidVerifier)
	}

	storage.Put(ctx, verifierKey, verifier)
	runtime.Notify("VerifierChanged", verifier)
}

// Verifier returns the roster verifier contract or nil.
func Verifier() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	val := storage.Get(ctx, verifierKey)
	if val == nil {
		return nil
	}

	return val.(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// checkIsManager panics with ErrNotManager if the transaction is not
// witnessed by the manager. It returns the manager.
func checkIsManager(ctx storage.Context) interop.Hash160 {
	manager := storage.Get(ctx, managerKey).(interop.Hash160)
	if !runtime.CheckWitness(manager) {
		panic(teamsconst.ErrNotManager)
	}

	return manager
}

func teamKey(owner interop.Hash160) []byte {
	return append([]byte{teamPrefix}, owner...)
}

func metadataKey(key string) []byte {
	return append([]byte{metadataPrefix}, []byte(key)...)
}
