// Package teams contains RPC wrappers for Teams Registry contract.
package teams

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// TeamsTeam is a contract-specific teams.Team type used by its methods.
type TeamsTeam struct {
	Issuer    util.Uint160
	PlayerIDs []*big.Int
}

// TeamSetEvent represents "TeamSet" event emitted by the contract.
type TeamSetEvent struct {
	Owner   util.Uint160
	Counter *big.Int
}

// TeamsPausedChangedEvent represents "TeamsPausedChanged" event emitted by the contract.
type TeamsPausedChangedEvent struct {
	Paused bool
}

// MetadataUpdatedEvent represents "MetadataUpdated" event emitted by the contract.
type MetadataUpdatedEvent struct {
	Key string
}

// ManagerProposedEvent represents "ManagerProposed" event emitted by the contract.
type ManagerProposedEvent struct {
	Manager   util.Uint160
	Candidate util.Uint160
}

// ManagerChangedEvent represents "ManagerChanged" event emitted by the contract.
type ManagerChangedEvent struct {
	Previous util.Uint160
	Manager  util.Uint160
}

// ManagerProposalCancelledEvent represents "ManagerProposalCancelled" event emitted by the contract.
type ManagerProposalCancelledEvent struct {
	Candidate util.Uint160
}

// VerifierChangedEvent represents "VerifierChanged" event emitted by the contract.
type VerifierChangedEvent struct {
	Verifier util.Uint160
}

// VerifierRemovedEvent represents "VerifierRemoved" event emitted by the contract.
type VerifierRemovedEvent struct{}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Counter invokes `counter` method of contract.
func (c *ContractReader) Counter() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "counter"))
}

// GetTeam invokes `getTeam` method of contract.
func (c *ContractReader) GetTeam(owner util.Uint160) (*TeamsTeam, error) {
	return itemToTeamsTeam(unwrap.Item(c.invoker.Call(c.hash, "getTeam", owner)))
}

// ListTeams invokes `listTeams` method of contract.
func (c *ContractReader) ListTeams() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listTeams"))
}

// ListTeamsExpanded is similar to ListTeams (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListTeamsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listTeams", _numOfIteratorItems))
}

// Manager invokes `manager` method of contract.
func (c *ContractReader) Manager() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "manager"))
}

// Metadata invokes `metadata` method of contract. Missing value is returned
// as nil slice.
func (c *ContractReader) Metadata(key string) ([]byte, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "metadata", key))
	if err != nil {
		return nil, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return nil, nil
	}
	return item.TryBytes()
}

// ProposedManager invokes `proposedManager` method of contract. Zero value
// is returned if there is no pending proposal.
func (c *ContractReader) ProposedManager() (util.Uint160, error) {
	return itemToOptionalUint160(unwrap.Item(c.invoker.Call(c.hash, "proposedManager")))
}

// TeamsPaused invokes `teamsPaused` method of contract.
func (c *ContractReader) TeamsPaused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "teamsPaused"))
}

// Verifier invokes `verifier` method of contract. Zero value is returned if
// no verifier is set.
func (c *ContractReader) Verifier() (util.Uint160, error) {
	return itemToOptionalUint160(unwrap.Item(c.invoker.Call(c.hash, "verifier")))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AcceptManager creates a transaction invoking `acceptManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AcceptManager() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "acceptManager")
}

// AcceptManagerTransaction creates a transaction invoking `acceptManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AcceptManagerTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "acceptManager")
}

// AcceptManagerUnsigned creates a transaction invoking `acceptManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AcceptManagerUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "acceptManager", nil)
}

// CancelProposal creates a transaction invoking `cancelProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelProposal() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelProposal")
}

// CancelProposalTransaction creates a transaction invoking `cancelProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelProposalTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelProposal")
}

// CancelProposalUnsigned creates a transaction invoking `cancelProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelProposalUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelProposal", nil)
}

// ProposeManager creates a transaction invoking `proposeManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProposeManager(candidate util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "proposeManager", candidate)
}

// ProposeManagerTransaction creates a transaction invoking `proposeManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProposeManagerTransaction(candidate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "proposeManager", candidate)
}

// ProposeManagerUnsigned creates a transaction invoking `proposeManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProposeManagerUnsigned(candidate util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "proposeManager", nil, candidate)
}

// SetTeam creates a transaction invoking `setTeam` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTeam(owner util.Uint160, playerIDs []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTeam", owner, playerIDsToParams(playerIDs))
}

// SetTeamTransaction creates a transaction invoking `setTeam` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTeamTransaction(owner util.Uint160, playerIDs []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTeam", owner, playerIDsToParams(playerIDs))
}

// SetTeamUnsigned creates a transaction invoking `setTeam` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTeamUnsigned(owner util.Uint160, playerIDs []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTeam", nil, owner, playerIDsToParams(playerIDs))
}

// SetTeamsPaused creates a transaction invoking `setTeamsPaused` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTeamsPaused(flag bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTeamsPaused", flag)
}

// SetTeamsPausedTransaction creates a transaction invoking `setTeamsPaused` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTeamsPausedTransaction(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTeamsPaused", flag)
}

// SetTeamsPausedUnsigned creates a transaction invoking `setTeamsPaused` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTeamsPausedUnsigned(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTeamsPaused", nil, flag)
}

// SetVerifier creates a transaction invoking `setVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetVerifier(verifier util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setVerifier", verifierToParam(verifier))
}

// SetVerifierTransaction creates a transaction invoking `setVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetVerifierTransaction(verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setVerifier", verifierToParam(verifier))
}

// SetVerifierUnsigned creates a transaction invoking `setVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetVerifierUnsigned(verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setVerifier", nil, verifierToParam(verifier))
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateMetadata creates a transaction invoking `updateMetadata` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateMetadata(key string, value []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateMetadata", key, value)
}

// UpdateMetadataTransaction creates a transaction invoking `updateMetadata` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateMetadataTransaction(key string, value []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateMetadata", key, value)
}

// UpdateMetadataUnsigned creates a transaction invoking `updateMetadata` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateMetadataUnsigned(key string, value []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateMetadata", nil, key, value)
}

func playerIDsToParams(playerIDs []*big.Int) []any {
	res := make([]any, len(playerIDs))
	for i := range playerIDs {
		res[i] = playerIDs[i]
	}
	return res
}

// verifierToParam turns zero hash into an empty argument which disables
// verification.
func verifierToParam(verifier util.Uint160) any {
	if verifier.Equals(util.Uint160{}) {
		return []byte{}
	}
	return verifier
}

func itemToOptionalUint160(item stackitem.Item, err error) (util.Uint160, error) {
	if err != nil {
		return util.Uint160{}, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, nil
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	if len(b) == 0 {
		return util.Uint160{}, nil
	}
	return util.Uint160DecodeBytesBE(b)
}

func uint160FromItem(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

// itemToTeamsTeam converts stack item into *TeamsTeam.
func itemToTeamsTeam(item stackitem.Item, err error) (*TeamsTeam, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TeamsTeam)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TeamsTeam from the given
// [stackitem.Item] or returns an error if it's not possible to do to.
func (res *TeamsTeam) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Issuer, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	res.PlayerIDs, err = func(item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field PlayerIDs: %w", err)
	}

	return nil
}

// TeamSetEventsFromApplicationLog retrieves a set of all emitted events
// with "TeamSet" name from the provided [result.ApplicationLog].
func TeamSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*TeamSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TeamSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TeamSet" {
				continue
			}
			event := new(TeamSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TeamSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TeamSetEvent or
// returns an error if it's not possible to do to.
func (e *TeamSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Owner, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Counter, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Counter: %w", err)
	}

	return nil
}

// TeamsPausedChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "TeamsPausedChanged" name from the provided [result.ApplicationLog].
func TeamsPausedChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TeamsPausedChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TeamsPausedChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TeamsPausedChanged" {
				continue
			}
			event := new(TeamsPausedChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TeamsPausedChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TeamsPausedChangedEvent or
// returns an error if it's not possible to do to.
func (e *TeamsPausedChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Paused, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Paused: %w", err)
	}

	return nil
}

// MetadataUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "MetadataUpdated" name from the provided [result.ApplicationLog].
func MetadataUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MetadataUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MetadataUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MetadataUpdated" {
				continue
			}
			event := new(MetadataUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MetadataUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MetadataUpdatedEvent or
// returns an error if it's not possible to do to.
func (e *MetadataUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Key, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	return nil
}

// ManagerProposedEventsFromApplicationLog retrieves a set of all emitted events
// with "ManagerProposed" name from the provided [result.ApplicationLog].
func ManagerProposedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ManagerProposedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ManagerProposedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ManagerProposed" {
				continue
			}
			event := new(ManagerProposedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ManagerProposedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ManagerProposedEvent or
// returns an error if it's not possible to do to.
func (e *ManagerProposedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Manager, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Manager: %w", err)
	}

	index++
	e.Candidate, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Candidate: %w", err)
	}

	return nil
}

// ManagerChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ManagerChanged" name from the provided [result.ApplicationLog].
func ManagerChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ManagerChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ManagerChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ManagerChanged" {
				continue
			}
			event := new(ManagerChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ManagerChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ManagerChangedEvent or
// returns an error if it's not possible to do to.
func (e *ManagerChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Previous, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Previous: %w", err)
	}

	index++
	e.Manager, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Manager: %w", err)
	}

	return nil
}

// ManagerProposalCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "ManagerProposalCancelled" name from the provided [result.ApplicationLog].
func ManagerProposalCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*ManagerProposalCancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ManagerProposalCancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ManagerProposalCancelled" {
				continue
			}
			event := new(ManagerProposalCancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ManagerProposalCancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ManagerProposalCancelledEvent or
// returns an error if it's not possible to do to.
func (e *ManagerProposalCancelledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Candidate, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Candidate: %w", err)
	}

	return nil
}

// VerifierChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "VerifierChanged" name from the provided [result.ApplicationLog].
func VerifierChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VerifierChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VerifierChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VerifierChanged" {
				continue
			}
			event := new(VerifierChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VerifierChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VerifierChangedEvent or
// returns an error if it's not possible to do to.
func (e *VerifierChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Verifier, err = uint160FromItem(arr[index])
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	return nil
}

// VerifierRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "VerifierRemoved" name from the provided [result.ApplicationLog].
func VerifierRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VerifierRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VerifierRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VerifierRemoved" {
				continue
			}
			event := new(VerifierRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VerifierRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VerifierRemovedEvent or
// returns an error if it's not possible to do to.
func (e *VerifierRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 0 {
		return errors.New("wrong number of structure elements")
	}

	return nil
}
