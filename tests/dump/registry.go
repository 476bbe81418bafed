package dump

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/satireball/teams-contract/rpc/teams"
)

// Storage layout of the contract, see contracts/teams/doc.go.
const (
	managerKey         = "m"
	proposedManagerKey = "p"
	counterKey         = "c"
	pausedKey          = "s"
	verifierKey        = "v"

	metadataPrefix = 'd'
	teamPrefix     = 't'
)

// Registry is the contract state as seen through its API. Zero hashes mean
// there is no pending proposal or verifier.
type Registry struct {
	Manager         util.Uint160      `json:"manager"`
	ProposedManager util.Uint160      `json:"proposedManager"`
	Verifier        util.Uint160      `json:"verifier"`
	Counter         int64             `json:"counter"`
	Paused          bool              `json:"paused"`
	Metadata        map[string][]byte `json:"metadata,omitempty"`
	Teams           []Team            `json:"teams,omitempty"`
}

// Team is a registered roster.
type Team struct {
	Owner     util.Uint160 `json:"owner"`
	PlayerIDs []int64      `json:"players"`
}

// DecodeRegistry decodes Registry from raw storage items of the contract.
// Teams are sorted by owner.
func DecodeRegistry(items []StorageItem) (*Registry, error) {
	var (
		r                      Registry
		hasManager, hasCounter bool
	)

	for _, it := range items {
		var err error

		switch k := it.Key; {
		case len(k) == 0:
			return nil, errors.New("empty storage key")
		case string(k) == managerKey:
			hasManager = true
			r.Manager, err = util.Uint160DecodeBytesBE(it.Value)
		case string(k) == proposedManagerKey:
			r.ProposedManager, err = util.Uint160DecodeBytesBE(it.Value)
		case string(k) == verifierKey:
			r.Verifier, err = util.Uint160DecodeBytesBE(it.Value)
		case string(k) == counterKey:
			hasCounter = true
			r.Counter = bigint.FromBytes(it.Value).Int64()
		case string(k) == pausedKey:
			r.Paused = true
		case k[0] == metadataPrefix:
			if r.Metadata == nil {
				r.Metadata = make(map[string][]byte)
			}
			r.Metadata[string(k[1:])] = it.Value
		case k[0] == teamPrefix:
			var team Team
			team, err = decodeTeam(k[1:], it.Value)
			r.Teams = append(r.Teams, team)
		default:
			return nil, fmt.Errorf("unexpected storage key %x", k)
		}

		if err != nil {
			return nil, fmt.Errorf("decode storage item %x: %w", it.Key, err)
		}
	}

	if !hasManager {
		return nil, errors.New("missing manager")
	}
	if !hasCounter {
		return nil, errors.New("missing counter")
	}

	sort.Slice(r.Teams, func(i, j int) bool {
		return bytes.Compare(r.Teams[i].Owner.BytesBE(), r.Teams[j].Owner.BytesBE()) < 0
	})

	return &r, nil
}

func decodeTeam(rawOwner, value []byte) (Team, error) {
	owner, err := util.Uint160DecodeBytesBE(rawOwner)
	if err != nil {
		return Team{}, fmt.Errorf("owner: %w", err)
	}

	item, err := stackitem.Deserialize(value)
	if err != nil {
		return Team{}, fmt.Errorf("deserialize team: %w", err)
	}

	var t teams.TeamsTeam
	err = t.FromStackItem(item)
	if err != nil {
		return Team{}, fmt.Errorf("decode team: %w", err)
	}

	if !t.Issuer.Equals(owner) {
		return Team{}, fmt.Errorf("team issued by %s is stored under %s", t.Issuer.StringLE(), owner.StringLE())
	}

	return NewTeam(&t), nil
}

// NewTeam converts team returned by the contract.
func NewTeam(t *teams.TeamsTeam) Team {
	res := Team{
		Owner:     t.Issuer,
		PlayerIDs: make([]int64, len(t.PlayerIDs)),
	}
	for i := range t.PlayerIDs {
		res.PlayerIDs[i] = t.PlayerIDs[i].Int64()
	}
	return res
}
