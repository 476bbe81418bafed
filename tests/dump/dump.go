package dump

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

const fileSuffix = ".json"

// ID identifies a dump.
type ID struct {
	// Label of the dump source (e.g. testnet, mainnet).
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

// String returns '<label>-<block>'.
func (x ID) String() string {
	return x.Label + "-" + strconv.FormatUint(uint64(x.Block), 10)
}

func (x ID) validate() error {
	switch {
	case x.Label == "":
		return errors.New("empty label")
	case strings.ContainsAny(x.Label, `/\`):
		return fmt.Errorf("label '%s' contains path separator", x.Label)
	}
	return nil
}

func (x ID) fileName() string {
	return x.String() + fileSuffix
}

// parseFileName decodes ID from the dump file name. Label may contain '-',
// block is always the last part.
func parseFileName(name string) (ID, error) {
	s, ok := strings.CutSuffix(name, fileSuffix)
	if !ok {
		return ID{}, fmt.Errorf("missing '%s' suffix", fileSuffix)
	}

	i := strings.LastIndexByte(s, '-')
	if i <= 0 {
		return ID{}, errors.New("expected '<label>-<block>'")
	}

	n, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		return ID{}, fmt.Errorf("decode block number from '%s': %w", s[i+1:], err)
	}

	return ID{Label: s[:i], Block: uint32(n)}, nil
}

// StorageItem is a raw key-value pair from the contract storage.
type StorageItem struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// Dump is a state of the Teams Registry contract at some height.
type Dump struct {
	// ID is encoded in the file name.
	ID       ID             `json:"-"`
	Contract state.Contract `json:"contract"`
	Registry Registry       `json:"registry"`
	Storage  []StorageItem  `json:"storage"`
}

// New makes Dump of the contract with the given state and storage. Registry
// is decoded from the storage, so New fails for storage of any other
// contract.
func New(id ID, st state.Contract, items []StorageItem) (*Dump, error) {
	err := id.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid dump ID: %w", err)
	}

	r, err := DecodeRegistry(items)
	if err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}

	return &Dump{
		ID:       id,
		Contract: st,
		Registry: *r,
		Storage:  items,
	}, nil
}

// Write saves the dump into a new file in dir. Write fails if dump with the
// same ID already exists there.
func Write(dir string, d *Dump) error {
	f, err := os.OpenFile(filepath.Join(dir, d.ID.fileName()), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", " ")

	err = enc.Encode(d)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode dump '%s': %w", d.ID, err)
	}

	return f.Close()
}

// Read reads the dump from the file. The registry stored in the file must
// match the one decoded from the raw storage.
func Read(path string) (*Dump, error) {
	id, err := parseFileName(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("decode dump ID from file name: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Dump
	err = json.Unmarshal(b, &d)
	if err != nil {
		return nil, fmt.Errorf("decode dump '%s': %w", id, err)
	}
	d.ID = id

	r, err := DecodeRegistry(d.Storage)
	if err != nil {
		return nil, fmt.Errorf("decode registry from storage of '%s': %w", id, err)
	}

	if diff := cmp.Diff(*r, d.Registry, cmpopts.EquateEmpty()); diff != "" {
		return nil, fmt.Errorf("registry of '%s' does not match storage (-storage +file):\n%s", id, diff)
	}

	return &d, nil
}

// IterateDumps reads all dumps from the directory and passes them into f.
// Missing directory has no dumps.
func IterateDumps(dir string, f func(*Dump)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read dump directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileSuffix) {
			continue
		}

		d, err := Read(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}

		f(d)
	}

	return nil
}
