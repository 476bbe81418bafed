package rosterverifier

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	deniedOwnerPrefix  = 'o'
	deniedPlayerPrefix = 'p'
)

func DenyOwner(owner interop.Hash160) {
	storage.Put(storage.GetContext(), append([]byte{deniedOwnerPrefix}, owner...), []byte{})
}

func DenyPlayer(id int) {
	storage.Put(storage.GetContext(), append([]byte{deniedPlayerPrefix}, convert.ToBytes(id)...), []byte{})
}

func VerifyRoster(owner interop.Hash160, playerIDs []int) bool {
	ctx := storage.GetReadOnlyContext()

	if storage.Get(ctx, append([]byte{deniedOwnerPrefix}, owner...)) != nil {
		return false
	}

	for i := range playerIDs {
		if storage.Get(ctx, append([]byte{deniedPlayerPrefix}, convert.ToBytes(playerIDs[i])...)) != nil {
			return false
		}
	}

	return true
}
