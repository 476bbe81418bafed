package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/satireball/teams-contract/rpc/teams"
	"go.uber.org/zap"
)

// dialRPC opens connection to the configured Neo RPC server.
func dialRPC(ctx context.Context) (*rpcclient.Client, error) {
	c, err := rpcclient.New(ctx, cfg.RPC, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return c, nil
}

// parseHash160 decodes account or contract given either as Neo address or
// as LE hex string with optional 0x prefix.
func parseHash160(s string) (util.Uint160, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return util.Uint160{}, errors.New("empty value")
	}

	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("'%s' is neither Neo address nor LE hex string", s)
	}

	return h, nil
}

func contractAddress() (util.Uint160, error) {
	if cfg.Contract == "" {
		return util.Uint160{}, errors.New("missing contract address, use --contract or config")
	}

	h, err := parseHash160(cfg.Contract)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid contract address: %w", err)
	}

	return h, nil
}

// openAccount reads the configured wallet and returns decrypted account.
func openAccount() (*wallet.Account, error) {
	if cfg.Wallet.Path == "" {
		return nil, errors.New("missing wallet path")
	}

	w, err := wallet.NewWalletFromFile(cfg.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if cfg.Wallet.Address != "" {
		h, err := parseHash160(cfg.Wallet.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet account: %w", err)
		}

		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", cfg.Wallet.Address)
		}
	} else {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	}

	err = acc.Decrypt(cfg.Wallet.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

// session groups the connection and the contract clients of a single command.
type session struct {
	rpc    *rpcclient.Client
	reader *teams.ContractReader

	// Set only for commands sending transactions.
	actor    *actor.Actor
	contract *teams.Contract
	account  *wallet.Account
}

func (s *session) close() {
	s.rpc.Close()
}

// newReadSession connects to the contract for reading only.
func newReadSession(ctx context.Context) (*session, error) {
	addr, err := contractAddress()
	if err != nil {
		return nil, err
	}

	c, err := dialRPC(ctx)
	if err != nil {
		return nil, err
	}

	return &session{
		rpc:    c,
		reader: teams.NewReader(invoker.New(c, nil), addr),
	}, nil
}

// newWriteSession connects to the contract with the configured account
// signing transactions.
func newWriteSession(ctx context.Context) (*session, error) {
	addr, err := contractAddress()
	if err != nil {
		return nil, err
	}

	acc, err := openAccount()
	if err != nil {
		return nil, err
	}

	c, err := dialRPC(ctx)
	if err != nil {
		return nil, err
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &session{
		rpc:      c,
		reader:   teams.NewReader(act, addr),
		actor:    act,
		contract: teams.New(act, addr),
		account:  acc,
	}, nil
}

// await waits for the transaction and logs its result.
func (s *session) await(ctx context.Context, op string, h util.Uint256, vub uint32, err error) error {
	logger.Debug("waiting for transaction", zap.String("op", op), zap.Stringer("tx", h), zap.Uint32("vub", vub))

	_, err = teams.Await(ctx, s.actor, h, vub, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("transaction accepted", zap.String("op", op), zap.Stringer("tx", h))
	return nil
}
