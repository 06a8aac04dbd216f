package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type Wallet interface {
	Accounts() []common.Address
	Connect(requested string) (common.Address, error)
}

// KeyedWallet signs with private keys loaded from configuration. It stands in
// for the browser wallet: the first key is the default account.
type KeyedWallet struct {
	chainID  *big.Int
	accounts []common.Address
	keys     map[common.Address]*ecdsa.PrivateKey
}

func NewKeyedWallet(hexKeys []string, chainID int64) (*KeyedWallet, error) {
	w := &KeyedWallet{
		chainID: big.NewInt(chainID),
		keys:    make(map[common.Address]*ecdsa.PrivateKey, len(hexKeys)),
	}
	for i, raw := range hexKeys {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key #%d: %w", i+1, err)
		}
		addr := crypto.PubkeyToAddress(key.PublicKey)
		if _, dup := w.keys[addr]; dup {
			continue
		}
		w.keys[addr] = key
		w.accounts = append(w.accounts, addr)
	}
	return w, nil
}

func (w *KeyedWallet) Accounts() []common.Address {
	out := make([]common.Address, len(w.accounts))
	copy(out, w.accounts)
	return out
}

// Connect returns the requested account, or the default one when requested
// is empty.
func (w *KeyedWallet) Connect(requested string) (common.Address, error) {
	if len(w.accounts) == 0 {
		return common.Address{}, ErrWalletUnavailable
	}
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return w.accounts[0], nil
	}
	if !common.IsHexAddress(requested) {
		return common.Address{}, fmt.Errorf("%w: %q is not an address", ErrConnectionRejected, requested)
	}
	addr := common.HexToAddress(requested)
	if _, ok := w.keys[addr]; !ok {
		return common.Address{}, fmt.Errorf("%w: account %s is not managed by this wallet", ErrConnectionRejected, addr.Hex())
	}
	return addr, nil
}

func (w *KeyedWallet) transactor(ctx context.Context, from common.Address) (*bind.TransactOpts, error) {
	key, ok := w.keys[from]
	if !ok {
		if len(w.keys) == 0 {
			return nil, ErrWalletUnavailable
		}
		return nil, fmt.Errorf("%w: no key for %s", ErrConnectionRejected, from.Hex())
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, w.chainID)
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}
