package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyHex(t *testing.T) (string, common.Address) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return hex.EncodeToString(crypto.FromECDSA(key)), crypto.PubkeyToAddress(key.PublicKey)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: ErrTransient},
		{name: "refused", err: errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"), want: ErrTransient},
		{name: "rate limited", err: errors.New("429 Too Many Requests"), want: ErrTransient},
		{name: "revert", err: errors.New("execution reverted: Badge sold out"), want: ErrContractCall},
		{name: "abi", err: errors.New("abi: cannot marshal in to go type"), want: ErrContractCall},
		{name: "already classified", err: fmt.Errorf("wrap: %w", ErrWalletUnavailable), want: ErrWalletUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, Classify(nil))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "Wallet connection was rejected", UserMessage(ErrConnectionRejected))
	assert.Equal(t, "Transaction failed: Badge sold out",
		UserMessage(Classify(errors.New("execution reverted: Badge sold out"))))
	assert.Equal(t, "The contract rejected the request", UserMessage(ErrContractCall))
	assert.Equal(t, "The network is unavailable, please try again", UserMessage(Classify(context.Canceled)))
	assert.Contains(t, UserMessage(ErrWalletUnavailable), "No wallet")
	assert.Equal(t, "Unexpected error", UserMessage(errors.New("boom")))
}

func TestKeyedWallet(t *testing.T) {
	k1, a1 := newKeyHex(t)
	k2, a2 := newKeyHex(t)

	w, err := NewKeyedWallet([]string{"0x" + k1, k2, k1}, 11155111)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{a1, a2}, w.Accounts())

	got, err := w.Connect("")
	require.NoError(t, err)
	assert.Equal(t, a1, got)

	got, err = w.Connect(a2.Hex())
	require.NoError(t, err)
	assert.Equal(t, a2, got)

	_, err = w.Connect("0x000000000000000000000000000000000000dEaD")
	assert.ErrorIs(t, err, ErrConnectionRejected)

	_, err = w.Connect("not-an-address")
	assert.ErrorIs(t, err, ErrConnectionRejected)

	opts, err := w.transactor(context.Background(), a2)
	require.NoError(t, err)
	assert.Equal(t, a2, opts.From)
}

func TestEmptyWallet(t *testing.T) {
	w, err := NewKeyedWallet(nil, 1)
	require.NoError(t, err)

	_, err = w.Connect("")
	assert.ErrorIs(t, err, ErrWalletUnavailable)

	_, err = w.transactor(context.Background(), common.Address{})
	assert.ErrorIs(t, err, ErrWalletUnavailable)

	_, err = NewKeyedWallet([]string{"zz"}, 1)
	assert.Error(t, err)
}

func TestLogDecoder(t *testing.T) {
	d, err := NewLogDecoder()
	require.NoError(t, err)
	require.Len(t, d.Topics(), 3)

	user := common.HexToAddress("0x1111111111111111111111111111111111111111")
	userTopic := common.BytesToHash(user.Bytes())

	t.Run("health data updated", func(t *testing.T) {
		abiEvent := d.abi.Events["HealthDataUpdated"]
		data, err := abiEvent.Inputs.NonIndexed().Pack(big.NewInt(705), big.NewInt(75), big.NewInt(8), big.NewInt(30), big.NewInt(2000))
		require.NoError(t, err)

		ev, err := d.Decode(types.Log{
			Topics:      []common.Hash{abiEvent.ID, userTopic},
			Data:        data,
			BlockNumber: 42,
			Index:       3,
		})
		require.NoError(t, err)
		assert.Equal(t, "HealthDataUpdated", ev.Name)
		assert.Equal(t, user, ev.User)
		assert.Equal(t, uint64(42), ev.BlockNumber)
		assert.Equal(t, uint(3), ev.LogIndex)
		require.NotNil(t, ev.Health)
		assert.Equal(t, FixedHealth{Weight: 705, SleepHours: 75, EnergyLevel: 8, Exercise: 30, WaterIntake: 2000}, *ev.Health)
	})

	t.Run("badge earned", func(t *testing.T) {
		abiEvent := d.abi.Events["BadgeEarned"]
		data, err := abiEvent.Inputs.NonIndexed().Pack(big.NewInt(1), "Workout Warrior")
		require.NoError(t, err)

		ev, err := d.Decode(types.Log{Topics: []common.Hash{abiEvent.ID, userTopic}, Data: data})
		require.NoError(t, err)
		require.NotNil(t, ev.BadgeID)
		assert.Equal(t, uint64(1), *ev.BadgeID)
		assert.Equal(t, "Workout Warrior", ev.BadgeName)
	})

	t.Run("badge purchased", func(t *testing.T) {
		abiEvent := d.abi.Events["BadgePurchased"]
		price := new(big.Int).Mul(big.NewInt(30), big.NewInt(1e18))
		data, err := abiEvent.Inputs.NonIndexed().Pack(big.NewInt(2), price)
		require.NoError(t, err)

		ev, err := d.Decode(types.Log{Topics: []common.Hash{abiEvent.ID, userTopic}, Data: data})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), *ev.BadgeID)
		assert.Equal(t, 0, price.Cmp(ev.Price))
	})

	t.Run("missing user topic", func(t *testing.T) {
		_, err := d.Decode(types.Log{Topics: []common.Hash{d.abi.Events["BadgeEarned"].ID}})
		assert.Error(t, err)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := d.Decode(types.Log{Topics: []common.Hash{common.HexToHash("0x01"), userTopic}})
		assert.Error(t, err)
	})
}

func TestBadgeFromOutputs(t *testing.T) {
	var kind [32]byte
	copy(kind[:], "HydrationHero")

	b, err := badgeFromOutputs(2, []interface{}{
		"Hydration Hero", "Maintained daily water intake", big.NewInt(30), big.NewInt(75), big.NewInt(74), kind, true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), b.ID)
	assert.Equal(t, "HydrationHero", b.Type)
	assert.Equal(t, uint64(75), b.Supply)
	assert.Equal(t, uint64(74), b.Remaining)
	assert.True(t, b.Active)

	_, err = badgeFromOutputs(2, []interface{}{"x"})
	assert.Error(t, err)
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, uint64(0), saturate(nil))
	assert.Equal(t, uint64(0), saturate(big.NewInt(-5)))
	assert.Equal(t, uint64(7), saturate(big.NewInt(7)))
	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	assert.Equal(t, ^uint64(0), saturate(huge))
}
