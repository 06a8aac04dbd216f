package chain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

type EthereumConfig struct {
	RPCURL          string
	ChainID         int64
	ContractAddress string
	TokenAddress    string
	CallTimeout     time.Duration
}

var (
	_ Contract    = (*EthereumClient)(nil)
	_ Token       = (*EthereumClient)(nil)
	_ EventSource = (*EthereumClient)(nil)
)

// EthereumClient implements Contract, Token and EventSource over JSON-RPC.
type EthereumClient struct {
	rpc       *ethclient.Client
	wallet    *KeyedWallet
	timeout   time.Duration
	vitaAddr  common.Address
	tokenAddr common.Address
	vita      *bind.BoundContract
	token     *bind.BoundContract
	decoder   *LogDecoder
}

func Dial(ctx context.Context, cfg EthereumConfig, wallet *KeyedWallet) (*EthereumClient, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}
	if !common.IsHexAddress(cfg.TokenAddress) {
		return nil, fmt.Errorf("invalid token address %q", cfg.TokenAddress)
	}

	vitaABI, err := VitaVerseABI()
	if err != nil {
		return nil, err
	}
	tokenABI, err := TokenABI()
	if err != nil {
		return nil, err
	}

	rpc, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", Classify(err))
	}

	if cfg.ChainID > 0 {
		id, err := rpc.ChainID(ctx)
		if err != nil {
			rpc.Close()
			return nil, fmt.Errorf("failed to read chain id: %w", Classify(err))
		}
		if id.Int64() != cfg.ChainID {
			rpc.Close()
			return nil, fmt.Errorf("connected to chain %s, expected %d", id, cfg.ChainID)
		}
	}

	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	vitaAddr := common.HexToAddress(cfg.ContractAddress)
	tokenAddr := common.HexToAddress(cfg.TokenAddress)

	logrus.WithFields(logrus.Fields{
		"contract": vitaAddr.Hex(),
		"token":    tokenAddr.Hex(),
		"chain_id": cfg.ChainID,
	}).Info("Connected to Ethereum RPC")

	return &EthereumClient{
		rpc:       rpc,
		wallet:    wallet,
		timeout:   timeout,
		vitaAddr:  vitaAddr,
		tokenAddr: tokenAddr,
		vita:      bind.NewBoundContract(vitaAddr, vitaABI, rpc, rpc, rpc),
		token:     bind.NewBoundContract(tokenAddr, tokenABI, rpc, rpc, rpc),
		decoder:   &LogDecoder{abi: vitaABI},
	}, nil
}

func (c *EthereumClient) Close() {
	c.rpc.Close()
}

func (c *EthereumClient) ContractAddress() common.Address {
	return c.vitaAddr
}

func (c *EthereumClient) call(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) ([]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, Classify(fmt.Errorf("%s: %w", method, err))
	}
	return out, nil
}

// transact sends a write and blocks until it is mined. There is no timeout:
// once sent, a transaction runs to inclusion or until ctx is done.
func (c *EthereumClient) transact(ctx context.Context, contract *bind.BoundContract, from common.Address, method string, params ...interface{}) (*Receipt, error) {
	if c.wallet == nil {
		return nil, ErrWalletUnavailable
	}
	opts, err := c.wallet.transactor(ctx, from)
	if err != nil {
		return nil, err
	}

	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		return nil, Classify(fmt.Errorf("%s: %w", method, err))
	}

	log := logrus.WithFields(logrus.Fields{"method": method, "tx": tx.Hash().Hex(), "from": from.Hex()})
	log.Info("Transaction sent, waiting to be mined")

	receipt, err := bind.WaitMined(ctx, c.rpc, tx)
	if err != nil {
		return nil, Classify(fmt.Errorf("wait for %s: %w", method, err))
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		log.Warn("Transaction reverted")
		return nil, fmt.Errorf("%w: %s reverted in tx %s", ErrContractCall, method, tx.Hash().Hex())
	}

	log.WithField("block", receipt.BlockNumber.Uint64()).Info("Transaction mined")
	return &Receipt{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

func (c *EthereumClient) GetHealthData(ctx context.Context, user common.Address) (HealthData, error) {
	out, err := c.call(ctx, c.vita, "getHealthData", user)
	if err != nil {
		return HealthData{}, err
	}
	v, err := uints(out, 6)
	if err != nil {
		return HealthData{}, fmt.Errorf("%w: getHealthData: %w", ErrContractCall, err)
	}
	return HealthData{
		Weight:      v[0],
		SleepHours:  v[1],
		EnergyLevel: v[2],
		Exercise:    v[3],
		WaterIntake: v[4],
		LastUpdated: v[5],
	}, nil
}

func (c *EthereumClient) GetUserStats(ctx context.Context, user common.Address) (UserStats, error) {
	out, err := c.call(ctx, c.vita, "getUserStats", user)
	if err != nil {
		return UserStats{}, err
	}
	v, err := uints(out, 5)
	if err != nil {
		return UserStats{}, fmt.Errorf("%w: getUserStats: %w", ErrContractCall, err)
	}
	return UserStats{
		StreakDays:    v[0],
		LastUpdateDay: v[1],
		TotalExercise: v[2],
		WaterIntake:   v[3],
		BadgeCount:    v[4],
	}, nil
}

func (c *EthereumClient) GetTopHealthUsers(ctx context.Context, limit uint64) ([]common.Address, []*big.Int, error) {
	out, err := c.call(ctx, c.vita, "getTopHealthUsers", new(big.Int).SetUint64(limit))
	if err != nil {
		return nil, nil, err
	}
	if len(out) != 2 {
		return nil, nil, fmt.Errorf("%w: getTopHealthUsers returned %d values", ErrContractCall, len(out))
	}
	users, ok := out[0].([]common.Address)
	if !ok {
		return nil, nil, fmt.Errorf("%w: getTopHealthUsers: unexpected users type %T", ErrContractCall, out[0])
	}
	scores, ok := out[1].([]*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("%w: getTopHealthUsers: unexpected scores type %T", ErrContractCall, out[1])
	}
	if len(users) != len(scores) {
		return nil, nil, fmt.Errorf("%w: getTopHealthUsers: %d users but %d scores", ErrContractCall, len(users), len(scores))
	}
	return users, scores, nil
}

func (c *EthereumClient) GetAllActiveUsers(ctx context.Context) ([]common.Address, error) {
	out, err := c.call(ctx, c.vita, "getAllActiveUsers")
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: getAllActiveUsers returned %d values", ErrContractCall, len(out))
	}
	users, ok := out[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("%w: getAllActiveUsers: unexpected type %T", ErrContractCall, out[0])
	}
	return users, nil
}

func (c *EthereumClient) GetUserBadgeCounts(ctx context.Context, users []common.Address) ([]uint64, error) {
	if len(users) == 0 {
		return nil, nil
	}
	out, err := c.call(ctx, c.vita, "getUserBadgeCounts", users)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: getUserBadgeCounts returned %d values", ErrContractCall, len(out))
	}
	raw, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: getUserBadgeCounts: unexpected type %T", ErrContractCall, out[0])
	}
	if len(raw) != len(users) {
		return nil, fmt.Errorf("%w: getUserBadgeCounts: %d counts for %d users", ErrContractCall, len(raw), len(users))
	}
	counts := make([]uint64, len(raw))
	for i, n := range raw {
		counts[i] = saturate(n)
	}
	return counts, nil
}

func (c *EthereumClient) HasBadge(ctx context.Context, user common.Address, badgeID uint64) (bool, error) {
	out, err := c.call(ctx, c.vita, "hasBadge", user, new(big.Int).SetUint64(badgeID))
	if err != nil {
		return false, err
	}
	if len(out) != 1 {
		return false, fmt.Errorf("%w: hasBadge returned %d values", ErrContractCall, len(out))
	}
	has, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("%w: hasBadge: unexpected type %T", ErrContractCall, out[0])
	}
	return has, nil
}

func (c *EthereumClient) GetBadge(ctx context.Context, badgeID uint64) (BadgeDetails, error) {
	out, err := c.call(ctx, c.vita, "badges", new(big.Int).SetUint64(badgeID))
	if err != nil {
		return BadgeDetails{}, err
	}
	details, err := badgeFromOutputs(badgeID, out)
	if err != nil {
		return BadgeDetails{}, fmt.Errorf("%w: badges(%d): %w", ErrContractCall, badgeID, err)
	}
	return details, nil
}

func (c *EthereumClient) UpdateHealthData(ctx context.Context, from common.Address, h FixedHealth) (*Receipt, error) {
	return c.transact(ctx, c.vita, from, "updateHealthData",
		new(big.Int).SetUint64(h.Weight),
		new(big.Int).SetUint64(h.SleepHours),
		new(big.Int).SetUint64(h.EnergyLevel),
		new(big.Int).SetUint64(h.Exercise),
		new(big.Int).SetUint64(h.WaterIntake),
	)
}

func (c *EthereumClient) PurchaseBadge(ctx context.Context, from common.Address, badgeID uint64) (*Receipt, error) {
	return c.transact(ctx, c.vita, from, "purchaseBadge", new(big.Int).SetUint64(badgeID))
}

func (c *EthereumClient) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.token, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return singleBig("balanceOf", out)
}

func (c *EthereumClient) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.token, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return singleBig("allowance", out)
}

func (c *EthereumClient) Approve(ctx context.Context, from, spender common.Address, amount *big.Int) (*Receipt, error) {
	return c.transact(ctx, c.token, from, "approve", spender, amount)
}

func (c *EthereumClient) LatestBlock(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	n, err := c.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, Classify(fmt.Errorf("block number: %w", err))
	}
	return n, nil
}

func (c *EthereumClient) FetchEvents(ctx context.Context, fromBlock, toBlock uint64) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	logs, err := c.rpc.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.vitaAddr},
		Topics:    [][]common.Hash{c.decoder.Topics()},
	})
	if err != nil {
		return nil, Classify(fmt.Errorf("filter logs %d-%d: %w", fromBlock, toBlock, err))
	}

	events := make([]Event, 0, len(logs))
	for _, lg := range logs {
		if lg.Removed {
			continue
		}
		ev, err := c.decoder.Decode(lg)
		if err != nil {
			logrus.WithError(err).WithField("tx", lg.TxHash.Hex()).Warn("Skipping undecodable log")
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// LogDecoder turns raw VitaVerse logs into Events.
type LogDecoder struct {
	abi abi.ABI
}

func NewLogDecoder() (*LogDecoder, error) {
	parsed, err := VitaVerseABI()
	if err != nil {
		return nil, err
	}
	return &LogDecoder{abi: parsed}, nil
}

// Topics lists the signature hashes of the decoded events.
func (d *LogDecoder) Topics() []common.Hash {
	var topics []common.Hash
	for _, name := range []string{"HealthDataUpdated", "BadgeEarned", "BadgePurchased"} {
		if ev, ok := d.abi.Events[name]; ok {
			topics = append(topics, ev.ID)
		}
	}
	return topics
}

func (d *LogDecoder) Decode(lg types.Log) (Event, error) {
	if len(lg.Topics) < 2 {
		return Event{}, errors.New("log has no indexed user")
	}
	abiEvent, err := d.abi.EventByID(lg.Topics[0])
	if err != nil {
		return Event{}, err
	}

	values := make(map[string]interface{})
	if err := d.abi.UnpackIntoMap(values, abiEvent.Name, lg.Data); err != nil {
		return Event{}, fmt.Errorf("unpack %s: %w", abiEvent.Name, err)
	}

	ev := Event{
		Name:        abiEvent.Name,
		User:        common.BytesToAddress(lg.Topics[1].Bytes()),
		TxHash:      lg.TxHash.Hex(),
		LogIndex:    lg.Index,
		BlockNumber: lg.BlockNumber,
	}

	switch abiEvent.Name {
	case "HealthDataUpdated":
		ev.Health = &FixedHealth{
			Weight:      bigField(values, "weight"),
			SleepHours:  bigField(values, "sleepHours"),
			EnergyLevel: bigField(values, "energyLevel"),
			Exercise:    bigField(values, "exercise"),
			WaterIntake: bigField(values, "waterIntake"),
		}
	case "BadgeEarned":
		id := bigField(values, "badgeId")
		ev.BadgeID = &id
		ev.BadgeName, _ = values["badgeName"].(string)
	case "BadgePurchased":
		id := bigField(values, "badgeId")
		ev.BadgeID = &id
		if price, ok := values["price"].(*big.Int); ok {
			ev.Price = price
		}
	default:
		return Event{}, fmt.Errorf("unsupported event %s", abiEvent.Name)
	}
	return ev, nil
}

func bigField(values map[string]interface{}, name string) uint64 {
	n, _ := values[name].(*big.Int)
	return saturate(n)
}

// saturate converts to uint64, clamping values that do not fit.
func saturate(n *big.Int) uint64 {
	if n == nil || n.Sign() < 0 {
		return 0
	}
	if !n.IsUint64() {
		return ^uint64(0)
	}
	return n.Uint64()
}

func uints(out []interface{}, want int) ([]uint64, error) {
	if len(out) != want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(out))
	}
	v := make([]uint64, want)
	for i, raw := range out {
		n, ok := raw.(*big.Int)
		if !ok {
			return nil, fmt.Errorf("value %d: unexpected type %T", i, raw)
		}
		v[i] = saturate(n)
	}
	return v, nil
}

func singleBig(method string, out []interface{}) (*big.Int, error) {
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrContractCall, method, len(out))
	}
	n, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unexpected type %T", ErrContractCall, method, out[0])
	}
	return n, nil
}

func badgeFromOutputs(id uint64, out []interface{}) (BadgeDetails, error) {
	if len(out) != 7 {
		return BadgeDetails{}, fmt.Errorf("expected 7 values, got %d", len(out))
	}
	name, ok1 := out[0].(string)
	desc, ok2 := out[1].(string)
	price, ok3 := out[2].(*big.Int)
	supply, ok4 := out[3].(*big.Int)
	remaining, ok5 := out[4].(*big.Int)
	kind, ok6 := out[5].([32]byte)
	active, ok7 := out[6].(bool)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7) {
		return BadgeDetails{}, errors.New("unexpected output types")
	}
	return BadgeDetails{
		ID:          id,
		Name:        name,
		Description: desc,
		Price:       price,
		Supply:      saturate(supply),
		Remaining:   saturate(remaining),
		Type:        string(bytes.TrimRight(kind[:], "\x00")),
		Active:      active,
	}, nil
}
