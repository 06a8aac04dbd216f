package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"vitaverse/internal/chain"
	"vitaverse/internal/models"
	"vitaverse/internal/notify"
	"vitaverse/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultIndexerName = "vitaverse"
	backfillCursorName = "vitaverse:backfill"
)

type IndexerOptions struct {
	Name       string
	Interval   time.Duration
	StartBlock uint64
	BatchSize  uint64
}

// EventIndexer copies contract events into the database, publishes them and
// invalidates the leaderboard when user metrics change.
type EventIndexer struct {
	source      chain.EventSource
	events      repository.ContractEventRepository
	publisher   notify.Publisher
	invalidator SnapshotInvalidator
	opts        IndexerOptions

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.RWMutex

	lastBlock   uint64
	lastRun     time.Time
	lastError   string
	indexed     int64
	publishErrs int64
}

func NewEventIndexer(
	source chain.EventSource,
	events repository.ContractEventRepository,
	publisher notify.Publisher,
	invalidator SnapshotInvalidator,
	opts IndexerOptions,
) *EventIndexer {
	if opts.Name == "" {
		opts.Name = DefaultIndexerName
	}
	if opts.Interval <= 0 {
		opts.Interval = 15 * time.Second
	}
	if opts.BatchSize == 0 {
		opts.BatchSize = 2000
	}
	if publisher == nil {
		publisher = notify.NoopPublisher{}
	}
	return &EventIndexer{
		source:      source,
		events:      events,
		publisher:   publisher,
		invalidator: invalidator,
		opts:        opts,
	}
}

// ========== LIFECYCLE ==========

func (w *EventIndexer) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	stop := make(chan struct{})
	w.stopChan = stop
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop(stop)

	logrus.WithFields(logrus.Fields{
		"name":     w.opts.Name,
		"interval": w.opts.Interval.String(),
	}).Info("Event indexer started")
}

func (w *EventIndexer) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stop := w.stopChan
	w.mu.Unlock()

	close(stop)
	w.wg.Wait()
	logrus.Info("Event indexer stopped")
}

func (w *EventIndexer) loop(stop <-chan struct{}) {
	defer w.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()

	for {
		if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
			logrus.WithError(err).Warn("Event indexing pass failed")
		}
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// ========== INDEXING ==========

// RunOnce indexes from the stored cursor up to the latest block, one batch
// at a time. It returns the number of newly stored events.
func (w *EventIndexer) RunOnce(ctx context.Context) (int64, error) {
	latest, err := w.source.LatestBlock(ctx)
	if err != nil {
		w.recordError(err)
		return 0, err
	}

	cursor, found, err := w.events.GetCursor(w.opts.Name)
	if err != nil {
		w.recordError(err)
		return 0, fmt.Errorf("failed to read cursor: %w", err)
	}
	from := w.opts.StartBlock
	if found {
		from = cursor + 1
	}

	var total int64
	for from <= latest {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		to := from + w.opts.BatchSize - 1
		if to > latest {
			to = latest
		}
		n, err := w.indexRange(ctx, w.opts.Name, from, to)
		total += n
		if err != nil {
			w.recordError(err)
			return total, err
		}
		from = to + 1
	}

	w.mu.Lock()
	w.lastBlock = latest
	w.lastRun = time.Now()
	w.lastError = ""
	w.mu.Unlock()
	return total, nil
}

// Backfill indexes a fixed block range without touching the live cursor.
// Events already stored are skipped.
func (w *EventIndexer) Backfill(ctx context.Context, from, to uint64) (int64, error) {
	if to < from {
		return 0, fmt.Errorf("%w: backfill range %d-%d is empty", ErrInvalidInput, from, to)
	}
	var total int64
	for start := from; start <= to; {
		end := start + w.opts.BatchSize - 1
		if end > to || end < start {
			end = to
		}
		n, err := w.indexRange(ctx, backfillCursorName, start, end)
		total += n
		if err != nil {
			return total, err
		}
		if end == to {
			break
		}
		start = end + 1
	}
	return total, nil
}

func (w *EventIndexer) indexRange(ctx context.Context, cursor string, from, to uint64) (int64, error) {
	raw, err := w.source.FetchEvents(ctx, from, to)
	if err != nil {
		return 0, err
	}

	rows := make([]models.ContractEvent, 0, len(raw))
	for _, ev := range raw {
		rows = append(rows, ToContractEvent(ev))
	}

	stored, err := w.events.StoreBatch(cursor, to, rows)
	if err != nil {
		return 0, fmt.Errorf("failed to store events %d-%d: %w", from, to, err)
	}
	inserted := int64(len(stored))

	w.mu.Lock()
	w.indexed += inserted
	w.mu.Unlock()

	if inserted == 0 {
		return 0, nil
	}

	// rows skipped as already indexed were published when first stored
	for _, row := range stored {
		if err := w.publisher.Publish(row); err != nil {
			w.mu.Lock()
			w.publishErrs++
			w.mu.Unlock()
			logrus.WithError(err).WithField("tx", row.TxHash).Warn("Failed to publish contract event")
		}
	}

	if w.invalidator != nil {
		w.invalidator.Invalidate(ctx)
	}

	logrus.WithFields(logrus.Fields{
		"from":     from,
		"to":       to,
		"inserted": inserted,
	}).Info("Indexed contract events")
	return inserted, nil
}

// ToContractEvent maps a decoded log to its stored form. Addresses are kept
// lower case so lookups do not depend on checksum casing.
func ToContractEvent(ev chain.Event) models.ContractEvent {
	row := models.ContractEvent{
		Name:        ev.Name,
		UserAddress: strings.ToLower(ev.User.Hex()),
		BadgeID:     ev.BadgeID,
		BadgeName:   ev.BadgeName,
		TxHash:      ev.TxHash,
		LogIndex:    ev.LogIndex,
		BlockNumber: ev.BlockNumber,
	}
	if ev.Price != nil {
		row.Price = decimal.NewNullDecimal(decimal.NewFromBigInt(ev.Price, 0))
	}
	if h := ev.Health; h != nil {
		weight, sleep, energy, exercise, water := h.Weight, h.SleepHours, h.EnergyLevel, h.Exercise, h.WaterIntake
		row.Weight = &weight
		row.SleepHours = &sleep
		row.EnergyLevel = &energy
		row.Exercise = &exercise
		row.WaterIntake = &water
	}
	return row
}

func (w *EventIndexer) recordError(err error) {
	w.mu.Lock()
	w.lastError = err.Error()
	w.lastRun = time.Now()
	w.mu.Unlock()
}

func (w *EventIndexer) GetStatus() map[string]interface{} {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return map[string]interface{}{
		"running":        w.running,
		"name":           w.opts.Name,
		"interval":       w.opts.Interval.String(),
		"batch_size":     w.opts.BatchSize,
		"last_block":     w.lastBlock,
		"last_run":       w.lastRun,
		"last_error":     w.lastError,
		"indexed":        w.indexed,
		"publish_errors": w.publishErrs,
	}
}
