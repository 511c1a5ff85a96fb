package worker

import (
	"context"
	"fmt"

	"coinledger/internal/daemon"
	"coinledger/internal/ledger"
	"coinledger/internal/repository"
	"coinledger/internal/settings"

	"go.uber.org/zap"
)

// Observer mirrors wallet movements from the daemon into the ledger, scanning
// a sliding window of recent blocks behind a persisted cursor.
type Observer struct {
	logs       *zap.SugaredLogger
	chain      ChainSource
	reconciler Reconciler
	settings   Settings
	metrics    Metrics
}

func NewObserver(logger *zap.SugaredLogger, chain ChainSource, reconciler Reconciler, s Settings, m Metrics) *Observer {
	return &Observer{
		logs:       logger,
		chain:      chain,
		reconciler: reconciler,
		settings:   s,
		metrics:    m,
	}
}

func (o *Observer) Run(ctx context.Context) error {
	cursor, err := o.settings.Int(ctx, settings.CurrentBlockNumber)
	if err != nil {
		return fmt.Errorf("read cursor: %w", err)
	}
	window, err := o.settings.Int(ctx, settings.PreviousBlocksToCheck)
	if err != nil {
		return fmt.Errorf("read window: %w", err)
	}

	height, err := o.chain.BlockCount(ctx)
	if err != nil {
		return fmt.Errorf("get block count: %w", err)
	}

	from := max(cursor-window, 0)
	from = min(from, height)

	hash, err := o.chain.BlockHash(ctx, from)
	if err != nil {
		return fmt.Errorf("get block hash %d: %w", from, err)
	}

	entries, err := o.chain.ListSinceBlock(ctx, hash)
	if err != nil {
		return fmt.Errorf("list since block %d: %w", from, err)
	}

	o.logs.Infow("scanning wallet movements",
		"from", from,
		"height", height,
		"entries", len(entries))

	var failed int
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		event, ok := o.toEvent(entry, height)
		if !ok {
			continue
		}

		outcome, err := o.reconciler.Reconcile(ctx, event)
		if err != nil {
			failed++
			o.logs.Errorw("reconcile failed",
				"txid", entry.TxID,
				"category", entry.Category,
				"address", entry.Address,
				"error", err)
			o.metrics.Reconciled("error")
			continue
		}
		o.metrics.Reconciled(string(outcome))
	}

	next := min(cursor+window, height)
	if next > cursor {
		if err := o.settings.SetInt(ctx, settings.CurrentBlockNumber, next); err != nil {
			return fmt.Errorf("persist cursor: %w", err)
		}
		cursor = next
	}
	o.metrics.Cursor(cursor)

	if failed > 0 {
		o.logs.Warnw("scan finished with failures", "failed", failed, "entries", len(entries))
	}
	return nil
}

// toEvent drops movements that are not wallet sends or receives, and those
// the daemon does not trust or reports as conflicted.
func (o *Observer) toEvent(entry daemon.Entry, height int64) (ledger.ChainEvent, bool) {
	if entry.Category != repository.CategorySend && entry.Category != repository.CategoryReceive {
		return ledger.ChainEvent{}, false
	}
	if entry.Trusted != nil && !*entry.Trusted {
		o.logs.Debugw("skipping untrusted entry", "txid", entry.TxID, "category", entry.Category)
		return ledger.ChainEvent{}, false
	}

	var confirmations int64
	switch {
	case entry.Confirmations != nil:
		confirmations = *entry.Confirmations
	case entry.BlockHeight > 0:
		confirmations = height - entry.BlockHeight + 1
	}
	if confirmations < 0 {
		o.logs.Warnw("skipping conflicted entry", "txid", entry.TxID, "confirmations", confirmations)
		return ledger.ChainEvent{}, false
	}

	return ledger.ChainEvent{
		TxID:          entry.TxID,
		Category:      entry.Category,
		Address:       entry.Address,
		Amount:        entry.Amount,
		Fee:           entry.Fee,
		Confirmations: confirmations,
		BlockHash:     entry.BlockHash,
		BlockHeight:   entry.BlockHeight,
		BlockTime:     entry.BlockTime,
		Time:          entry.Time,
		TimeReceived:  entry.TimeReceived,
		To:            entry.To,
		Label:         entry.Label,
	}, true
}
