package worker

import (
	"context"
	"fmt"

	"coinledger/internal/metrics"
	"coinledger/internal/notify"
	"coinledger/internal/settings"

	"go.uber.org/zap"
)

// Dispatcher delivers creation and confirmation notices for derived
// transactions. A notice is flagged as sent only after the endpoint accepted
// it, so delivery is at least once.
type Dispatcher struct {
	logs     *zap.SugaredLogger
	outbox   Outbox
	notifier Notifier
	settings Settings
	metrics  Metrics
}

func NewDispatcher(logger *zap.SugaredLogger, outbox Outbox, notifier Notifier, s Settings, m Metrics) *Dispatcher {
	return &Dispatcher{
		logs:     logger,
		outbox:   outbox,
		notifier: notifier,
		settings: s,
		metrics:  m,
	}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	endpoint, err := d.settings.String(ctx, settings.TransactionNotificationAPI)
	if err != nil {
		return fmt.Errorf("read notification endpoint: %w", err)
	}

	pending, err := d.outbox.Unnotified(ctx)
	if err != nil {
		return fmt.Errorf("list pending notifications: %w", err)
	}

	var failed int
	for _, tx := range pending {
		kind := "creation"
		if tx.CreationNotified {
			kind = "confirmation"
		}

		if err := d.notifier.Post(ctx, endpoint, notify.NewPayload(tx)); err != nil {
			failed++
			d.logs.Warnw("notification not delivered",
				"transaction", tx.ID,
				"kind", kind,
				"error", err)
			d.metrics.Notified(kind, metrics.ResultError)
			continue
		}

		if err := d.outbox.MarkNotified(ctx, tx); err != nil {
			failed++
			d.logs.Errorw("mark notified",
				"transaction", tx.ID,
				"kind", kind,
				"error", err)
			d.metrics.Notified(kind, metrics.ResultError)
			continue
		}
		d.metrics.Notified(kind, metrics.ResultOK)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d notifications failed", failed, len(pending))
	}
	return nil
}
