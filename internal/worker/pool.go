package worker

import (
	"context"
	"errors"
	"fmt"

	"coinledger/internal/ledger"
	"coinledger/internal/settings"

	"go.uber.org/zap"
)

// PoolMaintainer keeps the ledger aware of every daemon address and keeps
// enough free addresses around for allocation.
type PoolMaintainer struct {
	logs     *zap.SugaredLogger
	source   AddressSource
	pool     AddressPool
	settings Settings
	metrics  Metrics
}

func NewPoolMaintainer(logger *zap.SugaredLogger, source AddressSource, pool AddressPool, s Settings, m Metrics) *PoolMaintainer {
	return &PoolMaintainer{
		logs:     logger,
		source:   source,
		pool:     pool,
		settings: s,
		metrics:  m,
	}
}

func (p *PoolMaintainer) Run(ctx context.Context) error {
	syncErr := p.Synchronize(ctx)
	if syncErr != nil {
		p.logs.Warnw("address synchronization incomplete", "error", syncErr)
	}
	return errors.Join(syncErr, p.Maintain(ctx))
}

// Synchronize registers daemon addresses the ledger has never seen as free.
func (p *PoolMaintainer) Synchronize(ctx context.Context) error {
	addresses, err := p.source.ListAddresses(ctx)
	if err != nil {
		return fmt.Errorf("list daemon addresses: %w", err)
	}

	var (
		errs       []error
		registered int
	)
	for _, address := range addresses {
		exists, err := p.pool.Exists(ctx, address)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if exists {
			continue
		}

		if _, err := p.pool.RegisterFromDaemon(ctx, nil, address); err != nil {
			if errors.Is(err, ledger.ErrDuplicate) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		registered++
	}

	if registered > 0 {
		p.logs.Infow("daemon addresses synchronized", "registered", registered, "daemon", len(addresses))
	}
	return errors.Join(errs...)
}

// Maintain tops the free pool up to minimumAddressPoolSize.
func (p *PoolMaintainer) Maintain(ctx context.Context) error {
	size, err := p.settings.Int(ctx, settings.MinimumAddressPoolSize)
	if err != nil {
		return fmt.Errorf("read pool size: %w", err)
	}

	free, err := p.pool.ListFree(ctx)
	if err != nil {
		return fmt.Errorf("list free addresses: %w", err)
	}

	available := len(free)
	deficit := size - int64(available)
	for i := int64(0); i < deficit; i++ {
		if _, err := p.pool.CreateFromDaemon(ctx, nil); err != nil {
			p.metrics.FreeAddresses(available)
			return fmt.Errorf("create pool address %d of %d: %w", i+1, deficit, err)
		}
		available++
	}
	p.metrics.FreeAddresses(available)

	if deficit > 0 {
		p.logs.Infow("address pool replenished", "created", deficit, "free", available)
	}
	return nil
}
