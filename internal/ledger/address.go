package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinledger/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceKind selects the sub-balance an operation applies to.
type BalanceKind int

const (
	Available BalanceKind = iota
	Locked
)

func (k BalanceKind) String() string {
	if k == Locked {
		return "locked"
	}
	return "available"
}

// AddressLedger owns address records and every balance mutation.
type AddressLedger struct {
	logs   *zap.SugaredLogger
	store  AddressStore
	issuer AddressIssuer
	locker Locker
	now    func() time.Time
}

func NewAddressLedger(logger *zap.SugaredLogger, store AddressStore, issuer AddressIssuer, locker Locker) *AddressLedger {
	return &AddressLedger{
		logs:   logger,
		store:  store,
		issuer: issuer,
		locker: locker,
		now:    time.Now,
	}
}

// List returns enabled addresses matching the filter, oldest first.
func (l *AddressLedger) List(ctx context.Context, filter repository.AddressFilter) ([]repository.Address, error) {
	filter.Any = false
	addresses, err := l.store.ListAddresses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

// ListFree returns enabled addresses without an owner, oldest first.
func (l *AddressLedger) ListFree(ctx context.Context) ([]repository.Address, error) {
	return l.List(ctx, repository.AddressFilter{FreeOnly: true})
}

// RegisterFromDaemon records a daemon-issued address with a zero balance.
func (l *AddressLedger) RegisterFromDaemon(ctx context.Context, ownerID *string, address string) (repository.Address, error) {
	return l.register(ctx, ownerID, address, true)
}

func (l *AddressLedger) register(ctx context.Context, ownerID *string, address string, enabled bool) (repository.Address, error) {
	now := l.now()
	record := repository.Address{
		OwnerID: ownerID,
		Address: address,
		Balance: repository.Balance{
			Available: decimal.Zero,
			Locked:    decimal.Zero,
		},
		IsEnabled: enabled,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := l.store.CreateAddress(ctx, &record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.Address{}, fmt.Errorf("register %s: %w", address, ErrDuplicate)
		}
		return repository.Address{}, fmt.Errorf("register %s: %w", address, err)
	}

	l.logs.Infow("address registered", "address", address, "owner", ownerID, "enabled", enabled)
	return record, nil
}

// CreateFromDaemon asks the daemon for a fresh address and registers it.
func (l *AddressLedger) CreateFromDaemon(ctx context.Context, ownerID *string) (repository.Address, error) {
	address, err := l.issuer.CreateAddress(ctx)
	if err != nil {
		return repository.Address{}, fmt.Errorf("create daemon address: %w", err)
	}
	return l.RegisterFromDaemon(ctx, ownerID, address)
}

// Allocate hands the oldest free address to ownerID, or a brand-new daemon
// address when the pool is empty.
func (l *AddressLedger) Allocate(ctx context.Context, ownerID string) (repository.Address, error) {
	if ownerID == "" {
		return repository.Address{}, fmt.Errorf("%w: owner id is required", ErrValidation)
	}

	free, err := l.ListFree(ctx)
	if err != nil {
		return repository.Address{}, err
	}

	for _, candidate := range free {
		claimed, ok, err := l.claim(ctx, candidate.Address, ownerID)
		if err != nil {
			return repository.Address{}, err
		}
		if ok {
			l.logs.Infow("address allocated from pool", "address", claimed.Address, "owner", ownerID)
			return claimed, nil
		}
	}

	record, err := l.CreateFromDaemon(ctx, nil)
	if err != nil {
		return repository.Address{}, err
	}

	claimed, ok, err := l.claim(ctx, record.Address, ownerID)
	if err != nil {
		return repository.Address{}, err
	}
	if !ok {
		return repository.Address{}, fmt.Errorf("claim new address %s: taken concurrently", record.Address)
	}

	l.logs.Infow("address allocated from daemon", "address", claimed.Address, "owner", ownerID)
	return claimed, nil
}

// claim assigns the owner if the address is still free when locked.
func (l *AddressLedger) claim(ctx context.Context, address, ownerID string) (repository.Address, bool, error) {
	release, err := l.locker.Acquire(ctx, address)
	if err != nil {
		return repository.Address{}, false, fmt.Errorf("lock %s: %w", address, err)
	}
	defer release()

	record, err := l.store.GetAddress(ctx, address)
	if err != nil {
		return repository.Address{}, false, fmt.Errorf("load %s: %w", address, err)
	}
	if record.OwnerID != nil || !record.IsEnabled {
		return repository.Address{}, false, nil
	}

	record.OwnerID = &ownerID
	record.IsEnabled = true
	record.UpdatedAt = l.now()
	if err := l.store.UpdateAddress(ctx, &record); err != nil {
		return repository.Address{}, false, fmt.Errorf("assign %s: %w", address, err)
	}

	return record, true, nil
}

// Find returns an enabled address. A nil ownerID matches any owner.
func (l *AddressLedger) Find(ctx context.Context, ownerID *string, address string) (repository.Address, error) {
	addresses, err := l.store.ListAddresses(ctx, repository.AddressFilter{OwnerID: ownerID, Address: address})
	if err != nil {
		return repository.Address{}, fmt.Errorf("find address: %w", err)
	}
	if len(addresses) == 0 {
		return repository.Address{}, fmt.Errorf("address %s: %w", address, ErrNotFound)
	}
	return addresses[0], nil
}

// Ensure returns the address record in any state, registering it as free
// when the ledger has never seen it.
func (l *AddressLedger) Ensure(ctx context.Context, address string) (repository.Address, error) {
	record, err := l.store.GetAddress(ctx, address)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return repository.Address{}, fmt.Errorf("load %s: %w", address, err)
	}

	record, err = l.RegisterFromDaemon(ctx, nil, address)
	if errors.Is(err, ErrDuplicate) {
		return l.store.GetAddress(ctx, address)
	}
	return record, err
}

// Track returns the address record in any state. Unknown addresses are
// recorded disabled and ownerless, so they never join the free pool.
func (l *AddressLedger) Track(ctx context.Context, address string) (repository.Address, error) {
	record, err := l.store.GetAddress(ctx, address)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return repository.Address{}, fmt.Errorf("load %s: %w", address, err)
	}

	record, err = l.register(ctx, nil, address, false)
	if errors.Is(err, ErrDuplicate) {
		return l.store.GetAddress(ctx, address)
	}
	return record, err
}

// Exists reports whether the ledger knows the address, enabled or not.
func (l *AddressLedger) Exists(ctx context.Context, address string) (bool, error) {
	_, err := l.store.GetAddress(ctx, address)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("load %s: %w", address, err)
	}
}

func (l *AddressLedger) Disable(ctx context.Context, ownerID *string, address string) (repository.Address, error) {
	if _, err := l.Find(ctx, ownerID, address); err != nil {
		return repository.Address{}, err
	}

	release, err := l.locker.Acquire(ctx, address)
	if err != nil {
		return repository.Address{}, fmt.Errorf("lock %s: %w", address, err)
	}
	defer release()

	record, err := l.store.GetAddress(ctx, address)
	if err != nil {
		return repository.Address{}, fmt.Errorf("load %s: %w", address, err)
	}

	record.IsEnabled = false
	record.UpdatedAt = l.now()
	if err := l.store.UpdateAddress(ctx, &record); err != nil {
		return repository.Address{}, fmt.Errorf("disable %s: %w", address, err)
	}

	l.logs.Infow("address disabled", "address", address, "owner", ownerID)
	return record, nil
}

func (l *AddressLedger) Deposit(ctx context.Context, address string, amount decimal.Decimal, kind BalanceKind) (repository.Address, error) {
	return l.mutate(ctx, address, amount, kind, false)
}

func (l *AddressLedger) Withdraw(ctx context.Context, address string, amount decimal.Decimal, kind BalanceKind) (repository.Address, error) {
	return l.mutate(ctx, address, amount, kind, true)
}

func (l *AddressLedger) HasFunds(ctx context.Context, address string, amount decimal.Decimal, kind BalanceKind) (bool, error) {
	balance, err := l.Balance(ctx, address)
	if err != nil {
		return false, err
	}
	return pick(&balance, kind).GreaterThanOrEqual(repository.Round(amount)), nil
}

func (l *AddressLedger) Balance(ctx context.Context, address string) (repository.Balance, error) {
	record, err := l.store.GetAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Balance{}, fmt.Errorf("address %s: %w", address, ErrNotFound)
		}
		return repository.Balance{}, fmt.Errorf("load %s: %w", address, err)
	}
	return record.Balance, nil
}

// mutate is the only place balances change: lock, load, compute, persist.
func (l *AddressLedger) mutate(ctx context.Context, address string, amount decimal.Decimal, kind BalanceKind, withdraw bool) (repository.Address, error) {
	amount = repository.Round(amount)
	if !amount.IsPositive() {
		return repository.Address{}, fmt.Errorf("%w: amount must be positive, got %s", ErrValidation, amount)
	}

	release, err := l.locker.Acquire(ctx, address)
	if err != nil {
		return repository.Address{}, fmt.Errorf("lock %s: %w", address, err)
	}
	defer release()

	record, err := l.store.GetAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Address{}, fmt.Errorf("address %s: %w", address, ErrNotFound)
		}
		return repository.Address{}, fmt.Errorf("load %s: %w", address, err)
	}

	target := pick(&record.Balance, kind)
	if withdraw {
		if target.LessThan(amount) {
			return repository.Address{}, fmt.Errorf("withdraw %s %s from %s holding %s: %w",
				amount, kind, address, *target, ErrInsufficientFunds)
		}
		*target = repository.Round(target.Sub(amount))
	} else {
		*target = repository.Round(target.Add(amount))
	}
	record.UpdatedAt = l.now()

	if err := l.store.UpdateAddress(ctx, &record); err != nil {
		return repository.Address{}, fmt.Errorf("persist balance of %s: %w", address, err)
	}

	l.logs.Debugw("balance updated",
		"address", address,
		"kind", kind.String(),
		"withdraw", withdraw,
		"amount", amount.String(),
		"available", record.Balance.Available.String(),
		"locked", record.Balance.Locked.String())
	return record, nil
}

func pick(balance *repository.Balance, kind BalanceKind) *decimal.Decimal {
	if kind == Locked {
		return &balance.Locked
	}
	return &balance.Available
}
