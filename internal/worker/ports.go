package worker

import (
	"context"
	"time"

	"coinledger/internal/daemon"
	"coinledger/internal/ledger"
	"coinledger/internal/notify"
	"coinledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Job . Job
type Job interface {
	Run(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name Metrics . Metrics
type Metrics interface {
	Cycle(worker string, result string, took time.Duration)
	Reconciled(outcome string)
	Notified(kind string, result string)
	Cursor(height int64)
	FreeAddresses(count int)
}

//counterfeiter:generate -o fake -fake-name Settings . Settings
type Settings interface {
	String(ctx context.Context, key string) (string, error)
	Int(ctx context.Context, key string) (int64, error)
	SetInt(ctx context.Context, key string, value int64) error
}

//counterfeiter:generate -o fake -fake-name ChainSource . ChainSource
type ChainSource interface {
	BlockCount(ctx context.Context) (int64, error)
	BlockHash(ctx context.Context, height int64) (string, error)
	ListSinceBlock(ctx context.Context, hash string) ([]daemon.Entry, error)
}

//counterfeiter:generate -o fake -fake-name Reconciler . Reconciler
type Reconciler interface {
	Reconcile(ctx context.Context, event ledger.ChainEvent) (ledger.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name AddressSource . AddressSource
type AddressSource interface {
	ListAddresses(ctx context.Context) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name AddressPool . AddressPool
type AddressPool interface {
	ListFree(ctx context.Context) ([]repository.Address, error)
	Exists(ctx context.Context, address string) (bool, error)
	RegisterFromDaemon(ctx context.Context, ownerID *string, address string) (repository.Address, error)
	CreateFromDaemon(ctx context.Context, ownerID *string) (repository.Address, error)
}

//counterfeiter:generate -o fake -fake-name Outbox . Outbox
type Outbox interface {
	Unnotified(ctx context.Context) ([]repository.Transaction, error)
	MarkNotified(ctx context.Context, tx repository.Transaction) error
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Post(ctx context.Context, endpoint string, payload notify.Payload) error
}
