package ledger

import (
	"context"

	"coinledger/internal/daemon"
	"coinledger/internal/repository"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AddressStore . AddressStore
type AddressStore interface {
	ListAddresses(ctx context.Context, filter repository.AddressFilter) ([]repository.Address, error)
	GetAddress(ctx context.Context, address string) (repository.Address, error)
	CreateAddress(ctx context.Context, address *repository.Address) error
	UpdateAddress(ctx context.Context, address *repository.Address) error
}

//counterfeiter:generate -o fake -fake-name TransactionStore . TransactionStore
type TransactionStore interface {
	CreateTransactionRequest(ctx context.Context, request *repository.TransactionRequest) error
	UpdateTransactionRequest(ctx context.Context, request *repository.TransactionRequest) error
	GetTransactionRequestByHash(ctx context.Context, hash string) (repository.TransactionRequest, error)
	ListTransactionRequests(ctx context.Context, ownerID string) ([]repository.TransactionRequest, error)
	GetBlockchainTransaction(ctx context.Context, txID string, category string) (repository.BlockchainTransaction, error)
	CreateBlockchainTransaction(ctx context.Context, record *repository.BlockchainTransaction) error
	UpdateBlockchainTransaction(ctx context.Context, record *repository.BlockchainTransaction) error
	GetTransaction(ctx context.Context, address string, hash string) (repository.Transaction, error)
	CreateTransaction(ctx context.Context, tx *repository.Transaction) error
	MarkTransactionConfirmed(ctx context.Context, id string) error
	MarkTransactionNotified(ctx context.Context, id string, confirmation bool) error
	ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]repository.Transaction, error)
	ListUnnotifiedTransactions(ctx context.Context) ([]repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name AddressIssuer . AddressIssuer
type AddressIssuer interface {
	CreateAddress(ctx context.Context) (string, error)
}

//counterfeiter:generate -o fake -fake-name PaymentDaemon . PaymentDaemon
type PaymentDaemon interface {
	EstimateFee(ctx context.Context) (decimal.Decimal, error)
	SendToAddress(ctx context.Context, to string, amount decimal.Decimal, comment string, commentTo string) (string, error)
	Transaction(ctx context.Context, hash string) (daemon.TransactionDetail, error)
}

//counterfeiter:generate -o fake -fake-name Locker . Locker
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

//counterfeiter:generate -o fake -fake-name Settings . Settings
type Settings interface {
	Int(ctx context.Context, key string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name Addresses . Addresses
type Addresses interface {
	Find(ctx context.Context, ownerID *string, address string) (repository.Address, error)
	Ensure(ctx context.Context, address string) (repository.Address, error)
	Track(ctx context.Context, address string) (repository.Address, error)
	Deposit(ctx context.Context, address string, amount decimal.Decimal, kind BalanceKind) (repository.Address, error)
	Withdraw(ctx context.Context, address string, amount decimal.Decimal, kind BalanceKind) (repository.Address, error)
	HasFunds(ctx context.Context, address string, amount decimal.Decimal, kind BalanceKind) (bool, error)
}
