package handler

import (
	"context"
	"net/http"

	"coinledger/internal/ledger"
	"coinledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AddressService . AddressService
type AddressService interface {
	List(ctx context.Context, filter repository.AddressFilter) ([]repository.Address, error)
	Find(ctx context.Context, ownerID *string, address string) (repository.Address, error)
	Allocate(ctx context.Context, ownerID string) (repository.Address, error)
	Disable(ctx context.Context, ownerID *string, address string) (repository.Address, error)
}

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	Submit(ctx context.Context, req ledger.PaymentRequest) (repository.TransactionRequest, error)
	ListRequests(ctx context.Context, ownerID string) ([]repository.TransactionRequest, error)
	ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]repository.Transaction, error)
	Reconcile(ctx context.Context, event ledger.ChainEvent) (ledger.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name PoolTrigger . PoolTrigger
type PoolTrigger interface {
	Trigger()
}
