package repository

import (
	"context"
	"errors"
	"fmt"

	"coinledger/internal/db"

	"github.com/google/uuid"
)

var ErrNotFound error = errors.New("record not found")
var ErrDuplicate error = errors.New("record already exists")

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

// MigrateAndSeed creates the schema and inserts configuration values that
// are not present yet. Existing values are left untouched.
func (r *Repository) MigrateAndSeed(ctx context.Context, defaults []Configuration) error {
	err := r.db.MigrateTable(
		&Address{},
		&TransactionRequest{},
		&BlockchainTransaction{},
		&Transaction{},
		&Configuration{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	err = r.db.SeedTable(ctx, &defaults)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

// Reset wipes every ledger table.
func (r *Repository) Reset(ctx context.Context) error {
	for _, model := range []any{
		&Transaction{},
		&BlockchainTransaction{},
		&TransactionRequest{},
		&Address{},
	} {
		if err := r.db.Clear(ctx, model); err != nil {
			return fmt.Errorf("reset %T: %w", model, err)
		}
	}
	return nil
}

func (r *Repository) ListAddresses(ctx context.Context, filter AddressFilter) ([]Address, error) {
	conditions := map[string]any{}
	if !filter.Any {
		conditions["is_enabled"] = true
	}
	if filter.OwnerID != nil {
		conditions["owner_id"] = *filter.OwnerID
	}
	if filter.FreeOnly {
		conditions["owner_id"] = nil
	}
	if filter.Address != "" {
		conditions["address"] = filter.Address
	}

	var addresses []Address
	err := r.db.GetAllBy(ctx, db.Filter{
		Conditions: nonEmpty(conditions),
		Order:      "created_at asc, id asc",
	}, &addresses)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	return addresses, nil
}

// GetAddress looks an address up regardless of its enabled flag.
func (r *Repository) GetAddress(ctx context.Context, address string) (Address, error) {
	var record Address
	err := r.db.GetOneBy(ctx, db.Filter{Conditions: map[string]any{"address": address}}, &record)
	if err != nil {
		return Address{}, mapErr("get address", err)
	}

	return record, nil
}

func (r *Repository) CreateAddress(ctx context.Context, address *Address) error {
	if address.ID == "" {
		address.ID = uuid.NewString()
	}
	return mapErr("create address", r.db.Create(ctx, address))
}

func (r *Repository) UpdateAddress(ctx context.Context, address *Address) error {
	return mapErr("update address", r.db.Save(ctx, address))
}

func (r *Repository) CreateTransactionRequest(ctx context.Context, request *TransactionRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	return mapErr("create transaction request", r.db.Create(ctx, request))
}

func (r *Repository) UpdateTransactionRequest(ctx context.Context, request *TransactionRequest) error {
	return mapErr("update transaction request", r.db.Save(ctx, request))
}

func (r *Repository) GetTransactionRequestByHash(ctx context.Context, hash string) (TransactionRequest, error) {
	var request TransactionRequest
	err := r.db.GetOneBy(ctx, db.Filter{Conditions: map[string]any{"transaction_hash": hash}}, &request)
	if err != nil {
		return TransactionRequest{}, mapErr("get transaction request", err)
	}

	return request, nil
}

func (r *Repository) ListTransactionRequests(ctx context.Context, ownerID string) ([]TransactionRequest, error) {
	var requests []TransactionRequest
	err := r.db.GetAllBy(ctx, db.Filter{
		Conditions: map[string]any{"owner_id": ownerID},
		Order:      "created_at asc",
	}, &requests)
	if err != nil {
		return nil, fmt.Errorf("list transaction requests: %w", err)
	}

	return requests, nil
}

func (r *Repository) GetBlockchainTransaction(ctx context.Context, txID, category string) (BlockchainTransaction, error) {
	var record BlockchainTransaction
	err := r.db.GetOneBy(ctx, db.Filter{
		Conditions: map[string]any{"tx_id": txID, "category": category},
	}, &record)
	if err != nil {
		return BlockchainTransaction{}, mapErr("get blockchain transaction", err)
	}

	return record, nil
}

func (r *Repository) CreateBlockchainTransaction(ctx context.Context, record *BlockchainTransaction) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	return mapErr("create blockchain transaction", r.db.Create(ctx, record))
}

func (r *Repository) UpdateBlockchainTransaction(ctx context.Context, record *BlockchainTransaction) error {
	return mapErr("update blockchain transaction", r.db.Save(ctx, record))
}

func (r *Repository) GetTransaction(ctx context.Context, address, hash string) (Transaction, error) {
	var tx Transaction
	err := r.db.GetOneBy(ctx, db.Filter{
		Conditions: map[string]any{"address": address, "transaction_hash": hash},
	}, &tx)
	if err != nil {
		return Transaction{}, mapErr("get transaction", err)
	}

	return tx, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	return mapErr("create transaction", r.db.Create(ctx, tx))
}

func (r *Repository) MarkTransactionConfirmed(ctx context.Context, id string) error {
	err := r.db.UpdateColumns(ctx, &Transaction{ID: id}, map[string]any{"is_confirmed": true})
	return mapErr("confirm transaction", err)
}

// MarkTransactionNotified sets the confirmation flag when confirmation is
// true and the creation flag otherwise.
func (r *Repository) MarkTransactionNotified(ctx context.Context, id string, confirmation bool) error {
	column := "creation_notified"
	if confirmation {
		column = "confirmation_notified"
	}
	err := r.db.UpdateColumns(ctx, &Transaction{ID: id}, map[string]any{column: true})
	return mapErr("mark transaction notified", err)
}

func (r *Repository) ListTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	conditions := map[string]any{}
	if filter.OwnerID != nil {
		conditions["owner_id"] = *filter.OwnerID
	}
	if filter.Address != "" {
		conditions["address"] = filter.Address
	}

	var txs []Transaction
	err := r.db.GetAllBy(ctx, db.Filter{
		Conditions: nonEmpty(conditions),
		Order:      "created_at asc",
	}, &txs)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return txs, nil
}

func (r *Repository) ListUnnotifiedTransactions(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	err := r.db.GetAllBy(ctx, db.Filter{
		Conditions: "creation_notified = ? OR (is_confirmed = ? AND confirmation_notified = ?)",
		Args:       []any{false, true, false},
		Order:      "created_at asc",
	}, &txs)
	if err != nil {
		return nil, fmt.Errorf("list unnotified transactions: %w", err)
	}

	return txs, nil
}

func (r *Repository) GetConfiguration(ctx context.Context, key string) (Configuration, error) {
	var cfg Configuration
	err := r.db.GetOneBy(ctx, db.Filter{Conditions: map[string]any{"key": key}}, &cfg)
	if err != nil {
		return Configuration{}, mapErr("get configuration", err)
	}

	return cfg, nil
}

func (r *Repository) SaveConfiguration(ctx context.Context, cfg Configuration) error {
	return mapErr("save configuration", r.db.Save(ctx, &cfg))
}

func mapErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, db.ErrDuplicate):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func nonEmpty(conditions map[string]any) any {
	if len(conditions) == 0 {
		return nil
	}
	return conditions
}
