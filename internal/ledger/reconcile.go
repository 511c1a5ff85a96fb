package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coinledger/internal/repository"
	"coinledger/internal/settings"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

// ChainEvent is one wallet movement reported by the daemon.
type ChainEvent struct {
	TxID          string
	Category      string
	Address       string
	Amount        decimal.Decimal
	Fee           *decimal.Decimal
	Confirmations int64
	BlockHash     string
	BlockHeight   int64
	BlockTime     int64
	Time          int64
	TimeReceived  int64
	// To carries the "from@to" routing comment of payments sent by this ledger.
	To    string
	Label string
}

func (e ChainEvent) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.TxID, validation.Required),
		validation.Field(&e.Category, validation.Required, validation.In(repository.CategorySend, repository.CategoryReceive)),
		validation.Field(&e.Address, validation.Required),
		validation.Field(&e.Confirmations, validation.Min(int64(0))),
	)
}

// Outcome says what Reconcile did with an event.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeRefreshed Outcome = "refreshed"
	OutcomeUnchanged Outcome = "unchanged"
)

type stage int

const (
	stageUnconfirmed stage = iota
	stageConfirmation
)

// resolveAddress picks the ledger address an event belongs to: the sender of
// a send and the recipient of a receive when the routing comment is present.
func resolveAddress(category, to, address string) string {
	from, recipient, ok := strings.Cut(to, "@")
	if !ok {
		return address
	}
	if category == repository.CategorySend && from != "" {
		return from
	}
	if category == repository.CategoryReceive && recipient != "" {
		return recipient
	}
	return address
}

func routedSender(to string) string {
	from, _, ok := strings.Cut(to, "@")
	if !ok {
		return ""
	}
	return from
}

func effectiveAmount(amount decimal.Decimal, fee *decimal.Decimal) decimal.Decimal {
	total := amount
	if fee != nil {
		total = total.Add(*fee)
	}
	return repository.Round(total.Abs())
}

func signedAmount(amount decimal.Decimal, fee *decimal.Decimal) decimal.Decimal {
	total := amount
	if fee != nil {
		total = total.Add(*fee)
	}
	return repository.Round(total)
}

// Reconcile folds a daemon-observed event into the ledger. Each
// (txid, category) pair moves Absent -> Unconfirmed -> Confirmed and every
// transition applies its balance effect exactly once, however often the
// event is delivered. A stage that failed is applied again on the next
// delivery.
func (l *TransactionLedger) Reconcile(ctx context.Context, event ChainEvent) (Outcome, error) {
	if err := event.Validate(); err != nil {
		return OutcomeUnchanged, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	minimum, err := l.settings.Int(ctx, settings.MinimumConfirmations)
	if err != nil {
		return OutcomeUnchanged, fmt.Errorf("read minimum confirmations: %w", err)
	}
	confirmed := event.Confirmations >= minimum

	// wait for an in-flight Submit from the same sender to settle its flags
	if sender := routedSender(event.To); sender != "" {
		release, err := l.locker.Acquire(ctx, sendKey(sender))
		if err != nil {
			return OutcomeUnchanged, fmt.Errorf("lock sender %s: %w", sender, err)
		}
		defer release()
	}

	release, err := l.locker.Acquire(ctx, "blockchain/"+event.TxID+"/"+event.Category)
	if err != nil {
		return OutcomeUnchanged, fmt.Errorf("lock event %s: %w", event.TxID, err)
	}
	defer release()

	stored, err := l.store.GetBlockchainTransaction(ctx, event.TxID, event.Category)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		stored, err = l.firstSighting(ctx, event)
		if err != nil {
			return OutcomeUnchanged, err
		}
		return l.settle(ctx, &stored, confirmed, OutcomeCreated)
	case err != nil:
		return OutcomeUnchanged, fmt.Errorf("load event %s/%s: %w", event.TxID, event.Category, err)
	case stored.AppliedStage == repository.AppliedConfirmation:
		return OutcomeUnchanged, nil
	}

	refreshBlock(&stored, event)
	stored.UpdatedAt = l.now()
	if err := l.store.UpdateBlockchainTransaction(ctx, &stored); err != nil {
		return OutcomeUnchanged, fmt.Errorf("refresh event %s: %w", event.TxID, err)
	}
	return l.settle(ctx, &stored, confirmed, OutcomeRefreshed)
}

func (l *TransactionLedger) firstSighting(ctx context.Context, event ChainEvent) (repository.BlockchainTransaction, error) {
	now := l.now()
	record := repository.BlockchainTransaction{
		TxID:         event.TxID,
		Category:     event.Category,
		Address:      event.Address,
		Amount:       repository.Round(event.Amount),
		Fee:          roundPtr(event.Fee),
		Label:        event.Label,
		AppliedStage: repository.AppliedNone,
		To:           event.To,
		TimeReceived: event.TimeReceived,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	refreshBlock(&record, event)

	err := l.store.CreateBlockchainTransaction(ctx, &record)
	if errors.Is(err, repository.ErrDuplicate) {
		return l.store.GetBlockchainTransaction(ctx, event.TxID, event.Category)
	}
	if err != nil {
		return repository.BlockchainTransaction{}, fmt.Errorf("persist event %s/%s: %w", event.TxID, event.Category, err)
	}
	return record, nil
}

// settle applies whichever balance stages the record still misses. Each
// stage marker is saved only after its balance effect succeeded.
func (l *TransactionLedger) settle(ctx context.Context, record *repository.BlockchainTransaction, confirmed bool, outcome Outcome) (Outcome, error) {
	if record.AppliedStage == repository.AppliedConfirmation {
		return OutcomeUnchanged, nil
	}

	address := resolveAddress(record.Category, record.To, record.Address)
	unrouted := record.Category == repository.CategorySend && routedSender(record.To) == ""

	var (
		owned repository.Address
		err   error
	)
	if unrouted {
		// the raw address of a send is its destination, not the sender
		owned, err = l.addresses.Track(ctx, address)
	} else {
		owned, err = l.addresses.Ensure(ctx, address)
	}
	if err != nil {
		return outcome, fmt.Errorf("resolve address %s: %w", address, err)
	}

	request, matched, err := l.match(ctx, record.TxID, record.Category, address)
	if err != nil {
		return outcome, err
	}

	tx, err := l.recordTransaction(ctx, owned, request, *record)
	if err != nil {
		return outcome, err
	}

	amount := effectiveAmount(record.Amount, record.Fee)
	if unrouted {
		amount = decimal.Zero
	}

	if record.AppliedStage < repository.AppliedUnconfirmed {
		if err := l.apply(ctx, stageUnconfirmed, record.Category, matched, address, amount); err != nil {
			return outcome, err
		}
		if err := l.advance(ctx, record, repository.AppliedUnconfirmed); err != nil {
			return outcome, err
		}
		l.logs.Infow("chain event recorded",
			"txid", record.TxID,
			"category", record.Category,
			"address", address,
			"amount", amount.String(),
			"matched", matched)
	}

	if !confirmed {
		return outcome, nil
	}

	if !tx.IsConfirmed {
		if err := l.store.MarkTransactionConfirmed(ctx, tx.ID); err != nil {
			return outcome, fmt.Errorf("confirm transaction %s: %w", tx.ID, err)
		}
	}
	if err := l.apply(ctx, stageConfirmation, record.Category, matched, address, amount); err != nil {
		return outcome, err
	}
	if err := l.advance(ctx, record, repository.AppliedConfirmation); err != nil {
		return outcome, err
	}

	l.logs.Infow("chain event confirmed",
		"txid", record.TxID,
		"category", record.Category,
		"address", address,
		"amount", amount.String())
	if outcome == OutcomeRefreshed {
		return OutcomeConfirmed, nil
	}
	return outcome, nil
}

// advance records that a balance stage has been applied.
func (l *TransactionLedger) advance(ctx context.Context, record *repository.BlockchainTransaction, applied int) error {
	record.AppliedStage = applied
	record.IsConfirmed = applied == repository.AppliedConfirmation
	record.UpdatedAt = l.now()
	if err := l.store.UpdateBlockchainTransaction(ctx, record); err != nil {
		return fmt.Errorf("save stage %d of %s: %w", applied, record.TxID, err)
	}
	return nil
}

// match finds the payment request behind an event. It counts as matched
// only when that request already reserved funds for this side.
func (l *TransactionLedger) match(ctx context.Context, hash, category, address string) (*repository.TransactionRequest, bool, error) {
	request, err := l.store.GetTransactionRequestByHash(ctx, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("match request %s: %w", hash, err)
	}

	switch category {
	case repository.CategorySend:
		return &request, request.From == address && request.SenderReserved, nil
	default:
		return &request, request.To == address && request.RecipientReserved, nil
	}
}

// recordTransaction returns the derived Transaction for the record,
// creating it unconfirmed on first use.
func (l *TransactionLedger) recordTransaction(ctx context.Context, owned repository.Address, request *repository.TransactionRequest, record repository.BlockchainTransaction) (repository.Transaction, error) {
	tx, err := l.store.GetTransaction(ctx, owned.Address, record.TxID)
	if err == nil {
		return tx, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return repository.Transaction{}, fmt.Errorf("load transaction %s: %w", record.TxID, err)
	}

	tx = repository.Transaction{
		OwnerID:         owned.OwnerID,
		Amount:          signedAmount(record.Amount, record.Fee),
		TransactionHash: record.TxID,
		Address:         owned.Address,
		Timestamp:       recordTime(record, l.now()),
		CreatedAt:       l.now(),
		UpdatedAt:       l.now(),
	}
	if request != nil {
		correlation := request.OwnerTransactionID
		tx.OwnerTransactionID = &correlation
	}

	err = l.store.CreateTransaction(ctx, &tx)
	if errors.Is(err, repository.ErrDuplicate) {
		return l.store.GetTransaction(ctx, owned.Address, record.TxID)
	}
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("persist transaction %s: %w", record.TxID, err)
	}
	return tx, nil
}

// apply performs one row of the balance transition table.
func (l *TransactionLedger) apply(ctx context.Context, st stage, category string, matched bool, address string, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}

	var err error
	switch {
	case st == stageUnconfirmed && matched:
		// reserved when the payment was submitted
	case st == stageUnconfirmed && category == repository.CategorySend:
		if _, err = l.addresses.Withdraw(ctx, address, amount, Available); err == nil {
			_, err = l.addresses.Deposit(ctx, address, amount, Locked)
		}
	case st == stageUnconfirmed:
		_, err = l.addresses.Deposit(ctx, address, amount, Locked)
	case category == repository.CategorySend:
		_, err = l.addresses.Withdraw(ctx, address, amount, Locked)
	default:
		if _, err = l.addresses.Withdraw(ctx, address, amount, Locked); err == nil {
			_, err = l.addresses.Deposit(ctx, address, amount, Available)
		}
	}

	if err != nil {
		return fmt.Errorf("apply %s of %s to %s: %w", category, amount, address, err)
	}
	return nil
}

func refreshBlock(record *repository.BlockchainTransaction, event ChainEvent) {
	record.BlockHash = event.BlockHash
	record.BlockHeight = event.BlockHeight
	record.BlockTime = event.BlockTime
	record.Time = event.Time
}

func roundPtr(value *decimal.Decimal) *decimal.Decimal {
	if value == nil {
		return nil
	}
	rounded := repository.Round(*value)
	return &rounded
}

func recordTime(record repository.BlockchainTransaction, fallback time.Time) time.Time {
	switch {
	case record.BlockTime > 0:
		return time.Unix(record.BlockTime, 0).UTC()
	case record.Time > 0:
		return time.Unix(record.Time, 0).UTC()
	default:
		return fallback
	}
}
