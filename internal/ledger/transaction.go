package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinledger/internal/repository"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentRequest is an owner's instruction to send funds from one of its
// addresses.
type PaymentRequest struct {
	OwnerID            string
	OwnerTransactionID string
	From               string
	To                 string
	Amount             decimal.Decimal
	Comment            string
}

func (p PaymentRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.OwnerID, validation.Required),
		validation.Field(&p.OwnerTransactionID, validation.Required),
		validation.Field(&p.From, validation.Required),
		validation.Field(&p.To, validation.Required, validation.NotIn(p.From).Error("must differ from the sender")),
		validation.Field(&p.Amount, validation.By(positiveAmount)),
	)
}

func positiveAmount(value any) error {
	amount, _ := value.(decimal.Decimal)
	if !repository.Round(amount).IsPositive() {
		return errors.New("must be a positive amount")
	}
	return nil
}

// TransactionLedger owns payment requests, mirrored chain events and the
// owner-facing transactions derived from them.
type TransactionLedger struct {
	logs      *zap.SugaredLogger
	store     TransactionStore
	addresses Addresses
	daemon    PaymentDaemon
	locker    Locker
	settings  Settings
	feeFactor decimal.Decimal
	now       func() time.Time
}

func NewTransactionLedger(
	logger *zap.SugaredLogger,
	store TransactionStore,
	addresses Addresses,
	daemon PaymentDaemon,
	locker Locker,
	settings Settings,
	feeFactor decimal.Decimal,
) *TransactionLedger {
	return &TransactionLedger{
		logs:      logger,
		store:     store,
		addresses: addresses,
		daemon:    daemon,
		locker:    locker,
		settings:  settings,
		feeFactor: feeFactor,
		now:       time.Now,
	}
}

func sendKey(from string) string {
	return "transaction/" + from
}

// Submit sends a payment through the daemon and reserves the funds on the
// ledger. A daemon failure is returned unchanged and leaves the persisted
// request in the created state.
func (l *TransactionLedger) Submit(ctx context.Context, req PaymentRequest) (repository.TransactionRequest, error) {
	if err := req.Validate(); err != nil {
		return repository.TransactionRequest{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	amount := repository.Round(req.Amount)

	release, err := l.locker.Acquire(ctx, sendKey(req.From))
	if err != nil {
		return repository.TransactionRequest{}, fmt.Errorf("lock sender %s: %w", req.From, err)
	}
	defer release()

	if _, err := l.addresses.Find(ctx, &req.OwnerID, req.From); err != nil {
		return repository.TransactionRequest{}, err
	}

	fee, err := l.daemon.EstimateFee(ctx)
	if err != nil {
		return repository.TransactionRequest{}, err
	}

	required := repository.Round(fee.Mul(l.feeFactor).Add(amount))
	ok, err := l.addresses.HasFunds(ctx, req.From, required, Available)
	if err != nil {
		return repository.TransactionRequest{}, err
	}
	if !ok {
		return repository.TransactionRequest{}, fmt.Errorf("sender %s needs %s: %w", req.From, required, ErrInsufficientFunds)
	}

	now := l.now()
	request := repository.TransactionRequest{
		OwnerID:            req.OwnerID,
		OwnerTransactionID: req.OwnerTransactionID,
		From:               req.From,
		To:                 req.To,
		Amount:             amount,
		Fee:                decimal.Zero,
		Status:             repository.RequestCreated,
		Comment:            req.Comment,
		CommentTo:          req.From + "@" + req.To,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := l.store.CreateTransactionRequest(ctx, &request); err != nil {
		return repository.TransactionRequest{}, fmt.Errorf("persist transaction request: %w", err)
	}

	hash, err := l.daemon.SendToAddress(ctx, req.To, amount, req.Comment, request.CommentTo)
	if err != nil {
		l.logs.Errorw("daemon rejected payment",
			"request", request.ID,
			"from", req.From,
			"to", req.To,
			"error", err)
		return request, err
	}

	request.Status = repository.RequestSubmitted
	request.TransactionHash = hash
	request.UpdatedAt = l.now()
	if err := l.store.UpdateTransactionRequest(ctx, &request); err != nil {
		return request, fmt.Errorf("mark request %s submitted: %w", request.ID, err)
	}

	detail, err := l.daemon.Transaction(ctx, hash)
	if err != nil {
		return request, fmt.Errorf("fetch fee of %s: %w", hash, err)
	}
	request.Fee = repository.Round(detail.Fee.Abs())
	if err := l.store.UpdateTransactionRequest(ctx, &request); err != nil {
		return request, fmt.Errorf("persist fee of %s: %w", hash, err)
	}

	inFlight := repository.Round(amount.Add(request.Fee))
	if _, err := l.addresses.Withdraw(ctx, req.From, inFlight, Available); err != nil {
		return request, fmt.Errorf("debit sender: %w", err)
	}
	if _, err := l.addresses.Deposit(ctx, req.From, inFlight, Locked); err != nil {
		return request, fmt.Errorf("reserve sender funds: %w", err)
	}
	request.SenderReserved = true
	if err := l.store.UpdateTransactionRequest(ctx, &request); err != nil {
		return request, fmt.Errorf("flag sender reservation: %w", err)
	}

	if err := l.reserveRecipient(ctx, &request); err != nil {
		return request, err
	}

	l.logs.Infow("payment submitted",
		"request", request.ID,
		"hash", hash,
		"from", req.From,
		"to", req.To,
		"amount", amount.String(),
		"fee", request.Fee.String())
	return request, nil
}

// reserveRecipient credits the recipient's locked balance right away when
// the recipient is one of our own addresses.
func (l *TransactionLedger) reserveRecipient(ctx context.Context, request *repository.TransactionRequest) error {
	_, err := l.addresses.Find(ctx, nil, request.To)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up recipient: %w", err)
	}

	if _, err := l.addresses.Deposit(ctx, request.To, request.Amount, Locked); err != nil {
		return fmt.Errorf("reserve recipient funds: %w", err)
	}
	request.RecipientReserved = true
	if err := l.store.UpdateTransactionRequest(ctx, request); err != nil {
		return fmt.Errorf("flag recipient reservation: %w", err)
	}
	return nil
}

func (l *TransactionLedger) ListRequests(ctx context.Context, ownerID string) ([]repository.TransactionRequest, error) {
	requests, err := l.store.ListTransactionRequests(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}

func (l *TransactionLedger) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]repository.Transaction, error) {
	txs, err := l.store.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// Unnotified returns transactions whose creation, or confirmation once
// confirmed, has not been delivered yet.
func (l *TransactionLedger) Unnotified(ctx context.Context) ([]repository.Transaction, error) {
	txs, err := l.store.ListUnnotifiedTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unnotified: %w", err)
	}
	return txs, nil
}

// MarkNotified sets the creation flag if it is still false, otherwise the
// confirmation flag.
func (l *TransactionLedger) MarkNotified(ctx context.Context, tx repository.Transaction) error {
	confirmation := tx.CreationNotified
	if err := l.store.MarkTransactionNotified(ctx, tx.ID, confirmation); err != nil {
		return fmt.Errorf("mark %s notified: %w", tx.ID, err)
	}
	return nil
}
