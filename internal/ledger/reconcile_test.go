package ledger_test

import (
	"context"
	"errors"

	"coinledger/internal/ledger"
	"coinledger/internal/ledger/fake"
	"coinledger/internal/mutex"
	"coinledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// flakyStore fails the next n calls of the selected operations.
type flakyStore struct {
	*memStore
	requestLookupFailures int
	addressUpdateFailures int
}

func (f *flakyStore) GetTransactionRequestByHash(ctx context.Context, hash string) (repository.TransactionRequest, error) {
	if f.requestLookupFailures > 0 {
		f.requestLookupFailures--
		return repository.TransactionRequest{}, errors.New("connection reset")
	}
	return f.memStore.GetTransactionRequestByHash(ctx, hash)
}

func (f *flakyStore) UpdateAddress(ctx context.Context, address *repository.Address) error {
	if f.addressUpdateFailures > 0 {
		f.addressUpdateFailures--
		return errors.New("connection reset")
	}
	return f.memStore.UpdateAddress(ctx, address)
}

var _ = Describe("Reconcile", func() {
	var (
		store        *memStore
		flaky        *flakyStore
		fakeSettings *fake.Settings
		addresses    *ledger.AddressLedger
		txLedger     *ledger.TransactionLedger
		ctx          context.Context
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		locker := mutex.NewKeyed()
		store = newMemStore()
		flaky = &flakyStore{memStore: store}
		fakeSettings = new(fake.Settings)
		fakeSettings.IntReturns(6, nil)
		addresses = ledger.NewAddressLedger(logger, flaky, new(fake.AddressIssuer), locker)
		txLedger = ledger.NewTransactionLedger(logger, flaky, addresses, new(fake.PaymentDaemon), locker, fakeSettings, dec("2"))
		ctx = context.Background()

		store.seed(owned("owner1", "A"))
	})

	receive := func(confirmations int64) ledger.ChainEvent {
		return ledger.ChainEvent{
			TxID:          "T1",
			Category:      repository.CategoryReceive,
			Address:       "A",
			Amount:        dec("10"),
			Confirmations: confirmations,
		}
	}

	Describe("an unconfirmed receive", func() {
		It("should lock the amount once however often it is seen", func() {
			outcome, err := txLedger.Reconcile(ctx, receive(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeCreated))

			outcome, err = txLedger.Reconcile(ctx, receive(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeRefreshed))

			balance := store.address("A").Balance
			Expect(balance.Locked.Equal(dec("10"))).To(BeTrue())
			Expect(balance.Available.IsZero()).To(BeTrue())
		})

		It("should release the amount once it reaches the threshold", func() {
			_, err := txLedger.Reconcile(ctx, receive(0))
			Expect(err).NotTo(HaveOccurred())
			_, err = txLedger.Reconcile(ctx, receive(0))
			Expect(err).NotTo(HaveOccurred())

			outcome, err := txLedger.Reconcile(ctx, receive(6))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeConfirmed))

			outcome, err = txLedger.Reconcile(ctx, receive(7))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeUnchanged))

			balance := store.address("A").Balance
			Expect(balance.Available.Equal(dec("10"))).To(BeTrue())
			Expect(balance.Locked.IsZero()).To(BeTrue())

			tx, err := store.GetTransaction(ctx, "A", "T1")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.IsConfirmed).To(BeTrue())
		})

		It("should refresh block data while waiting", func() {
			_, err := txLedger.Reconcile(ctx, receive(0))
			Expect(err).NotTo(HaveOccurred())

			event := receive(2)
			event.BlockHash = "H1"
			event.BlockHeight = 120
			_, err = txLedger.Reconcile(ctx, event)
			Expect(err).NotTo(HaveOccurred())

			record, err := store.GetBlockchainTransaction(ctx, "T1", repository.CategoryReceive)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.BlockHash).To(Equal("H1"))
			Expect(record.BlockHeight).To(Equal(int64(120)))
			Expect(record.IsConfirmed).To(BeFalse())
		})
	})

	When("the first sighting is already confirmed", func() {
		It("should end with the amount available", func() {
			outcome, err := txLedger.Reconcile(ctx, receive(12))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeCreated))

			balance := store.address("A").Balance
			Expect(balance.Available.Equal(dec("10"))).To(BeTrue())
			Expect(balance.Locked.IsZero()).To(BeTrue())
		})
	})

	When("the address is unknown", func() {
		It("should register it as free and credit it", func() {
			event := receive(0)
			event.Address = "stranger"
			_, err := txLedger.Reconcile(ctx, event)
			Expect(err).NotTo(HaveOccurred())

			record := store.address("stranger")
			Expect(record.OwnerID).To(BeNil())
			Expect(record.Balance.Locked.Equal(dec("10"))).To(BeTrue())

			tx, err := store.GetTransaction(ctx, "stranger", "T1")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.OwnerID).To(BeNil())
		})
	})

	When("a send carries our routing comment but no reservation", func() {
		BeforeEach(func() {
			_, err := addresses.Deposit(ctx, "A", dec("10"), ledger.Available)
			Expect(err).NotTo(HaveOccurred())
		})

		send := func(confirmations int64) ledger.ChainEvent {
			fee := dec("-0.001")
			return ledger.ChainEvent{
				TxID:          "T5",
				Category:      repository.CategorySend,
				Address:       "external",
				Amount:        dec("-3"),
				Fee:           &fee,
				Confirmations: confirmations,
				To:            "A@external",
			}
		}

		It("should debit the sender through the locked balance", func() {
			_, err := txLedger.Reconcile(ctx, send(1))
			Expect(err).NotTo(HaveOccurred())

			balance := store.address("A").Balance
			Expect(balance.Available.Equal(dec("6.999"))).To(BeTrue())
			Expect(balance.Locked.Equal(dec("3.001"))).To(BeTrue())

			_, err = txLedger.Reconcile(ctx, send(6))
			Expect(err).NotTo(HaveOccurred())

			balance = store.address("A").Balance
			Expect(balance.Available.Equal(dec("6.999"))).To(BeTrue())
			Expect(balance.Locked.IsZero()).To(BeTrue())
		})

		It("should not create a ledger entry for the external recipient", func() {
			_, err := txLedger.Reconcile(ctx, send(1))
			Expect(err).NotTo(HaveOccurred())
			_, err = store.GetAddress(ctx, "external")
			Expect(err).To(MatchError(repository.ErrNotFound))
		})
	})

	When("the store fails between recording an event and applying it", func() {
		It("should apply the missing effect on redelivery", func() {
			first := receive(0)
			first.TxID = "T0"
			_, err := txLedger.Reconcile(ctx, first)
			Expect(err).NotTo(HaveOccurred())

			flaky.requestLookupFailures = 1
			_, err = txLedger.Reconcile(ctx, receive(0))
			Expect(err).To(MatchError(ContainSubstring("connection reset")))

			record, err := store.GetBlockchainTransaction(ctx, "T1", repository.CategoryReceive)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.AppliedStage).To(Equal(repository.AppliedNone))
			Expect(store.address("A").Balance.Locked.Equal(dec("10"))).To(BeTrue())

			outcome, err := txLedger.Reconcile(ctx, receive(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeRefreshed))
			Expect(store.address("A").Balance.Locked.Equal(dec("20"))).To(BeTrue())

			first.Confirmations = 6
			_, err = txLedger.Reconcile(ctx, first)
			Expect(err).NotTo(HaveOccurred())
			_, err = txLedger.Reconcile(ctx, receive(6))
			Expect(err).NotTo(HaveOccurred())

			balance := store.address("A").Balance
			Expect(balance.Available.Equal(dec("20"))).To(BeTrue())
			Expect(balance.Locked.IsZero()).To(BeTrue())
		})

		It("should keep the confirmation pending until its effect lands", func() {
			_, err := txLedger.Reconcile(ctx, receive(0))
			Expect(err).NotTo(HaveOccurred())

			flaky.addressUpdateFailures = 1
			_, err = txLedger.Reconcile(ctx, receive(6))
			Expect(err).To(MatchError(ContainSubstring("connection reset")))

			record, err := store.GetBlockchainTransaction(ctx, "T1", repository.CategoryReceive)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.IsConfirmed).To(BeFalse())
			Expect(record.AppliedStage).To(Equal(repository.AppliedUnconfirmed))

			outcome, err := txLedger.Reconcile(ctx, receive(7))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeConfirmed))

			balance := store.address("A").Balance
			Expect(balance.Available.Equal(dec("10"))).To(BeTrue())
			Expect(balance.Locked.IsZero()).To(BeTrue())

			outcome, err = txLedger.Reconcile(ctx, receive(8))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(ledger.OutcomeUnchanged))
			Expect(store.address("A").Balance.Available.Equal(dec("10"))).To(BeTrue())
		})
	})

	When("a send carries no routing comment", func() {
		send := func(confirmations int64) ledger.ChainEvent {
			return ledger.ChainEvent{
				TxID:          "T9",
				Category:      repository.CategorySend,
				Address:       "external",
				Amount:        dec("-4"),
				Confirmations: confirmations,
			}
		}

		It("should track the destination outside the free pool", func() {
			_, err := txLedger.Reconcile(ctx, send(0))
			Expect(err).NotTo(HaveOccurred())
			_, err = txLedger.Reconcile(ctx, send(6))
			Expect(err).NotTo(HaveOccurred())

			record := store.address("external")
			Expect(record.OwnerID).To(BeNil())
			Expect(record.IsEnabled).To(BeFalse())
			Expect(record.Balance.Available.IsZero()).To(BeTrue())
			Expect(record.Balance.Locked.IsZero()).To(BeTrue())

			free, err := addresses.ListFree(ctx)
			Expect(err).NotTo(HaveOccurred())
			for _, candidate := range free {
				Expect(candidate.Address).NotTo(Equal("external"))
			}

			balance := store.address("A").Balance
			Expect(balance.Available.IsZero()).To(BeTrue())
			Expect(balance.Locked.IsZero()).To(BeTrue())
		})
	})

	It("should record zero amount events without touching balances", func() {
		event := receive(6)
		event.Amount = dec("0")
		outcome, err := txLedger.Reconcile(ctx, event)
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(ledger.OutcomeCreated))
		Expect(store.address("A").Balance.Available.IsZero()).To(BeTrue())
	})

	It("should reject unknown categories", func() {
		event := receive(0)
		event.Category = "generate"
		_, err := txLedger.Reconcile(ctx, event)
		Expect(err).To(MatchError(ledger.ErrValidation))
	})

	It("should fail when the threshold cannot be read", func() {
		fakeSettings.IntReturns(0, errors.New("db down"))
		_, err := txLedger.Reconcile(ctx, receive(0))
		Expect(err).To(MatchError(ContainSubstring("db down")))

		_, err = store.GetBlockchainTransaction(ctx, "T1", repository.CategoryReceive)
		Expect(err).To(MatchError(repository.ErrNotFound))
	})
})
