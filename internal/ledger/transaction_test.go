package ledger_test

import (
	"context"
	"errors"

	"coinledger/internal/daemon"
	"coinledger/internal/ledger"
	"coinledger/internal/ledger/fake"
	"coinledger/internal/mutex"
	"coinledger/internal/repository"
	"coinledger/internal/settings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TransactionLedger", func() {
	var (
		store        *memStore
		fakeDaemon   *fake.PaymentDaemon
		fakeSettings *fake.Settings
		addresses    *ledger.AddressLedger
		txLedger     *ledger.TransactionLedger
		ctx          context.Context
		fakeErr      error
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		locker := mutex.NewKeyed()
		store = newMemStore()
		fakeDaemon = new(fake.PaymentDaemon)
		fakeSettings = new(fake.Settings)
		addresses = ledger.NewAddressLedger(logger, store, new(fake.AddressIssuer), locker)
		txLedger = ledger.NewTransactionLedger(logger, store, addresses, fakeDaemon, locker, fakeSettings, dec("2"))
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeSettings.IntReturns(6, nil)
		fakeDaemon.EstimateFeeReturns(dec("0.0001"), nil)
		fakeDaemon.SendToAddressReturns("T1", nil)
		fakeDaemon.TransactionReturns(daemon.TransactionDetail{TxID: "T1", Fee: dec("-0.0002")}, nil)

		store.seed(owned("owner1", "A"))
		store.seed(owned("owner2", "B"))
		_, err := addresses.Deposit(ctx, "A", dec("10"), ledger.Available)
		Expect(err).NotTo(HaveOccurred())
	})

	payment := func(to, amount string) ledger.PaymentRequest {
		return ledger.PaymentRequest{
			OwnerID:            "owner1",
			OwnerTransactionID: "order-1",
			From:               "A",
			To:                 to,
			Amount:             dec(amount),
			Comment:            "invoice 1",
		}
	}

	Describe("Submit", func() {
		When("the payment is covered", func() {
			var (
				request repository.TransactionRequest
				err     error
			)

			JustBeforeEach(func() {
				request, err = txLedger.Submit(ctx, payment("B", "5"))
			})

			It("should send through the daemon with the routing comment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeDaemon.SendToAddressCallCount()).To(Equal(1))
				_, to, amount, comment, commentTo := fakeDaemon.SendToAddressArgsForCall(0)
				Expect(to).To(Equal("B"))
				Expect(amount.Equal(dec("5"))).To(BeTrue())
				Expect(comment).To(Equal("invoice 1"))
				Expect(commentTo).To(Equal("A@B"))
			})

			It("should persist a submitted request with the actual fee", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(request.Status).To(Equal(repository.RequestSubmitted))
				Expect(request.TransactionHash).To(Equal("T1"))
				Expect(request.Fee.Equal(dec("0.0002"))).To(BeTrue())
				Expect(request.SenderReserved).To(BeTrue())
				Expect(request.RecipientReserved).To(BeTrue())

				stored, err := store.GetTransactionRequestByHash(ctx, "T1")
				Expect(err).NotTo(HaveOccurred())
				Expect(stored.ID).To(Equal(request.ID))
			})

			It("should move amount plus fee into the sender's locked balance", func() {
				Expect(err).NotTo(HaveOccurred())
				balance := store.address("A").Balance
				Expect(balance.Available.Equal(dec("4.9998"))).To(BeTrue())
				Expect(balance.Locked.Equal(dec("5.0002"))).To(BeTrue())
			})

			It("should credit an own recipient as locked", func() {
				Expect(err).NotTo(HaveOccurred())
				balance := store.address("B").Balance
				Expect(balance.Locked.Equal(dec("5"))).To(BeTrue())
				Expect(balance.Available.IsZero()).To(BeTrue())
			})
		})

		When("the recipient is external", func() {
			It("should not reserve anything for it", func() {
				request, err := txLedger.Submit(ctx, payment("external", "1"))
				Expect(err).NotTo(HaveOccurred())
				Expect(request.RecipientReserved).To(BeFalse())
				_, err = store.GetAddress(ctx, "external")
				Expect(err).To(MatchError(repository.ErrNotFound))
			})
		})

		When("the balance does not cover amount and fee margin", func() {
			It("should fail before contacting the daemon", func() {
				_, err := txLedger.Submit(ctx, payment("B", "9.9999"))
				Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
				Expect(fakeDaemon.SendToAddressCallCount()).To(BeZero())

				requests, err := txLedger.ListRequests(ctx, "owner1")
				Expect(err).NotTo(HaveOccurred())
				Expect(requests).To(BeEmpty())
			})
		})

		When("the daemon rejects the payment", func() {
			BeforeEach(func() {
				fakeDaemon.SendToAddressReturns("", fakeErr)
			})

			It("should keep the request in the created state and leave balances alone", func() {
				request, err := txLedger.Submit(ctx, payment("B", "5"))
				Expect(err).To(MatchError(fakeErr))
				Expect(request.Status).To(Equal(repository.RequestCreated))

				Expect(store.address("A").Balance.Available.Equal(dec("10"))).To(BeTrue())
				Expect(store.address("B").Balance.Locked.IsZero()).To(BeTrue())
			})
		})

		When("the sender belongs to someone else", func() {
			It("should return ErrNotFound", func() {
				req := payment("A", "1")
				req.From = "B"
				_, err := txLedger.Submit(ctx, req)
				Expect(err).To(MatchError(ledger.ErrNotFound))
			})
		})

		DescribeTable("invalid requests",
			func(mutate func(*ledger.PaymentRequest)) {
				req := payment("B", "1")
				mutate(&req)
				_, err := txLedger.Submit(ctx, req)
				Expect(err).To(MatchError(ledger.ErrValidation))
				Expect(fakeDaemon.EstimateFeeCallCount()).To(BeZero())
			},
			Entry("sending to itself", func(r *ledger.PaymentRequest) { r.To = "A" }),
			Entry("zero amount", func(r *ledger.PaymentRequest) { r.Amount = dec("0") }),
			Entry("negative amount", func(r *ledger.PaymentRequest) { r.Amount = dec("-1") }),
			Entry("missing correlation id", func(r *ledger.PaymentRequest) { r.OwnerTransactionID = "" }),
		)
	})

	Describe("submitted payment observed on chain", func() {
		BeforeEach(func() {
			_, err := txLedger.Submit(ctx, payment("B", "5"))
			Expect(err).NotTo(HaveOccurred())
		})

		observe := func(category, address, amount string, confirmations int64) {
			event := ledger.ChainEvent{
				TxID:          "T1",
				Category:      category,
				Address:       address,
				Amount:        dec(amount),
				Confirmations: confirmations,
				To:            "A@B",
			}
			if category == repository.CategorySend {
				fee := dec("-0.0002")
				event.Fee = &fee
			}
			_, err := txLedger.Reconcile(ctx, event)
			Expect(err).NotTo(HaveOccurred())
		}

		It("should not apply the reserved amounts twice", func() {
			observe(repository.CategorySend, "B", "-5", 0)
			observe(repository.CategoryReceive, "B", "5", 0)

			Expect(store.address("A").Balance.Available.Equal(dec("4.9998"))).To(BeTrue())
			Expect(store.address("A").Balance.Locked.Equal(dec("5.0002"))).To(BeTrue())
			Expect(store.address("B").Balance.Locked.Equal(dec("5"))).To(BeTrue())
		})

		It("should settle both sides on confirmation", func() {
			observe(repository.CategorySend, "B", "-5", 0)
			observe(repository.CategoryReceive, "B", "5", 0)
			observe(repository.CategorySend, "B", "-5", 6)
			observe(repository.CategoryReceive, "B", "5", 6)

			a := store.address("A").Balance
			Expect(a.Available.Equal(dec("4.9998"))).To(BeTrue())
			Expect(a.Locked.IsZero()).To(BeTrue())

			b := store.address("B").Balance
			Expect(b.Available.Equal(dec("5"))).To(BeTrue())
			Expect(b.Locked.IsZero()).To(BeTrue())
		})

		It("should attach the owner correlation id to derived transactions", func() {
			observe(repository.CategorySend, "B", "-5", 0)

			tx, err := store.GetTransaction(ctx, "A", "T1")
			Expect(err).NotTo(HaveOccurred())
			Expect(*tx.OwnerID).To(Equal("owner1"))
			Expect(*tx.OwnerTransactionID).To(Equal("order-1"))
			Expect(tx.Amount.Equal(dec("-5.0002"))).To(BeTrue())
		})
	})

	Describe("notifications", func() {
		BeforeEach(func() {
			_, err := txLedger.Reconcile(ctx, ledger.ChainEvent{
				TxID:     "T9",
				Category: repository.CategoryReceive,
				Address:  "A",
				Amount:   dec("1"),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should report creation first and confirmation after it", func() {
			pending, err := txLedger.Unnotified(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))

			Expect(txLedger.MarkNotified(ctx, pending[0])).To(Succeed())
			pending, err = txLedger.Unnotified(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(BeEmpty())

			_, err = txLedger.Reconcile(ctx, ledger.ChainEvent{
				TxID:          "T9",
				Category:      repository.CategoryReceive,
				Address:       "A",
				Amount:        dec("1"),
				Confirmations: 6,
			})
			Expect(err).NotTo(HaveOccurred())

			pending, err = txLedger.Unnotified(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].IsConfirmed).To(BeTrue())

			Expect(txLedger.MarkNotified(ctx, pending[0])).To(Succeed())
			tx, err := store.GetTransaction(ctx, "A", "T9")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.CreationNotified).To(BeTrue())
			Expect(tx.ConfirmationNotified).To(BeTrue())
		})
	})

	It("should read the confirmation threshold from settings", func() {
		_, err := txLedger.Reconcile(ctx, ledger.ChainEvent{TxID: "T2", Category: repository.CategoryReceive, Address: "A", Amount: dec("1")})
		Expect(err).NotTo(HaveOccurred())
		_, key := fakeSettings.IntArgsForCall(0)
		Expect(key).To(Equal(settings.MinimumConfirmations))
	})
})
