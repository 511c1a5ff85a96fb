package ledger_test

import (
	"context"
	"errors"
	"sync"

	"coinledger/internal/ledger"
	"coinledger/internal/ledger/fake"
	"coinledger/internal/mutex"
	"coinledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func owned(owner, address string) repository.Address {
	return repository.Address{
		OwnerID:   &owner,
		Address:   address,
		IsEnabled: true,
	}
}

var _ = Describe("AddressLedger", func() {
	var (
		store      *memStore
		fakeIssuer *fake.AddressIssuer
		addresses  *ledger.AddressLedger
		ctx        context.Context
	)

	BeforeEach(func() {
		store = newMemStore()
		fakeIssuer = new(fake.AddressIssuer)
		addresses = ledger.NewAddressLedger(zap.NewNop().Sugar(), store, fakeIssuer, mutex.NewKeyed())
		ctx = context.Background()

		store.seed(owned("owner1", "A"))
	})

	Describe("Deposit", func() {
		It("should credit the available balance", func() {
			record, err := addresses.Deposit(ctx, "A", dec("10"), ledger.Available)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Balance.Available.Equal(dec("10"))).To(BeTrue())
			Expect(record.Balance.Locked.IsZero()).To(BeTrue())
			Expect(store.address("A").Balance.Available.Equal(dec("10"))).To(BeTrue())
		})

		It("should round to eight digits half away from zero", func() {
			_, err := addresses.Deposit(ctx, "A", dec("0.123456785"), ledger.Locked)
			Expect(err).NotTo(HaveOccurred())
			Expect(store.address("A").Balance.Locked.String()).To(Equal("0.12345679"))
		})

		It("should reject a non-positive amount", func() {
			_, err := addresses.Deposit(ctx, "A", dec("0"), ledger.Available)
			Expect(err).To(MatchError(ledger.ErrValidation))
		})

		It("should fail for an unknown address", func() {
			_, err := addresses.Deposit(ctx, "missing", dec("1"), ledger.Available)
			Expect(err).To(MatchError(ledger.ErrNotFound))
		})
	})

	Describe("Withdraw", func() {
		BeforeEach(func() {
			_, err := addresses.Deposit(ctx, "A", dec("10"), ledger.Available)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should fail without changing the balance when funds are short", func() {
			_, err := addresses.Withdraw(ctx, "A", dec("11"), ledger.Available)
			Expect(err).To(MatchError(ledger.ErrInsufficientFunds))

			balance := store.address("A").Balance
			Expect(balance.Available.Equal(dec("10"))).To(BeTrue())
			Expect(balance.Locked.IsZero()).To(BeTrue())
		})

		It("should allow draining the balance to zero", func() {
			record, err := addresses.Withdraw(ctx, "A", dec("10"), ledger.Available)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Balance.Available.IsZero()).To(BeTrue())
		})

		It("should not touch the other sub-balance", func() {
			_, err := addresses.Withdraw(ctx, "A", dec("1"), ledger.Locked)
			Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
		})
	})

	Describe("concurrent mutations", func() {
		It("should apply every deposit exactly once", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := addresses.Deposit(ctx, "A", dec("0.1"), ledger.Available)
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			Expect(store.address("A").Balance.Available.Equal(dec("5"))).To(BeTrue())
		})

		It("should never overdraw", func() {
			_, err := addresses.Deposit(ctx, "A", dec("3"), ledger.Available)
			Expect(err).NotTo(HaveOccurred())

			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				succeeded int
			)
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := addresses.Withdraw(ctx, "A", dec("1"), ledger.Available)
					if err == nil {
						mu.Lock()
						succeeded++
						mu.Unlock()
						return
					}
					Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
				}()
			}
			wg.Wait()

			Expect(succeeded).To(Equal(3))
			Expect(store.address("A").Balance.Available.IsZero()).To(BeTrue())
		})
	})

	Describe("Allocate", func() {
		When("the free pool is empty", func() {
			BeforeEach(func() {
				fakeIssuer.CreateAddressReturns("fresh", nil)
			})

			It("should create exactly one daemon address for the owner", func() {
				record, err := addresses.Allocate(ctx, "owner1")
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeIssuer.CreateAddressCallCount()).To(Equal(1))
				Expect(record.Address).To(Equal("fresh"))
				Expect(*record.OwnerID).To(Equal("owner1"))
				Expect(record.Balance.Available.IsZero()).To(BeTrue())
				Expect(record.Balance.Locked.IsZero()).To(BeTrue())
			})
		})

		When("free addresses exist", func() {
			BeforeEach(func() {
				store.seed(repository.Address{Address: "F1", IsEnabled: true})
				store.seed(repository.Address{Address: "F2", IsEnabled: true})
			})

			It("should claim the oldest one without asking the daemon", func() {
				record, err := addresses.Allocate(ctx, "owner2")
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Address).To(Equal("F1"))
				Expect(*store.address("F1").OwnerID).To(Equal("owner2"))
				Expect(store.address("F2").OwnerID).To(BeNil())
				Expect(fakeIssuer.CreateAddressCallCount()).To(BeZero())
			})

			It("should hand distinct addresses to concurrent owners", func() {
				fakeIssuer.CreateAddressReturnsOnCall(0, "fresh1", nil)
				fakeIssuer.CreateAddressReturnsOnCall(1, "fresh2", nil)

				var (
					wg   sync.WaitGroup
					mu   sync.Mutex
					seen = map[string]bool{}
				)
				for _, owner := range []string{"o1", "o2", "o3"} {
					wg.Add(1)
					go func(owner string) {
						defer GinkgoRecover()
						defer wg.Done()
						record, err := addresses.Allocate(ctx, owner)
						Expect(err).NotTo(HaveOccurred())
						mu.Lock()
						seen[record.Address] = true
						mu.Unlock()
					}(owner)
				}
				wg.Wait()

				Expect(seen).To(HaveLen(3))
			})
		})

		It("should require an owner", func() {
			_, err := addresses.Allocate(ctx, "")
			Expect(err).To(MatchError(ledger.ErrValidation))
		})

		It("should surface daemon failures", func() {
			fakeIssuer.CreateAddressReturns("", errors.New("daemon down"))
			_, err := addresses.Allocate(ctx, "owner1")
			Expect(err).To(MatchError(ContainSubstring("daemon down")))
		})
	})

	Describe("Find", func() {
		It("should scope the lookup to the owner", func() {
			other := "owner2"
			_, err := addresses.Find(ctx, &other, "A")
			Expect(err).To(MatchError(ledger.ErrNotFound))

			owner := "owner1"
			record, err := addresses.Find(ctx, &owner, "A")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Address).To(Equal("A"))
		})
	})

	Describe("Disable", func() {
		It("should hide the address from Find", func() {
			owner := "owner1"
			record, err := addresses.Disable(ctx, &owner, "A")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.IsEnabled).To(BeFalse())

			_, err = addresses.Find(ctx, &owner, "A")
			Expect(err).To(MatchError(ledger.ErrNotFound))

			_, err = addresses.Disable(ctx, &owner, "A")
			Expect(err).To(MatchError(ledger.ErrNotFound))
		})
	})

	Describe("Ensure", func() {
		It("should register unknown addresses as free", func() {
			record, err := addresses.Ensure(ctx, "external")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.OwnerID).To(BeNil())
			Expect(record.IsEnabled).To(BeTrue())

			again, err := addresses.Ensure(ctx, "external")
			Expect(err).NotTo(HaveOccurred())
			Expect(again.ID).To(Equal(record.ID))
		})
	})

	Describe("Track", func() {
		It("should record unknown addresses disabled and outside the free pool", func() {
			record, err := addresses.Track(ctx, "external")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.OwnerID).To(BeNil())
			Expect(record.IsEnabled).To(BeFalse())

			free, err := addresses.ListFree(ctx)
			Expect(err).NotTo(HaveOccurred())
			for _, candidate := range free {
				Expect(candidate.Address).NotTo(Equal("external"))
			}

			again, err := addresses.Track(ctx, "external")
			Expect(err).NotTo(HaveOccurred())
			Expect(again.ID).To(Equal(record.ID))
		})

		It("should return known addresses as they are", func() {
			record, err := addresses.Track(ctx, "A")
			Expect(err).NotTo(HaveOccurred())
			Expect(*record.OwnerID).To(Equal("owner1"))
			Expect(record.IsEnabled).To(BeTrue())
		})
	})

	Describe("RegisterFromDaemon", func() {
		It("should report duplicates", func() {
			_, err := addresses.RegisterFromDaemon(ctx, nil, "A")
			Expect(err).To(MatchError(ledger.ErrDuplicate))
		})
	})
})
