package repository_test

import (
	"context"
	"errors"

	"coinledger/internal/db"
	"coinledger/internal/repository"
	"coinledger/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var (
			err      error
			defaults []repository.Configuration
		)

		BeforeEach(func() {
			defaults = []repository.Configuration{
				{Key: "minimumConfirmations", Value: "6"},
				{Key: "currentBlockNumber", Value: "0"},
			}
		})

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx, defaults)
		})

		When("migration succeeds", func() {
			It("should migrate every table and seed the configuration", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(5))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Address{}))
				Expect(tables[4]).To(BeAssignableToTypeOf(&repository.Configuration{}))

				Expect(fakeStorage.SeedTableCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedTableArgsForCall(0)
				Expect(records).To(Equal(&defaults))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
				Expect(fakeStorage.SeedTableCallCount()).To(Equal(0))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedTableReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("ListAddresses", func() {
		var (
			filter    repository.AddressFilter
			addresses []repository.Address
			err       error
		)

		BeforeEach(func() {
			filter = repository.AddressFilter{}
			fakeStorage.GetAllByStub = func(_ context.Context, _ db.Filter, entities any) error {
				*(entities.(*[]repository.Address)) = []repository.Address{{Address: "a1"}, {Address: "a2"}}
				return nil
			}
		})

		JustBeforeEach(func() {
			addresses, err = repo.ListAddresses(ctx, filter)
		})

		It("should return enabled addresses oldest first", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(addresses).To(HaveLen(2))

			_, f, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(f.Conditions).To(Equal(map[string]any{"is_enabled": true}))
			Expect(f.Order).To(Equal("created_at asc, id asc"))
		})

		When("only free addresses are requested", func() {
			BeforeEach(func() {
				filter.FreeOnly = true
			})

			It("should filter on a missing owner", func() {
				_, f, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(f.Conditions).To(Equal(map[string]any{"is_enabled": true, "owner_id": nil}))
			})
		})

		When("an owner and disabled records are requested", func() {
			BeforeEach(func() {
				owner := "owner-1"
				filter.OwnerID = &owner
				filter.Any = true
			})

			It("should filter on the owner only", func() {
				_, f, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(f.Conditions).To(Equal(map[string]any{"owner_id": "owner-1"}))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = nil
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(ContainSubstring("list addresses: fake error")))
			})
		})
	})

	Describe("GetAddress", func() {
		When("the address is unknown", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrNotFound", func() {
				_, err := repo.GetAddress(ctx, "missing")
				Expect(err).To(MatchError(repository.ErrNotFound))
			})
		})

		When("the address exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, f db.Filter, entity any) error {
					Expect(f.Conditions).To(Equal(map[string]any{"address": "a1"}))
					*(entity.(*repository.Address)) = repository.Address{
						Address: "a1",
						Balance: repository.Balance{Available: decimal.NewFromInt(3)},
					}
					return nil
				}
			})

			It("should return the record", func() {
				addr, err := repo.GetAddress(ctx, "a1")
				Expect(err).NotTo(HaveOccurred())
				Expect(addr.Balance.Available.String()).To(Equal("3"))
			})
		})
	})

	Describe("CreateAddress", func() {
		It("should assign an id before inserting", func() {
			addr := &repository.Address{Address: "a1"}
			Expect(repo.CreateAddress(ctx, addr)).To(Succeed())
			Expect(addr.ID).NotTo(BeEmpty())
			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
		})

		When("the address already exists", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicate)
			})

			It("should return ErrDuplicate", func() {
				err := repo.CreateAddress(ctx, &repository.Address{Address: "a1"})
				Expect(err).To(MatchError(repository.ErrDuplicate))
			})
		})
	})

	Describe("MarkTransactionNotified", func() {
		It("should set the creation flag", func() {
			Expect(repo.MarkTransactionNotified(ctx, "tx-1", false)).To(Succeed())
			_, record, columns := fakeStorage.UpdateColumnsArgsForCall(0)
			Expect(record).To(Equal(&repository.Transaction{ID: "tx-1"}))
			Expect(columns).To(Equal(map[string]any{"creation_notified": true}))
		})

		It("should set the confirmation flag", func() {
			Expect(repo.MarkTransactionNotified(ctx, "tx-1", true)).To(Succeed())
			_, _, columns := fakeStorage.UpdateColumnsArgsForCall(0)
			Expect(columns).To(Equal(map[string]any{"confirmation_notified": true}))
		})

		When("the row is gone", func() {
			BeforeEach(func() {
				fakeStorage.UpdateColumnsReturns(db.ErrNotFound)
			})

			It("should return ErrNotFound", func() {
				Expect(repo.MarkTransactionNotified(ctx, "tx-1", true)).To(MatchError(repository.ErrNotFound))
			})
		})
	})

	Describe("ListUnnotifiedTransactions", func() {
		It("should select pending creation or confirmation notifications", func() {
			_, err := repo.ListUnnotifiedTransactions(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, f, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(f.Conditions).To(Equal("creation_notified = ? OR (is_confirmed = ? AND confirmation_notified = ?)"))
			Expect(f.Args).To(Equal([]any{false, true, false}))
		})
	})

	Describe("Reset", func() {
		It("should clear every ledger table", func() {
			Expect(repo.Reset(ctx)).To(Succeed())
			Expect(fakeStorage.ClearCallCount()).To(Equal(4))
		})
	})
})
