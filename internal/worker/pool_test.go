package worker_test

import (
	"context"
	"errors"
	"fmt"

	"coinledger/internal/ledger"
	"coinledger/internal/repository"
	"coinledger/internal/settings"
	"coinledger/internal/worker"
	"coinledger/internal/worker/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freeAddresses(n int) []repository.Address {
	out := make([]repository.Address, n)
	for i := range out {
		out[i] = repository.Address{Address: fmt.Sprintf("free-%d", i), IsEnabled: true}
	}
	return out
}

var _ = Describe("PoolMaintainer", func() {
	var (
		source       *fake.AddressSource
		pool         *fake.AddressPool
		fakeSettings *fake.Settings
		fakeMetrics  *fake.Metrics
		maintainer   *worker.PoolMaintainer
		ctx          context.Context
		fakeErr      error
	)

	BeforeEach(func() {
		source = new(fake.AddressSource)
		pool = new(fake.AddressPool)
		fakeSettings = new(fake.Settings)
		fakeMetrics = new(fake.Metrics)
		maintainer = worker.NewPoolMaintainer(zap.NewNop().Sugar(), source, pool, fakeSettings, fakeMetrics)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeSettings.IntReturns(5, nil)
	})

	Describe("Maintain", func() {
		DescribeTable("creates exactly the deficit",
			func(free int, want int) {
				pool.ListFreeReturns(freeAddresses(free), nil)

				Expect(maintainer.Maintain(ctx)).To(Succeed())
				Expect(pool.CreateFromDaemonCallCount()).To(Equal(want))
				_, key := fakeSettings.IntArgsForCall(0)
				Expect(key).To(Equal(settings.MinimumAddressPoolSize))
				Expect(fakeMetrics.FreeAddressesArgsForCall(0)).To(Equal(free + want))
			},
			Entry("empty pool", 0, 5),
			Entry("partial pool", 3, 2),
			Entry("full pool", 5, 0),
			Entry("oversized pool", 8, 0),
		)

		It("should create free addresses", func() {
			pool.ListFreeReturns(nil, nil)
			Expect(maintainer.Maintain(ctx)).To(Succeed())
			_, owner := pool.CreateFromDaemonArgsForCall(0)
			Expect(owner).To(BeNil())
		})

		It("should stop at the first daemon failure", func() {
			pool.ListFreeReturns(nil, nil)
			pool.CreateFromDaemonReturnsOnCall(1, repository.Address{}, fakeErr)

			Expect(maintainer.Maintain(ctx)).To(MatchError(fakeErr))
			Expect(pool.CreateFromDaemonCallCount()).To(Equal(2))
		})
	})

	Describe("Synchronize", func() {
		BeforeEach(func() {
			source.ListAddressesReturns([]string{"known", "new1", "new2"}, nil)
			pool.ExistsStub = func(_ context.Context, address string) (bool, error) {
				return address == "known", nil
			}
		})

		It("should register unknown daemon addresses as free", func() {
			Expect(maintainer.Synchronize(ctx)).To(Succeed())
			Expect(pool.RegisterFromDaemonCallCount()).To(Equal(2))
			_, owner, address := pool.RegisterFromDaemonArgsForCall(0)
			Expect(owner).To(BeNil())
			Expect(address).To(Equal("new1"))
		})

		It("should ignore addresses registered concurrently", func() {
			pool.RegisterFromDaemonReturnsOnCall(0, repository.Address{}, fmt.Errorf("register new1: %w", ledger.ErrDuplicate))
			Expect(maintainer.Synchronize(ctx)).To(Succeed())
		})

		It("should report failures after trying every address", func() {
			pool.RegisterFromDaemonReturnsOnCall(0, repository.Address{}, fakeErr)
			Expect(maintainer.Synchronize(ctx)).To(MatchError(fakeErr))
			Expect(pool.RegisterFromDaemonCallCount()).To(Equal(2))
		})
	})

	Describe("Run", func() {
		It("should still top up the pool when synchronization fails", func() {
			source.ListAddressesReturns(nil, fakeErr)
			pool.ListFreeReturns(nil, nil)

			Expect(maintainer.Run(ctx)).To(MatchError(fakeErr))
			Expect(pool.CreateFromDaemonCallCount()).To(Equal(5))
		})
	})
})
