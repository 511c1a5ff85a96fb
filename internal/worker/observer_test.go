package worker_test

import (
	"context"
	"errors"

	"coinledger/internal/daemon"
	"coinledger/internal/ledger"
	"coinledger/internal/repository"
	"coinledger/internal/settings"
	"coinledger/internal/worker"
	"coinledger/internal/worker/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func intPtr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool { return &v }

var _ = Describe("Observer", func() {
	var (
		chain        *fake.ChainSource
		reconciler   *fake.Reconciler
		fakeSettings *fake.Settings
		fakeMetrics  *fake.Metrics
		observer     *worker.Observer
		ctx          context.Context

		cursor, window int64
		fakeErr        error
	)

	BeforeEach(func() {
		chain = new(fake.ChainSource)
		reconciler = new(fake.Reconciler)
		fakeSettings = new(fake.Settings)
		fakeMetrics = new(fake.Metrics)
		observer = worker.NewObserver(zap.NewNop().Sugar(), chain, reconciler, fakeSettings, fakeMetrics)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		cursor, window = 0, 1000
		fakeSettings.IntStub = func(_ context.Context, key string) (int64, error) {
			switch key {
			case settings.CurrentBlockNumber:
				return cursor, nil
			case settings.PreviousBlocksToCheck:
				return window, nil
			}
			return 0, errors.New("unexpected key " + key)
		}
		chain.BlockHashReturns("H", nil)
		reconciler.ReconcileReturns(ledger.OutcomeCreated, nil)
	})

	DescribeTable("cursor movement",
		func(start, height, wantFrom int64, wantSaved bool, wantCursor int64) {
			cursor = start
			chain.BlockCountReturns(height, nil)

			Expect(observer.Run(ctx)).To(Succeed())

			_, from := chain.BlockHashArgsForCall(0)
			Expect(from).To(Equal(wantFrom))
			if !wantSaved {
				Expect(fakeSettings.SetIntCallCount()).To(BeZero())
				return
			}
			_, key, saved := fakeSettings.SetIntArgsForCall(0)
			Expect(key).To(Equal(settings.CurrentBlockNumber))
			Expect(saved).To(Equal(wantCursor))
			Expect(saved).To(BeNumerically("<=", height))
		},
		Entry("fresh start on a long chain", int64(0), int64(5000), int64(0), true, int64(1000)),
		Entry("catching up", int64(2000), int64(5000), int64(1000), true, int64(3000)),
		Entry("near the tip", int64(4500), int64(5000), int64(3500), true, int64(5000)),
		Entry("at the tip", int64(5000), int64(5000), int64(4000), false, int64(0)),
		Entry("chain shorter than the cursor", int64(5000), int64(10), int64(10), false, int64(0)),
	)

	It("should reconcile sends and receives only", func() {
		chain.BlockCountReturns(100, nil)
		fee := decimal.RequireFromString("-0.0001")
		chain.ListSinceBlockReturns([]daemon.Entry{
			{TxID: "T1", Category: "receive", Address: "A", Amount: decimal.NewFromInt(1), Confirmations: intPtr(3)},
			{TxID: "T2", Category: "generate", Address: "A", Amount: decimal.NewFromInt(50)},
			{TxID: "T3", Category: "send", Address: "B", Amount: decimal.NewFromInt(-1), Fee: &fee, BlockHeight: 91, To: "A@B"},
		}, nil)

		Expect(observer.Run(ctx)).To(Succeed())
		Expect(reconciler.ReconcileCallCount()).To(Equal(2))

		_, first := reconciler.ReconcileArgsForCall(0)
		Expect(first.TxID).To(Equal("T1"))
		Expect(first.Confirmations).To(Equal(int64(3)))

		_, second := reconciler.ReconcileArgsForCall(1)
		Expect(second.Category).To(Equal(repository.CategorySend))
		Expect(second.Confirmations).To(Equal(int64(10)))
		Expect(second.To).To(Equal("A@B"))
		Expect(second.Fee.Equal(fee)).To(BeTrue())
	})

	It("should skip untrusted and conflicted entries", func() {
		chain.BlockCountReturns(100, nil)
		chain.ListSinceBlockReturns([]daemon.Entry{
			{TxID: "T1", Category: "receive", Address: "A", Amount: decimal.NewFromInt(1), Trusted: boolPtr(false)},
			{TxID: "T2", Category: "receive", Address: "A", Amount: decimal.NewFromInt(1), Confirmations: intPtr(-1)},
			{TxID: "T3", Category: "receive", Address: "A", Amount: decimal.NewFromInt(1), Trusted: boolPtr(true)},
		}, nil)

		Expect(observer.Run(ctx)).To(Succeed())
		Expect(reconciler.ReconcileCallCount()).To(Equal(1))
		_, event := reconciler.ReconcileArgsForCall(0)
		Expect(event.TxID).To(Equal("T3"))
		Expect(event.Confirmations).To(BeZero())
	})

	It("should keep going past a failing entry and still move the cursor", func() {
		chain.BlockCountReturns(100, nil)
		chain.ListSinceBlockReturns([]daemon.Entry{
			{TxID: "T1", Category: "receive", Address: "A", Amount: decimal.NewFromInt(1)},
			{TxID: "T2", Category: "receive", Address: "A", Amount: decimal.NewFromInt(1)},
		}, nil)
		reconciler.ReconcileReturnsOnCall(0, ledger.OutcomeUnchanged, fakeErr)

		Expect(observer.Run(ctx)).To(Succeed())
		Expect(reconciler.ReconcileCallCount()).To(Equal(2))
		Expect(fakeSettings.SetIntCallCount()).To(Equal(1))
		Expect(fakeMetrics.ReconciledArgsForCall(0)).To(Equal("error"))
		Expect(fakeMetrics.ReconciledArgsForCall(1)).To(Equal("created"))
	})

	DescribeTable("daemon failures leave the cursor alone",
		func(setup func()) {
			chain.BlockCountReturns(100, nil)
			setup()
			Expect(observer.Run(ctx)).To(MatchError(fakeErr))
			Expect(fakeSettings.SetIntCallCount()).To(BeZero())
			Expect(reconciler.ReconcileCallCount()).To(BeZero())
		},
		Entry("block count", func() { chain.BlockCountReturns(0, fakeErr) }),
		Entry("block hash", func() { chain.BlockHashReturns("", fakeErr) }),
		Entry("listsinceblock", func() { chain.ListSinceBlockReturns(nil, fakeErr) }),
	)
})
