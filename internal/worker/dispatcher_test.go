package worker_test

import (
	"context"
	"errors"

	"coinledger/internal/metrics"
	"coinledger/internal/repository"
	"coinledger/internal/settings"
	"coinledger/internal/worker"
	"coinledger/internal/worker/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Dispatcher", func() {
	var (
		outbox       *fake.Outbox
		notifier     *fake.Notifier
		fakeSettings *fake.Settings
		fakeMetrics  *fake.Metrics
		dispatcher   *worker.Dispatcher
		ctx          context.Context
		fakeErr      error
	)

	BeforeEach(func() {
		outbox = new(fake.Outbox)
		notifier = new(fake.Notifier)
		fakeSettings = new(fake.Settings)
		fakeMetrics = new(fake.Metrics)
		dispatcher = worker.NewDispatcher(zap.NewNop().Sugar(), outbox, notifier, fakeSettings, fakeMetrics)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeSettings.StringReturns("http://owner.example/hook", nil)
		outbox.UnnotifiedReturns([]repository.Transaction{
			{ID: "tx-1", TransactionHash: "T1"},
			{ID: "tx-2", TransactionHash: "T2", CreationNotified: true, IsConfirmed: true},
		}, nil)
	})

	It("should post each pending transaction and flag it", func() {
		Expect(dispatcher.Run(ctx)).To(Succeed())

		_, key := fakeSettings.StringArgsForCall(0)
		Expect(key).To(Equal(settings.TransactionNotificationAPI))

		Expect(notifier.PostCallCount()).To(Equal(2))
		_, endpoint, payload := notifier.PostArgsForCall(0)
		Expect(endpoint).To(Equal("http://owner.example/hook"))
		Expect(payload.ID).To(Equal("tx-1"))

		Expect(outbox.MarkNotifiedCallCount()).To(Equal(2))
		kind, result := fakeMetrics.NotifiedArgsForCall(0)
		Expect(kind).To(Equal("creation"))
		Expect(result).To(Equal(metrics.ResultOK))
		kind, _ = fakeMetrics.NotifiedArgsForCall(1)
		Expect(kind).To(Equal("confirmation"))
	})

	It("should leave undelivered transactions pending and continue", func() {
		notifier.PostReturnsOnCall(0, fakeErr)

		Expect(dispatcher.Run(ctx)).To(MatchError(ContainSubstring("1 of 2")))
		Expect(notifier.PostCallCount()).To(Equal(2))
		Expect(outbox.MarkNotifiedCallCount()).To(Equal(1))
		_, marked := outbox.MarkNotifiedArgsForCall(0)
		Expect(marked.ID).To(Equal("tx-2"))
	})

	It("should not post anything without an endpoint", func() {
		fakeSettings.StringReturns("", fakeErr)
		Expect(dispatcher.Run(ctx)).To(MatchError(fakeErr))
		Expect(outbox.UnnotifiedCallCount()).To(BeZero())
	})
})
