package worker_test

import (
	"context"
	"errors"
	"time"

	"coinledger/internal/metrics"
	"coinledger/internal/worker"
	"coinledger/internal/worker/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Runner", func() {
	var (
		job         *fake.Job
		fakeMetrics *fake.Metrics
		runner      *worker.Runner
		ctx         context.Context
	)

	BeforeEach(func() {
		job = new(fake.Job)
		fakeMetrics = new(fake.Metrics)
		runner = worker.NewRunner(zap.NewNop().Sugar(), "observer", job, time.Hour, fakeMetrics)
		ctx = context.Background()
	})

	It("should record a successful run", func() {
		Expect(runner.RunOnce(ctx)).To(BeTrue())
		Expect(job.RunCallCount()).To(Equal(1))
		name, result, _ := fakeMetrics.CycleArgsForCall(0)
		Expect(name).To(Equal("observer"))
		Expect(result).To(Equal(metrics.ResultOK))
	})

	It("should record a failed run without propagating it", func() {
		job.RunReturns(errors.New("daemon down"))
		Expect(runner.RunOnce(ctx)).To(BeTrue())
		_, result, _ := fakeMetrics.CycleArgsForCall(0)
		Expect(result).To(Equal(metrics.ResultError))
		Expect(runner.Running()).To(BeFalse())
	})

	It("should survive a panicking job", func() {
		job.RunStub = func(context.Context) error {
			panic("boom")
		}
		Expect(runner.RunOnce(ctx)).To(BeTrue())
		_, result, _ := fakeMetrics.CycleArgsForCall(0)
		Expect(result).To(Equal(metrics.ResultPanic))
		Expect(runner.Running()).To(BeFalse())
	})

	It("should skip a run while another is in flight", func() {
		started := make(chan struct{})
		release := make(chan struct{})
		job.RunStub = func(context.Context) error {
			close(started)
			<-release
			return nil
		}

		done := make(chan bool)
		go func() {
			defer GinkgoRecover()
			done <- runner.RunOnce(ctx)
		}()
		Eventually(started).Should(BeClosed())

		Expect(runner.RunOnce(ctx)).To(BeFalse())
		close(release)
		Eventually(done).Should(Receive(BeTrue()))

		Expect(job.RunCallCount()).To(Equal(1))
		_, result, _ := fakeMetrics.CycleArgsForCall(0)
		Expect(result).To(Equal(metrics.ResultSkipped))
	})

	Describe("Start", func() {
		It("should run at once, on trigger and stop with the context", func() {
			runCtx, cancel := context.WithCancel(ctx)
			stopped := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				runner.Start(runCtx)
				close(stopped)
			}()

			Eventually(job.RunCallCount).Should(Equal(1))
			runner.Trigger()
			Eventually(job.RunCallCount).Should(Equal(2))

			cancel()
			Eventually(stopped).Should(BeClosed())
		})

		It("should coalesce triggers during a run into one follow-up run", func() {
			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			started := make(chan struct{}, 4)
			release := make(chan struct{})
			job.RunStub = func(context.Context) error {
				started <- struct{}{}
				<-release
				return nil
			}

			go func() {
				defer GinkgoRecover()
				runner.Start(runCtx)
			}()

			Eventually(started).Should(Receive())
			runner.Trigger()
			runner.Trigger()
			runner.Trigger()
			close(release)

			Eventually(job.RunCallCount).Should(Equal(2))
			Consistently(job.RunCallCount, 100*time.Millisecond).Should(Equal(2))
		})

		It("should let an in-flight run finish after cancellation", func() {
			runCtx, cancel := context.WithCancel(ctx)
			started := make(chan struct{})
			release := make(chan struct{})
			var jobErr error
			job.RunStub = func(jobCtx context.Context) error {
				close(started)
				<-release
				jobErr = jobCtx.Err()
				return nil
			}

			stopped := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				runner.Start(runCtx)
				close(stopped)
			}()

			Eventually(started).Should(BeClosed())
			cancel()
			Consistently(stopped, 50*time.Millisecond).ShouldNot(BeClosed())

			close(release)
			Eventually(stopped).Should(BeClosed())
			Expect(jobErr).NotTo(HaveOccurred())
			Expect(job.RunCallCount()).To(Equal(1))
		})
	})
})
