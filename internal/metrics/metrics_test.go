package metrics_test

import (
	"strings"
	"time"

	"coinledger/internal/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Metrics", func() {
	var (
		reg *prometheus.Registry
		m   *metrics.Metrics
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		m = metrics.New(reg)
	})

	It("should count cycles and time only the ones that ran", func() {
		m.Cycle("observer", metrics.ResultOK, time.Second)
		m.Cycle("observer", metrics.ResultSkipped, 0)

		count, err := testutil.GatherAndCount(reg, "coinledger_worker_cycles_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))

		count, err = testutil.GatherAndCount(reg, "coinledger_worker_cycle_duration_seconds")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})

	It("should expose the observer cursor", func() {
		m.Cursor(1200)

		expected := `
# HELP coinledger_observer_block_cursor Last block height the observer scanned up to.
# TYPE coinledger_observer_block_cursor gauge
coinledger_observer_block_cursor 1200
`
		Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "coinledger_observer_block_cursor")).To(Succeed())
	})

	It("should label reconcile outcomes", func() {
		m.Reconciled("created")
		m.Reconciled("created")
		m.Notified("creation", metrics.ResultError)

		count, err := testutil.GatherAndCount(reg, "coinledger_chain_events_total", "coinledger_notifications_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("should refuse double registration", func() {
		Expect(func() { metrics.New(reg) }).To(Panic())
	})
})
