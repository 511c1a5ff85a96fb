package config_test

import (
	"os"
	"time"

	"coinledger/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
				return
			}
			os.Unsetenv(key)
		})
	}

	unsetEnv := func(key string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
			}
		})
	}

	BeforeEach(func() {
		setEnv("API_PORT", "8080")
		setEnv("DB_CONNECTION_URL", "postgres://localhost/ledger")
		setEnv("JWT_SECRET", "secret")
		setEnv("DAEMON_RPC_URL", "http://localhost:8332")
		for _, key := range []string{
			"DAEMON_RPS", "DAEMON_TIMEOUT", "DAEMON_FALLBACK_FEE", "FEE_SAFETY_FACTOR",
			"OBSERVER_INTERVAL", "DISPATCHER_INTERVAL", "POOL_INTERVAL",
			"DEFAULT_MINIMUM_CONFIRMATIONS", "DEFAULT_MINIMUM_ADDRESS_POOL_SIZE",
			"DEFAULT_NOTIFICATION_API", "DEFAULT_PREVIOUS_BLOCKS_TO_CHECK", "LOG_LEVEL",
		} {
			unsetEnv(key)
		}
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the required variables are set", func() {
		It("should fill in the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.Daemon.URL).To(Equal("http://localhost:8332"))
			Expect(app.Daemon.RPS).To(Equal(20.0))
			Expect(app.Daemon.Timeout).To(Equal(30 * time.Second))
			Expect(app.Daemon.FallbackFee.Equal(decimal.RequireFromString("0.0001"))).To(BeTrue())
			Expect(app.FeeSafetyFactor.Equal(decimal.NewFromInt(2))).To(BeTrue())
			Expect(app.Workers.ObserverInterval).To(Equal(10 * time.Second))
			Expect(app.Workers.PoolInterval).To(Equal(time.Minute))
			Expect(app.Defaults.MinimumConfirmations).To(Equal(int64(6)))
			Expect(app.Defaults.MinimumAddressPoolSize).To(Equal(int64(100)))
			Expect(app.Defaults.PreviousBlocksToCheck).To(Equal(int64(1000)))
			Expect(app.Defaults.NotificationAPI).To(Equal("http://localhost:3001/v1/transactions/notifications"))
			Expect(app.LogLevel).To(Equal("info"))
		})
	})

	When("optional variables are overridden", func() {
		BeforeEach(func() {
			setEnv("DEFAULT_MINIMUM_CONFIRMATIONS", "3")
			setEnv("OBSERVER_INTERVAL", "2s")
			setEnv("DAEMON_FALLBACK_FEE", "0.0002")
		})

		It("should use the provided values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Defaults.MinimumConfirmations).To(Equal(int64(3)))
			Expect(app.Workers.ObserverInterval).To(Equal(2 * time.Second))
			Expect(app.Daemon.FallbackFee.String()).To(Equal("0.0002"))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			unsetEnv("DAEMON_RPC_URL")
		})

		It("should return an error naming the variable", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable not found: DAEMON_RPC_URL")))
		})
	})

	When("an optional variable is malformed", func() {
		BeforeEach(func() {
			setEnv("POOL_INTERVAL", "often")
		})

		It("should reject it", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable is invalid")))
		})
	})
})
