package settings_test

import (
	"context"
	"fmt"

	"coinledger/internal/config"
	"coinledger/internal/repository"
	"coinledger/internal/settings"
	"coinledger/internal/settings/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Settings", func() {
	var (
		store *fake.Store
		s     *settings.Settings
		ctx   context.Context
	)

	BeforeEach(func() {
		store = new(fake.Store)
		s = settings.New(store)
		ctx = context.Background()
	})

	Describe("Int", func() {
		When("the value is stored", func() {
			BeforeEach(func() {
				store.GetConfigurationReturns(repository.Configuration{Key: settings.MinimumConfirmations, Value: "6"}, nil)
			})

			It("should parse it", func() {
				value, err := s.Int(ctx, settings.MinimumConfirmations)
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal(int64(6)))
				_, key := store.GetConfigurationArgsForCall(0)
				Expect(key).To(Equal("minimumConfirmations"))
			})
		})

		When("the value is missing", func() {
			BeforeEach(func() {
				store.GetConfigurationReturns(repository.Configuration{}, fmt.Errorf("get configuration: %w", repository.ErrNotFound))
			})

			It("should return ErrMissing", func() {
				_, err := s.Int(ctx, settings.CurrentBlockNumber)
				Expect(err).To(MatchError(settings.ErrMissing))
			})
		})

		When("the value is not a number", func() {
			BeforeEach(func() {
				store.GetConfigurationReturns(repository.Configuration{Value: "six"}, nil)
			})

			It("should return ErrMalformed", func() {
				_, err := s.Int(ctx, settings.MinimumConfirmations)
				Expect(err).To(MatchError(settings.ErrMalformed))
			})
		})
	})

	Describe("SetInt", func() {
		It("should store the formatted value", func() {
			Expect(s.SetInt(ctx, settings.CurrentBlockNumber, 1200)).To(Succeed())
			_, cfg := store.SaveConfigurationArgsForCall(0)
			Expect(cfg.Key).To(Equal(settings.CurrentBlockNumber))
			Expect(cfg.Value).To(Equal("1200"))
		})
	})

	Describe("Defaults", func() {
		It("should produce one row per key with the cursor at zero", func() {
			rows := settings.Defaults(config.Defaults{
				MinimumConfirmations:   6,
				MinimumAddressPoolSize: 100,
				NotificationAPI:        "http://localhost:3001/v1/transactions/notifications",
				PreviousBlocksToCheck:  1000,
			})

			values := map[string]string{}
			for _, row := range rows {
				values[row.Key] = row.Value
			}
			Expect(values).To(Equal(map[string]string{
				"minimumConfirmations":       "6",
				"minimumAddressPoolSize":     "100",
				"transactionNotificationAPI": "http://localhost:3001/v1/transactions/notifications",
				"currentBlockNumber":         "0",
				"previousBlocksToCheck":      "1000",
			}))
		})
	})
})
