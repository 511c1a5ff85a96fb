// Package settings exposes the runtime configuration table as typed values.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"coinledger/internal/config"
	"coinledger/internal/repository"
)

const (
	MinimumConfirmations       = "minimumConfirmations"
	MinimumAddressPoolSize     = "minimumAddressPoolSize"
	TransactionNotificationAPI = "transactionNotificationAPI"
	CurrentBlockNumber         = "currentBlockNumber"
	PreviousBlocksToCheck      = "previousBlocksToCheck"
)

var ErrMissing error = errors.New("configuration value missing")
var ErrMalformed error = errors.New("configuration value malformed")

type Settings struct {
	store Store
}

func New(store Store) *Settings {
	return &Settings{
		store: store,
	}
}

// Defaults turns startup defaults into configuration rows for seeding.
func Defaults(d config.Defaults) []repository.Configuration {
	now := time.Now()
	return []repository.Configuration{
		{Key: MinimumConfirmations, Value: strconv.FormatInt(d.MinimumConfirmations, 10), UpdatedAt: now},
		{Key: MinimumAddressPoolSize, Value: strconv.FormatInt(d.MinimumAddressPoolSize, 10), UpdatedAt: now},
		{Key: TransactionNotificationAPI, Value: d.NotificationAPI, UpdatedAt: now},
		{Key: CurrentBlockNumber, Value: "0", UpdatedAt: now},
		{Key: PreviousBlocksToCheck, Value: strconv.FormatInt(d.PreviousBlocksToCheck, 10), UpdatedAt: now},
	}
}

func (s *Settings) String(ctx context.Context, key string) (string, error) {
	cfg, err := s.store.GetConfiguration(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrMissing, key)
		}
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return cfg.Value, nil
}

func (s *Settings) Int(ctx context.Context, key string) (int64, error) {
	raw, err := s.String(ctx, key)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformed, key, raw)
	}
	return value, nil
}

func (s *Settings) SetInt(ctx context.Context, key string, value int64) error {
	err := s.store.SaveConfiguration(ctx, repository.Configuration{
		Key:       key,
		Value:     strconv.FormatInt(value, 10),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
