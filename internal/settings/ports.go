package settings

import (
	"context"

	"coinledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	GetConfiguration(ctx context.Context, key string) (repository.Configuration, error)
	SaveConfiguration(ctx context.Context, cfg repository.Configuration) error
}
