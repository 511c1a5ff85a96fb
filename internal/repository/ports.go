package repository

import (
	"context"

	"coinledger/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SeedTable(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	Save(ctx context.Context, record any) error
	UpdateColumns(ctx context.Context, record any, columns map[string]any) error
	GetOneBy(ctx context.Context, filter db.Filter, entity any) error
	GetAllBy(ctx context.Context, filter db.Filter, entities any) error
	Clear(ctx context.Context, model any) error
}
