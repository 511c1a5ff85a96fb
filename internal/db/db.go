package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

// Filter narrows a query. Conditions is either a column/value map or a SQL
// fragment whose placeholders are bound from Args.
type Filter struct {
	Conditions any
	Args       []any
	Order      string
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SeedTable inserts records, skipping rows whose key already exists.
func (f *PostgresDB) SeedTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	if v.Elem().Len() == 0 {
		return nil
	}

	err := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("seed table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

// Save writes every column of a record identified by its primary key.
func (f *PostgresDB) Save(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Save(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("save record: %w", err)
	}

	return nil
}

// UpdateColumns writes only the given columns of the record's row.
func (f *PostgresDB) UpdateColumns(ctx context.Context, record any, columns map[string]any) error {
	tx := f.DB.WithContext(ctx).Model(record).Updates(columns)
	if tx.Error != nil {
		return fmt.Errorf("update columns: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, filter Filter, entity any) error {
	err := f.query(ctx, filter).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", filter.Conditions, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, filter Filter, entities any) error {
	tx := f.query(ctx, filter).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %v: %w", filter.Conditions, tx.Error)
	}
	return nil
}

// Clear removes every row of the model's table.
func (f *PostgresDB) Clear(ctx context.Context, model any) error {
	err := f.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(model).Error
	if err != nil {
		return fmt.Errorf("clear table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *PostgresDB) query(ctx context.Context, filter Filter) *gorm.DB {
	tx := f.DB.WithContext(ctx)
	if filter.Conditions != nil {
		tx = tx.Where(filter.Conditions, filter.Args...)
	}
	if filter.Order != "" {
		tx = tx.Order(filter.Order)
	}
	return tx
}
