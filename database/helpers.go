package database

import (
	"context"
	"database/sql"
	"fmt"
	"paintvault_server/structs"
	"time"

	"github.com/uptrace/bun"
)

// Transaction executes a function within a database transaction. The
// handle passed to fn satisfies bun.IDB, so the same query builders
// work inside and outside the transaction.
func Transaction(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	db := GetInstance()
	if db == nil {
		return fmt.Errorf("database instance not initialized")
	}

	return db.RunInTx(ctx, &sql.TxOptions{}, fn)
}

// TransactionWithResult executes a function within a transaction and returns a result
func TransactionWithResult[T any](ctx context.Context, fn func(ctx context.Context, tx bun.Tx) (T, error)) (T, error) {
	var result T
	db := GetInstance()
	if db == nil {
		return result, fmt.Errorf("database instance not initialized")
	}

	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		result, err = fn(ctx, tx)
		return err
	})

	return result, err
}

// ListAndCount issues the filtered row query and a count over the same
// predicate; pagination applies only to the row query.
func ListAndCount[T any](ctx context.Context, q *QueryBuilder[T], limit, offset int) (structs.Page[T], error) {
	limit = structs.ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	total, err := q.Count(ctx)
	if err != nil {
		return structs.Page[T]{}, fmt.Errorf("failed to get total count: %w", err)
	}

	rows, err := q.Limit(limit).Offset(offset).All(ctx)
	if err != nil {
		return structs.Page[T]{}, fmt.Errorf("failed to get page: %w", err)
	}

	return structs.NewPage(rows, total, limit, offset), nil
}

// FindByID is a helper to find a record by ID
func FindByID[T any](db bun.IDB, ctx context.Context, id any) (*T, error) {
	return Query[T](db).Where("id", id).First(ctx)
}

// Create is a helper to insert a single record
func Create[T any](db bun.IDB, ctx context.Context, data *T) (*T, error) {
	return Query[T](db).Insert(ctx, data)
}

// UpsertIgnore inserts a record, silently skipping when the given
// conflict target already holds a row. Used by the taxonomy and join
// table writers so concurrent ingests cannot double-insert.
func UpsertIgnore[T any](db bun.IDB, ctx context.Context, data *T, conflictColumns string) error {
	_, err := db.NewInsert().
		Model(data).
		On(fmt.Sprintf("CONFLICT (%s) DO NOTHING", conflictColumns)).
		Exec(ctx)
	return err
}

// SoftDelete marks a row deleted without removing it
func SoftDelete[T any](db bun.IDB, ctx context.Context, id any) (int, error) {
	now := time.Now().UTC()
	return Query[T](db).
		Where("id", id).
		WhereRaw("is_deleted = FALSE").
		Update(ctx, map[string]any{
			"is_deleted": true,
			"deleted_at": now,
			"updated_at": now,
		})
}

// Restore reverses a soft delete
func Restore[T any](db bun.IDB, ctx context.Context, id any) (int, error) {
	return Query[T](db).
		Where("id", id).
		Update(ctx, map[string]any{
			"is_deleted": false,
			"deleted_at": nil,
			"updated_at": time.Now().UTC(),
		})
}

// HardDelete removes a row outright (swatches, taxonomy terms, locales)
func HardDelete[T any](db bun.IDB, ctx context.Context, id any) (int, error) {
	return Query[T](db).Where("id", id).Delete(ctx)
}
