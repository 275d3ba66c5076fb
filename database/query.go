package database

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// whereClause represents a WHERE condition
type whereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// orderClause represents an ORDER BY clause
type orderClause struct {
	Column    string
	Direction OrderDirection
}

// QueryBuilder provides a small fluent API over bun for the repository
// layer. It runs against either the pooled handle or an open
// transaction (anything satisfying bun.IDB).
type QueryBuilder[T any] struct {
	db bun.IDB

	wheres    []whereClause
	orders    []orderClause
	relations []string
	limitVal  *int
	offsetVal *int
	timeout   time.Duration
}

// Query creates a new QueryBuilder instance
func Query[T any](db bun.IDB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{Column: column, Operator: "=", Value: value})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{Column: column, Operator: operator, Value: value})
	return q
}

// WhereILike adds a case-insensitive substring condition
func (q *QueryBuilder[T]) WhereILike(column, term string) *QueryBuilder[T] {
	return q.WhereOp(column, "ILIKE", "%"+term+"%")
}

// WhereIn adds a WHERE IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{Column: column, Operator: "IN", Value: bun.In(values)})
	return q
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{IsRaw: true, RawSQL: sql, RawArgs: args})
	return q
}

// ExcludeDeleted filters out soft-deleted rows. Every default read
// path goes through this; administrative reads skip it.
func (q *QueryBuilder[T]) ExcludeDeleted() *QueryBuilder[T] {
	return q.WhereRaw("is_deleted = FALSE")
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, orderClause{Column: column, Direction: direction})
	return q
}

// Relation specifies a relation to preload
func (q *QueryBuilder[T]) Relation(name string) *QueryBuilder[T] {
	q.relations = append(q.relations, name)
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Timeout sets a timeout for the query
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// String renders the SELECT this builder would run, without touching
// the connection. Used for logging and query assertions.
func (q *QueryBuilder[T]) String() string {
	var model T
	return q.buildSelect(&model).String()
}

// applyWheres attaches the collected conditions to a bun SelectQuery
func (q *QueryBuilder[T]) applyWheres(query *bun.SelectQuery) *bun.SelectQuery {
	for _, where := range q.wheres {
		if where.IsRaw {
			query = query.Where(where.RawSQL, where.RawArgs...)
			continue
		}
		query = query.Where(fmt.Sprintf("%s %s ?", where.Column, where.Operator), where.Value)
	}
	return query
}

// buildSelect assembles the full SELECT for the given model target
func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)
	query = q.applyWheres(query)

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}
	for _, order := range q.orders {
		query = query.OrderExpr(fmt.Sprintf("%s %s", order.Column, order.Direction))
	}
	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}
	return query
}

// applyWheresToUpdate attaches the collected conditions to a bun UpdateQuery
func (q *QueryBuilder[T]) applyWheresToUpdate(query *bun.UpdateQuery) *bun.UpdateQuery {
	for _, where := range q.wheres {
		if where.IsRaw {
			query = query.Where(where.RawSQL, where.RawArgs...)
			continue
		}
		query = query.Where(fmt.Sprintf("%s %s ?", where.Column, where.Operator), where.Value)
	}
	return query
}

// applyWheresToDelete attaches the collected conditions to a bun DeleteQuery
func (q *QueryBuilder[T]) applyWheresToDelete(query *bun.DeleteQuery) *bun.DeleteQuery {
	for _, where := range q.wheres {
		if where.IsRaw {
			query = query.Where(where.RawSQL, where.RawArgs...)
			continue
		}
		query = query.Where(fmt.Sprintf("%s %s ?", where.Column, where.Operator), where.Value)
	}
	return query
}
