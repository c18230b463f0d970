// Package dbmetrics wraps a *sql.DB so every query outside a transaction
// reports its duration to Prometheus. Queries joined to a transaction go
// through *sql.Tx directly and are covered by the transaction's own timing.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// Observer принимает длительность одного запроса
type Observer interface {
	ObserveDBQuery(operation string, seconds float64)
}

// DB обёртка над *sql.DB с записью метрик
type DB struct {
	db       *sql.DB
	observer Observer
}

// Wrap оборачивает пул соединений
func Wrap(db *sql.DB, observer Observer) *DB {
	return &DB{db: db, observer: observer}
}

// ExecContext выполняет запрос без выборки строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observer.ObserveDBQuery("exec", time.Since(start).Seconds())
	return res, err
}

// QueryContext выполняет запрос с выборкой строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observer.ObserveDBQuery("query", time.Since(start).Seconds())
	return rows, err
}

// QueryRowContext выполняет запрос с выборкой одной строки.
// Время до Scan не входит в измерение
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observer.ObserveDBQuery("query_row", time.Since(start).Seconds())
	return row
}
