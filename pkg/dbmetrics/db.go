package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/pkg/metrics"
)

// DB обертка над *sql.DB, собирающая метрики запросов и connection pool
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// WrapWithDefault оборачивает db и запускает сбор метрик connection pool
// с дефолтным интервалом. stopCh останавливает фоновую горутину
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	return Wrap(db, m, name, 15*time.Second, stopCh)
}

// Wrap оборачивает db и запускает сбор метрик connection pool с указанным интервалом
func Wrap(db *sql.DB, m *metrics.Metrics, name string, poolInterval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, name: name}

	go func() {
		ticker := time.NewTicker(poolInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.DBPoolOpenConns.WithLabelValues(name).Set(float64(stats.OpenConnections))
				m.DBPoolIdleConns.WithLabelValues(name).Set(float64(stats.Idle))
				m.DBPoolInUseConns.WithLabelValues(name).Set(float64(stats.InUse))
			}
		}
	}()

	return wrapped
}

// queryOperation определяет тип операции по началу SQL-запроса
func queryOperation(query string) string {
	q := strings.TrimSpace(query)
	if len(q) < 6 {
		return "other"
	}
	switch strings.ToUpper(q[:6]) {
	case "SELECT":
		return "select"
	case "INSERT":
		return "insert"
	case "UPDATE":
		return "update"
	case "DELETE":
		return "delete"
	default:
		return "other"
	}
}

func (d *DB) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(op, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(queryOperation(query), start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(queryOperation(query), start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(queryOperation(query), start, nil)
	return row
}

// BeginTx начинает транзакцию; запросы внутри неё тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, db: d}, nil
}

// metricTx транзакция с метриками
type metricTx struct {
	tx *sql.Tx
	db *DB
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(queryOperation(query), start, err)
	return res, err
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(queryOperation(query), start, err)
	return rows, err
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(queryOperation(query), start, nil)
	return row
}

func (t *metricTx) Commit() error {
	return t.tx.Commit()
}

func (t *metricTx) Rollback() error {
	return t.tx.Rollback()
}
