package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"sushi-pos/pos-svc/internal/apperr"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type PostgresRepository struct {
	DB      *sql.DB
	Log     *log.Entry
	SQLEcho bool
}

func NewPostgresRepository(db *sql.DB, logger *log.Entry, sqlEcho bool) *PostgresRepository {
	return &PostgresRepository{DB: db, Log: logger, SQLEcho: sqlEcho}
}

// echoQuerier logs each statement before running it.
type echoQuerier struct {
	q   querier
	log *log.Entry
}

func (e echoQuerier) print(query string, args []interface{}) {
	e.log.WithFields(log.Fields{
		"sql":  strings.Join(strings.Fields(query), " "),
		"args": args,
	}).Debug("sql")
}

func (e echoQuerier) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.print(query, args)
	return e.q.ExecContext(ctx, query, args...)
}

func (e echoQuerier) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.print(query, args)
	return e.q.QueryContext(ctx, query, args...)
}

func (e echoQuerier) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	e.print(query, args)
	return e.q.QueryRowContext(ctx, query, args...)
}

func (r *PostgresRepository) wrap(q querier) querier {
	if r.SQLEcho && r.Log != nil {
		return echoQuerier{q: q, log: r.Log}
	}
	return q
}

func (r *PostgresRepository) db() querier {
	return r.wrap(r.DB)
}

// inTx runs fn in one transaction; any error rolls everything back.
func (r *PostgresRepository) inTx(ctx context.Context, fn func(q querier) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(r.wrap(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// mapError turns driver errors into caller errors where one applies.
func mapError(err error, resource string, id interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(resource, id)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperr.Conflict("%s already exists", resource)
		case pqForeignKeyViolation:
			return apperr.InvalidOperation("%s is referenced by other records", resource)
		}
	}
	return err
}

func affected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
