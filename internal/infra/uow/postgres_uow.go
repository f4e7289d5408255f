package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/djsutherland/chips-with-friends/internal/infra/readstore"
	"github.com/djsutherland/chips-with-friends/internal/infra/repository"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/internal/pkg/errs"
	"github.com/djsutherland/chips-with-friends/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	cardRepo     shared.CardRepository
	useRepo      shared.UseRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Cards() shared.CardRepository {
	if t.cardRepo == nil {
		t.cardRepo = repository.NewCardRepository(t.uow.q, t.dbtx)
	}
	return t.cardRepo
}

func (t *pgTx) Uses() shared.UseRepository {
	if t.useRepo == nil {
		t.useRepo = repository.NewUseRepository(t.uow.q, t.dbtx)
	}
	return t.useRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	cardStore *readstore.CardReadStore
	useStore  *readstore.UseReadStore
}

func (r *commandReads) cards() *readstore.CardReadStore {
	if r.cardStore == nil {
		r.cardStore = readstore.NewCardReadStore(r.uow.q, r.dbtx)
	}
	return r.cardStore
}

func (r *commandReads) uses() *readstore.UseReadStore {
	if r.useStore == nil {
		r.useStore = readstore.NewUseReadStore(r.uow.q, r.dbtx)
	}
	return r.useStore
}

func (r *commandReads) CardByID(ctx context.Context, id uuid.UUID) (*shared.CardSnapshot, error) {
	view, err := r.cards().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.CardSnapshot{
		ID:          view.ID,
		Barcode:     view.Barcode,
		Registrant:  view.Registrant,
		Phone:       view.Phone,
		WorstStatus: view.WorstStatus,
	}
	return snapshot, nil
}

func (r *commandReads) UseByID(ctx context.Context, id uuid.UUID) (*shared.UseSnapshot, error) {
	view, err := r.uses().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UseSnapshot{
		ID:           view.ID,
		CardID:       view.CardID,
		UserID:       view.UserID,
		UsedAt:       view.UsedAt,
		Status:       view.Status,
		RedeemedFree: view.RedeemedFree,
	}
	return snapshot, nil
}

func (r *commandReads) CardUsageInWindow(ctx context.Context, start, end time.Time) ([]shared.CardUsageSnapshot, error) {
	views, err := r.cards().UsageInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shared.CardUsageSnapshot, 0, len(views))
	for _, v := range views {
		snapshots = append(snapshots, shared.CardUsageSnapshot{
			CardID:      v.CardID,
			WorstStatus: v.WorstStatus,
			UseCount:    v.UseCount,
		})
	}
	return snapshots, nil
}

func (r *commandReads) CardIDsUsedInWindow(ctx context.Context, start, end time.Time) ([]uuid.UUID, error) {
	return r.uses().CardIDsUsedInWindow(ctx, start, end)
}
