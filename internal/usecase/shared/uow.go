package shared

import (
	"context"
	"time"

	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	"github.com/djsutherland/chips-with-friends/internal/domain/usage"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Cards() CardRepository
	Uses() UseRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	CardByID(ctx context.Context, id uuid.UUID) (*CardSnapshot, error)
	UseByID(ctx context.Context, id uuid.UUID) (*UseSnapshot, error)
	CardUsageInWindow(ctx context.Context, start, end time.Time) ([]CardUsageSnapshot, error)
	CardIDsUsedInWindow(ctx context.Context, start, end time.Time) ([]uuid.UUID, error)
}

type CardRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *card.Card) (uuid.UUID, error)
}

type UseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *usage.Use) (uuid.UUID, error)
	Confirm(ctx context.Context, tx sqlc.DBTX, useID uuid.UUID, redeemedFree bool) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, useID uuid.UUID) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
