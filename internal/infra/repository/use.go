package repository

import (
	"context"

	"github.com/djsutherland/chips-with-friends/internal/domain/usage"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/infra/repository/converter"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UseWriteQueries interface {
	CreateCardUse(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCardUseParams) (sqlc.CardUses, error)
	ConfirmCardUse(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmCardUseParams) (int64, error)
	DeleteCardUse(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UseRepository struct {
	queries UseWriteQueries
	db      sqlc.DBTX
}

func NewUseRepository(queries UseWriteQueries, db sqlc.DBTX) *UseRepository {
	return &UseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UseRepository) Create(ctx context.Context, tx sqlc.DBTX, u *usage.Use) (uuid.UUID, error) {
	params := converter.UseToCreateParams(u)

	row, err := r.queries.CreateCardUse(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create card use", err)
	}

	return row.ID, nil
}

func (r *UseRepository) Confirm(ctx context.Context, tx sqlc.DBTX, useID uuid.UUID, redeemedFree bool) (int64, error) {
	params := sqlc.ConfirmCardUseParams{
		ID:           useID,
		RedeemedFree: redeemedFree,
	}

	affected, err := r.queries.ConfirmCardUse(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm card use", err)
	}

	return affected, nil
}

func (r *UseRepository) Delete(ctx context.Context, tx sqlc.DBTX, useID uuid.UUID) (int64, error) {
	affected, err := r.queries.DeleteCardUse(ctx, tx, useID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete card use", err)
	}

	return affected, nil
}
