package repository

import (
	"context"

	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/infra/repository/converter"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CardWriteQueries interface {
	CreateCard(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCardParams) (sqlc.Cards, error)
}

type CardRepository struct {
	queries CardWriteQueries
	db      sqlc.DBTX
}

func NewCardRepository(queries CardWriteQueries, db sqlc.DBTX) *CardRepository {
	return &CardRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CardRepository) Create(ctx context.Context, tx sqlc.DBTX, c *card.Card) (uuid.UUID, error) {
	params := converter.CardToCreateParams(c)

	row, err := r.queries.CreateCard(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create card", err)
	}

	return row.ID, nil
}
