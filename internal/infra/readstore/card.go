package readstore

import (
	"context"
	"time"

	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/internal/pkg/pgconv"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"

	"github.com/google/uuid"
)

type CardViewQueries interface {
	GetCardByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Cards, error)
	ListCardsWithUseCounts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCardsWithUseCountsParams) ([]sqlc.ListCardsWithUseCountsRow, error)
	CountUsesPerCardInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUsesPerCardInWindowParams) ([]sqlc.CountUsesPerCardInWindowRow, error)
}

type CardReadStore struct {
	queries CardViewQueries
	db      sqlc.DBTX
}

func NewCardReadStore(queries CardViewQueries, db sqlc.DBTX) *CardReadStore {
	return &CardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CardView, error) {
	row, err := r.queries.GetCardByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get card by id", err)
	}

	return &queries.CardView{
		ID:          row.ID,
		Barcode:     row.Barcode,
		Registrant:  row.Registrant,
		Phone:       pgconv.StringPtrFromPgtype(row.Phone),
		WorstStatus: card.Status(row.WorstStatus).String(),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *CardReadStore) ListWithUseCounts(ctx context.Context, monthStart, monthEnd time.Time) ([]*queries.CardListItem, error) {
	params := sqlc.ListCardsWithUseCountsParams{
		StartAt: pgconv.TimeToPgtype(monthStart),
		EndAt:   pgconv.TimeToPgtype(monthEnd),
	}

	rows, err := r.queries.ListCardsWithUseCounts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cards with use counts", err)
	}

	items := make([]*queries.CardListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.CardListItem{
			ID:          row.ID,
			Barcode:     row.Barcode,
			Registrant:  row.Registrant,
			Phone:       pgconv.StringPtrFromPgtype(row.Phone),
			WorstStatus: card.Status(row.WorstStatus).String(),
			MonthUses:   int(row.MonthUses),
			TotalUses:   int(row.TotalUses),
		})
	}
	return items, nil
}

func (r *CardReadStore) UsageInWindow(ctx context.Context, start, end time.Time) ([]*queries.CardUsageView, error) {
	params := sqlc.CountUsesPerCardInWindowParams{
		StartAt: pgconv.TimeToPgtype(start),
		EndAt:   pgconv.TimeToPgtype(end),
	}

	rows, err := r.queries.CountUsesPerCardInWindow(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count uses per card", err)
	}

	views := make([]*queries.CardUsageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.CardUsageView{
			CardID:      row.ID,
			WorstStatus: row.WorstStatus,
			UseCount:    int(row.UseCount),
		})
	}
	return views, nil
}
