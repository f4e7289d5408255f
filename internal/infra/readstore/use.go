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

type UseViewQueries interface {
	GetCardUseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CardUses, error)
	GetCardUseDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCardUseDetailRow, error)
	ListCardUsesByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCardUsesByUserParams) ([]sqlc.ListCardUsesByUserRow, error)
	CountPendingUsesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	ListCardUsesForCardInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCardUsesForCardInWindowParams) ([]sqlc.CardUses, error)
	ListCardIDsUsedInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCardIDsUsedInWindowParams) ([]uuid.UUID, error)
}

type UseReadStore struct {
	queries UseViewQueries
	db      sqlc.DBTX
}

func NewUseReadStore(queries UseViewQueries, db sqlc.DBTX) *UseReadStore {
	return &UseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UseView, error) {
	row, err := r.queries.GetCardUseByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("card use not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get card use by id", err)
	}

	return toUseView(row), nil
}

func (r *UseReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.UseDetailView, error) {
	row, err := r.queries.GetCardUseDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("card use not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get card use detail", err)
	}

	return &queries.UseDetailView{
		ID:           row.ID,
		CardID:       row.CardID,
		Barcode:      row.Barcode,
		Registrant:   row.Registrant,
		WorstStatus:  card.Status(row.WorstStatus).String(),
		UserID:       row.UserID,
		UserEmail:    row.UserEmail,
		UserName:     row.UserName,
		UsedAt:       pgconv.TimeFromPgtype(row.UsedAt),
		Status:       row.Status,
		RedeemedFree: row.RedeemedFree,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *UseReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int, afterUsedAt *time.Time, afterID uuid.UUID) ([]*queries.UseListItem, error) {
	params := sqlc.ListCardUsesByUserParams{
		UserID:   userID,
		AfterID:  afterID,
		RowLimit: int32(limit),
	}
	if afterUsedAt != nil {
		params.AfterUsedAt = pgconv.TimeToPgtype(*afterUsedAt)
	}

	rows, err := r.queries.ListCardUsesByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list card uses by user", err)
	}

	items := make([]*queries.UseListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.UseListItem{
			ID:           row.ID,
			CardID:       row.CardID,
			Barcode:      row.Barcode,
			Registrant:   row.Registrant,
			WorstStatus:  card.Status(row.WorstStatus).String(),
			UsedAt:       pgconv.TimeFromPgtype(row.UsedAt),
			Status:       row.Status,
			RedeemedFree: row.RedeemedFree,
		})
	}
	return items, nil
}

func (r *UseReadStore) CountPendingByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.queries.CountPendingUsesByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending uses", err)
	}
	return int(count), nil
}

func (r *UseReadStore) ListForCardInWindow(ctx context.Context, cardID uuid.UUID, start, end time.Time) ([]*queries.UseView, error) {
	params := sqlc.ListCardUsesForCardInWindowParams{
		CardID:  cardID,
		StartAt: pgconv.TimeToPgtype(start),
		EndAt:   pgconv.TimeToPgtype(end),
	}

	rows, err := r.queries.ListCardUsesForCardInWindow(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list card uses in window", err)
	}

	views := make([]*queries.UseView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUseView(row))
	}
	return views, nil
}

func (r *UseReadStore) CardIDsUsedInWindow(ctx context.Context, start, end time.Time) ([]uuid.UUID, error) {
	params := sqlc.ListCardIDsUsedInWindowParams{
		StartAt: pgconv.TimeToPgtype(start),
		EndAt:   pgconv.TimeToPgtype(end),
	}

	ids, err := r.queries.ListCardIDsUsedInWindow(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list card ids used in window", err)
	}
	return ids, nil
}

func toUseView(row sqlc.CardUses) *queries.UseView {
	return &queries.UseView{
		ID:           row.ID,
		CardID:       row.CardID,
		UserID:       row.UserID,
		UsedAt:       pgconv.TimeFromPgtype(row.UsedAt),
		Status:       row.Status,
		RedeemedFree: row.RedeemedFree,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
