package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/djsutherland/chips-with-friends/internal/domain/selection"
	"github.com/djsutherland/chips-with-friends/internal/domain/usage"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/pkg/clock"
	"github.com/djsutherland/chips-with-friends/internal/pkg/errs"
)

var ErrCardNotFound = errs.New("card not found")

type CardQueries interface {
	ListCards(ctx context.Context) ([]*CardListItem, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*CardView, error)
}

type CardReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CardView, error)
	ListWithUseCounts(ctx context.Context, monthStart, monthEnd time.Time) ([]*CardListItem, error)
}

type cardQueriesImpl struct {
	readStore CardReadStore
	clock     clock.Clock
}

func NewCardQueries(readStore CardReadStore, clk clock.Clock) CardQueries {
	return &cardQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *cardQueriesImpl) ListCards(ctx context.Context) ([]*CardListItem, error) {
	month := usage.MonthWindow(q.clock.Now())

	items, err := q.readStore.ListWithUseCounts(ctx, month.Start, month.End)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.UsesLeft = selection.UsesToNextReward(item.MonthUses)
	}
	return items, nil
}

func (q *cardQueriesImpl) GetCard(ctx context.Context, cardID uuid.UUID) (*CardView, error) {
	view, err := q.readStore.FindByID(ctx, cardID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return view, nil
}
