package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/djsutherland/chips-with-friends/internal/domain/user"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/pkg/errs"
)

var (
	ErrUseNotFound   = errs.New("card use not found")
	ErrUseAccess     = errs.New("card use access denied")
	ErrInvalidWindow = errs.New("window start must not be after end")
	ErrInvalidCursor = errs.New("invalid pagination cursor")
)

// UseHistory is a user's use listing plus the count of uses still awaiting
// confirmation. NextCursor is empty when there are no further pages.
type UseHistory struct {
	Uses         []*UseListItem `json:"uses"`
	PendingCount int            `json:"pending_count"`
	NextCursor   string         `json:"next_cursor,omitempty"`
}

type UseQueries interface {
	GetUse(ctx context.Context, useID, actorID uuid.UUID, actorRole string) (*UseDetailView, error)
	ListMyUses(ctx context.Context, userID uuid.UUID, limit int, afterCursor string) (*UseHistory, error)
	ListUsesForCard(ctx context.Context, cardID uuid.UUID, start, end time.Time) ([]*UseView, error)
}

type UseReadStore interface {
	FindDetailByID(ctx context.Context, id uuid.UUID) (*UseDetailView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int, afterUsedAt *time.Time, afterID uuid.UUID) ([]*UseListItem, error)
	CountPendingByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListForCardInWindow(ctx context.Context, cardID uuid.UUID, start, end time.Time) ([]*UseView, error)
}

type useQueriesImpl struct {
	readStore UseReadStore
}

func NewUseQueries(readStore UseReadStore) UseQueries {
	return &useQueriesImpl{
		readStore: readStore,
	}
}

func (q *useQueriesImpl) GetUse(ctx context.Context, useID, actorID uuid.UUID, actorRole string) (*UseDetailView, error) {
	view, err := q.readStore.FindDetailByID(ctx, useID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUseNotFound
		}
		return nil, err
	}

	if actorRole != user.RoleAdmin.String() && view.UserID != actorID {
		return nil, ErrUseAccess
	}
	return view, nil
}

func (q *useQueriesImpl) ListMyUses(ctx context.Context, userID uuid.UUID, limit int, afterCursor string) (*UseHistory, error) {
	limit = ValidateLimit(limit)

	var afterUsedAt *time.Time
	afterID := uuid.Nil
	if afterCursor != "" {
		t, id, err := DecodeAfterCursor(afterCursor)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterUsedAt = &t
		afterID = id
	}

	// Fetch one extra row to detect whether a next page exists.
	uses, err := q.readStore.ListByUser(ctx, userID, limit+1, afterUsedAt, afterID)
	if err != nil {
		return nil, err
	}

	nextCursor := ""
	if len(uses) > limit {
		uses = uses[:limit]
		last := uses[len(uses)-1]
		nextCursor = EncodeAfterCursor(last.UsedAt, last.ID)
	}

	pending, err := q.readStore.CountPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UseHistory{
		Uses:         uses,
		PendingCount: pending,
		NextCursor:   nextCursor,
	}, nil
}

func (q *useQueriesImpl) ListUsesForCard(ctx context.Context, cardID uuid.UUID, start, end time.Time) ([]*UseView, error) {
	if start.After(end) {
		return nil, ErrInvalidWindow
	}
	return q.readStore.ListForCardInWindow(ctx, cardID, start, end)
}
