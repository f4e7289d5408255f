package commands

import (
	"context"
	"sync"
	"time"

	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	"github.com/djsutherland/chips-with-friends/internal/domain/selection"
	"github.com/djsutherland/chips-with-friends/internal/domain/usage"
	"github.com/djsutherland/chips-with-friends/internal/domain/user"
	"github.com/djsutherland/chips-with-friends/internal/infra"
	"github.com/djsutherland/chips-with-friends/internal/pkg/clock"
	"github.com/djsutherland/chips-with-friends/internal/pkg/errs"
	"github.com/djsutherland/chips-with-friends/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoEligibleCard   = errs.New("no eligible card")
	ErrUseNotFound      = errs.New("card use not found")
	ErrUseNotOwned      = errs.New("card use not owned by user")
	ErrCardNotFoundUse  = errs.New("card not found")
	ErrSpecificInFuture = errs.New("use timestamp is in the future")
)

type PickResult struct {
	UseID uuid.UUID
	Card  *shared.CardSnapshot
}

type RecordSpecificUseRequest struct {
	CardID       uuid.UUID
	UsedAt       *time.Time
	Confirmed    bool
	RedeemedFree bool
}

type UseCommands interface {
	PickCard(ctx context.Context, userID uuid.UUID) (*PickResult, error)
	ConfirmUse(ctx context.Context, useID uuid.UUID, actorID uuid.UUID, actorRole string, redeemedFree bool) error
	CancelUse(ctx context.Context, useID uuid.UUID, actorID uuid.UUID, actorRole string) error
	RecordSpecificUse(ctx context.Context, req RecordSpecificUseRequest, userID uuid.UUID) (*PickResult, error)
}

type useCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock

	// Serializes concurrent picks so two callers cannot be handed the same
	// card on the same day.
	mu sync.Mutex
}

func NewUseCommands(uow shared.UnitOfWork, clk clock.Clock) UseCommands {
	return &useCommandsImpl{uow: uow, clock: clk}
}

func (uc *useCommandsImpl) PickCard(ctx context.Context, userID uuid.UUID) (*PickResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock.Now()
	month := usage.MonthWindow(now)
	day := usage.DayWindow(now)

	var result *PickResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		usageRows, derr := tx.Reads().CardUsageInWindow(ctx, month.Start, month.End)
		if derr != nil {
			return derr
		}

		usedIDs, derr := tx.Reads().CardIDsUsedInWindow(ctx, day.Start, day.End)
		if derr != nil {
			return derr
		}
		usedToday := make(map[uuid.UUID]struct{}, len(usedIDs))
		for _, id := range usedIDs {
			usedToday[id] = struct{}{}
		}

		candidates := make([]selection.Candidate, 0, len(usageRows))
		for _, row := range usageRows {
			status, serr := card.NewStatus(row.WorstStatus)
			if serr != nil {
				return serr
			}
			candidates = append(candidates, selection.Candidate{
				CardID:     row.CardID,
				Status:     status,
				MonthCount: row.UseCount,
			})
		}

		winner, ok := selection.Pick(now, candidates, usedToday)
		if !ok {
			return ErrNoEligibleCard
		}

		use, derr := usage.NewPendingUse(winner.CardID, userID, now)
		if derr != nil {
			return derr
		}

		useID, derr := tx.Uses().Create(ctx, tx.DB(), use)
		if derr != nil {
			return derr
		}

		snap, derr := tx.Reads().CardByID(ctx, winner.CardID)
		if derr != nil {
			return derr
		}

		result = &PickResult{UseID: useID, Card: snap}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *useCommandsImpl) ConfirmUse(ctx context.Context, useID uuid.UUID, actorID uuid.UUID, actorRole string, redeemedFree bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UseByID(ctx, useID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrUseNotFound)
			}
			return derr
		}
		if actorRole != user.RoleAdmin.String() && snap.UserID != actorID {
			return ErrUseNotOwned
		}

		// Re-confirming an already confirmed use just overwrites the
		// redeemed flag.
		affected, derr := tx.Uses().Confirm(ctx, tx.DB(), useID, redeemedFree)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			return ErrUseNotFound
		}
		return nil
	})
}

func (uc *useCommandsImpl) CancelUse(ctx context.Context, useID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UseByID(ctx, useID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrUseNotFound)
			}
			return derr
		}
		if actorRole != user.RoleAdmin.String() && snap.UserID != actorID {
			return ErrUseNotOwned
		}

		// Cancellation removes the row so the use never counts anywhere.
		affected, derr := tx.Uses().Delete(ctx, tx.DB(), useID)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			return ErrUseNotFound
		}
		return nil
	})
}

func (uc *useCommandsImpl) RecordSpecificUse(ctx context.Context, req RecordSpecificUseRequest, userID uuid.UUID) (*PickResult, error) {
	now := uc.clock.Now()
	usedAt := now
	if req.UsedAt != nil {
		usedAt = *req.UsedAt
	}
	if usedAt.After(now) {
		return nil, ErrSpecificInFuture
	}

	var use *usage.Use
	var err error
	if req.Confirmed {
		use, err = usage.NewConfirmedUse(req.CardID, userID, usedAt, req.RedeemedFree)
	} else {
		use, err = usage.NewPendingUse(req.CardID, userID, usedAt)
	}
	if err != nil {
		return nil, err
	}

	var result *PickResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CardByID(ctx, req.CardID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrCardNotFoundUse)
			}
			return derr
		}

		useID, derr := tx.Uses().Create(ctx, tx.DB(), use)
		if derr != nil {
			return derr
		}

		result = &PickResult{UseID: useID, Card: snap}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
