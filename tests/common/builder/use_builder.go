//go:build unit || e2e

package builder

import (
	"time"

	"github.com/djsutherland/chips-with-friends/internal/domain/usage"
	reqdto "github.com/djsutherland/chips-with-friends/internal/handler/dto/request"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"
	"github.com/djsutherland/chips-with-friends/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UseBuilder struct {
	CardID       uuid.UUID
	UserID       uuid.UUID
	Barcode      string
	Registrant   string
	UserEmail    string
	UserName     string
	UsedAt       time.Time
	Status       string
	RedeemedFree bool
}

func NewUseBuilder() *UseBuilder {
	return &UseBuilder{
		CardID:       uuid.New(),
		UserID:       uuid.New(),
		Barcode:      "CHIP-0001",
		Registrant:   "Alice",
		UserEmail:    "member@example.com",
		UserName:     "Test Member",
		UsedAt:       time.Now(),
		Status:       "pending",
		RedeemedFree: false,
	}
}

func (u *UseBuilder) With(mutate func(*UseBuilder)) *UseBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UseBuilder) BuildDomain() (*usage.Use, error) {
	if u.Status == usage.ConfirmationConfirmed.String() {
		return usage.NewConfirmedUse(u.CardID, u.UserID, u.UsedAt, u.RedeemedFree)
	}
	return usage.NewPendingUse(u.CardID, u.UserID, u.UsedAt)
}

func (u *UseBuilder) BuildInfra() sqlc.CardUses {
	now := time.Now()
	return sqlc.CardUses{
		ID:           uuid.New(),
		CardID:       u.CardID,
		UserID:       u.UserID,
		UsedAt:       pgtype.Timestamptz{Time: u.UsedAt, Valid: true},
		Status:       u.Status,
		RedeemedFree: u.RedeemedFree,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UseBuilder) BuildSpecificRequestDTO() reqdto.SpecificUseRequest {
	usedAt := u.UsedAt
	return reqdto.SpecificUseRequest{
		CardID:       u.CardID,
		UsedAt:       &usedAt,
		Confirmed:    u.Status == usage.ConfirmationConfirmed.String(),
		RedeemedFree: u.RedeemedFree,
	}
}

func (u *UseBuilder) BuildViewQuery() *queries.UseView {
	return &queries.UseView{
		ID:           uuid.New(),
		CardID:       u.CardID,
		UserID:       u.UserID,
		UsedAt:       u.UsedAt,
		Status:       u.Status,
		RedeemedFree: u.RedeemedFree,
		CreatedAt:    time.Now(),
	}
}

func (u *UseBuilder) BuildDetailView() *queries.UseDetailView {
	return &queries.UseDetailView{
		ID:           uuid.New(),
		CardID:       u.CardID,
		Barcode:      u.Barcode,
		Registrant:   u.Registrant,
		WorstStatus:  "none",
		UserID:       u.UserID,
		UserEmail:    u.UserEmail,
		UserName:     u.UserName,
		UsedAt:       u.UsedAt,
		Status:       u.Status,
		RedeemedFree: u.RedeemedFree,
		CreatedAt:    time.Now(),
	}
}

func (u *UseBuilder) BuildListItem() *queries.UseListItem {
	return &queries.UseListItem{
		ID:           uuid.New(),
		CardID:       u.CardID,
		Barcode:      u.Barcode,
		Registrant:   u.Registrant,
		WorstStatus:  "none",
		UsedAt:       u.UsedAt,
		Status:       u.Status,
		RedeemedFree: u.RedeemedFree,
	}
}

func (u *UseBuilder) BuildSnapshot() *shared.UseSnapshot {
	return &shared.UseSnapshot{
		ID:           uuid.New(),
		CardID:       u.CardID,
		UserID:       u.UserID,
		UsedAt:       u.UsedAt,
		Status:       u.Status,
		RedeemedFree: u.RedeemedFree,
	}
}

// Fluent builder methods
func (u *UseBuilder) WithCardID(cardID uuid.UUID) *UseBuilder {
	u.CardID = cardID
	return u
}

func (u *UseBuilder) WithUserID(userID uuid.UUID) *UseBuilder {
	u.UserID = userID
	return u
}

func (u *UseBuilder) WithUsedAt(usedAt time.Time) *UseBuilder {
	u.UsedAt = usedAt
	return u
}

func (u *UseBuilder) WithStatus(status string) *UseBuilder {
	u.Status = status
	return u
}

func (u *UseBuilder) WithRedeemedFree(redeemedFree bool) *UseBuilder {
	u.RedeemedFree = redeemedFree
	return u
}

func (u *UseBuilder) AsConfirmed() *UseBuilder {
	u.Status = usage.ConfirmationConfirmed.String()
	return u
}
