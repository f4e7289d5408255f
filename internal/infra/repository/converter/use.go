package converter

import (
	"github.com/djsutherland/chips-with-friends/internal/domain/usage"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/internal/pkg/pgconv"
)

func UseToCreateParams(u *usage.Use) sqlc.CreateCardUseParams {
	return sqlc.CreateCardUseParams{
		ID:           u.ID(),
		CardID:       u.CardID(),
		UserID:       u.UserID(),
		UsedAt:       pgconv.TimeToPgtype(u.When()),
		Status:       u.Confirmation().String(),
		RedeemedFree: u.RedeemedFree(),
	}
}
