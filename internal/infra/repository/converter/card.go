package converter

import (
	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func CardToCreateParams(c *card.Card) sqlc.CreateCardParams {
	phone := pgtype.Text{}
	if c.Phone() != "" {
		phone = pgconv.StringToPgtype(c.Phone())
	}

	return sqlc.CreateCardParams{
		ID:          c.ID(),
		Barcode:     c.Barcode().String(),
		Registrant:  c.Registrant(),
		Phone:       phone,
		WorstStatus: int16(c.WorstStatus()),
	}
}
