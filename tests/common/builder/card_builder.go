//go:build unit || e2e

package builder

import (
	"time"

	domcard "github.com/djsutherland/chips-with-friends/internal/domain/card"
	reqdto "github.com/djsutherland/chips-with-friends/internal/handler/dto/request"
	sqlc "github.com/djsutherland/chips-with-friends/internal/infra/sqlc/generated"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"
	"github.com/djsutherland/chips-with-friends/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CardBuilder struct {
	Barcode     string
	Registrant  string
	Phone       string
	WorstStatus int16
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCardBuilder() *CardBuilder {
	now := time.Now()
	return &CardBuilder{
		Barcode:     "CHIP-0001",
		Registrant:  "Alice",
		Phone:       "555-0100",
		WorstStatus: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (c *CardBuilder) With(mutate func(*CardBuilder)) *CardBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CardBuilder) BuildDomain() (*domcard.Card, error) {
	barcode, err := domcard.NewBarcode(c.Barcode)
	if err != nil {
		return nil, err
	}
	return domcard.NewCard(barcode, c.Registrant, c.Phone)
}

func (c *CardBuilder) BuildInfra() sqlc.Cards {
	id := uuid.New()
	phone := pgtype.Text{}
	if c.Phone != "" {
		phone = pgtype.Text{String: c.Phone, Valid: true}
	}
	return sqlc.Cards{
		ID:          id,
		Barcode:     c.Barcode,
		Registrant:  c.Registrant,
		Phone:       phone,
		WorstStatus: c.WorstStatus,
		CreatedAt:   pgtype.Timestamptz{Time: c.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: c.UpdatedAt, Valid: true},
	}
}

func (c *CardBuilder) BuildRegisterRequestDTO() reqdto.RegisterCardRequest {
	return reqdto.RegisterCardRequest{
		Barcode:    c.Barcode,
		Registrant: c.Registrant,
		Phone:      c.Phone,
	}
}

func (c *CardBuilder) BuildViewQuery() *queries.CardView {
	id := uuid.New()
	var phone *string
	if c.Phone != "" {
		p := c.Phone
		phone = &p
	}
	return &queries.CardView{
		ID:          id,
		Barcode:     c.Barcode,
		Registrant:  c.Registrant,
		Phone:       phone,
		WorstStatus: domcard.Status(c.WorstStatus).String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (c *CardBuilder) BuildListItem(monthUses, totalUses, usesLeft int) *queries.CardListItem {
	id := uuid.New()
	var phone *string
	if c.Phone != "" {
		p := c.Phone
		phone = &p
	}
	return &queries.CardListItem{
		ID:          id,
		Barcode:     c.Barcode,
		Registrant:  c.Registrant,
		Phone:       phone,
		WorstStatus: domcard.Status(c.WorstStatus).String(),
		MonthUses:   monthUses,
		TotalUses:   totalUses,
		UsesLeft:    usesLeft,
	}
}

func (c *CardBuilder) BuildSnapshot() *shared.CardSnapshot {
	id := uuid.New()
	var phone *string
	if c.Phone != "" {
		p := c.Phone
		phone = &p
	}
	return &shared.CardSnapshot{
		ID:          id,
		Barcode:     c.Barcode,
		Registrant:  c.Registrant,
		Phone:       phone,
		WorstStatus: domcard.Status(c.WorstStatus).String(),
	}
}

// Fluent builder methods
func (c *CardBuilder) WithBarcode(barcode string) *CardBuilder {
	c.Barcode = barcode
	return c
}

func (c *CardBuilder) WithRegistrant(registrant string) *CardBuilder {
	c.Registrant = registrant
	return c
}

func (c *CardBuilder) WithPhone(phone string) *CardBuilder {
	c.Phone = phone
	return c
}

func (c *CardBuilder) WithWorstStatus(status int16) *CardBuilder {
	c.WorstStatus = status
	return c
}
