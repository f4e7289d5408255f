package card

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card is one registered physical barcode entitlement shared by the group.
// Cards are never deleted; worstStatus is maintained out-of-band.
type Card struct {
	id          uuid.UUID
	barcode     Barcode
	registrant  string
	phone       string
	worstStatus Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCard(barcode Barcode, registrant, phone string) (*Card, error) {
	registrant = strings.TrimSpace(registrant)
	if registrant == "" {
		return nil, ErrEmptyRegistrant
	}

	return &Card{
		id:          uuid.New(),
		barcode:     barcode,
		registrant:  registrant,
		phone:       strings.TrimSpace(phone),
		worstStatus: StatusNone,
	}, nil
}

func ReconstructCard(
	id uuid.UUID,
	barcode Barcode,
	registrant, phone string,
	worstStatus Status,
	createdAt, updatedAt time.Time,
) *Card {
	return &Card{
		id:          id,
		barcode:     barcode,
		registrant:  registrant,
		phone:       phone,
		worstStatus: worstStatus,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Card) ID() uuid.UUID       { return c.id }
func (c *Card) Barcode() Barcode    { return c.barcode }
func (c *Card) Registrant() string  { return c.registrant }
func (c *Card) Phone() string       { return c.phone }
func (c *Card) WorstStatus() Status  { return c.worstStatus }
func (c *Card) CreatedAt() time.Time { return c.createdAt }
func (c *Card) UpdatedAt() time.Time { return c.updatedAt }
