package usage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCard         = errors.New("use requires a card")
	ErrMissingUser         = errors.New("use requires a user")
	ErrInvalidWhen         = errors.New("use requires a timestamp")
	ErrInvalidConfirmation = errors.New("invalid confirmation state")
)

// Confirmation is the tri-state lifecycle of a Use. A cancelled use is
// removed from storage outright, so Cancelled only ever appears in memory.
type Confirmation string

const (
	ConfirmationPending   Confirmation = "pending"
	ConfirmationConfirmed Confirmation = "confirmed"
	ConfirmationCancelled Confirmation = "cancelled"
)

func NewConfirmation(s string) (Confirmation, error) {
	c := Confirmation(s)
	switch c {
	case ConfirmationPending, ConfirmationConfirmed, ConfirmationCancelled:
		return c, nil
	default:
		return "", ErrInvalidConfirmation
	}
}

func (c Confirmation) String() string {
	return string(c)
}

// Counted reports whether a use in this state contributes to totals and
// window queries. Pending uses count; only cancelled ones do not.
func (c Confirmation) Counted() bool {
	return c != ConfirmationCancelled
}

// Use is one instance of a card being employed.
type Use struct {
	id           uuid.UUID
	cardID       uuid.UUID
	userID       uuid.UUID
	when         time.Time
	confirmation Confirmation
	redeemedFree bool
}

// NewPendingUse creates the record the selector issues: awaiting
// confirmation, nothing redeemed yet. Duplicate pending uses for the same
// card are allowed and reconciled by confirmation or cancellation.
func NewPendingUse(cardID, userID uuid.UUID, when time.Time) (*Use, error) {
	return newUse(cardID, userID, when, ConfirmationPending, false)
}

// NewConfirmedUse records a use that is already known to have happened,
// e.g. a retroactively entered one.
func NewConfirmedUse(cardID, userID uuid.UUID, when time.Time, redeemedFree bool) (*Use, error) {
	return newUse(cardID, userID, when, ConfirmationConfirmed, redeemedFree)
}

func newUse(cardID, userID uuid.UUID, when time.Time, c Confirmation, redeemedFree bool) (*Use, error) {
	if cardID == uuid.Nil {
		return nil, ErrMissingCard
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if when.IsZero() {
		return nil, ErrInvalidWhen
	}

	return &Use{
		id:           uuid.New(),
		cardID:       cardID,
		userID:       userID,
		when:         when,
		confirmation: c,
		redeemedFree: redeemedFree,
	}, nil
}

func ReconstructUse(
	id, cardID, userID uuid.UUID,
	when time.Time,
	confirmation Confirmation,
	redeemedFree bool,
) *Use {
	return &Use{
		id:           id,
		cardID:       cardID,
		userID:       userID,
		when:         when,
		confirmation: confirmation,
		redeemedFree: redeemedFree,
	}
}

// MarkConfirmed transitions the use to confirmed. Re-confirming simply
// overwrites redeemedFree.
func (u *Use) MarkConfirmed(redeemedFree bool) {
	u.confirmation = ConfirmationConfirmed
	u.redeemedFree = redeemedFree
}

func (u *Use) Counted() bool { return u.confirmation.Counted() }

func (u *Use) ID() uuid.UUID              { return u.id }
func (u *Use) CardID() uuid.UUID          { return u.cardID }
func (u *Use) UserID() uuid.UUID          { return u.userID }
func (u *Use) When() time.Time            { return u.when }
func (u *Use) Confirmation() Confirmation { return u.confirmation }
func (u *Use) RedeemedFree() bool         { return u.redeemedFree }
