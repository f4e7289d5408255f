package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type CardSnapshot struct {
	ID          uuid.UUID
	Barcode     string
	Registrant  string
	Phone       *string
	WorstStatus string
}

type UseSnapshot struct {
	ID           uuid.UUID
	CardID       uuid.UUID
	UserID       uuid.UUID
	UsedAt       time.Time
	Status       string
	RedeemedFree bool
}

// CardUsageSnapshot carries a card's use count inside a time window.
// Cards with zero uses are included.
type CardUsageSnapshot struct {
	CardID      uuid.UUID
	WorstStatus int16
	UseCount    int
}
