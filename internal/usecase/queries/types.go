package queries

import (
	"time"

	"github.com/google/uuid"
)

// CardListItem represents read-optimized card data with usage totals
type CardListItem struct {
	ID          uuid.UUID `json:"id"`
	Barcode     string    `json:"barcode"`
	Registrant  string    `json:"registrant"`
	Phone       *string   `json:"phone,omitempty"`
	WorstStatus string    `json:"worst_status"`
	MonthUses   int       `json:"month_uses"`
	TotalUses   int       `json:"total_uses"`
	UsesLeft    int       `json:"uses_left"`
}

// CardView represents read-optimized card data
type CardView struct {
	ID          uuid.UUID `json:"id"`
	Barcode     string    `json:"barcode"`
	Registrant  string    `json:"registrant"`
	Phone       *string   `json:"phone,omitempty"`
	WorstStatus string    `json:"worst_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UseView represents read-optimized card use data
type UseView struct {
	ID           uuid.UUID `json:"id"`
	CardID       uuid.UUID `json:"card_id"`
	UserID       uuid.UUID `json:"user_id"`
	UsedAt       time.Time `json:"used_at"`
	Status       string    `json:"status"`
	RedeemedFree bool      `json:"redeemed_free"`
	CreatedAt    time.Time `json:"created_at"`
}

// UseListItem is a use joined with its card for history listings
type UseListItem struct {
	ID           uuid.UUID `json:"id"`
	CardID       uuid.UUID `json:"card_id"`
	Barcode      string    `json:"barcode"`
	Registrant   string    `json:"registrant"`
	WorstStatus  string    `json:"worst_status"`
	UsedAt       time.Time `json:"used_at"`
	Status       string    `json:"status"`
	RedeemedFree bool      `json:"redeemed_free"`
}

// UseDetailView is a use joined with its card and user
type UseDetailView struct {
	ID           uuid.UUID `json:"id"`
	CardID       uuid.UUID `json:"card_id"`
	Barcode      string    `json:"barcode"`
	Registrant   string    `json:"registrant"`
	WorstStatus  string    `json:"worst_status"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	UserName     string    `json:"user_name"`
	UsedAt       time.Time `json:"used_at"`
	Status       string    `json:"status"`
	RedeemedFree bool      `json:"redeemed_free"`
	CreatedAt    time.Time `json:"created_at"`
}

// CardUsageView carries a card's use count inside a time window
type CardUsageView struct {
	CardID      uuid.UUID `json:"card_id"`
	WorstStatus int16     `json:"worst_status"`
	UseCount    int       `json:"use_count"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
