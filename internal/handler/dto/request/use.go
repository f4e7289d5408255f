package request

import (
	"time"

	"github.com/google/uuid"
)

type ConfirmUseRequest struct {
	RedeemedFree bool `json:"redeemed_free"`
}

type SpecificUseRequest struct {
	CardID       uuid.UUID  `json:"card_id" binding:"required"`
	UsedAt       *time.Time `json:"used_at" binding:"omitempty"`
	Confirmed    bool       `json:"confirmed"`
	RedeemedFree bool       `json:"redeemed_free"`
}

type ListUsesQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after" binding:"omitempty"`
}

// CardUsesQuery bounds a card's use listing to a day range, both ends
// inclusive.
type CardUsesQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}
