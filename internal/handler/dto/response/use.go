package response

import (
	"github.com/djsutherland/chips-with-friends/internal/usecase/commands"
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"
)

// PickResponse tells the caller which card to present at the register.
type PickResponse struct {
	UseID       string  `json:"use_id"`
	CardID      string  `json:"card_id"`
	Barcode     string  `json:"barcode"`
	Registrant  string  `json:"registrant"`
	Phone       *string `json:"phone,omitempty"`
	WorstStatus string  `json:"worst_status"`
}

func FromPickResult(r *commands.PickResult) *PickResponse {
	return &PickResponse{
		UseID:       r.UseID.String(),
		CardID:      r.Card.ID.String(),
		Barcode:     r.Card.Barcode,
		Registrant:  r.Card.Registrant,
		Phone:       r.Card.Phone,
		WorstStatus: r.Card.WorstStatus,
	}
}

type UseResponse struct {
	ID           string `json:"id"`
	CardID       string `json:"card_id"`
	UserID       string `json:"user_id"`
	UsedAt       int64  `json:"used_at"`
	Status       string `json:"status"`
	RedeemedFree bool   `json:"redeemed_free"`
}

func FromUseView(v *queries.UseView) *UseResponse {
	return &UseResponse{
		ID:           v.ID.String(),
		CardID:       v.CardID.String(),
		UserID:       v.UserID.String(),
		UsedAt:       v.UsedAt.Unix(),
		Status:       v.Status,
		RedeemedFree: v.RedeemedFree,
	}
}

func FromUseViews(views []*queries.UseView) []*UseResponse {
	res := make([]*UseResponse, len(views))
	for i, v := range views {
		res[i] = FromUseView(v)
	}
	return res
}

type UseDetailResponse struct {
	ID           string `json:"id"`
	CardID       string `json:"card_id"`
	Barcode      string `json:"barcode"`
	Registrant   string `json:"registrant"`
	WorstStatus  string `json:"worst_status"`
	UserID       string `json:"user_id"`
	UserEmail    string `json:"user_email"`
	UserName     string `json:"user_name"`
	UsedAt       int64  `json:"used_at"`
	Status       string `json:"status"`
	RedeemedFree bool   `json:"redeemed_free"`
	CreatedAt    int64  `json:"created_at"`
}

func FromUseDetailView(v *queries.UseDetailView) *UseDetailResponse {
	return &UseDetailResponse{
		ID:           v.ID.String(),
		CardID:       v.CardID.String(),
		Barcode:      v.Barcode,
		Registrant:   v.Registrant,
		WorstStatus:  v.WorstStatus,
		UserID:       v.UserID.String(),
		UserEmail:    v.UserEmail,
		UserName:     v.UserName,
		UsedAt:       v.UsedAt.Unix(),
		Status:       v.Status,
		RedeemedFree: v.RedeemedFree,
		CreatedAt:    v.CreatedAt.Unix(),
	}
}

type UseListItemResponse struct {
	ID           string `json:"id"`
	CardID       string `json:"card_id"`
	Barcode      string `json:"barcode"`
	Registrant   string `json:"registrant"`
	WorstStatus  string `json:"worst_status"`
	UsedAt       int64  `json:"used_at"`
	Status       string `json:"status"`
	RedeemedFree bool   `json:"redeemed_free"`
}

type UseHistoryResponse struct {
	Uses         []*UseListItemResponse `json:"uses"`
	PendingCount int                    `json:"pending_count"`
	NextCursor   string                 `json:"next_cursor,omitempty"`
}

func FromUseHistory(h *queries.UseHistory) *UseHistoryResponse {
	items := make([]*UseListItemResponse, len(h.Uses))
	for i, it := range h.Uses {
		items[i] = &UseListItemResponse{
			ID:           it.ID.String(),
			CardID:       it.CardID.String(),
			Barcode:      it.Barcode,
			Registrant:   it.Registrant,
			WorstStatus:  it.WorstStatus,
			UsedAt:       it.UsedAt.Unix(),
			Status:       it.Status,
			RedeemedFree: it.RedeemedFree,
		}
	}
	return &UseHistoryResponse{
		Uses:         items,
		PendingCount: h.PendingCount,
		NextCursor:   h.NextCursor,
	}
}
