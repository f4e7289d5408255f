package response

import (
	"github.com/djsutherland/chips-with-friends/internal/usecase/queries"
)

type CardResponse struct {
	ID          string  `json:"id"`
	Barcode     string  `json:"barcode"`
	Registrant  string  `json:"registrant"`
	Phone       *string `json:"phone,omitempty"`
	WorstStatus string  `json:"worst_status"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromCardView(v *queries.CardView) *CardResponse {
	return &CardResponse{
		ID:          v.ID.String(),
		Barcode:     v.Barcode,
		Registrant:  v.Registrant,
		Phone:       v.Phone,
		WorstStatus: v.WorstStatus,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

type CardListItemResponse struct {
	ID          string  `json:"id"`
	Barcode     string  `json:"barcode"`
	Registrant  string  `json:"registrant"`
	Phone       *string `json:"phone,omitempty"`
	WorstStatus string  `json:"worst_status"`
	MonthUses   int     `json:"month_uses"`
	TotalUses   int     `json:"total_uses"`
	UsesLeft    int     `json:"uses_left"`
}

func FromCardList(items []*queries.CardListItem) []*CardListItemResponse {
	res := make([]*CardListItemResponse, len(items))
	for i, it := range items {
		res[i] = &CardListItemResponse{
			ID:          it.ID.String(),
			Barcode:     it.Barcode,
			Registrant:  it.Registrant,
			Phone:       it.Phone,
			WorstStatus: it.WorstStatus,
			MonthUses:   it.MonthUses,
			TotalUses:   it.TotalUses,
			UsesLeft:    it.UsesLeft,
		}
	}
	return res
}
