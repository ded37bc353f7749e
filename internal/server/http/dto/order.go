package dto

import "github.com/avolkou/crmdesk/internal/domain/model"

// OrderResponse is one order row as served over HTTP. PictureURLs are
// relative to the attachment root and resolve under /orderImages/.
type OrderResponse struct {
	ID          int64    `json:"id"`
	Amount      string   `json:"amount"`
	Status      string   `json:"status"`
	ClientID    int64    `json:"client_id"`
	Description *string  `json:"description"`
	PictureURLs []string `json:"picture_urls"`
}

// OrderListingResponse adds the owning client's display name.
type OrderListingResponse struct {
	OrderResponse
	Name string `json:"name"`
}

// NewOrderResponse maps a domain order onto the wire shape.
func NewOrderResponse(o model.Order) OrderResponse {
	pictures := o.PictureURLs
	if pictures == nil {
		pictures = []string{}
	}
	return OrderResponse{
		ID:          o.ID,
		Amount:      o.Amount,
		Status:      o.Status,
		ClientID:    o.ClientID,
		Description: o.Description,
		PictureURLs: pictures,
	}
}

// NewOrderListingResponse maps a joined order row onto the wire shape.
func NewOrderListingResponse(l model.OrderListing) OrderListingResponse {
	return OrderListingResponse{
		OrderResponse: NewOrderResponse(l.Order),
		Name:          l.ClientName,
	}
}
