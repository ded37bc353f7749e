package dto

import "github.com/avolkou/crmdesk/internal/domain/model"

// ClientPayload is the JSON body of client create/update requests. Every
// field is optional; absent fields are stored as NULL.
type ClientPayload struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Zip       *string `json:"zip"`
	Company   *string `json:"company"`
}

// Draft converts the payload into a domain draft.
func (p ClientPayload) Draft() model.ClientDraft {
	return model.ClientDraft{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		City:      p.City,
		Zip:       p.Zip,
		Company:   p.Company,
	}
}

// ClientResponse is one client row as served over HTTP.
type ClientResponse struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Zip       *string `json:"zip"`
	Company   *string `json:"company"`
}

// NewClientResponse maps a domain client onto the wire shape.
func NewClientResponse(c model.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		City:      c.City,
		Zip:       c.Zip,
		Company:   c.Company,
	}
}
