package model

// Order is a purchase order belonging to a client. Amount keeps the exact
// decimal text the store returned so no precision is lost on round trips.
// PictureURLs holds attachment paths relative to the attachment root, in
// upload order.
type Order struct {
	ID          int64
	Amount      string
	Status      string
	ClientID    int64
	Description *string
	PictureURLs []string
}

// OrderListing is an order joined with the owning client's display name.
type OrderListing struct {
	Order
	ClientName string
}

// OrderDraft carries the scalar fields of an order for create and full-row
// update operations. Attachments travel separately.
type OrderDraft struct {
	Amount      string
	Status      string
	ClientID    int64
	Description *string
}
