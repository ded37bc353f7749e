package model

// Client is a CRM customer record. Every field except ID is optional and
// stored as NULL when absent.
type Client struct {
	ID        int64
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Address   *string
	City      *string
	Zip       *string
	Company   *string
}

// ClientDraft carries the mutable fields of a client for create and
// full-row update operations.
type ClientDraft struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Address   *string
	City      *string
	Zip       *string
	Company   *string
}
