package repository

// Factory describes access to the domain repositories.
type Factory interface {
	Clients() ClientRepository
	Orders() OrderRepository
}
