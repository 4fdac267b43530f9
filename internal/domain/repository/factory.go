package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Artworks() ArtworkRepository
	Orders() OrderRepository
	Contacts() ContactRepository
	Admins() AdminRepository
}
