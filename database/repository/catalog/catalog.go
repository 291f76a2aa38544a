package catalogRepo

import "innkeep/models"

// CatalogRepository exposes the hotel/room catalog. The booking engine only
// reads rooms from here; creation and edits belong to the admin surface.
// Lookup methods return (nil, nil) when no record matches.
type CatalogRepository interface {
	// GetRoomByID retrieves a room by its unique ID.
	GetRoomByID(id string) (*models.Room, error)
	// GetRoomByCode retrieves a room by its human-facing room code.
	GetRoomByCode(code string) (*models.Room, error)
	// ListRooms retrieves all rooms, optionally scoped to a hotel.
	ListRooms(hotelID string) ([]models.Room, error)
	// CreateRoom inserts a new room record.
	CreateRoom(room *models.Room) error
	// UpdateRoom modifies an existing room record.
	UpdateRoom(room *models.Room) error
	// IncrementRoomViews bumps the room's view counter.
	IncrementRoomViews(id string) error

	// GetHotelByID retrieves a hotel by its unique ID.
	GetHotelByID(id string) (*models.Hotel, error)
	// ListHotels retrieves all hotels.
	ListHotels() ([]models.Hotel, error)
	// CreateHotel inserts a new hotel record.
	CreateHotel(hotel *models.Hotel) error

	// SaveMessage persists a contact-form inquiry.
	SaveMessage(msg *models.ContactMessage) error
	// ListMessages retrieves all contact-form inquiries, newest first.
	ListMessages() ([]models.ContactMessage, error)
}
