package catalogRepo

import (
	"testing"
	"time"

	"innkeep/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog counts reads so tests can observe cache fallthrough.
type stubCatalog struct {
	rooms      map[string]*models.Room
	hotels     map[string]*models.Hotel
	roomReads  int
	hotelReads int
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		rooms:  make(map[string]*models.Room),
		hotels: make(map[string]*models.Hotel),
	}
}

func (s *stubCatalog) GetRoomByID(id string) (*models.Room, error) {
	s.roomReads++
	return s.rooms[id], nil
}

func (s *stubCatalog) GetRoomByCode(code string) (*models.Room, error) {
	for _, r := range s.rooms {
		if r.RoomCode == code {
			return r, nil
		}
	}
	return nil, nil
}

func (s *stubCatalog) ListRooms(hotelID string) ([]models.Room, error) { return nil, nil }

func (s *stubCatalog) CreateRoom(room *models.Room) error {
	s.rooms[room.ID] = room
	return nil
}

func (s *stubCatalog) UpdateRoom(room *models.Room) error {
	s.rooms[room.ID] = room
	return nil
}

func (s *stubCatalog) IncrementRoomViews(id string) error {
	if r, ok := s.rooms[id]; ok {
		r.ViewCount++
	}
	return nil
}

func (s *stubCatalog) GetHotelByID(id string) (*models.Hotel, error) {
	s.hotelReads++
	return s.hotels[id], nil
}

func (s *stubCatalog) ListHotels() ([]models.Hotel, error) { return nil, nil }

func (s *stubCatalog) CreateHotel(hotel *models.Hotel) error {
	s.hotels[hotel.ID] = hotel
	return nil
}

func (s *stubCatalog) SaveMessage(msg *models.ContactMessage) error   { return nil }
func (s *stubCatalog) ListMessages() ([]models.ContactMessage, error) { return nil, nil }

// deadCache is a client whose Redis is unreachable; every operation errors
// fast. The decorator must treat that as a miss, never as a failure.
func deadCache() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
}

func TestCachedCatalogFallsBackWhenCacheUnavailable(t *testing.T) {
	stub := newStubCatalog()
	stub.rooms["r1"] = &models.Room{ID: "r1", RoomCode: "D-101", Price: 1000}
	repo := NewCachedCatalogRepo(stub, deadCache())

	room, err := repo.GetRoomByID("r1")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "D-101", room.RoomCode)
	assert.Equal(t, 1, stub.roomReads)

	// With the cache down every read falls through to storage.
	_, err = repo.GetRoomByID("r1")
	require.NoError(t, err)
	assert.Equal(t, 2, stub.roomReads)
}

func TestCachedCatalogMissingRecords(t *testing.T) {
	repo := NewCachedCatalogRepo(newStubCatalog(), deadCache())

	room, err := repo.GetRoomByID("ghost")
	require.NoError(t, err)
	assert.Nil(t, room)

	hotel, err := repo.GetHotelByID("ghost")
	require.NoError(t, err)
	assert.Nil(t, hotel)
}

func TestCachedCatalogWritesReachStorage(t *testing.T) {
	stub := newStubCatalog()
	repo := NewCachedCatalogRepo(stub, deadCache())

	require.NoError(t, repo.CreateRoom(&models.Room{ID: "r1", RoomCode: "D-101", Price: 1000}))
	require.NoError(t, repo.UpdateRoom(&models.Room{ID: "r1", RoomCode: "D-101", Price: 1500}))
	require.NoError(t, repo.IncrementRoomViews("r1"))
	require.NoError(t, repo.CreateHotel(&models.Hotel{ID: "h1", Name: "Seaside"}))

	assert.Equal(t, 1500, stub.rooms["r1"].Price)
	assert.Equal(t, int64(1), stub.rooms["r1"].ViewCount)
	require.NotNil(t, stub.hotels["h1"])
}

func TestCachedCatalogHotelFallback(t *testing.T) {
	stub := newStubCatalog()
	stub.hotels["h1"] = &models.Hotel{ID: "h1", Name: "Seaside"}
	repo := NewCachedCatalogRepo(stub, deadCache())

	hotel, err := repo.GetHotelByID("h1")
	require.NoError(t, err)
	require.NotNil(t, hotel)
	assert.Equal(t, "Seaside", hotel.Name)
	assert.Equal(t, 1, stub.hotelReads)
}
