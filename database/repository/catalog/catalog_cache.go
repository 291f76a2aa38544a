package catalogRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"innkeep/models"
	"innkeep/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedCatalogRepo layers a read-through Redis cache over a catalog
// repository. Rooms and hotels change rarely but are read on every booking
// and availability call, so their point lookups are cached; listings and the
// contact inbox go straight through. Cache trouble degrades silently to the
// backing repository.
type CachedCatalogRepo struct {
	inner CatalogRepository
	cache *redis.Client
}

// NewCachedCatalogRepo wraps a catalog repository with the cache client.
func NewCachedCatalogRepo(inner CatalogRepository, cache *redis.Client) *CachedCatalogRepo {
	return &CachedCatalogRepo{inner: inner, cache: cache}
}

func roomKey(id string) string  { return utils.CatalogCachePrefix + "room:" + id }
func hotelKey(id string) string { return utils.CatalogCachePrefix + "hotel:" + id }

func (r *CachedCatalogRepo) lookup(key string, dest interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Debug("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		utils.GetLogger().Debug("catalog cache entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *CachedCatalogRepo) store(key string, val interface{}) {
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.cache.Set(ctx, key, data, utils.CatalogCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedCatalogRepo) drop(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Debug("catalog cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CachedCatalogRepo) GetRoomByID(id string) (*models.Room, error) {
	var cached models.Room
	if r.lookup(roomKey(id), &cached) {
		return &cached, nil
	}
	room, err := r.inner.GetRoomByID(id)
	if err != nil || room == nil {
		return room, err
	}
	r.store(roomKey(id), room)
	return room, nil
}

func (r *CachedCatalogRepo) GetRoomByCode(code string) (*models.Room, error) {
	return r.inner.GetRoomByCode(code)
}

func (r *CachedCatalogRepo) ListRooms(hotelID string) ([]models.Room, error) {
	return r.inner.ListRooms(hotelID)
}

func (r *CachedCatalogRepo) CreateRoom(room *models.Room) error {
	if err := r.inner.CreateRoom(room); err != nil {
		return err
	}
	r.store(roomKey(room.ID), room)
	return nil
}

func (r *CachedCatalogRepo) UpdateRoom(room *models.Room) error {
	if err := r.inner.UpdateRoom(room); err != nil {
		return err
	}
	r.store(roomKey(room.ID), room)
	return nil
}

// IncrementRoomViews bumps the counter in storage; the cached copy is dropped
// rather than patched since the new count is not known here.
func (r *CachedCatalogRepo) IncrementRoomViews(id string) error {
	if err := r.inner.IncrementRoomViews(id); err != nil {
		return err
	}
	r.drop(roomKey(id))
	return nil
}

func (r *CachedCatalogRepo) GetHotelByID(id string) (*models.Hotel, error) {
	var cached models.Hotel
	if r.lookup(hotelKey(id), &cached) {
		return &cached, nil
	}
	hotel, err := r.inner.GetHotelByID(id)
	if err != nil || hotel == nil {
		return hotel, err
	}
	r.store(hotelKey(id), hotel)
	return hotel, nil
}

func (r *CachedCatalogRepo) ListHotels() ([]models.Hotel, error) {
	return r.inner.ListHotels()
}

func (r *CachedCatalogRepo) CreateHotel(hotel *models.Hotel) error {
	if err := r.inner.CreateHotel(hotel); err != nil {
		return err
	}
	r.store(hotelKey(hotel.ID), hotel)
	return nil
}

func (r *CachedCatalogRepo) SaveMessage(msg *models.ContactMessage) error {
	return r.inner.SaveMessage(msg)
}

func (r *CachedCatalogRepo) ListMessages() ([]models.ContactMessage, error) {
	return r.inner.ListMessages()
}
