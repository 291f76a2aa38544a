package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"innkeep/database"
	"innkeep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	roomColl    *mongo.Collection
	hotelColl   *mongo.Collection
	messageColl *mongo.Collection
}

// NewMongoCatalogRepo creates a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		roomColl:    database.Collection("rooms"),
		hotelColl:   database.Collection("hotels"),
		messageColl: database.Collection("messages"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoCatalogRepo) GetRoomByID(id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var room models.Room
	if err := r.roomColl.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoCatalogRepo) GetRoomByCode(code string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var room models.Room
	if err := r.roomColl.FindOne(ctx, bson.M{"room_code": code}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with code %s: %w", code, err)
	}
	return &room, nil
}

func (r *MongoCatalogRepo) ListRooms(hotelID string) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	filter := bson.M{}
	if hotelID != "" {
		filter["hotel_id"] = hotelID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.roomColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)
	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

func (r *MongoCatalogRepo) CreateRoom(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.roomColl.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) UpdateRoom(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": room.ID}
	result, err := r.roomColl.UpdateOne(ctx, filter, bson.M{"$set": room})
	if err != nil {
		return fmt.Errorf("failed to update room with id %s: %w", room.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", room.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) IncrementRoomViews(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	update := bson.M{"$inc": bson.M{"view_count": 1}}
	if _, err := r.roomColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to bump view count for room %s: %w", id, err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetHotelByID(id string) (*models.Hotel, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var hotel models.Hotel
	if err := r.hotelColl.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

func (r *MongoCatalogRepo) ListHotels() ([]models.Hotel, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.hotelColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	defer cursor.Close(ctx)
	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

func (r *MongoCatalogRepo) CreateHotel(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.hotelColl.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) SaveMessage(msg *models.ContactMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.messageColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) ListMessages() ([]models.ContactMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.messageColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contact messages: %w", err)
	}
	defer cursor.Close(ctx)
	var msgs []models.ContactMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return msgs, nil
}
