package models

import "time"

// Room types offered by the catalog.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeTriple = "Triple"
	RoomTypeQuad   = "Quad"
	RoomTypeQueen  = "Queen"
	RoomTypeKing   = "King"
)

// RoomTypes lists every valid room type.
var RoomTypes = []string{
	RoomTypeSingle,
	RoomTypeDouble,
	RoomTypeTriple,
	RoomTypeQuad,
	RoomTypeQueen,
	RoomTypeKing,
}

// Occupancy bounds for any room.
const (
	MinCapacity = 1
	MaxCapacity = 5
)

// Room is a bookable hotel room. Price is in the smallest currency unit per
// night. The booking engine only reads rooms; edits go through the admin
// surface.
type Room struct {
	ID              string    `bson:"id" json:"id"`
	HotelID         string    `bson:"hotel_id" json:"hotel_id"`
	RoomType        string    `bson:"room_type" json:"room_type"`
	RoomCode        string    `bson:"room_code" json:"room_code"`
	Description     string    `bson:"description" json:"description"`
	MarkedPrice     int       `bson:"marked_price,omitempty" json:"marked_price,omitempty"`
	Price           int       `bson:"price" json:"price"`
	MaximumCapacity int       `bson:"maximum_capacity" json:"maximum_capacity"`
	ViewCount       int64     `bson:"view_count" json:"view_count"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
