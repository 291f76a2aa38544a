package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"innkeep/database"
	"innkeep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentMethodRepo implements PaymentMethodRepository using MongoDB.
type MongoPaymentMethodRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentMethodRepo creates a PaymentMethodRepository backed by MongoDB.
func NewMongoPaymentMethodRepo() PaymentMethodRepository {
	return &MongoPaymentMethodRepo{coll: database.Collection("payment_methods")}
}

func (r *MongoPaymentMethodRepo) GetByID(id string) (*models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var method models.PaymentMethod
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&method); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment method with id %s: %w", id, err)
	}
	return &method, nil
}

func (r *MongoPaymentMethodRepo) List() ([]models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment methods: %w", err)
	}
	defer cursor.Close(ctx)
	var methods []models.PaymentMethod
	if err := cursor.All(ctx, &methods); err != nil {
		return nil, fmt.Errorf("failed to decode payment methods: %w", err)
	}
	return methods, nil
}
