package bookingRepo

import (
	"fmt"
	"time"

	"innkeep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountOverlapping counts bookings for the room whose inclusive date interval
// contains the candidate date. The interval check is closed on both ends, and
// deliberately ignores booking status: a Rejected booking keeps blocking its
// dates until the record is edited, matching the admin-reconciled workflow.
func (r *MongoBookingRepo) CountOverlapping(roomID string, date time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"room_id":        roomID,
		"booking_starts": bson.M{"$lte": date},
		"booking_ends":   bson.M{"$gte": date},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count, nil
}

func (r *MongoBookingRepo) sumAmounts(match bson.M) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *MongoBookingRepo) sumPersons() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_persons"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *MongoBookingRepo) countStatus(status models.BookingStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// Report aggregates the dashboard figures the admin home screen shows.
func (r *MongoBookingRepo) Report() (*models.BookingReport, error) {
	report := &models.BookingReport{}

	var err error
	if report.TotalBookings, err = r.countStatus(""); err != nil {
		return nil, err
	}
	if report.PendingBookings, err = r.countStatus(models.StatusPending); err != nil {
		return nil, err
	}
	if report.ConfirmedBookings, err = r.countStatus(models.StatusConfirmed); err != nil {
		return nil, err
	}
	if report.RejectedBookings, err = r.countStatus(models.StatusRejected); err != nil {
		return nil, err
	}
	if report.ServedPersons, err = r.sumPersons(); err != nil {
		return nil, err
	}
	if report.ConfirmedAmount, err = r.sumAmounts(bson.M{"status": models.StatusConfirmed}); err != nil {
		return nil, err
	}
	if report.RejectedAmount, err = r.sumAmounts(bson.M{"status": models.StatusRejected}); err != nil {
		return nil, err
	}
	if report.CollectedAmount, err = r.sumAmounts(bson.M{
		"status":         models.StatusConfirmed,
		"payment_status": true,
	}); err != nil {
		return nil, err
	}
	if report.PendingAmount, err = r.sumAmounts(bson.M{
		"status":         bson.M{"$in": []models.BookingStatus{models.StatusConfirmed, models.StatusPending}},
		"payment_status": false,
	}); err != nil {
		return nil, err
	}

	return report, nil
}
