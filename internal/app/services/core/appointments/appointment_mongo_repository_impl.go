package appointments

import (
	"context"
	"time"

	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/app/models"
	"telecare-scheduler/internal/pkg/constvars"
	"telecare-scheduler/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// emptyMeetingLinkFilter matches appointments whose link was never set. A
// claim sentinel is non-empty, so claimed appointments fall outside this
// filter until the claim is released.
func emptyMeetingLinkFilter() bson.M {
	return bson.M{"$or": []bson.M{
		{"meetingLink": ""},
		{"meetingLink": bson.M{"$exists": false}},
	}}
}

func (r *AppointmentMongoRepository) FindDueForMeetLink(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"$and": []bson.M{
			{"meetingDate": bson.M{"$gte": from, "$lte": to}},
			{"status": constvars.AppointmentStatusScheduled},
			{"isOnline": true},
			{"isVisible": true},
			emptyMeetingLinkFilter(),
		},
	}
	return r.findAll(ctx, filter)
}

func (r *AppointmentMongoRepository) FindDueForReminder(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"meetingDate": bson.M{"$gte": from, "$lte": to},
		"status": bson.M{"$in": []string{
			constvars.AppointmentStatusScheduled,
			constvars.AppointmentStatusConfirmed,
		}},
		"isVisible":    true,
		"reminderSent": bson.M{"$ne": true},
	}
	return r.findAll(ctx, filter)
}

func (r *AppointmentMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrQueryAppointments(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrQueryAppointments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) ClaimMeetingLink(ctx context.Context, appointmentID, sentinel string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}

	filter := bson.M{"$and": []bson.M{
		{"_id": objectID},
		emptyMeetingLinkFilter(),
	}}
	update := bson.M{"$set": bson.M{"meetingLink": sentinel, "updatedAt": time.Now()}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *AppointmentMongoRepository) SetMeetingLink(ctx context.Context, appointmentID, sentinel, link string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrPersistMeetingLink(err, appointmentID)
	}

	filter := bson.M{"_id": objectID, "meetingLink": sentinel}
	update := bson.M{"$set": bson.M{"meetingLink": link, "updatedAt": time.Now()}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrPersistMeetingLink(err, appointmentID)
	}
	if result.ModifiedCount != 1 {
		return exceptions.ErrPersistMeetingLink(mongo.ErrNoDocuments, appointmentID)
	}
	return nil
}

func (r *AppointmentMongoRepository) ReleaseMeetingLinkClaim(ctx context.Context, appointmentID, sentinel string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}

	filter := bson.M{"_id": objectID, "meetingLink": sentinel}
	update := bson.M{"$set": bson.M{"meetingLink": "", "updatedAt": time.Now()}}

	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) ClaimReminder(ctx context.Context, appointmentID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}

	filter := bson.M{"_id": objectID, "reminderSent": bson.M{"$ne": true}}
	update := bson.M{"$set": bson.M{"reminderSent": true, "updatedAt": time.Now()}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *AppointmentMongoRepository) ReleaseReminderClaim(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"reminderSent": false, "updatedAt": time.Now()}}

	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
