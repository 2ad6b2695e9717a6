package credentials

import (
	"context"
	"time"

	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/app/models"
	"telecare-scheduler/internal/pkg/constvars"
	"telecare-scheduler/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CredentialMongoRepository struct {
	Collection *mongo.Collection
}

func NewCredentialMongoRepository(db *mongo.Client, dbName string) contracts.CredentialRepository {
	return &CredentialMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCredentials),
	}
}

func (r *CredentialMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Credential, error) {
	var credential models.Credential
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&credential)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &credential, nil
}

func (r *CredentialMongoRepository) UpdateAccessToken(ctx context.Context, userID, accessToken string) error {
	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{
		"accessToken": accessToken,
		"status":      constvars.CredentialStatusValid,
		"updatedAt":   time.Now(),
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrPersistCredential(err, userID)
	}
	return nil
}

func (r *CredentialMongoRepository) MarkInvalid(ctx context.Context, userID string) error {
	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{
		"status":    constvars.CredentialStatusInvalid,
		"updatedAt": time.Now(),
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrPersistCredential(err, userID)
	}
	return nil
}
