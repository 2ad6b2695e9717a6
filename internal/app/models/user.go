package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Fullname string             `bson:"fullname" json:"fullname"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}
