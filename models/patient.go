package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	MedID     string             `json:"medId" bson:"medId"`
	Name      string             `json:"name" bson:"name"`
	Mail      string             `json:"mail" bson:"mail"`
	PhoneNo   string             `json:"phoneNo" bson:"phoneNo"`
	Age       int                `json:"age" bson:"age"`
	Gender    string             `json:"gender" bson:"gender"`
	Password  string             `json:"password,omitempty" bson:"password,omitempty"`
	Token     string             `json:"token,omitempty" bson:"token,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	IsBlocked bool               `json:"isBlocked" bson:"isBlocked"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
