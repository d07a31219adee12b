package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Lab struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	Name          string             `json:"name" bson:"name"`
	Mail          string             `json:"mail" bson:"mail"`
	PhoneNo       string             `json:"phoneNo" bson:"phoneNo"`
	Address       string             `json:"address" bson:"address"`
	Password      string             `json:"password,omitempty" bson:"password,omitempty"`
	Token         string             `json:"token,omitempty" bson:"token,omitempty"`
	Verified      bool               `json:"verified" bson:"verified"`
	LoginAttempts int                `json:"loginAttempts" bson:"loginAttempts"`
	IsBlocked     bool               `json:"isBlocked" bson:"isBlocked"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
