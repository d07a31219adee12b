package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Report struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	MedID     string             `json:"medId" bson:"medId"`
	DoctorID  string             `json:"doctorId" bson:"doctorId"`
	Title     string             `json:"title" bson:"title"`
	Findings  string             `json:"findings" bson:"findings"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy string             `json:"createdBy" bson:"createdBy"`
}
