package services

import (
	"context"
	"fmt"
	"log"

	"curely/config"
	"curely/models"
	"curely/util"

	"go.mongodb.org/mongo-driver/bson"
)

// Directory resolves the account principals the OTP flow needs: a
// patient by its human-facing medical id and a doctor by account code.
type Directory interface {
	PatientByMedID(ctx context.Context, medID string) (*models.Patient, error)
	DoctorByCode(ctx context.Context, code string) (*models.Doctor, error)
}

type mongoDirectory struct{}

func NewDirectory() Directory {
	return mongoDirectory{}
}

func (mongoDirectory) PatientByMedID(ctx context.Context, medID string) (*models.Patient, error) {
	coll := config.OpenCollection(util.PatientCollection)

	var patient models.Patient
	if err := config.FindOne(ctx, coll, bson.M{"medId": medID}, &patient); err != nil {
		log.Println("No patient found for medId:", medID)
		return nil, fmt.Errorf("patient %w", ErrNotFound)
	}
	return &patient, nil
}

func (mongoDirectory) DoctorByCode(ctx context.Context, code string) (*models.Doctor, error) {
	coll := config.OpenCollection(util.DoctorCollection)

	var doctor models.Doctor
	if err := config.FindOne(ctx, coll, bson.M{"code": code}, &doctor); err != nil {
		log.Println("No doctor found for code:", code)
		return nil, fmt.Errorf("doctor %w", ErrNotFound)
	}
	return &doctor, nil
}
