package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"curely/config"
	"curely/models"
	"curely/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* Validate the signup inputs
* Generate the account code and a unique medical id
* Hash the password, write the account and the login documents
 */
func CreatePatient(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	for _, key := range []string{"name", "email", "password"} {
		if err := getTrimmedString(data, key); err != nil {
			log.Println("error from getTrimmed string for", key, ":", err)
			return nil, errors.New(key + " is required")
		}
	}

	email := data["email"].(string)
	if err := ensureEmailUnused(c, email); err != nil {
		return nil, err
	}

	code, err := nextAccountCode(c, util.PatientCollection, "C")
	if err != nil {
		return nil, err
	}
	medID, err := newMedID(c)
	if err != nil {
		return nil, err
	}
	hashed, err := HashPassword(data["password"].(string))
	if err != nil {
		log.Println("Error from hashedPassword")
		return nil, errors.New("failed to hash password")
	}

	age, _ := data["age"].(float64)
	gender, _ := data["gender"].(string)
	phone, _ := data["phoneNo"].(string)

	patient := models.Patient{
		Code:      code,
		MedID:     medID,
		Name:      data["name"].(string),
		Mail:      email,
		PhoneNo:   phone,
		Age:       int(age),
		Gender:    gender,
		Password:  hashed,
		IsActive:  false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := config.InsertOne(c, config.OpenCollection(util.PatientCollection), patient); err != nil {
		log.Println("Error inserting patient:", err)
		return nil, err
	}
	if err := insertLogin(c, code, email, phone, util.PatientCollection, hashed); err != nil {
		return nil, err
	}

	return map[string]interface{}{"code": code, "medId": medID}, nil
}

func FetchPatientByCode(ctx context.Context, code string) (*models.Patient, error) {
	coll := config.OpenCollection(util.PatientCollection)

	var patient models.Patient
	if err := config.FindOne(ctx, coll, bson.M{"code": code}, &patient); err != nil {
		return nil, fmt.Errorf("patient %w", ErrNotFound)
	}
	patient.Password = ""
	patient.Token = ""
	return &patient, nil
}

func ensureEmailUnused(ctx context.Context, email string) error {
	coll := config.OpenCollection(util.LoginCollection)
	count, err := config.CountDocuments(ctx, coll, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email already registered")
	}
	return nil
}

func insertLogin(ctx context.Context, code string, email string, phone string, collection string, hashed string) error {
	login := models.Login{
		Code:       code,
		Email:      email,
		PhoneNo:    phone,
		Collection: collection,
		Password:   hashed,
	}
	if _, err := config.InsertOne(ctx, config.OpenCollection(util.LoginCollection), login); err != nil {
		log.Println("Error inserting login document:", err)
		return err
	}
	return nil
}

func nextAccountCode(ctx context.Context, collectionName string, prefix string) (string, error) {
	count, err := config.CountDocuments(ctx, config.OpenCollection(collectionName), bson.M{})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

/*
* Six random digits, retried until unused
 */
func newMedID(ctx context.Context) (string, error) {
	coll := config.OpenCollection(util.PatientCollection)
	for i := 0; i < 5; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(1000000))
		if err != nil {
			return "", err
		}
		medID := fmt.Sprintf("%06d", n.Int64())
		count, err := config.CountDocuments(ctx, coll, bson.M{"medId": medID})
		if err != nil {
			return "", err
		}
		if count == 0 {
			return medID, nil
		}
	}
	return "", errors.New("could not allocate a medical id")
}
