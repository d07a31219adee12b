package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"curely/config"
	"curely/models"
	"curely/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* Validate the signup inputs and hash the password
* New doctors start unverified until administrative approval
 */
func CreateDoctor(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
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

	code, err := nextAccountCode(c, util.DoctorCollection, "D")
	if err != nil {
		return nil, err
	}
	hashed, err := HashPassword(data["password"].(string))
	if err != nil {
		log.Println("Error from hashedPassword")
		return nil, errors.New("failed to hash password")
	}

	department, _ := data["department"].(string)
	phone, _ := data["phoneNo"].(string)

	doctor := models.Doctor{
		Code:       code,
		Name:       data["name"].(string),
		Mail:       email,
		Department: department,
		PhoneNo:    phone,
		Password:   hashed,
		Verified:   false,
		IsActive:   false,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if _, err := config.InsertOne(c, config.OpenCollection(util.DoctorCollection), doctor); err != nil {
		log.Println("Error inserting doctor:", err)
		return nil, err
	}
	if err := insertLogin(c, code, email, phone, util.DoctorCollection, hashed); err != nil {
		return nil, err
	}

	return map[string]interface{}{"code": code}, nil
}

func FetchDoctorByCode(ctx context.Context, code string) (*models.Doctor, error) {
	coll := config.OpenCollection(util.DoctorCollection)

	var doctor models.Doctor
	if err := config.FindOne(ctx, coll, bson.M{"code": code}, &doctor); err != nil {
		return nil, fmt.Errorf("doctor %w", ErrNotFound)
	}
	doctor.Password = ""
	doctor.Token = ""
	return &doctor, nil
}
