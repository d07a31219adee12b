package services

import (
	"errors"
	"log"
	"time"

	"curely/config"
	"curely/models"
	"curely/util"

	"github.com/gin-gonic/gin"
)

/*
* Same signup shape as doctors, labs also wait for approval
 */
func CreateLab(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
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

	code, err := nextAccountCode(c, util.LabCollection, "L")
	if err != nil {
		return nil, err
	}
	hashed, err := HashPassword(data["password"].(string))
	if err != nil {
		log.Println("Error from hashedPassword")
		return nil, errors.New("failed to hash password")
	}

	address, _ := data["address"].(string)
	phone, _ := data["phoneNo"].(string)

	lab := models.Lab{
		Code:      code,
		Name:      data["name"].(string),
		Mail:      email,
		PhoneNo:   phone,
		Address:   address,
		Password:  hashed,
		Verified:  false,
		IsActive:  false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := config.InsertOne(c, config.OpenCollection(util.LabCollection), lab); err != nil {
		log.Println("Error inserting lab:", err)
		return nil, err
	}
	if err := insertLogin(c, code, email, phone, util.LabCollection, hashed); err != nil {
		return nil, err
	}

	return map[string]interface{}{"code": code}, nil
}
