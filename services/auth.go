package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"curely/config"
	"curely/models"
	"curely/role"
	"curely/token"
	"curely/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

/*
* Check the email, password and role are all present
* If any of the fields is empty or not a string then throw error
 */
func validateLoginInput(data map[string]interface{}) error {
	if err := getTrimmedString(data, "email"); err != nil {
		log.Println("error from getTrimmed string for email:", err)
		return errors.New(util.EMAIL_NOT_PROVIDED)
	}
	if err := getTrimmedString(data, "password"); err != nil {
		log.Println("error from getTrimmed string for password:", err)
		return errors.New(util.PASSWORD_NOT_PROVIDED)
	}
	if err := getTrimmedString(data, "role"); err != nil {
		log.Println("error from getTrimmed string for role:", err)
		return errors.New(util.ROLE_NOT_PROVIDED)
	}
	return nil
}

func getTrimmedString(data map[string]interface{}, key string) error {
	raw, ok := data[key]
	if !ok {
		return errors.New(key + " missing")
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return errors.New(key + " empty")
	}
	data[key] = strings.TrimSpace(s)
	return nil
}

/*
* Pass the filter and find which login document matches
 */
func FetchLogin(ctx context.Context, filter bson.M) (*models.Login, error) {
	coll := config.OpenCollection(util.LoginCollection)

	var login models.Login
	if err := config.FindOne(ctx, coll, filter, &login); err != nil {
		return nil, errors.New("user not found in login collection")
	}
	return &login, nil
}

/*
* Fetch the account document based on the collection and code
 */
func FetchUserByRole(ctx context.Context, collectionName string, code string) (map[string]interface{}, error) {
	coll := config.OpenCollection(collectionName)

	result := make(map[string]interface{})
	if err := config.FindOne(ctx, coll, bson.M{"code": code}, &result); err != nil {
		return nil, errors.New("no user found in " + collectionName + " collection")
	}
	return result, nil
}

/*
* Compare the stored bcrypt hash with the input password
 */
func verifyPassword(dbPassword string, inputPassword string) error {
	if strings.TrimSpace(dbPassword) == "" {
		return errors.New("stored password missing or invalid")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(dbPassword), []byte(inputPassword)); err != nil {
		return errors.New("password mismatch")
	}
	return nil
}

/*
* Generate a bcrypt hash for the password given
 */
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var loginAttempts = make(map[string]int)
var mu sync.Mutex

func IncrementLoginAttempts(code string) int {
	mu.Lock()
	defer mu.Unlock()

	loginAttempts[code]++
	attempts := loginAttempts[code]

	log.Println("Current attempts for", code, ":", attempts)
	return attempts
}

func ResetLoginAttempts(code string) {
	mu.Lock()
	defer mu.Unlock()
	delete(loginAttempts, code)
}

/*
* On a password mismatch count the attempt and persist it
* Three strikes blocks the account
 */
func LoginAttempts(ctx context.Context, code string, collectionName string, dbPassword string, inputPassword string) error {
	passErr := verifyPassword(dbPassword, inputPassword)
	if passErr != nil {
		attempts := IncrementLoginAttempts(code)
		update := bson.M{"$set": bson.M{"loginAttempts": attempts}}
		if attempts >= 3 {
			update = bson.M{"$set": bson.M{"loginAttempts": attempts, "isBlocked": true}}
		}
		if _, err := config.UpdateOne(ctx, config.OpenCollection(collectionName), bson.M{"code": code}, update); err != nil {
			log.Println("Error while updating the attempts in collection")
			return err
		}
		return passErr
	}
	ResetLoginAttempts(code)
	return nil
}

/*
* Pass the token
* And update the document with the token generated
 */
func UpdateUserByToken(ctx context.Context, collectionName string, code string, tok string) error {
	coll := config.OpenCollection(collectionName)

	filter := bson.M{"code": code}
	update := bson.M{"$set": bson.M{"token": tok, "isActive": true}}

	_, err := config.UpdateOne(ctx, coll, filter, update)
	return err
}

/*
* Validate the login inputs first
* The requested role picks the account collection, the login document
* must agree with it
* Verify password with the attempt lockout
* Generate the identity token and write it back
 */
func Login(c *gin.Context, data map[string]interface{}) (string, bool, error) {
	if err := validateLoginInput(data); err != nil {
		log.Println("error from validation input for the login")
		return "", false, err
	}

	r, err := role.Parse(data["role"].(string))
	if err != nil {
		log.Println("error parsing role for the login:", err)
		return "", false, errors.New("user or role invalid")
	}

	login, err := FetchLogin(context.Background(), bson.M{"email": data["email"].(string)})
	if err != nil {
		log.Println("error from the fetchLogin function:", err)
		return "", false, errors.New("user or role invalid")
	}
	if login.Collection != r.Collection() {
		log.Println("login collection does not match requested role")
		return "", false, errors.New("user or role invalid")
	}

	userDoc, err := FetchUserByRole(c, login.Collection, login.Code)
	if err != nil {
		log.Println("Error from FetchUserByRole", err)
		return "", false, errors.New("user or role invalid")
	}
	if blocked, _ := userDoc["isBlocked"].(bool); blocked {
		return "", false, errors.New("account is blocked")
	}

	if err := LoginAttempts(c, login.Code, login.Collection, login.Password, data["password"].(string)); err != nil {
		log.Println("Error from attempts:", err)
		return "", false, err
	}

	// patients are verified by construction, doctors and labs carry the
	// administrative approval flag
	verified := true
	if r != role.Patient {
		verified, _ = userDoc["verified"].(bool)
	}

	tok, err := token.Generate(login.Code, r, verified)
	if err != nil {
		log.Println("Error from token generation:", err)
		return "", false, err
	}

	if err := UpdateUserByToken(c, login.Collection, login.Code, tok); err != nil {
		log.Println("Error while updating the collection with token field")
		return "", false, err
	}

	return tok, verified, nil
}
