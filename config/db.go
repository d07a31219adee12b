package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var database *mongo.Database

/*
* Connect to mongo using MONGO_URI and MONGO_DB from env
* Ping once so a bad URI fails at startup and not on first request
 */
func ConnectDB() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "curely"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	database = client.Database(name)
	log.Println("Connected to mongo database:", name)
	return nil
}

func OpenCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter bson.M, result interface{}) error {
	return coll.FindOne(ctx, filter).Decode(result)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter bson.M, results interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func InsertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func CountDocuments(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	return coll.CountDocuments(ctx, filter)
}
