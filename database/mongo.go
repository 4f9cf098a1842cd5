package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo() {
	uri := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	if uri == "" || dbName == "" {
		log.Fatal("MONGO_URI or DB_NAME not set in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("Connected to MongoDB")
}

var UserCollection *mongo.Collection
var RestaurantCollection *mongo.Collection
var FoodCollection *mongo.Collection
var CartCollection *mongo.Collection
var OrderCollection *mongo.Collection

func InitCollections() {
	UserCollection = DB.Collection("users")
	RestaurantCollection = DB.Collection("restaurants")
	FoodCollection = DB.Collection("foods")
	CartCollection = DB.Collection("carts")
	OrderCollection = DB.Collection("orders")
}

// EnsureIndexes creates the indexes the service relies on. The unique index
// on carts.userId is what makes the upsert-on-first-add race safe.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := CartCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("Failed to create cart index:", err)
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatal("Failed to create user index:", err)
	}

	_, err = OrderCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		log.Fatal("Failed to create order index:", err)
	}

	_, err = FoodCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurantId", Value: 1}},
	})
	if err != nil {
		log.Fatal("Failed to create food index:", err)
	}
}
