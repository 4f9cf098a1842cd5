package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sakshik2023/food-rush/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RestaurantRepository struct {
	restaurants *mongo.Collection
}

func NewRestaurantRepository(restaurants *mongo.Collection) *RestaurantRepository {
	return &RestaurantRepository{restaurants: restaurants}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	now := time.Now()
	restaurant.ID = primitive.NewObjectID()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now
	_, err := r.restaurants.InsertOne(ctx, restaurant)
	return err
}

func (r *RestaurantRepository) List(ctx context.Context) ([]models.Restaurant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.restaurants.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, restaurantID primitive.ObjectID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.restaurants.FindOne(ctx, bson.M{"_id": restaurantID}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurantID primitive.ObjectID, fields bson.M) (*models.Restaurant, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Restaurant
	err := r.restaurants.FindOneAndUpdate(ctx, bson.M{"_id": restaurantID}, bson.M{"$set": fields}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, restaurantID primitive.ObjectID) (bool, error) {
	res, err := r.restaurants.DeleteOne(ctx, bson.M{"_id": restaurantID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
