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

// FoodRepository owns the foods collection and doubles as the menu catalog
// the cart and order services resolve line items against.
type FoodRepository struct {
	foods *mongo.Collection
}

func NewFoodRepository(foods *mongo.Collection) *FoodRepository {
	return &FoodRepository{foods: foods}
}

// Resolve looks up a food item by id. Returns nil (no error) when the item
// does not exist.
func (r *FoodRepository) Resolve(ctx context.Context, foodID primitive.ObjectID) (*models.Food, error) {
	var food models.Food
	err := r.foods.FindOne(ctx, bson.M{"_id": foodID}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(ctx context.Context, food *models.Food) error {
	now := time.Now()
	food.ID = primitive.NewObjectID()
	food.CreatedAt = now
	food.UpdatedAt = now
	_, err := r.foods.InsertOne(ctx, food)
	return err
}

func (r *FoodRepository) ListAll(ctx context.Context) ([]models.Food, error) {
	return r.list(ctx, bson.M{})
}

func (r *FoodRepository) ListByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Food, error) {
	return r.list(ctx, bson.M{"restaurantId": restaurantID})
}

func (r *FoodRepository) list(ctx context.Context, filter bson.M) ([]models.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.foods.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Update applies the given fields and returns the updated food, or nil if
// it does not exist.
func (r *FoodRepository) Update(ctx context.Context, foodID primitive.ObjectID, fields bson.M) (*models.Food, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Food
	err := r.foods.FindOneAndUpdate(ctx, bson.M{"_id": foodID}, bson.M{"$set": fields}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *FoodRepository) Delete(ctx context.Context, foodID primitive.ObjectID) (bool, error) {
	res, err := r.foods.DeleteOne(ctx, bson.M{"_id": foodID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
