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

type CartRepository struct {
	carts *mongo.Collection
}

func NewCartRepository(carts *mongo.Collection) *CartRepository {
	return &CartRepository{carts: carts}
}

// GetByUser returns the user's cart, or an empty one if none has been
// created yet. Never fails for a valid user id.
func (r *CartRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// ApplyDelta atomically adjusts the quantity of one line item. The increment
// goes through a positional $inc so two concurrent adds from the same user
// cannot lose an update. Quantities that drop to zero or below are pulled
// from the document right after.
func (r *CartRepository) ApplyDelta(ctx context.Context, userID, foodID primitive.ObjectID, delta int) error {
	now := time.Now()

	for attempt := 0; attempt < 3; attempt++ {
		res, err := r.carts.UpdateOne(ctx,
			bson.M{"userId": userID, "items.foodId": foodID},
			bson.M{
				"$inc": bson.M{"items.$.quantity": delta},
				"$set": bson.M{"updatedAt": now},
			})
		if err != nil {
			return err
		}
		if res.MatchedCount > 0 {
			return r.dropEmptyItems(ctx, userID)
		}

		// No line item for this food yet. A negative delta on a missing
		// item is a no-op.
		if delta <= 0 {
			return nil
		}

		// Insert the line item, creating the cart document if needed. The
		// $ne guard keeps a racing first-add from producing two line items
		// for the same food; the unique userId index keeps a racing first
		// add from producing two carts.
		res, err = r.carts.UpdateOne(ctx,
			bson.M{"userId": userID, "items.foodId": bson.M{"$ne": foodID}},
			bson.M{
				"$push":        bson.M{"items": models.CartItem{FoodID: foodID, Quantity: delta}},
				"$set":         bson.M{"updatedAt": now},
				"$setOnInsert": bson.M{"createdAt": now},
			},
			options.Update().SetUpsert(true))
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return err
		}
		if res.MatchedCount > 0 || res.UpsertedCount > 0 {
			return nil
		}
		// A concurrent request inserted the item between our two updates;
		// go back around and take the $inc path.
	}

	return errors.New("cart update contention, giving up after retries")
}

// RemoveItem deletes the line item for foodID. Removing an absent item is a
// successful no-op.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, foodID primitive.ObjectID) error {
	_, err := r.carts.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"foodId": foodID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		})
	return err
}

// Clear empties the cart's items. The cart document itself is kept (and
// created if missing) so repeat checkouts need no re-creation.
func (r *CartRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	now := time.Now()
	_, err := r.carts.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$set":         bson.M{"items": []models.CartItem{}, "updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true))
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// Lost an upsert race against a concurrent add; the cart exists now,
		// so clearing it again is safe.
		_, err = r.carts.UpdateOne(ctx,
			bson.M{"userId": userID},
			bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": now}})
	}
	return err
}

func (r *CartRepository) dropEmptyItems(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.carts.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$pull": bson.M{"items": bson.M{"quantity": bson.M{"$lte": 0}}}})
	return err
}
